package persistent

import (
	"time"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
	ListForVideo(videoID, viewerID string, limit, offset int) ([]entity.CommentView, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		ID:      comment.ID,
		OwnerID: comment.OwnerID,
		VideoID: comment.VideoID,
		Content: comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{}).Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	if err := r.db.Where("target_type = ? AND target_id = ?",
		string(entity.LikeTargetComment), id).Delete(&model.LikeModel{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.CommentModel{}).Error
}

func (r *commentRepository) ListForVideo(videoID, viewerID string, limit, offset int) ([]entity.CommentView, error) {
	var rows []struct {
		ID             string
		OwnerID        string
		VideoID        string
		Content        string
		CreatedAt      time.Time
		UpdatedAt      time.Time
		OwnerUsername  string
		OwnerFullName  string
		OwnerAvatarURL string
		LikesCount     int64
		IsLiked        bool
	}
	err := r.db.Raw(`
		SELECT c.id, c.owner_id, c.video_id, c.content, c.created_at, c.updated_at,
			u.username AS owner_username, u.full_name AS owner_full_name,
			u.avatar_url AS owner_avatar_url,
			(SELECT COUNT(*) FROM likes l
			 WHERE l.target_type = 'comment' AND l.target_id = c.id) AS likes_count,
			EXISTS (
				SELECT 1 FROM likes l
				WHERE l.target_type = 'comment' AND l.target_id = c.id AND l.liked_by = ?
			) AS is_liked
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = ?
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?`, viewerParam(viewerID), videoID, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, normalizeError(err)
	}

	comments := make([]entity.CommentView, len(rows))
	for i, row := range rows {
		comments[i] = entity.CommentView{
			Comment: entity.Comment{
				ID:        row.ID,
				OwnerID:   row.OwnerID,
				VideoID:   row.VideoID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Owner: entity.OwnerInfo{
				ID:        row.OwnerID,
				Username:  row.OwnerUsername,
				FullName:  row.OwnerFullName,
				AvatarURL: row.OwnerAvatarURL,
			},
			LikesCount: row.LikesCount,
			IsLiked:    row.IsLiked,
		}
	}
	return comments, nil
}
