package persistent

import (
	"cliptube/internal/entity"
	"cliptube/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Get(userID string, target entity.LikeTarget, targetID string) (*entity.Like, error)
	Create(userID string, target entity.LikeTarget, targetID string) error
	Delete(userID string, target entity.LikeTarget, targetID string) error
	IsLiked(userID string, target entity.LikeTarget, targetID string) (bool, error)
	CountForTarget(target entity.LikeTarget, targetID string) (int64, error)
	LikedVideos(userID string) ([]entity.VideoWithOwner, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Get(userID string, target entity.LikeTarget, targetID string) (*entity.Like, error) {
	var likeModel model.LikeModel
	err := r.db.Where("liked_by = ? AND target_type = ? AND target_id = ?",
		userID, string(target), targetID).First(&likeModel).Error
	if err != nil {
		return nil, normalizeError(err)
	}
	return ToLikeEntity(&likeModel), nil
}

func (r *likeRepository) Create(userID string, target entity.LikeTarget, targetID string) error {
	likeModel := &model.LikeModel{
		LikedBy:    userID,
		TargetType: string(target),
		TargetID:   targetID,
	}
	// normalizeError turns the duplicate-key error of a racing toggle into
	// ErrAlreadyExists for the caller to recover from.
	return normalizeError(r.db.Create(likeModel).Error)
}

func (r *likeRepository) Delete(userID string, target entity.LikeTarget, targetID string) error {
	return r.db.Where("liked_by = ? AND target_type = ? AND target_id = ?",
		userID, string(target), targetID).Delete(&model.LikeModel{}).Error
}

func (r *likeRepository) IsLiked(userID string, target entity.LikeTarget, targetID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("liked_by = ? AND target_type = ? AND target_id = ?", userID, string(target), targetID).
		Count(&count).Error
	return count > 0, normalizeError(err)
}

func (r *likeRepository) CountForTarget(target entity.LikeTarget, targetID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("target_type = ? AND target_id = ?", string(target), targetID).
		Count(&count).Error
	return count, normalizeError(err)
}

// LikedVideos returns the reshaped videos the user has liked, newest like
// first. The inner join drops likes whose video no longer exists.
func (r *likeRepository) LikedVideos(userID string) ([]entity.VideoWithOwner, error) {
	var rows []videoOwnerRow
	err := r.db.Raw(`
		SELECT `+videoOwnerColumns+`
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.liked_by = ? AND l.target_type = 'video'
		ORDER BY l.created_at DESC`, userID).Scan(&rows).Error
	if err != nil {
		return nil, normalizeError(err)
	}

	videos := make([]entity.VideoWithOwner, len(rows))
	for i := range rows {
		videos[i] = rows[i].toEntity()
	}
	return videos, nil
}
