package persistent

import (
	"time"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	Update(tweet *entity.Tweet) error
	Delete(id string) error
	ListForUser(userID string) ([]entity.TweetView, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := &model.TweetModel{
		ID:      tweet.ID,
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}
	if err := r.db.Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	return r.db.Model(&model.TweetModel{}).Where("id = ?", tweet.ID).
		Update("content", tweet.Content).Error
}

func (r *tweetRepository) Delete(id string) error {
	if err := r.db.Where("target_type = ? AND target_id = ?",
		string(entity.LikeTargetTweet), id).Delete(&model.LikeModel{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.TweetModel{}).Error
}

func (r *tweetRepository) ListForUser(userID string) ([]entity.TweetView, error) {
	var rows []struct {
		ID             string
		OwnerID        string
		Content        string
		CreatedAt      time.Time
		UpdatedAt      time.Time
		OwnerUsername  string
		OwnerFullName  string
		OwnerAvatarURL string
		LikesCount     int64
	}
	err := r.db.Raw(`
		SELECT t.id, t.owner_id, t.content, t.created_at, t.updated_at,
			u.username AS owner_username, u.full_name AS owner_full_name,
			u.avatar_url AS owner_avatar_url,
			(SELECT COUNT(*) FROM likes l
			 WHERE l.target_type = 'tweet' AND l.target_id = t.id) AS likes_count
		FROM tweets t
		JOIN users u ON u.id = t.owner_id
		WHERE t.owner_id = ?
		ORDER BY t.created_at DESC`, userID).Scan(&rows).Error
	if err != nil {
		return nil, normalizeError(err)
	}

	tweets := make([]entity.TweetView, len(rows))
	for i, row := range rows {
		tweets[i] = entity.TweetView{
			Tweet: entity.Tweet{
				ID:        row.ID,
				OwnerID:   row.OwnerID,
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
		}
	}
	return tweets, nil
}
