package persistent

import (
	"cliptube/internal/entity"
	"cliptube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateFields(id string, fields map[string]interface{}) error

	// Refresh-credential lifecycle. SetRefreshToken overwrites unconditionally
	// (fresh login); SwapRefreshToken only succeeds when the stored value still
	// equals the presented one, making rotation a single atomic conditional
	// update at the store level.
	SetRefreshToken(id, token string) error
	SwapRefreshToken(id, presented, next string) error
	ClearRefreshToken(id string) error

	AdjustSubscriberCounters(channelID, subscriberID string, delta int) error
	RecountSubscribers(channelID string) (int64, error)

	ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)

	AppendWatchHistory(userID, videoID string) error
	WatchHistory(userID string) ([]entity.VideoWithOwner, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return normalizeError(err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = LOWER(?)", username).First(&userModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Where("username = LOWER(?) OR email = ?", username, email).First(&userModel).Error
	if err != nil {
		return nil, normalizeError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *userRepository) SetRefreshToken(id, token string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Update("refresh_token", token).Error
}

func (r *userRepository) SwapRefreshToken(id, presented, next string) error {
	result := r.db.Model(&model.UserModel{}).
		Where("id = ? AND refresh_token = ?", id, presented).
		Update("refresh_token", next)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Stored value moved on: the presented token was already rotated away.
		return entity.ErrSessionExpired
	}
	return nil
}

func (r *userRepository) ClearRefreshToken(id string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Update("refresh_token", "").Error
}

// AdjustSubscriberCounters moves both cached counters by delta: the channel's
// subscribers_count and the subscriber's channels_subscribed_to_count. The
// counters are a display cache; the subscriptions table stays authoritative.
func (r *userRepository) AdjustSubscriberCounters(channelID, subscriberID string, delta int) error {
	if err := r.db.Model(&model.UserModel{}).Where("id = ?", channelID).
		UpdateColumn("subscribers_count", gorm.Expr("subscribers_count + ?", delta)).Error; err != nil {
		return err
	}
	return r.db.Model(&model.UserModel{}).Where("id = ?", subscriberID).
		UpdateColumn("channels_subscribed_to_count", gorm.Expr("channels_subscribed_to_count + ?", delta)).Error
}

// RecountSubscribers recomputes the cached subscriber counter from the
// subscriptions table and returns the true count. Reconciliation path.
func (r *userRepository) RecountSubscribers(channelID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, normalizeError(err)
	}
	if err := r.db.Model(&model.UserModel{}).Where("id = ?", channelID).
		UpdateColumn("subscribers_count", count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	var row struct {
		ID                        string
		Username                  string
		FullName                  string
		Email                     string
		AvatarURL                 string
		CoverImageURL             string
		SubscribersCount          int64
		ChannelsSubscribedToCount int64
		IsSubscribed              bool
	}

	result := r.db.Raw(`
		SELECT u.id, u.username, u.full_name, u.email, u.avatar_url, u.cover_image_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscribers_count,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS channels_subscribed_to_count,
			EXISTS (
				SELECT 1 FROM subscriptions s
				WHERE s.channel_id = u.id AND s.subscriber_id = ?
			) AS is_subscribed
		FROM users u
		WHERE u.username = LOWER(?)`, viewerParam(viewerID), username).Scan(&row)
	if result.Error != nil {
		return nil, normalizeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return &entity.ChannelProfile{
		ID:                        row.ID,
		Username:                  row.Username,
		FullName:                  row.FullName,
		Email:                     row.Email,
		AvatarURL:                 row.AvatarURL,
		CoverImageURL:             row.CoverImageURL,
		SubscribersCount:          row.SubscribersCount,
		ChannelsSubscribedToCount: row.ChannelsSubscribedToCount,
		IsSubscribed:              row.IsSubscribed,
	}, nil
}

func (r *userRepository) AppendWatchHistory(userID, videoID string) error {
	return r.db.Create(&model.WatchHistoryModel{
		UserID:  userID,
		VideoID: videoID,
	}).Error
}

func (r *userRepository) WatchHistory(userID string) ([]entity.VideoWithOwner, error) {
	var rows []videoOwnerRow
	err := r.db.Raw(`
		SELECT `+videoOwnerColumns+`
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE wh.user_id = ?
		ORDER BY wh.watched_at DESC`, userID).Scan(&rows).Error
	if err != nil {
		return nil, normalizeError(err)
	}

	history := make([]entity.VideoWithOwner, len(rows))
	for i := range rows {
		history[i] = rows[i].toEntity()
	}
	return history, nil
}
