package persistent

import (
	"time"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Get(subscriberID, channelID string) (*entity.Subscription, error)
	Create(subscriberID, channelID string) error
	Delete(subscriberID, channelID string) error
	IsSubscribed(subscriberID, channelID string) (bool, error)
	CountForChannel(channelID string) (int64, error)
	SubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error)
	ChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Get(subscriberID, channelID string) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&subscriptionModel).Error
	if err != nil {
		return nil, normalizeError(err)
	}
	return ToSubscriptionEntity(&subscriptionModel), nil
}

func (r *subscriptionRepository) Create(subscriberID, channelID string) error {
	subscriptionModel := &model.SubscriptionModel{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	return normalizeError(r.db.Create(subscriptionModel).Error)
}

func (r *subscriptionRepository) Delete(subscriberID, channelID string) error {
	return r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{}).Error
}

func (r *subscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, normalizeError(err)
}

func (r *subscriptionRepository) CountForChannel(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, normalizeError(err)
}

type counterpartRow struct {
	ID               string
	Username         string
	FullName         string
	AvatarURL        string
	SubscribersCount int64
	SubscribedAt     time.Time
}

func (r *subscriptionRepository) SubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error) {
	var rows []counterpartRow
	err := r.db.Raw(`
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.subscribers_count,
			s.created_at AS subscribed_at
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = ?
		ORDER BY s.created_at DESC`, subscriberID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	channels := make([]entity.SubscribedChannel, len(rows))
	for i, row := range rows {
		channels[i] = entity.SubscribedChannel{
			Channel: entity.OwnerInfo{
				ID:               row.ID,
				Username:         row.Username,
				FullName:         row.FullName,
				AvatarURL:        row.AvatarURL,
				SubscribersCount: row.SubscribersCount,
			},
			SubscribedAt: row.SubscribedAt,
		}
	}
	return channels, nil
}

func (r *subscriptionRepository) ChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error) {
	var rows []counterpartRow
	err := r.db.Raw(`
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.subscribers_count,
			s.created_at AS subscribed_at
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = ?
		ORDER BY s.created_at DESC`, channelID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	subscribers := make([]entity.ChannelSubscriber, len(rows))
	for i, row := range rows {
		subscribers[i] = entity.ChannelSubscriber{
			Subscriber: entity.OwnerInfo{
				ID:               row.ID,
				Username:         row.Username,
				FullName:         row.FullName,
				AvatarURL:        row.AvatarURL,
				SubscribersCount: row.SubscribersCount,
			},
			SubscribedAt: row.SubscribedAt,
		}
	}
	return subscribers, nil
}
