package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_sub_edge" json:"subscriber_id"`
	ChannelID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_sub_edge" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Subscriber UserModel `gorm:"foreignKey:SubscriberID" json:"-"`
	Channel    UserModel `gorm:"foreignKey:ChannelID" json:"-"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
