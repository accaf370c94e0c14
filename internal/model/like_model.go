package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel is polymorphic over its target: TargetType + TargetID name exactly
// one of video/comment/tweet. The composite unique index makes a racing double
// create fail with a duplicate-key error instead of leaving two edges.
type LikeModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	LikedBy    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_like_edge" json:"liked_by"`
	TargetType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_like_edge" json:"target_type"`
	TargetID   string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_like_edge" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`

	User UserModel `gorm:"foreignKey:LikedBy" json:"-"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
