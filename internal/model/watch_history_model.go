package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistoryModel is an append-only sequence: one row per detail fetch,
// duplicates allowed, ordered by WatchedAt for most-recent-first reads.
type WatchHistoryModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null;index" json:"video_id"`
	WatchedAt time.Time `gorm:"index" json:"watched_at"`

	User  UserModel  `gorm:"foreignKey:UserID" json:"-"`
	Video VideoModel `gorm:"foreignKey:VideoID" json:"-"`
}

func (WatchHistoryModel) TableName() string {
	return "watch_history"
}

func (w *WatchHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.WatchedAt.IsZero() {
		w.WatchedAt = time.Now()
	}
	return nil
}
