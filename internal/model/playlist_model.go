package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner UserModel `gorm:"foreignKey:OwnerID" json:"-"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel keeps playlist membership set-like: the unique pair index
// rejects duplicate entries, Position keeps insertion order for display.
type PlaylistVideoModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PlaylistID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_playlist_member" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_member" json:"video_id"`
	Position   int       `gorm:"default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`

	Playlist PlaylistModel `gorm:"foreignKey:PlaylistID" json:"-"`
	Video    VideoModel    `gorm:"foreignKey:VideoID" json:"-"`
}

func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}

func (pv *PlaylistVideoModel) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return nil
}
