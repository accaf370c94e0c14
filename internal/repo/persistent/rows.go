package persistent

import (
	"time"

	"cliptube/internal/entity"
)

// videoOwnerRow is the flat scan target for video joins that embed the owner's
// public projection. The join is one-to-one, so the row carries the collapsed
// owner fields directly instead of an array.
type videoOwnerRow struct {
	ID           string
	OwnerID      string
	VideoURL     string
	ThumbnailURL string
	Title        string
	Description  string
	Duration     float64
	Views        int64
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	OwnerUsername         string
	OwnerFullName         string
	OwnerAvatarURL        string
	OwnerSubscribersCount int64
}

func (r *videoOwnerRow) toEntity() entity.VideoWithOwner {
	return entity.VideoWithOwner{
		Video: entity.Video{
			ID:           r.ID,
			OwnerID:      r.OwnerID,
			VideoURL:     r.VideoURL,
			ThumbnailURL: r.ThumbnailURL,
			Title:        r.Title,
			Description:  r.Description,
			Duration:     r.Duration,
			Views:        r.Views,
			IsPublished:  r.IsPublished,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		},
		Owner: entity.OwnerInfo{
			ID:               r.OwnerID,
			Username:         r.OwnerUsername,
			FullName:         r.OwnerFullName,
			AvatarURL:        r.OwnerAvatarURL,
			SubscribersCount: r.OwnerSubscribersCount,
		},
	}
}

const videoOwnerColumns = `v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
	v.duration, v.views, v.is_published, v.created_at, v.updated_at,
	u.username AS owner_username, u.full_name AS owner_full_name,
	u.avatar_url AS owner_avatar_url, u.subscribers_count AS owner_subscribers_count`
