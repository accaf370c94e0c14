package entity

import "time"

type User struct {
	ID                        string    `json:"id"`
	Username                  string    `json:"username"`
	Email                     string    `json:"email"`
	Password                  string    `json:"-"`
	FullName                  string    `json:"full_name"`
	AvatarURL                 string    `json:"avatar_url"`
	CoverImageURL             string    `json:"cover_image_url,omitempty"`
	SubscribersCount          int64     `json:"subscribers_count"`
	ChannelsSubscribedToCount int64     `json:"channels_subscribed_to_count"`
	RefreshToken              string    `json:"-"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// OwnerInfo is the public projection of a user embedded into composed views.
// One-to-one joins collapse to this single object, never a one-element array.
type OwnerInfo struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"full_name"`
	AvatarURL        string `json:"avatar_url"`
	SubscribersCount int64  `json:"subscribers_count,omitempty"`
}
