package entity

import "time"

// Denormalized read models produced by the view composition queries. Each is
// the reshaped result of one fixed join, not a general query result.

type ChannelProfile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatar_url"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	// Computed from the subscriptions table, not the cached counters.
	SubscribersCount          int64 `json:"subscribers_count"`
	ChannelsSubscribedToCount int64 `json:"channels_subscribed_to_count"`
	IsSubscribed              bool  `json:"is_subscribed"`
}

type VideoWithOwner struct {
	Video
	Owner OwnerInfo `json:"owner"`
}

type PlaylistDetail struct {
	Playlist
	Owner  OwnerInfo        `json:"owner"`
	Videos []VideoWithOwner `json:"videos"`
}

type PlaylistSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalVideos int64     `json:"total_videos"`
	TotalViews  int64     `json:"total_views"`
	CoverImage  string    `json:"cover_image,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SubscribedChannel struct {
	Channel      OwnerInfo `json:"channel"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type ChannelSubscriber struct {
	Subscriber   OwnerInfo `json:"subscriber"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type ChannelStats struct {
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
}

type ChannelVideo struct {
	Video
	LikesCount int64 `json:"likes_count"`
}

type CommentView struct {
	Comment
	Owner      OwnerInfo `json:"owner"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

type TweetView struct {
	Tweet
	Owner      OwnerInfo `json:"owner"`
	LikesCount int64     `json:"likes_count"`
}
