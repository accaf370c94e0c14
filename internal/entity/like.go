package entity

import "time"

// LikeTarget is the tagged variant for what a like points at. Each like
// targets exactly one kind; the kind plus the target id identify the edge.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

func (t LikeTarget) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Like struct {
	ID         string     `json:"id"`
	LikedBy    string     `json:"liked_by"`
	TargetType LikeTarget `json:"target_type"`
	TargetID   string     `json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
