package persistent

import (
	"cliptube/internal/entity"
	"cliptube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                        m.ID,
		Username:                  m.Username,
		Email:                     m.Email,
		Password:                  m.Password,
		FullName:                  m.FullName,
		AvatarURL:                 m.AvatarURL,
		CoverImageURL:             m.CoverImageURL,
		SubscribersCount:          m.SubscribersCount,
		ChannelsSubscribedToCount: m.ChannelsSubscribedToCount,
		RefreshToken:              m.RefreshToken,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:                        e.ID,
		Username:                  e.Username,
		Email:                     e.Email,
		Password:                  e.Password,
		FullName:                  e.FullName,
		AvatarURL:                 e.AvatarURL,
		CoverImageURL:             e.CoverImageURL,
		SubscribersCount:          e.SubscribersCount,
		ChannelsSubscribedToCount: e.ChannelsSubscribedToCount,
		RefreshToken:              e.RefreshToken,
		CreatedAt:                 e.CreatedAt,
		UpdatedAt:                 e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Title:        m.Title,
		Description:  m.Description,
		Duration:     m.Duration,
		Views:        m.Views,
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		Title:        e.Title,
		Description:  e.Description,
		Duration:     e.Duration,
		Views:        e.Views,
		IsPublished:  e.IsPublished,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:         m.ID,
		LikedBy:    m.LikedBy,
		TargetType: entity.LikeTarget(m.TargetType),
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		VideoID:   m.VideoID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
