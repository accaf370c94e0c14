package http

import (
	"net/http"

	"cliptube/internal/entity"
	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

func (h *InteractionHandler) toggleLike(c *gin.Context, target entity.LikeTarget) {
	userID := c.GetString("user_id")
	targetID := c.Param("id")

	liked, err := h.interactionUseCase.ToggleLike(userID, target, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Unliked"
	if liked {
		message = "Liked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}

// ToggleVideoLike godoc
// @Summary      Toggle like on a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /likes/video/{id} [post]
func (h *InteractionHandler) ToggleVideoLike(c *gin.Context) {
	h.toggleLike(c, entity.LikeTargetVideo)
}

// ToggleCommentLike godoc
// @Summary      Toggle like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /likes/comment/{id} [post]
func (h *InteractionHandler) ToggleCommentLike(c *gin.Context) {
	h.toggleLike(c, entity.LikeTargetComment)
}

// ToggleTweetLike godoc
// @Summary      Toggle like on a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /likes/tweet/{id} [post]
func (h *InteractionHandler) ToggleTweetLike(c *gin.Context) {
	h.toggleLike(c, entity.LikeTargetTweet)
}

// GetLikedVideos godoc
// @Summary      Get liked videos
// @Description  Videos the current user has liked, most recently liked first
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /likes/videos [get]
func (h *InteractionHandler) GetLikedVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.interactionUseCase.LikedVideos(userID)
	if err != nil {
		h.logger.Error("Failed to fetch liked videos: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

// ToggleSubscription godoc
// @Summary      Toggle subscription to a channel
// @Description  Subscribe or unsubscribe the current user. Self-subscription is rejected.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subscriptions/{channel_id} [post]
func (h *InteractionHandler) ToggleSubscription(c *gin.Context) {
	userID := c.GetString("user_id")
	channelID := c.Param("channel_id")

	subscribed, err := h.interactionUseCase.ToggleSubscription(userID, channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Unsubscribed"
	if subscribed {
		message = "Subscribed"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "subscribed": subscribed})
}

// GetSubscribedChannels godoc
// @Summary      Get channels a user subscribes to
// @Tags         subscriptions
// @Produce      json
// @Param        subscriber_id path string true "Subscriber ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /subscriptions/user/{subscriber_id} [get]
func (h *InteractionHandler) GetSubscribedChannels(c *gin.Context) {
	subscriberID := c.Param("subscriber_id")

	channels, err := h.interactionUseCase.SubscribedChannels(subscriberID)
	if err != nil {
		h.logger.Error("Failed to fetch subscribed channels: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"channels": channels, "count": len(channels)})
}

// GetChannelSubscribers godoc
// @Summary      Get subscribers of a channel
// @Tags         subscriptions
// @Produce      json
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /subscriptions/channel/{channel_id} [get]
func (h *InteractionHandler) GetChannelSubscribers(c *gin.Context) {
	channelID := c.Param("channel_id")

	subscribers, err := h.interactionUseCase.ChannelSubscribers(channelID)
	if err != nil {
		h.logger.Error("Failed to fetch channel subscribers: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers, "count": len(subscribers)})
}

// RecountSubscribers godoc
// @Summary      Reconcile cached subscriber count
// @Description  Recompute the cached subscriber counter from the subscriptions table
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /subscriptions/channel/{channel_id}/recount [post]
func (h *InteractionHandler) RecountSubscribers(c *gin.Context) {
	channelID := c.Param("channel_id")

	count, err := h.interactionUseCase.RecountSubscribers(channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber count reconciled", "subscribers_count": count})
}
