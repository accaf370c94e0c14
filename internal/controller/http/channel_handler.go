package http

import (
	"net/http"

	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelUseCase usecase.ChannelUseCase
	logger         *logger.Logger
}

func NewChannelHandler(channelUseCase usecase.ChannelUseCase, logger *logger.Logger) *ChannelHandler {
	return &ChannelHandler{
		channelUseCase: channelUseCase,
		logger:         logger,
	}
}

// GetChannelProfile godoc
// @Summary      Get channel profile
// @Description  Channel profile by username with subscriber counts. isSubscribed reflects the caller when authenticated, false otherwise.
// @Tags         channels
// @Produce      json
// @Param        username path string true "Channel username"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /channels/{username} [get]
func (h *ChannelHandler) GetChannelProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")

	profile, err := h.channelUseCase.ChannelProfile(username, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"channel": profile})
}

// GetWatchHistory godoc
// @Summary      Get watch history
// @Description  Videos the current user has watched, most recent first
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /users/history [get]
func (h *ChannelHandler) GetWatchHistory(c *gin.Context) {
	viewerID := c.GetString("user_id")

	videos, err := h.channelUseCase.WatchHistory(viewerID)
	if err != nil {
		h.logger.Error("Failed to fetch watch history: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}
