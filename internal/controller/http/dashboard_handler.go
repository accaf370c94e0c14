package http

import (
	"net/http"

	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetChannelStats godoc
// @Summary      Get channel stats
// @Description  Aggregate totals for the current user's channel (videos, views, likes, subscribers)
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := h.dashboardUseCase.ChannelStats(userID)
	if err != nil {
		h.logger.Error("Failed to fetch channel stats: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetChannelVideos godoc
// @Summary      Get channel videos
// @Description  All of the current user's videos, published or not, with per-video like counts
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.dashboardUseCase.ChannelVideos(userID)
	if err != nil {
		h.logger.Error("Failed to fetch channel videos: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}
