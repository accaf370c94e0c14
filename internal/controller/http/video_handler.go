package http

import (
	"net/http"
	"strconv"

	"cliptube/internal/repo/persistent"
	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration"`
}

// PublishVideo godoc
// @Summary      Publish a video
// @Description  Upload a video file and thumbnail and publish the video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string true "Video description"
// @Param        duration formData number false "Duration in seconds"
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thumbnail file is required"})
		return
	}

	video, err := h.videoUseCase.PublishVideo(userID, req.Title, req.Description, req.Duration, videoFile, thumbnailFile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Video published", "video": video})
}

// GetVideo godoc
// @Summary      Get video by ID
// @Description  Video detail with owner projection. Fetching counts a view; authenticated viewers get a watch-history entry.
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID := c.Param("id")
	viewerID := c.GetString("user_id")

	video, err := h.videoUseCase.GetVideo(videoID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": video})
}

// ListVideos godoc
// @Summary      List published videos
// @Description  Published videos with optional text search, owner filter and sorting
// @Tags         videos
// @Produce      json
// @Param        query query string false "Search in title and description"
// @Param        user_id query string false "Filter by owner"
// @Param        sort_by query string false "Sort column (created_at, views, duration, title)"
// @Param        sort_type query string false "asc or desc"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	params := persistent.ListVideosParams{
		Query:    c.Query("query"),
		OwnerID:  c.Query("user_id"),
		SortBy:   c.Query("sort_by"),
		SortDesc: c.DefaultQuery("sort_type", "desc") != "asc",
		Limit:    limit,
		Offset:   offset,
	}

	videos, err := h.videoUseCase.ListVideos(params)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "count": len(videos)})
}

type UpdateVideoRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
}

// UpdateVideo godoc
// @Summary      Update video
// @Description  Update title, description or thumbnail. Only the owner can update.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "New title"
// @Param        description formData string false "New description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thumbnailFile, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.UpdateVideo(videoID, userID, req.Title, req.Description, thumbnailFile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video updated", "video": video})
}

// DeleteVideo godoc
// @Summary      Delete video
// @Description  Delete a video. Only the owner can delete.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.videoUseCase.DeleteVideo(videoID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// TogglePublishStatus godoc
// @Summary      Toggle publish status
// @Description  Flip a video between published and hidden. Only the owner can toggle.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/toggle-publish [patch]
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	video, err := h.videoUseCase.TogglePublishStatus(videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Publish status toggled", "video": video})
}
