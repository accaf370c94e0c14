package http

import (
	"net/http"

	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlaylistRequest true "Playlist data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.CreatePlaylist(userID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Playlist created", "playlist": playlist})
}

// GetPlaylist godoc
// @Summary      Get playlist by ID
// @Description  Playlist header with member videos in playlist order
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUseCase.GetPlaylist(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlist": playlist})
}

// UpdatePlaylist godoc
// @Summary      Update playlist
// @Description  Update name and description. Only the owner can update.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body PlaylistRequest true "Playlist data"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.UpdatePlaylist(c.Param("id"), userID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Playlist updated", "playlist": playlist})
}

// DeletePlaylist godoc
// @Summary      Delete playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.playlistUseCase.DeletePlaylist(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted"})
}

// AddVideoToPlaylist godoc
// @Summary      Add a video to a playlist
// @Description  Appends the video at the end. Adding a video that is already a member is a no-op.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/videos/{video_id} [post]
func (h *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	playlist, err := h.playlistUseCase.AddVideo(c.Param("id"), c.Param("video_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video added to playlist", "playlist": playlist})
}

// RemoveVideoFromPlaylist godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/videos/{video_id} [delete]
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	playlist, err := h.playlistUseCase.RemoveVideo(c.Param("id"), c.Param("video_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video removed from playlist", "playlist": playlist})
}

// GetUserPlaylists godoc
// @Summary      Get a user's playlists
// @Description  Playlist summaries with video count, total duration and first-video thumbnail
// @Tags         playlists
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /playlists/user/{user_id} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	playlists, err := h.playlistUseCase.UserPlaylists(c.Param("user_id"))
	if err != nil {
		h.logger.Error("Failed to fetch user playlists: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists, "count": len(playlists)})
}
