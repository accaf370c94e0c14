package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cliptube/internal/entity"
	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistUseCase is a mock implementation of PlaylistUseCase
type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) CreatePlaylist(ownerID, name, description string) (*entity.Playlist, error) {
	args := m.Called(ownerID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) GetPlaylist(playlistID string) (*entity.PlaylistDetail, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistUseCase) UpdatePlaylist(playlistID, userID, name, description string) (*entity.Playlist, error) {
	args := m.Called(playlistID, userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) DeletePlaylist(playlistID, userID string) error {
	args := m.Called(playlistID, userID)
	return args.Error(0)
}

func (m *MockPlaylistUseCase) AddVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error) {
	args := m.Called(playlistID, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error) {
	args := m.Called(playlistID, videoID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistUseCase) UserPlaylists(userID string) ([]entity.PlaylistSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PlaylistSummary), args.Error(1)
}

var _ usecase.PlaylistUseCase = (*MockPlaylistUseCase)(nil)

func TestCreatePlaylist_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/playlists", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.CreatePlaylist(c)
	})

	playlist := &entity.Playlist{ID: "playlist-1", OwnerID: "user-1", Name: "Favorites"}
	mockUseCase.On("CreatePlaylist", "user-1", "Favorites", "My favorite videos").Return(playlist, nil)

	body := `{"name":"Favorites","description":"My favorite videos"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePlaylist_Forbidden(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PATCH("/playlists/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder")
		handler.UpdatePlaylist(c)
	})

	mockUseCase.On("UpdatePlaylist", "playlist-1", "intruder", "Hijacked", "Nope").
		Return(nil, entity.ErrForbidden)

	body := `{"name":"Hijacked","description":"Nope"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/playlists/playlist-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddVideoToPlaylist_Success(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/playlists/:id/videos/:video_id", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		handler.AddVideoToPlaylist(c)
	})

	detail := &entity.PlaylistDetail{
		Playlist: entity.Playlist{ID: "playlist-1", OwnerID: "user-1"},
		Videos:   []entity.VideoWithOwner{{Video: entity.Video{ID: "video-1"}}},
	}
	mockUseCase.On("AddVideo", "playlist-1", "video-1", "user-1").Return(detail, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/playlists/playlist-1/videos/video-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetUserPlaylists_Summaries(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	handler := NewPlaylistHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/playlists/user/:user_id", handler.GetUserPlaylists)

	summaries := []entity.PlaylistSummary{
		{ID: "playlist-1", Name: "Favorites", TotalVideos: 3, TotalViews: 150},
		{ID: "playlist-2", Name: "Later", TotalVideos: 0, TotalViews: 0},
	}
	mockUseCase.On("UserPlaylists", "user-1").Return(summaries, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/playlists/user/user-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	playlists := response["playlists"].([]interface{})
	assert.Equal(t, 2, len(playlists))
	first := playlists[0].(map[string]interface{})
	assert.Equal(t, float64(3), first["total_videos"])
	mockUseCase.AssertExpectations(t)
}
