package http

import (
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

// MockChannelUseCase is a mock implementation of ChannelUseCase
type MockChannelUseCase struct {
	mock.Mock
}

func (m *MockChannelUseCase) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockChannelUseCase) WatchHistory(viewerID string) ([]entity.VideoWithOwner, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

var _ usecase.ChannelUseCase = (*MockChannelUseCase)(nil)

func TestGetChannelProfile_AuthenticatedViewer(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/channels/:username", func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
		handler.GetChannelProfile(c)
	})

	profile := &entity.ChannelProfile{
		ID:               "channel-1",
		Username:         "john",
		SubscribersCount: 10,
		IsSubscribed:     true,
	}
	mockUseCase.On("ChannelProfile", "john", "viewer-1").Return(profile, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels/john", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	channel := response["channel"].(map[string]interface{})
	assert.Equal(t, true, channel["is_subscribed"])
	assert.Equal(t, float64(10), channel["subscribers_count"])
	mockUseCase.AssertExpectations(t)
}

func TestGetChannelProfile_Anonymous(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/channels/:username", handler.GetChannelProfile)

	profile := &entity.ChannelProfile{ID: "channel-1", Username: "john", IsSubscribed: false}
	mockUseCase.On("ChannelProfile", "john", "").Return(profile, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels/john", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	channel := response["channel"].(map[string]interface{})
	assert.Equal(t, false, channel["is_subscribed"])
	mockUseCase.AssertExpectations(t)
}

func TestGetChannelProfile_NotFound(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/channels/:username", handler.GetChannelProfile)

	mockUseCase.On("ChannelProfile", "ghost", "").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetWatchHistory_Success(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/history", func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
		handler.GetWatchHistory(c)
	})

	videos := []entity.VideoWithOwner{
		{Video: entity.Video{ID: "video-2", Title: "Watched last"}},
		{Video: entity.Video{ID: "video-1", Title: "Watched first"}},
	}
	mockUseCase.On("WatchHistory", "viewer-1").Return(videos, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/history", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])
	mockUseCase.AssertExpectations(t)
}

func TestGetWatchHistory_Unauthenticated(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/users/history", handler.GetWatchHistory)

	mockUseCase.On("WatchHistory", "").Return(nil, entity.ErrUnauthenticated)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/history", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}
