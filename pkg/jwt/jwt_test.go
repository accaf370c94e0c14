package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("test-access-secret", "test-refresh-secret", 15*time.Minute, 240*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.NotNil(t, service)
	assert.Equal(t, []byte("test-access-secret"), service.accessSecret)
	assert.Equal(t, []byte("test-refresh-secret"), service.refreshSecret)
}

func TestGenerateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateAccessToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateRefreshToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	claims, err := service.ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := newTestService()

	// Tokens signed with the refresh secret must not pass access validation
	refreshToken, err := service.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	service := newTestService()

	accessToken, err := service.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	_, err = service.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-a", "refresh-a", time.Minute, time.Hour)
	service2 := NewService("secret-b", "refresh-b", time.Minute, time.Hour)

	token, err := service1.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	_, err = service2.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("test-access-secret", "test-refresh-secret", -time.Minute, time.Hour)

	token, err := service.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpirySet(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken("user-123", "alice")
	assert.NoError(t, err)

	claims, err := service.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}
