package usecase

import (
	"testing"
	"time"

	"cliptube/internal/entity"
	"cliptube/pkg/jwt"
	"cliptube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testJWTService() *jwt.Service {
	return jwt.NewService("test-access-secret", "test-refresh-secret", 15*time.Minute, time.Hour)
}

func TestRegister_MissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	_, err := uc.Register("", "john@example.com", "john", "secret123")

	assert.ErrorIs(t, err, entity.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegister_DuplicateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	existing := &entity.User{ID: "user-1", Username: "john"}
	mockRepo.On("GetByUsernameOrEmail", "john", "john@example.com").Return(existing, nil)

	_, err := uc.Register("John Doe", "john@example.com", "John", "secret123")

	assert.ErrorIs(t, err, entity.ErrAlreadyExists)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegister_LowercasesUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	mockRepo.On("GetByUsernameOrEmail", "john", "john@example.com").Return(nil, entity.ErrNotFound)
	mockRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "john"
	})).Return(nil)

	user, err := uc.Register("John Doe", "john@example.com", "John", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "john", user.Username)
	assert.Empty(t, user.Password)
	mockRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{ID: "user-1", Username: "john", Password: string(hashed)}

	mockRepo.On("GetByUsernameOrEmail", "john", "john").Return(user, nil)
	mockRepo.On("SetRefreshToken", "user-1", mock.AnythingOfType("string")).Return(nil)

	loggedIn, pair, err := uc.Login("john", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Empty(t, loggedIn.Password)
	assert.Empty(t, loggedIn.RefreshToken)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{ID: "user-1", Username: "john", Password: string(hashed)}

	mockRepo.On("GetByUsernameOrEmail", "john", "john").Return(user, nil)

	_, _, err := uc.Login("john", "wrong-password")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	mockRepo.AssertNotCalled(t, "SetRefreshToken")
}

func TestLogin_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	mockRepo.On("GetByUsernameOrEmail", "ghost", "ghost").Return(nil, entity.ErrNotFound)

	_, _, err := uc.Login("ghost", "whatever")

	// Unknown user and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestRefreshSession_RotatesToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := testJWTService()
	uc := NewAuthUseCase(mockRepo, jwtService, nil, logger.New())

	presented, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	user := &entity.User{ID: "user-1", Username: "john", RefreshToken: presented}
	mockRepo.On("GetByID", "user-1").Return(user, nil)
	mockRepo.On("SwapRefreshToken", "user-1", presented, mock.AnythingOfType("string")).Return(nil)

	pair, err := uc.RefreshSession(presented)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	mockRepo.AssertExpectations(t)
}

func TestRefreshSession_ReplayedTokenRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := testJWTService()
	uc := NewAuthUseCase(mockRepo, jwtService, nil, logger.New())

	presented, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	// Stored token has already moved on; the conditional swap misses.
	user := &entity.User{ID: "user-1", Username: "john", RefreshToken: "newer-token"}
	mockRepo.On("GetByID", "user-1").Return(user, nil)
	mockRepo.On("SwapRefreshToken", "user-1", presented, mock.AnythingOfType("string")).
		Return(entity.ErrSessionExpired)

	_, err = uc.RefreshSession(presented)

	assert.ErrorIs(t, err, entity.ErrSessionExpired)
}

func TestRefreshSession_GarbageToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	_, err := uc.RefreshSession("not-a-jwt")

	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestRefreshSession_AccessTokenRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := testJWTService()
	uc := NewAuthUseCase(mockRepo, jwtService, nil, logger.New())

	accessToken, err := jwtService.GenerateAccessToken("user-1", "john")
	assert.NoError(t, err)

	_, err = uc.RefreshSession(accessToken)

	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
	mockRepo.AssertNotCalled(t, "SwapRefreshToken")
}

func TestLogout_ClearsRefreshToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	mockRepo.On("ClearRefreshToken", "user-1").Return(nil)

	err := uc.Logout("user-1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{ID: "user-1", Password: string(hashed)}
	mockRepo.On("GetByID", "user-1").Return(user, nil)

	err := uc.ChangePassword("user-1", "wrong", "new-secret")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	mockRepo.AssertNotCalled(t, "UpdateFields")
}

func TestGetUser_StripsSensitiveFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, testJWTService(), nil, logger.New())

	user := &entity.User{ID: "user-1", Username: "john", Password: "hash", RefreshToken: "token"}
	mockRepo.On("GetByID", "user-1").Return(user, nil)

	got, err := uc.GetUser("user-1")

	assert.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Empty(t, got.RefreshToken)
}
