package usecase

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/jwt"
	"cliptube/pkg/logger"
	"cliptube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
)

// TokenPair is what a successful login or refresh hands back: a short-lived
// access token and the refresh token that supersedes all prior ones.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUseCase interface {
	Register(fullName, email, username, password string) (*entity.User, error)
	Login(usernameOrEmail, password string) (*entity.User, *TokenPair, error)
	Logout(userID string) error
	RefreshSession(presentedRefreshToken string) (*TokenPair, error)
	ChangePassword(userID, oldPassword, newPassword string) error
	GetUser(userID string) (*entity.User, error)
	UpdateAccount(userID, fullName, email string) (*entity.User, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
	UploadCoverImage(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(fullName, email, username, password string) (*entity.User, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" ||
		strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: all fields are required", entity.ErrValidation)
	}

	username = strings.ToLower(strings.TrimSpace(username))

	if _, err := uc.userRepo.GetByUsernameOrEmail(username, email); err == nil {
		return nil, fmt.Errorf("%w: user with this email or username already exists", entity.ErrAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		FullName: fullName,
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: user with this email or username already exists", entity.ErrAlreadyExists)
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(usernameOrEmail, password string) (*entity.User, *TokenPair, error) {
	if strings.TrimSpace(usernameOrEmail) == "" {
		return nil, nil, fmt.Errorf("%w: username or email is required", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetByUsernameOrEmail(strings.ToLower(usernameOrEmail), usernameOrEmail)
	if err != nil {
		return nil, nil, entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, entity.ErrInvalidCredentials
	}

	pair, err := uc.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, pair, nil
}

// issueTokens generates a fresh pair and persists the refresh token on the
// user record, superseding whatever was stored before. Only the most recently
// issued refresh token is ever valid for a user.
func (uc *authUseCase) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	if err := uc.userRepo.SetRefreshToken(user.ID, refreshToken); err != nil {
		uc.logger.Error("Failed to persist refresh token: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (uc *authUseCase) Logout(userID string) error {
	return uc.userRepo.ClearRefreshToken(userID)
}

// RefreshSession rotates the presented refresh token for a new pair. The swap
// is a conditional update against the stored value, so of two racing calls
// with the same token only the first succeeds; the second sees a mismatch and
// fails as an expired-or-used session.
func (uc *authUseCase) RefreshSession(presentedRefreshToken string) (*TokenPair, error) {
	if presentedRefreshToken == "" {
		return nil, entity.ErrUnauthenticated
	}

	claims, err := uc.jwtService.ValidateRefreshToken(presentedRefreshToken)
	if err != nil {
		return nil, entity.ErrUnauthenticated
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, entity.ErrSessionExpired
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return nil, fmt.Errorf("failed to generate tokens")
	}

	if err := uc.userRepo.SwapRefreshToken(user.ID, presentedRefreshToken, refreshToken); err != nil {
		if errors.Is(err, entity.ErrSessionExpired) {
			return nil, entity.ErrSessionExpired
		}
		uc.logger.Error("Failed to rotate refresh token: %v", err)
		return nil, fmt.Errorf("failed to rotate session")
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (uc *authUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("%w: new password is required", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return entity.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to change password")
	}

	return uc.userRepo.UpdateFields(userID, map[string]interface{}{
		"password": string(hashedPassword),
	})
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *authUseCase) UpdateAccount(userID, fullName, email string) (*entity.User, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: full name and email are required", entity.ErrValidation)
	}

	if err := uc.userRepo.UpdateFields(userID, map[string]interface{}{
		"full_name": fullName,
		"email":     email,
	}); err != nil {
		uc.logger.Error("Failed to update account: %v", err)
		return nil, fmt.Errorf("failed to update account")
	}

	return uc.GetUser(userID)
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	return uc.uploadImage(userID, fileReader, fileKey, contentType, "avatar_url")
}

func (uc *authUseCase) UploadCoverImage(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	return uc.uploadImage(userID, fileReader, fileKey, contentType, "cover_image_url")
}

func (uc *authUseCase) uploadImage(userID string, fileReader io.Reader, fileKey, contentType, field string) (*entity.User, error) {
	imageURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload image: %v", err)
		return nil, fmt.Errorf("failed to upload image")
	}

	if err := uc.userRepo.UpdateFields(userID, map[string]interface{}{field: imageURL}); err != nil {
		uc.logger.Error("Failed to update user image: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	return uc.GetUser(userID)
}
