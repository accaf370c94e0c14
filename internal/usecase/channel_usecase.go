package usecase

import (
	"fmt"
	"strings"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
)

type ChannelUseCase interface {
	ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	WatchHistory(viewerID string) ([]entity.VideoWithOwner, error)
}

type channelUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewChannelUseCase(userRepo persistent.UserRepository, logger *logger.Logger) ChannelUseCase {
	return &channelUseCase{userRepo: userRepo, logger: logger}
}

// ChannelProfile composes the channel view for a viewer. Counts come from the
// subscriptions table directly, so the profile is correct even if the cached
// counters have drifted. An absent viewer degrades isSubscribed to false.
func (uc *channelUseCase) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", entity.ErrValidation)
	}
	return uc.userRepo.ChannelProfile(username, viewerID)
}

func (uc *channelUseCase) WatchHistory(viewerID string) ([]entity.VideoWithOwner, error) {
	if viewerID == "" {
		return nil, entity.ErrUnauthenticated
	}
	return uc.userRepo.WatchHistory(viewerID)
}
