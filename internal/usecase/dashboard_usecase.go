package usecase

import (
	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
)

type DashboardUseCase interface {
	ChannelStats(ownerID string) (*entity.ChannelStats, error)
	ChannelVideos(ownerID string) ([]entity.ChannelVideo, error)
}

type dashboardUseCase struct {
	videoRepo persistent.VideoRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewDashboardUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// ChannelStats aggregates videos, views and likes from ground truth; the
// subscriber total deliberately reads the cached counter, which is trusted as
// authoritative for display here.
func (uc *dashboardUseCase) ChannelStats(ownerID string) (*entity.ChannelStats, error) {
	stats, err := uc.videoRepo.ChannelStats(ownerID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = owner.SubscribersCount

	return stats, nil
}

func (uc *dashboardUseCase) ChannelVideos(ownerID string) ([]entity.ChannelVideo, error) {
	return uc.videoRepo.ChannelVideos(ownerID)
}
