package usecase

import (
	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) SetRefreshToken(id, token string) error {
	args := m.Called(id, token)
	return args.Error(0)
}

func (m *MockUserRepository) SwapRefreshToken(id, presented, next string) error {
	args := m.Called(id, presented, next)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) AdjustSubscriberCounters(channelID, subscriberID string, delta int) error {
	args := m.Called(channelID, subscriberID, delta)
	return args.Error(0)
}

func (m *MockUserRepository) RecountSubscribers(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) AppendWatchHistory(userID, videoID string) error {
	args := m.Called(userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) WatchHistory(userID string) ([]entity.VideoWithOwner, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockLikeRepository is a mock implementation of persistent.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Get(userID string, target entity.LikeTarget, targetID string) (*entity.Like, error) {
	args := m.Called(userID, target, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockLikeRepository) Create(userID string, target entity.LikeTarget, targetID string) error {
	args := m.Called(userID, target, targetID)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(userID string, target entity.LikeTarget, targetID string) error {
	args := m.Called(userID, target, targetID)
	return args.Error(0)
}

func (m *MockLikeRepository) IsLiked(userID string, target entity.LikeTarget, targetID string) (bool, error) {
	args := m.Called(userID, target, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountForTarget(target entity.LikeTarget, targetID string) (int64, error) {
	args := m.Called(target, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) LikedVideos(userID string) ([]entity.VideoWithOwner, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

var _ persistent.LikeRepository = (*MockLikeRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Get(subscriberID, channelID string) (*entity.Subscription, error) {
	args := m.Called(subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(subscriberID, channelID string) error {
	args := m.Called(subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(subscriberID, channelID string) error {
	args := m.Called(subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountForChannel(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) SubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SubscribedChannel), args.Error(1)
}

func (m *MockSubscriptionRepository) ChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChannelSubscriber), args.Error(1)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) Detail(id string) (*entity.VideoWithOwner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) List(params persistent.ListVideosParams) ([]entity.VideoWithOwner, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) ChannelVideos(ownerID string) ([]entity.ChannelVideo, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChannelVideo), args.Error(1)
}

func (m *MockVideoRepository) ChannelStats(ownerID string) (*entity.ChannelStats, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)
