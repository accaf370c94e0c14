package usecase

import (
	"fmt"
	"strings"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
)

type TweetUseCase interface {
	CreateTweet(userID, content string) (*entity.Tweet, error)
	UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error)
	DeleteTweet(tweetID, userID string) error
	UserTweets(userID string) ([]entity.TweetView, error)
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewTweetUseCase(
	tweetRepo persistent.TweetRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *tweetUseCase) CreateTweet(userID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: tweet content is required", entity.ErrValidation)
	}

	tweet := &entity.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := uc.tweetRepo.Create(tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, fmt.Errorf("failed to create tweet")
	}
	return tweet, nil
}

func (uc *tweetUseCase) UpdateTweet(tweetID, userID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: tweet content is required", entity.ErrValidation)
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, entity.ErrForbidden
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		uc.logger.Error("Failed to update tweet: %v", err)
		return nil, fmt.Errorf("failed to update tweet")
	}
	return tweet, nil
}

func (uc *tweetUseCase) DeleteTweet(tweetID, userID string) error {
	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return err
	}
	if tweet.OwnerID != userID {
		return entity.ErrForbidden
	}

	if err := uc.tweetRepo.Delete(tweetID); err != nil {
		uc.logger.Error("Failed to delete tweet: %v", err)
		return fmt.Errorf("failed to delete tweet")
	}
	return nil
}

func (uc *tweetUseCase) UserTweets(userID string) ([]entity.TweetView, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	return uc.tweetRepo.ListForUser(userID)
}
