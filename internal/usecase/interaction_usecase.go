package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
	"cliptube/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type InteractionUseCase interface {
	ToggleLike(userID string, target entity.LikeTarget, targetID string) (bool, error)
	GetLikeCount(target entity.LikeTarget, targetID string) (int64, error)
	IsLiked(userID string, target entity.LikeTarget, targetID string) (bool, error)
	LikedVideos(userID string) ([]entity.VideoWithOwner, error)

	ToggleSubscription(userID, channelID string) (bool, error)
	SubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error)
	ChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error)
	RecountSubscribers(channelID string) (int64, error)
}

type interactionUseCase struct {
	likeRepo    persistent.LikeRepository
	subRepo     persistent.SubscriptionRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewInteractionUseCase(
	likeRepo persistent.LikeRepository,
	subRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		likeRepo:    likeRepo,
		subRepo:     subRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func likeCountKey(target entity.LikeTarget, targetID string) string {
	return fmt.Sprintf("%s:likes:%s", target, targetID)
}

// parseCachedCount validates a cached counter value. Anything that is not a
// non-negative integer means the key was clobbered and must be recomputed.
func parseCachedCount(raw string) (int64, bool) {
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

// ToggleLike flips the like edge for (user, target). The likes table is the
// only source of truth for liked status; redis holds a display count that is
// free to lag.
func (uc *interactionUseCase) ToggleLike(userID string, target entity.LikeTarget, targetID string) (bool, error) {
	if !target.Valid() {
		return false, fmt.Errorf("%w: unknown like target %q", entity.ErrValidation, target)
	}
	if targetID == "" {
		return false, fmt.Errorf("%w: target id is required", entity.ErrValidation)
	}

	ctx := context.Background()
	liked, err := uc.likeRepo.IsLiked(userID, target, targetID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return false, fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if err := uc.likeRepo.Delete(userID, target, targetID); err != nil {
			uc.logger.Error("Failed to delete like: %v", err)
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
		if uc.redisClient != nil {
			uc.redisClient.Decr(ctx, likeCountKey(target, targetID))
		}
		return false, nil
	}

	if err := uc.likeRepo.Create(userID, target, targetID); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			// Lost the race against a concurrent toggle that created the
			// edge; report the converged state instead of failing.
			return true, nil
		}
		uc.logger.Error("Failed to create like: %v", err)
		return false, fmt.Errorf("failed to create like: %w", err)
	}
	if uc.redisClient != nil {
		uc.redisClient.Incr(ctx, likeCountKey(target, targetID))
	}

	uc.publishNotification(map[string]interface{}{
		"type":      "like",
		"liker_id":  userID,
		"target":    string(target),
		"target_id": targetID,
		"priority":  3,
	})

	return true, nil
}

// GetLikeCount serves the display count from redis when a cached value is
// present and well-formed, otherwise recomputes it from the likes table and
// refreshes the cache. A corrupted cached value is treated as a miss, not as
// zero likes.
func (uc *interactionUseCase) GetLikeCount(target entity.LikeTarget, targetID string) (int64, error) {
	ctx := context.Background()

	if uc.redisClient != nil {
		if countStr, err := uc.redisClient.Get(ctx, likeCountKey(target, targetID)).Result(); err == nil {
			if count, ok := parseCachedCount(countStr); ok {
				return count, nil
			}
			uc.logger.Warn("Discarding unparsable cached like count %q for %s:%s", countStr, target, targetID)
		}
	}

	count, err := uc.likeRepo.CountForTarget(target, targetID)
	if err != nil {
		return 0, err
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, likeCountKey(target, targetID), count, 0)
	}
	return count, nil
}

func (uc *interactionUseCase) IsLiked(userID string, target entity.LikeTarget, targetID string) (bool, error) {
	return uc.likeRepo.IsLiked(userID, target, targetID)
}

func (uc *interactionUseCase) LikedVideos(userID string) ([]entity.VideoWithOwner, error) {
	return uc.likeRepo.LikedVideos(userID)
}

// ToggleSubscription flips the subscription edge and keeps the two cached
// counters in step. The relationship row is written first and is
// authoritative; a failed counter update lags the cache but never flips the
// reported outcome.
func (uc *interactionUseCase) ToggleSubscription(userID, channelID string) (bool, error) {
	if channelID == "" {
		return false, fmt.Errorf("%w: channel id is required", entity.ErrValidation)
	}
	if userID == channelID {
		return false, entity.ErrSelfSubscription
	}

	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return false, err
	}

	subscribed, err := uc.subRepo.IsSubscribed(userID, channelID)
	if err != nil {
		uc.logger.Error("Failed to check subscription status: %v", err)
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	if subscribed {
		if err := uc.subRepo.Delete(userID, channelID); err != nil {
			uc.logger.Error("Failed to delete subscription: %v", err)
			return false, fmt.Errorf("failed to unsubscribe: %w", err)
		}
		if err := uc.userRepo.AdjustSubscriberCounters(channelID, userID, -1); err != nil {
			uc.logger.Error("Failed to decrement subscription counters: %v", err)
		}
		return false, nil
	}

	if err := uc.subRepo.Create(userID, channelID); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			// Concurrent toggle won the insert; the edge exists, so the
			// converged state is subscribed.
			return true, nil
		}
		uc.logger.Error("Failed to create subscription: %v", err)
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}
	if err := uc.userRepo.AdjustSubscriberCounters(channelID, userID, 1); err != nil {
		uc.logger.Error("Failed to increment subscription counters: %v", err)
	}

	uc.publishNotification(map[string]interface{}{
		"type":          "subscription",
		"user_id":       channelID,
		"subscriber_id": userID,
		"priority":      4,
	})

	return true, nil
}

func (uc *interactionUseCase) SubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error) {
	return uc.subRepo.SubscribedChannels(subscriberID)
}

func (uc *interactionUseCase) ChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error) {
	return uc.subRepo.ChannelSubscribers(channelID)
}

// RecountSubscribers recomputes the cached counter from the subscriptions
// table. Reconciliation hook for drift checks.
func (uc *interactionUseCase) RecountSubscribers(channelID string) (int64, error) {
	return uc.userRepo.RecountSubscribers(channelID)
}

func (uc *interactionUseCase) publishNotification(task map[string]interface{}) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish notification task: %v", err)
		}
	}()
}
