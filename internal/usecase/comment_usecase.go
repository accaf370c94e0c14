package usecase

import (
	"fmt"
	"strings"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
)

type CommentUseCase interface {
	AddComment(userID, videoID, content string) (*entity.Comment, error)
	UpdateComment(commentID, userID, content string) (*entity.Comment, error)
	DeleteComment(commentID, userID string) error
	VideoComments(videoID, viewerID string, limit, offset int) ([]entity.CommentView, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(userID, videoID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content is required", entity.ErrValidation)
	}

	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		OwnerID: userID,
		VideoID: videoID,
		Content: content,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to add comment")
	}
	return comment, nil
}

func (uc *commentUseCase) UpdateComment(commentID, userID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content is required", entity.ErrValidation)
	}

	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != userID {
		return nil, entity.ErrForbidden
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, fmt.Errorf("failed to update comment")
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment.OwnerID != userID {
		return entity.ErrForbidden
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return fmt.Errorf("failed to delete comment")
	}
	return nil
}

func (uc *commentUseCase) VideoComments(videoID, viewerID string, limit, offset int) ([]entity.CommentView, error) {
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return uc.commentRepo.ListForVideo(videoID, viewerID, limit, offset)
}
