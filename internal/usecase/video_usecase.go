package usecase

import (
	"fmt"
	"mime/multipart"
	"strings"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
	"cliptube/pkg/s3"

	"github.com/google/uuid"
)

type VideoUseCase interface {
	PublishVideo(ownerID, title, description string, duration float64, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	GetVideo(videoID, viewerID string) (*entity.VideoWithOwner, error)
	ListVideos(params persistent.ListVideosParams) ([]entity.VideoWithOwner, error)
	UpdateVideo(videoID, userID string, title, description *string, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	DeleteVideo(videoID, userID string) error
	TogglePublishStatus(videoID, userID string) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	userRepo  persistent.UserRepository
	s3Client  *s3.Client
	logger    *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

func (uc *videoUseCase) PublishVideo(ownerID, title, description string, duration float64, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", entity.ErrValidation)
	}
	if videoFile == nil {
		return nil, fmt.Errorf("%w: video file is required", entity.ErrValidation)
	}
	if thumbnailFile == nil {
		return nil, fmt.Errorf("%w: thumbnail file is required", entity.ErrValidation)
	}

	videoURL, err := uc.uploadFile(ownerID, videoFile, "videos", "video/mp4")
	if err != nil {
		return nil, err
	}
	thumbnailURL, err := uc.uploadFile(ownerID, thumbnailFile, "thumbnails", "image/jpeg")
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		OwnerID:      ownerID,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Title:        title,
		Description:  description,
		Duration:     duration,
		IsPublished:  true,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, fmt.Errorf("failed to publish video")
	}

	return video, nil
}

// GetVideo returns the composed detail view and, on success, counts the fetch:
// views always increment (owner and repeat views included) and authenticated
// viewers get a watch-history entry.
func (uc *videoUseCase) GetVideo(videoID, viewerID string) (*entity.VideoWithOwner, error) {
	detail, err := uc.videoRepo.Detail(videoID)
	if err != nil {
		return nil, err
	}

	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		uc.logger.Error("Failed to increment views for video %s: %v", videoID, err)
	} else {
		detail.Views++
	}

	if viewerID != "" {
		if err := uc.userRepo.AppendWatchHistory(viewerID, videoID); err != nil {
			uc.logger.Error("Failed to append watch history: %v", err)
		}
	}

	return detail, nil
}

func (uc *videoUseCase) ListVideos(params persistent.ListVideosParams) ([]entity.VideoWithOwner, error) {
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 10
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return uc.videoRepo.List(params)
}

func (uc *videoUseCase) UpdateVideo(videoID, userID string, title, description *string, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, entity.ErrForbidden
	}

	if title == nil && description == nil && thumbnailFile == nil {
		return nil, fmt.Errorf("%w: at least one field is required to update", entity.ErrValidation)
	}

	if title != nil && strings.TrimSpace(*title) != "" {
		video.Title = *title
	}
	if description != nil && strings.TrimSpace(*description) != "" {
		video.Description = *description
	}
	if thumbnailFile != nil {
		thumbnailURL, err := uc.uploadFile(userID, thumbnailFile, "thumbnails", "image/jpeg")
		if err != nil {
			return nil, err
		}
		video.ThumbnailURL = thumbnailURL
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video: %v", err)
		return nil, fmt.Errorf("failed to update video")
	}

	return video, nil
}

func (uc *videoUseCase) DeleteVideo(videoID, userID string) error {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return err
	}
	if video.OwnerID != userID {
		return entity.ErrForbidden
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		uc.logger.Error("Failed to delete video: %v", err)
		return fmt.Errorf("failed to delete video")
	}
	return nil
}

func (uc *videoUseCase) TogglePublishStatus(videoID, userID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, entity.ErrForbidden
	}

	video.IsPublished = !video.IsPublished
	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to toggle publish status: %v", err)
		return nil, fmt.Errorf("failed to toggle publish status")
	}
	return video, nil
}

func (uc *videoUseCase) uploadFile(ownerID string, file *multipart.FileHeader, prefix, defaultContentType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	fileKey := fmt.Sprintf("%s/%s/%s%s", prefix, ownerID, uuid.New().String(), fileExtension(file.Filename))
	url, err := uc.s3Client.UploadFile(fileKey, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload file: %v", err)
		return "", fmt.Errorf("failed to upload file")
	}
	return url, nil
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[idx:]
	}
	return ""
}
