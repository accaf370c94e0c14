package usecase

import (
	"errors"
	"fmt"
	"strings"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"
)

type PlaylistUseCase interface {
	CreatePlaylist(ownerID, name, description string) (*entity.Playlist, error)
	GetPlaylist(playlistID string) (*entity.PlaylistDetail, error)
	UpdatePlaylist(playlistID, userID, name, description string) (*entity.Playlist, error)
	DeletePlaylist(playlistID, userID string) error
	AddVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error)
	RemoveVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error)
	UserPlaylists(userID string) ([]entity.PlaylistSummary, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) CreatePlaylist(ownerID, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name is required", entity.ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: playlist description is required", entity.ErrValidation)
	}

	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, fmt.Errorf("failed to create playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) GetPlaylist(playlistID string) (*entity.PlaylistDetail, error) {
	return uc.playlistRepo.Detail(playlistID)
}

func (uc *playlistUseCase) UpdatePlaylist(playlistID, userID, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: name and description are required", entity.ErrValidation)
	}

	playlist, err := uc.ownedPlaylist(playlistID, userID)
	if err != nil {
		return nil, err
	}

	playlist.Name = name
	playlist.Description = description
	if err := uc.playlistRepo.Update(playlist); err != nil {
		uc.logger.Error("Failed to update playlist: %v", err)
		return nil, fmt.Errorf("failed to update playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) DeletePlaylist(playlistID, userID string) error {
	if _, err := uc.ownedPlaylist(playlistID, userID); err != nil {
		return err
	}

	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		uc.logger.Error("Failed to delete playlist: %v", err)
		return fmt.Errorf("failed to delete playlist")
	}
	return nil
}

func (uc *playlistUseCase) AddVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error) {
	if _, err := uc.ownedPlaylist(playlistID, userID); err != nil {
		return nil, err
	}

	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, err
	}

	if err := uc.playlistRepo.AddVideo(playlistID, videoID); err != nil && !errors.Is(err, entity.ErrAlreadyExists) {
		uc.logger.Error("Failed to add video to playlist: %v", err)
		return nil, fmt.Errorf("failed to add video to playlist")
	}

	return uc.playlistRepo.Detail(playlistID)
}

func (uc *playlistUseCase) RemoveVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error) {
	if _, err := uc.ownedPlaylist(playlistID, userID); err != nil {
		return nil, err
	}

	if err := uc.playlistRepo.RemoveVideo(playlistID, videoID); err != nil {
		uc.logger.Error("Failed to remove video from playlist: %v", err)
		return nil, fmt.Errorf("failed to remove video from playlist")
	}

	return uc.playlistRepo.Detail(playlistID)
}

func (uc *playlistUseCase) UserPlaylists(userID string) ([]entity.PlaylistSummary, error) {
	return uc.playlistRepo.Summaries(userID)
}

func (uc *playlistUseCase) ownedPlaylist(playlistID, userID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, entity.ErrForbidden
	}
	return playlist, nil
}
