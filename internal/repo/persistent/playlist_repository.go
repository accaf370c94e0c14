package persistent

import (
	"time"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error

	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) error

	Detail(id string) (*entity.PlaylistDetail, error)
	Summaries(ownerID string) ([]entity.PlaylistSummary, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := &model.PlaylistModel{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Model(&model.PlaylistModel{}).Where("id = ?", playlist.ID).
		Updates(map[string]interface{}{
			"name":        playlist.Name,
			"description": playlist.Description,
		}).Error
}

func (r *playlistRepository) Delete(id string) error {
	if err := r.db.Where("playlist_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&model.PlaylistModel{}).Error
}

// AddVideo appends a member at the next position. Membership is set-like: a
// duplicate insert hits the unique pair index and is reported as already
// present rather than creating a second row.
func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	var maxPosition int
	if err := r.db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), -1)").Scan(&maxPosition).Error; err != nil {
		return err
	}

	member := &model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   maxPosition + 1,
	}
	return normalizeError(r.db.Create(member).Error)
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) error {
	return r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error
}

func (r *playlistRepository) Detail(id string) (*entity.PlaylistDetail, error) {
	var headerRow struct {
		ID             string
		OwnerID        string
		Name           string
		Description    string
		CreatedAt      time.Time
		UpdatedAt      time.Time
		OwnerUsername  string
		OwnerFullName  string
		OwnerAvatarURL string
	}
	result := r.db.Raw(`
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
			u.username AS owner_username, u.full_name AS owner_full_name,
			u.avatar_url AS owner_avatar_url
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = ?`, id).Scan(&headerRow)
	if result.Error != nil {
		return nil, normalizeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	var videoRows []videoOwnerRow
	err := r.db.Raw(`
		SELECT `+videoOwnerColumns+`
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE pv.playlist_id = ?
		ORDER BY pv.position ASC`, id).Scan(&videoRows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]entity.VideoWithOwner, len(videoRows))
	for i := range videoRows {
		videos[i] = videoRows[i].toEntity()
	}

	return &entity.PlaylistDetail{
		Playlist: entity.Playlist{
			ID:          headerRow.ID,
			OwnerID:     headerRow.OwnerID,
			Name:        headerRow.Name,
			Description: headerRow.Description,
			CreatedAt:   headerRow.CreatedAt,
			UpdatedAt:   headerRow.UpdatedAt,
		},
		Owner: entity.OwnerInfo{
			ID:        headerRow.OwnerID,
			Username:  headerRow.OwnerUsername,
			FullName:  headerRow.OwnerFullName,
			AvatarURL: headerRow.OwnerAvatarURL,
		},
		Videos: videos,
	}, nil
}

// Summaries needs only thumbnails and view counts of member videos, never the
// full video objects.
func (r *playlistRepository) Summaries(ownerID string) ([]entity.PlaylistSummary, error) {
	var rows []struct {
		ID          string
		Name        string
		Description string
		TotalVideos int64
		TotalViews  int64
		CoverImage  string
		UpdatedAt   time.Time
	}
	err := r.db.Raw(`
		SELECT p.id, p.name, p.description, p.updated_at,
			COUNT(pv.id) AS total_videos,
			COALESCE(SUM(v.views), 0) AS total_views,
			COALESCE((
				SELECT v2.thumbnail_url
				FROM playlist_videos pv2
				JOIN videos v2 ON v2.id = pv2.video_id
				WHERE pv2.playlist_id = p.id
				ORDER BY pv2.position ASC
				LIMIT 1
			), '') AS cover_image
		FROM playlists p
		LEFT JOIN playlist_videos pv ON pv.playlist_id = p.id
		LEFT JOIN videos v ON v.id = pv.video_id
		WHERE p.owner_id = ?
		GROUP BY p.id, p.name, p.description, p.updated_at
		ORDER BY p.updated_at DESC`, ownerID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.PlaylistSummary, len(rows))
	for i, row := range rows {
		summaries[i] = entity.PlaylistSummary{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			TotalVideos: row.TotalVideos,
			TotalViews:  row.TotalViews,
			CoverImage:  row.CoverImage,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return summaries, nil
}
