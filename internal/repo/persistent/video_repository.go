package persistent

import (
	"cliptube/internal/entity"
	"cliptube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListVideosParams narrows the paged public listing: free-text filter over
// title/description, optional owner, whitelisted sort field and direction.
type ListVideosParams struct {
	Query    string
	OwnerID  string
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

var listSortColumns = map[string]string{
	"created_at": "v.created_at",
	"views":      "v.views",
	"duration":   "v.duration",
	"title":      "v.title",
}

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
	Exists(id string) (bool, error)

	Detail(id string) (*entity.VideoWithOwner, error)
	IncrementViews(id string) error
	List(params ListVideosParams) ([]entity.VideoWithOwner, error)
	ChannelVideos(ownerID string) ([]entity.ChannelVideo, error)
	ChannelStats(ownerID string) (*entity.ChannelStats, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, normalizeError(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.VideoModel{}).Error
}

func (r *videoRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, normalizeError(err)
}

func (r *videoRepository) Detail(id string) (*entity.VideoWithOwner, error) {
	var row videoOwnerRow
	result := r.db.Raw(`
		SELECT `+videoOwnerColumns+`
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = ?`, id).Scan(&row)
	if result.Error != nil {
		return nil, normalizeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	detail := row.toEntity()
	return &detail, nil
}

// IncrementViews counts every successful detail fetch, including repeats by
// the same viewer. A single relative update keeps concurrent fetches exact.
func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *videoRepository) List(params ListVideosParams) ([]entity.VideoWithOwner, error) {
	query := r.db.Table("videos v").
		Select(videoOwnerColumns).
		Joins("JOIN users u ON u.id = v.owner_id").
		Where("v.is_published = ?", true)

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		query = query.Where("(v.title ILIKE ? OR v.description ILIKE ?)", pattern, pattern)
	}
	if params.OwnerID != "" {
		query = query.Where("v.owner_id = ?", params.OwnerID)
	}

	sortColumn, ok := listSortColumns[params.SortBy]
	if !ok {
		sortColumn = "v.created_at"
	}
	direction := "ASC"
	if params.SortDesc {
		direction = "DESC"
	}

	var rows []videoOwnerRow
	err := query.Order(sortColumn + " " + direction).
		Limit(params.Limit).
		Offset(params.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]entity.VideoWithOwner, len(rows))
	for i := range rows {
		videos[i] = rows[i].toEntity()
	}
	return videos, nil
}

func (r *videoRepository) ChannelVideos(ownerID string) ([]entity.ChannelVideo, error) {
	var rows []struct {
		model.VideoModel
		LikesCount int64
	}
	err := r.db.Raw(`
		SELECT v.*,
			(SELECT COUNT(*) FROM likes l
			 WHERE l.target_type = 'video' AND l.target_id = v.id) AS likes_count
		FROM videos v
		WHERE v.owner_id = ?
		ORDER BY v.created_at DESC`, ownerID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]entity.ChannelVideo, len(rows))
	for i := range rows {
		videos[i] = entity.ChannelVideo{
			Video:      *ToVideoEntity(&rows[i].VideoModel),
			LikesCount: rows[i].LikesCount,
		}
	}
	return videos, nil
}

// ChannelStats aggregates over the owner's videos; likes are counted from the
// likes table keyed on the video reference (ground truth), not a cached field.
// The subscriber total is filled in by the caller from the cached counter.
func (r *videoRepository) ChannelStats(ownerID string) (*entity.ChannelStats, error) {
	var row struct {
		TotalVideos int64
		TotalViews  int64
		TotalLikes  int64
	}
	err := r.db.Raw(`
		SELECT COUNT(v.id) AS total_videos,
			COALESCE(SUM(v.views), 0) AS total_views,
			(SELECT COUNT(*)
			 FROM likes l
			 JOIN videos v2 ON v2.id = l.target_id
			 WHERE l.target_type = 'video' AND v2.owner_id = ?) AS total_likes
		FROM videos v
		WHERE v.owner_id = ?`, ownerID, ownerID).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &entity.ChannelStats{
		TotalVideos: row.TotalVideos,
		TotalViews:  row.TotalViews,
		TotalLikes:  row.TotalLikes,
	}, nil
}
