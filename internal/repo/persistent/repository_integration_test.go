package persistent

import (
	"os"
	"testing"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and runs the
// migrations. Tests that need real Postgres semantics (uuid casts, ILIKE,
// unique indexes) are skipped when no test database is configured.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.VideoModel{},
		&model.LikeModel{},
		&model.SubscriptionModel{},
		&model.CommentModel{},
		&model.TweetModel{},
		&model.PlaylistModel{},
		&model.PlaylistVideoModel{},
		&model.WatchHistoryModel{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.UserModel {
	t.Helper()
	user := &model.UserModel{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		FullName: "Test " + username,
	}
	require.NoError(t, db.Create(user).Error)
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = ?", user.ID) })
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID, title string, published bool) *model.VideoModel {
	t.Helper()
	video := &model.VideoModel{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		VideoURL:     "https://cdn.example.com/" + title + ".mp4",
		ThumbnailURL: "https://cdn.example.com/" + title + ".jpg",
		Title:        title,
		IsPublished:  published,
	}
	require.NoError(t, db.Create(video).Error)
	t.Cleanup(func() { db.Exec("DELETE FROM videos WHERE id = ?", video.ID) })
	return video
}

func TestUserRepository_ChannelProfile_AnonymousViewer(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "anonprofile-"+uuid.New().String()[:8])
	repo := NewUserRepository(db)

	profile, err := repo.ChannelProfile(owner.Username, "")

	require.NoError(t, err)
	assert.Equal(t, owner.ID, profile.ID)
	assert.False(t, profile.IsSubscribed)
}

func TestUserRepository_ChannelProfile_SubscribedViewer(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "subprofile-"+uuid.New().String()[:8])
	viewer := createTestUser(t, db, "viewer-"+uuid.New().String()[:8])
	require.NoError(t, db.Create(&model.SubscriptionModel{
		ID:           uuid.New().String(),
		SubscriberID: viewer.ID,
		ChannelID:    owner.ID,
	}).Error)
	t.Cleanup(func() { db.Exec("DELETE FROM subscriptions WHERE subscriber_id = ?", viewer.ID) })
	repo := NewUserRepository(db)

	profile, err := repo.ChannelProfile(owner.Username, viewer.ID)

	require.NoError(t, err)
	assert.True(t, profile.IsSubscribed)
}

func TestCommentRepository_ListForVideo_AnonymousViewer(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "commenter-"+uuid.New().String()[:8])
	video := createTestVideo(t, db, owner.ID, "commented", true)
	require.NoError(t, db.Create(&model.CommentModel{
		ID:      uuid.New().String(),
		OwnerID: owner.ID,
		VideoID: video.ID,
		Content: "first",
	}).Error)
	t.Cleanup(func() { db.Exec("DELETE FROM comments WHERE video_id = ?", video.ID) })
	repo := NewCommentRepository(db)

	comments, err := repo.ListForVideo(video.ID, "", 10, 0)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.False(t, comments[0].IsLiked)
}

func TestVideoRepository_GetByID_MalformedIdentifier(t *testing.T) {
	db := openTestDB(t)
	repo := NewVideoRepository(db)

	_, err := repo.GetByID("not-a-uuid")

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestUserRepository_GetByID_MalformedIdentifier(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID("42")

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestLikeRepository_LikedVideos_OrphanedLikeDropped(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "uploader-"+uuid.New().String()[:8])
	liker := createTestUser(t, db, "liker-"+uuid.New().String()[:8])
	kept := createTestVideo(t, db, owner.ID, "kept", true)
	doomed := createTestVideo(t, db, owner.ID, "doomed", true)

	likeRepo := NewLikeRepository(db)
	require.NoError(t, likeRepo.Create(liker.ID, entity.LikeTargetVideo, kept.ID))
	require.NoError(t, likeRepo.Create(liker.ID, entity.LikeTargetVideo, doomed.ID))
	t.Cleanup(func() { db.Exec("DELETE FROM likes WHERE liked_by = ?", liker.ID) })

	// The video goes away but its like row stays behind.
	require.NoError(t, db.Exec("DELETE FROM videos WHERE id = ?", doomed.ID).Error)

	videos, err := likeRepo.LikedVideos(liker.ID)

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, kept.ID, videos[0].Video.ID)
}

func TestVideoRepository_List_UnpublishedExcluded(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "lister-"+uuid.New().String()[:8])
	published := createTestVideo(t, db, owner.ID, "published", true)
	createTestVideo(t, db, owner.ID, "draft", false)
	repo := NewVideoRepository(db)

	videos, err := repo.List(ListVideosParams{OwnerID: owner.ID, Limit: 10})

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, published.ID, videos[0].Video.ID)
}

func TestLikeRepository_Create_DuplicateEdge(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "dupowner-"+uuid.New().String()[:8])
	liker := createTestUser(t, db, "dupliker-"+uuid.New().String()[:8])
	video := createTestVideo(t, db, owner.ID, "dup", true)
	repo := NewLikeRepository(db)

	require.NoError(t, repo.Create(liker.ID, entity.LikeTargetVideo, video.ID))
	t.Cleanup(func() { db.Exec("DELETE FROM likes WHERE liked_by = ?", liker.ID) })

	err := repo.Create(liker.ID, entity.LikeTargetVideo, video.ID)

	assert.ErrorIs(t, err, entity.ErrAlreadyExists)
}
