package database

import (
	"fmt"

	"cliptube/internal/model"
	"cliptube/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey so toggle races are detectable.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.VideoModel{},
		&model.LikeModel{},
		&model.SubscriptionModel{},
		&model.CommentModel{},
		&model.TweetModel{},
		&model.PlaylistModel{},
		&model.PlaylistVideoModel{},
		&model.WatchHistoryModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
