package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cliptubeHTTP "cliptube/internal/controller/http"
	"cliptube/internal/repo/persistent"
	"cliptube/internal/usecase"
	"cliptube/pkg/cache"
	"cliptube/pkg/config"
	"cliptube/pkg/database"
	"cliptube/pkg/jwt"
	"cliptube/pkg/logger"
	"cliptube/pkg/middleware"
	"cliptube/pkg/queue"
	"cliptube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "cliptube/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)
	subRepo := persistent.NewSubscriptionRepository(a.db)
	playlistRepo := persistent.NewPlaylistRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	tweetRepo := persistent.NewTweetRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.s3Client, a.log)
	channelUseCase := usecase.NewChannelUseCase(userRepo, a.log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, a.s3Client, a.log)
	interactionUseCase := usecase.NewInteractionUseCase(likeRepo, subRepo, userRepo, a.redisClient, a.queueClient, a.log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, a.log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, a.log)
	dashboardUseCase := usecase.NewDashboardUseCase(videoRepo, userRepo, a.log)

	// HTTP handlers
	authHandler := cliptubeHTTP.NewAuthHandler(authUseCase, a.log)
	channelHandler := cliptubeHTTP.NewChannelHandler(channelUseCase, a.log)
	videoHandler := cliptubeHTTP.NewVideoHandler(videoUseCase, a.log)
	interactionHandler := cliptubeHTTP.NewInteractionHandler(interactionUseCase, a.log)
	playlistHandler := cliptubeHTTP.NewPlaylistHandler(playlistUseCase, a.log)
	commentHandler := cliptubeHTTP.NewCommentHandler(commentUseCase, a.log)
	tweetHandler := cliptubeHTTP.NewTweetHandler(tweetUseCase, a.log)
	dashboardHandler := cliptubeHTTP.NewDashboardHandler(dashboardUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.RefreshToken)

		// Public reads resolve the viewer when a token is presented so that
		// viewer-relative fields can be composed.
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(a.jwtService))
		{
			public.GET("/channels/:username", channelHandler.GetChannelProfile)
			public.GET("/videos", videoHandler.ListVideos)
			public.GET("/videos/:id", videoHandler.GetVideo)
			public.GET("/comments/video/:video_id", commentHandler.GetVideoComments)
			public.GET("/tweets/user/:user_id", tweetHandler.GetUserTweets)
			public.GET("/playlists/:id", playlistHandler.GetPlaylist)
			public.GET("/playlists/user/:user_id", playlistHandler.GetUserPlaylists)
			public.GET("/subscriptions/user/:subscriber_id", interactionHandler.GetSubscribedChannels)
			public.GET("/subscriptions/channel/:channel_id", interactionHandler.GetChannelSubscribers)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		if a.redisClient != nil {
			protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
		}
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)
			protected.GET("/auth/me", authHandler.CurrentUser)
			protected.PATCH("/auth/account", authHandler.UpdateAccount)
			protected.PATCH("/auth/avatar", authHandler.UploadAvatar)
			protected.PATCH("/auth/cover-image", authHandler.UploadCoverImage)

			protected.GET("/users/history", channelHandler.GetWatchHistory)

			protected.POST("/videos", videoHandler.PublishVideo)
			protected.PATCH("/videos/:id", videoHandler.UpdateVideo)
			protected.DELETE("/videos/:id", videoHandler.DeleteVideo)
			protected.PATCH("/videos/:id/toggle-publish", videoHandler.TogglePublishStatus)

			protected.POST("/likes/video/:id", interactionHandler.ToggleVideoLike)
			protected.POST("/likes/comment/:id", interactionHandler.ToggleCommentLike)
			protected.POST("/likes/tweet/:id", interactionHandler.ToggleTweetLike)
			protected.GET("/likes/videos", interactionHandler.GetLikedVideos)

			protected.POST("/subscriptions/:channel_id", interactionHandler.ToggleSubscription)
			protected.POST("/subscriptions/channel/:channel_id/recount", interactionHandler.RecountSubscribers)

			protected.POST("/playlists", playlistHandler.CreatePlaylist)
			protected.PATCH("/playlists/:id", playlistHandler.UpdatePlaylist)
			protected.DELETE("/playlists/:id", playlistHandler.DeletePlaylist)
			protected.POST("/playlists/:id/videos/:video_id", playlistHandler.AddVideoToPlaylist)
			protected.DELETE("/playlists/:id/videos/:video_id", playlistHandler.RemoveVideoFromPlaylist)

			protected.POST("/comments/video/:video_id", commentHandler.AddComment)
			protected.PATCH("/comments/:id", commentHandler.UpdateComment)
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			protected.POST("/tweets", tweetHandler.CreateTweet)
			protected.PATCH("/tweets/:id", tweetHandler.UpdateTweet)
			protected.DELETE("/tweets/:id", tweetHandler.DeleteTweet)

			protected.GET("/dashboard/stats", dashboardHandler.GetChannelStats)
			protected.GET("/dashboard/videos", dashboardHandler.GetChannelVideos)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Cliptube API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Cliptube API exited")
	return nil
}
