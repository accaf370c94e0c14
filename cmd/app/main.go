package main

import (
	"cliptube/internal/app"
	"cliptube/pkg/config"

	"github.com/gin-gonic/gin"

	_ "cliptube/docs" // Swagger docs
)

// @title           Cliptube API
// @version         1.0
// @description     Video platform backend: channels, videos, likes, subscriptions, playlists, comments and tweets

// @contact.name   API Support

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		panic("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set in environment variables")
	}

	gin.SetMode(gin.ReleaseMode)

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
