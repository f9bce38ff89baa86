package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/foodgram/backend/config"
	"github.com/foodgram/backend/internal/api"
	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/router"
	"github.com/foodgram/backend/internal/server"
	"github.com/foodgram/backend/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Redis backs the logout denylist; the API stays usable without it.
	var redisClient *redis.Client
	if client, err := database.NewRedisClient(cfg); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, token revocation disabled")
	} else {
		redisClient = client
	}

	var s3Config *config.S3Config
	if cfg.S3Bucket != "" {
		s3Config, err = config.NewS3Config(context.Background(), cfg.S3Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure S3")
		}
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, redisClient)
	recipeService := service.NewRecipeService(db, service.RecipeServiceConfig{
		MinIngredients: 1,
		MinTags:        1,
	})
	membershipService := service.NewMembershipService(db)
	followService := service.NewFollowService(db)
	imageService := service.NewImageService(s3Config, cfg.MediaDir)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewUserHandler(authService, followService),
		api.NewCatalogHandler(db),
		api.NewRecipeHandler(recipeService, membershipService, imageService, authService, cfg.PageSize),
	)

	srv := server.NewServer(engine, cfg.ServerHost+":"+cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
