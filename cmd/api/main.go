// Package main is the entry point for the auth service.
package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yasirmarwat09/wp-assign/internal/config"
	"github.com/yasirmarwat09/wp-assign/internal/handlers"
	"github.com/yasirmarwat09/wp-assign/internal/logger"
	"github.com/yasirmarwat09/wp-assign/internal/middleware"
	"github.com/yasirmarwat09/wp-assign/internal/repository"
	"github.com/yasirmarwat09/wp-assign/internal/routes"
	"github.com/yasirmarwat09/wp-assign/internal/service"
	"github.com/yasirmarwat09/wp-assign/pkg/mongodb"
)

func main() {
	log := logger.NewLogger("server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	gin.SetMode(cfg.GinMode)

	// Initialize database
	client, err := mongodb.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Err(err).Msg("failed to disconnect from database")
		}
	}()

	// Initialize repository
	userRepo := repository.NewUserRepository(client.Database(cfg.MongoDatabase))
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to create database indexes")
	}

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if jwtService == nil {
		log.Fatal().Msg("SECRET_KEY must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	// Setup routes
	routes.Setup(router, authHandler, healthHandler, jwtService, cfg)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("starting auth service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
