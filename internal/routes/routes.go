// Package routes defines HTTP routes for the auth service.
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yasirmarwat09/wp-assign/internal/config"
	"github.com/yasirmarwat09/wp-assign/internal/handlers"
	"github.com/yasirmarwat09/wp-assign/internal/middleware"
	"github.com/yasirmarwat09/wp-assign/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, authHandler *handlers.AuthHandler, healthHandler *handlers.HealthHandler, jwtService service.JWTService, cfg *config.Config) {
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Root greeting
	router.GET("/", handlers.Root)
	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	api := router.Group("/api")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/signin", authHandler.Signin)
		api.GET("/protected", middleware.RequireAuth(jwtService), authHandler.Protected)
	}
}
