// backend-go/cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshserve/backend-go/internal/api"
	"github.com/freshserve/backend-go/internal/cache"
	"github.com/freshserve/backend-go/internal/config"
	"github.com/freshserve/backend-go/internal/repository/postgres"
	"github.com/freshserve/backend-go/internal/service"
	"github.com/freshserve/backend-go/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize repositories
	inventoryRepo := postgres.NewInventoryRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	activityRepo := postgres.NewActivityRepository(db)

	// Initialize menu cache (falls back to a no-op when Redis is disabled
	// or unreachable)
	menuCache, err := cache.NewMenuCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Menu cache unavailable, continuing without caching")
		menuCache = cache.NewNoopMenuCache()
	}

	// Initialize services
	services := &api.Services{
		Inventory: service.NewInventoryService(inventoryRepo, menuCache, service.RiskThresholds{
			ExpiryDays:   cfg.Kitchen.RiskExpiryDays,
			ReorderLevel: cfg.Kitchen.RiskReorderLevel,
		}),
		Recipes:  service.NewRecipeService(recipeRepo, menuCache),
		Orders:   service.NewOrderService(inventoryRepo, recipeRepo, orderRepo, menuCache),
		Menu:     service.NewMenuService(inventoryRepo, recipeRepo, menuCache),
		Forecast: service.NewForecastService(activityRepo, cfg.Kitchen.ForecastMinHistory),
		Activity: service.NewActivityService(activityRepo),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
