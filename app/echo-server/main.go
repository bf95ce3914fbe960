package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gulhajiPlaza/app/echo-server/router"
	"gulhajiPlaza/business/catalog"
	"gulhajiPlaza/business/recommend"
	psqlRepo "gulhajiPlaza/internal/repository/postgres"
	redisRepo "gulhajiPlaza/internal/repository/redis"
	"gulhajiPlaza/internal/rest"
	"gulhajiPlaza/pkg/config"
	"gulhajiPlaza/pkg/database"
	redisdb "gulhajiPlaza/pkg/database/redis"
	"gulhajiPlaza/pkg/logger"
	"gulhajiPlaza/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Gulhaji Plaza Laptop API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Redis is optional: without it the service only loses the result cache.
	var resultCache recommend.ResultCache
	if redisClient, err := redisdb.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, serving without result cache", "error", err)
	} else {
		resultCache = redisRepo.NewRecommendationCache(redisClient, cfg.Redis.CacheTTL)
		logger.Info("Redis connected successfully")
	}

	// Init repo
	laptopRepo := psqlRepo.NewLaptopRepository(db)
	offerRepo := psqlRepo.NewOfferRepository(db)
	logRepo := psqlRepo.NewRecommendationLogRepository(db)

	// Init service
	recoCfg := recommend.DefaultConfig()
	recoCfg.SnapshotMaxAge = cfg.Recommender.SnapshotMaxAge
	recoCfg.RequestTimeout = cfg.Recommender.RequestTimeout

	recommendService := recommend.NewRecommendService(laptopRepo, offerRepo, logRepo, resultCache, recoCfg)
	catalogService := catalog.NewCatalogService(laptopRepo, offerRepo, recommendService)

	// Background snapshot refresher
	refreshCtx, stopRefresher := context.WithCancel(context.Background())
	defer stopRefresher()
	recommendService.StartRefresher(refreshCtx, cfg.Recommender.SnapshotRefreshInterval)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)
	laptopHandler := rest.NewLaptopHandler(catalogService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendHandler)
	router.SetupLaptopRoutes(api, laptopHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopRefresher()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
