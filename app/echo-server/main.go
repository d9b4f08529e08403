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

	"github.com/ismaelallamtaoui/eco-score/app/echo-server/router"
	"github.com/ismaelallamtaoui/eco-score/business/basket"
	"github.com/ismaelallamtaoui/eco-score/business/partner"
	"github.com/ismaelallamtaoui/eco-score/business/scores"
	"github.com/ismaelallamtaoui/eco-score/business/weights"
	"github.com/ismaelallamtaoui/eco-score/internal/dataset"
	"github.com/ismaelallamtaoui/eco-score/internal/middleware"
	"github.com/ismaelallamtaoui/eco-score/internal/repository/export"
	psqlRepo "github.com/ismaelallamtaoui/eco-score/internal/repository/postgres"
	redisRepo "github.com/ismaelallamtaoui/eco-score/internal/repository/redis"
	"github.com/ismaelallamtaoui/eco-score/internal/rest"
	"github.com/ismaelallamtaoui/eco-score/pkg/config"
	"github.com/ismaelallamtaoui/eco-score/pkg/database"
	redisdb "github.com/ismaelallamtaoui/eco-score/pkg/database/redis"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
	"github.com/ismaelallamtaoui/eco-score/pkg/metrics"

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
	logger.Info("Starting Eco Score API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Reference tables are loaded once, before any scoring call.
	ds, err := dataset.Load(cfg.Dataset.Dir)
	if err != nil {
		logger.Fatal("Failed to load reference dataset", "error", err)
	}

	metrics.Init()

	// Score cache is optional: without redis the engine just recomputes.
	var scoreCache *redisRepo.ScoreCache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, score caching disabled", "error", err)
	} else {
		scoreCache = redisRepo.NewScoreCache(redisClient, time.Duration(cfg.Dataset.ScoreCacheTTL)*time.Second)
		defer redisdb.CloseRedisClient(redisClient)
	}

	exportRepo := export.NewWebhookRepository(export.WebhookConfig{
		WebhookURL:        cfg.Export.WebhookURL,
		BasicAuthUsername: cfg.Export.BasicAuthUsername,
		BasicAuthPassword: cfg.Export.BasicAuthPassword,
	})

	// Init repo
	weightsRepo := psqlRepo.NewWeightsRepository(db)
	basketRepo := psqlRepo.NewBasketRepository(db)

	// Typed nils must not leak into the optional interfaces.
	var resultCache scores.ScoreCache
	var invalidator weights.CacheInvalidator
	if scoreCache != nil {
		resultCache = scoreCache
		invalidator = scoreCache
	}
	var exportDst scores.ExportRepository
	if cfg.Export.WebhookURL != "" {
		exportDst = exportRepo
	}

	// Init service
	weightsSvc := weights.NewWeightsService(weightsRepo, invalidator)
	scoresSvc := scores.NewScoresService(ds, weightsSvc, resultCache, exportDst)
	basketSvc := basket.NewBasketService(basketRepo, ds, scoresSvc)
	partnerSvc := partner.NewPartnerService(cfg.Partner)

	// Init handler
	scoresHandler := rest.NewScoresHandler(scoresSvc)
	basketHandler := rest.NewBasketHandler(basketSvc)
	weightsHandler := rest.NewWeightsHandler(weightsSvc)
	partnerHandler := rest.NewPartnerHandler(partnerSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	partnerRequired := middleware.PartnerAuthMiddleware(cfg.Partner.JWTSecret)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetScoreRoutes(api, scoresHandler, partnerRequired)
	router.SetBasketRoutes(api, basketHandler)
	router.SetWeightsRoutes(api, weightsHandler)
	router.SetPartnerRoutes(api, partnerHandler, partnerRequired)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
