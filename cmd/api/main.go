// Vitals API
//
// REST API that normalizes wearable health data and scores sleep quality,
// training readiness and recovery.
//
//	@title			Vitals API
//	@version		1.0
//	@description	Normalize wearable health data and score sleep, readiness and recovery.
//
//	@BasePath	/v1
//
//	@tag.name			analyze
//	@tag.description	Stateless analysis endpoints
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sync
//	@tag.description	Vendor sync and stored snapshots
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/trainwell/vitals-api/internal/analyzer"
	"github.com/trainwell/vitals-api/internal/api"
	"github.com/trainwell/vitals-api/internal/api/handler"
	"github.com/trainwell/vitals-api/internal/config"
	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/driver"
	"github.com/trainwell/vitals-api/internal/driver/oura"
	"github.com/trainwell/vitals-api/internal/driver/whoop"
	"github.com/trainwell/vitals-api/internal/llm"
	"github.com/trainwell/vitals-api/internal/repository"
	"github.com/trainwell/vitals-api/internal/seed"
	"github.com/trainwell/vitals-api/internal/service"
	"github.com/trainwell/vitals-api/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Tracing (noop when no OTLP endpoint is configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "vitals-api")
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.AnalysisSnapshot{}); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migration completed")

	if cfg.Seed {
		logger.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize vendor drivers; a driver without credentials stays
	// unregistered and its source rejects sync requests.
	var drivers []domain.HealthDriver
	if cfg.OuraAccessToken != "" {
		drivers = append(drivers, oura.NewClient(cfg.OuraBaseURL, cfg.OuraAccessToken, logger))
	}
	if cfg.WhoopRefreshToken != "" {
		drivers = append(drivers, whoop.NewClient(whoop.Config{
			BaseURL:      cfg.WhoopBaseURL,
			ClientID:     cfg.WhoopClientID,
			ClientSecret: cfg.WhoopClientSecret,
			RefreshToken: cfg.WhoopRefreshToken,
		}, logger))
	}
	registry := driver.NewRegistry(drivers...)
	logger.Info("Vendor drivers registered", zap.Any("sources", registry.Sources()))

	// Initialize services
	userService := service.NewUserService(userRepo)
	analysisService := service.NewAnalysisService(
		analyzer.NewSleepAnalyzer(),
		analyzer.NewReadinessAnalyzer(),
		analyzer.NewRecoveryAnalyzer(),
		analyzer.NewTrendAnalyzer(),
	)
	syncService := service.NewSyncService(registry, analysisService, snapshotRepo, userRepo, logger)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		logger.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	var insightsLLM llm.InsightsLLM
	if openaiClient != nil {
		insightsLLM = openaiClient
	}
	insightsService := service.NewInsightsService(analysisService, insightsLLM)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	analyzeHandler := handler.NewAnalyzeHandler(analysisService, insightsService)
	syncHandler := handler.NewSyncHandler(syncService)

	// Setup router
	router := api.NewRouter(logger, userHandler, analyzeHandler, syncHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
