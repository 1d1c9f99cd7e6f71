package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"

	pkgvalidator "github.com/johnquangdev/meeting-planner/pkg/validator"

	"github.com/johnquangdev/meeting-planner/internal/adapter/handler"
	"github.com/johnquangdev/meeting-planner/internal/adapter/repository"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/external/recordapi"
	"github.com/johnquangdev/meeting-planner/internal/usecase/planner"
	"github.com/johnquangdev/meeting-planner/internal/usecase/record"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	validator := pkgvalidator.New()
	e.Validator = validator

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	logger.Info("🔧 Initializing dependencies...")

	// Initialize Database
	logger.Info("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Production deployments run cmd/migrate instead.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			logger.Fatal("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run cmd/migrate.")
		}
		n, err := database.Migrate(db, cfg.Database.MigrationsDir, migrate.Up, 0)
		if err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		logger.Info("🔄 Migrations applied", zap.Int("count", n))
	}

	// Meeting list cache
	store, err := newCacheStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.Error(err))
	}
	defer store.Close()
	listCache := cache.NewMeetingListCache(store, cfg.Cache.MeetingsTTL)

	// Server of record
	logger.Info("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	recordService := record.NewRecordService(meetingRepo, participantRepo, listCache, validator, logger)
	recordHandler := handler.NewRecordHandler(recordService, logger)

	// Planner workspace, talking to the server of record over HTTP
	logger.Info("🗓️  Initializing planner workspace...", zap.String("record_api", cfg.RecordAPI.URL))
	client := recordapi.NewClient(&cfg.RecordAPI, logger)
	meetingStore := planner.NewStore(client, logger)
	workspace := planner.NewWorkspace(meetingStore, client, logger,
		planner.WithBannerTTL(cfg.Planner.BannerTTL),
	)
	defer workspace.Shutdown()
	plannerHandler := handler.NewPlannerHandler(workspace, cfg.Planner.SlotInterval, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, plannerHandler, recordHandler)
	router.Setup(e)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// The record API may be served by this very process, so the first load
	// runs once the listener is up; the client retries until it answers.
	ctx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	if cfg.Planner.RefreshOnStart {
		go func() {
			if err := meetingStore.Refresh(ctx); err != nil {
				logger.Warn("Initial load of participants and meetings failed", zap.Error(err))
				return
			}
			logger.Info("✅ Planner store loaded",
				zap.Int("participants", len(meetingStore.Participants())),
				zap.Int("meetings", len(meetingStore.Meetings())),
			)
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")
	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newCacheStore(cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	switch cfg.Cache.Driver {
	case "redis":
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewRedisStore(client, "planner:"), nil
	default:
		return cache.NewMemoryStore(time.Minute), nil
	}
}
