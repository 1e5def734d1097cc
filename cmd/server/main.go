package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/cache"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/config"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/database"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/logging"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/routes"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/seed"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/storage"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.AdminToken == "" && cfg.JWTSecret == "" {
		slog.Warn("neither ADMIN_TOKEN nor JWT_SECRET is set; admin routes will reject every request")
	}

	// Database
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	st := store.New(db)

	// Database log sink (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	logging.WithDB(dbLogHandler)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetention, cleanupDone)

	// Seed reference data
	if cfg.SeedOnStart {
		data, err := seed.Load(cfg.SeedFile)
		if err != nil {
			slog.Error("failed to load seed data", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err = seed.Run(ctx, st, data)
		cancel()
		if err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
	}

	// Catalog cache
	var catalogCache cache.Cache = cache.Noop{}
	if cfg.CacheEnabled() {
		rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			slog.Warn("redis unavailable, catalog cache disabled", "error", err)
		} else {
			defer rc.Close()
			catalogCache = rc
			slog.Info("catalog cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	// Analysis image archive
	var archive storage.ObjectStore
	if cfg.ArchiveEnabled() {
		ms, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			slog.Warn("object storage unavailable, analysis images will not be archived", "error", err)
		} else {
			archive = ms
			slog.Info("analysis image archive enabled", "bucket", cfg.MinioBucket)
		}
	}

	// Services
	analysisService := services.NewAnalysisService(st, archive)
	appointmentService := services.NewAppointmentService(st)
	catalogService := services.NewCatalogService(st, catalogCache)
	recommendationService := services.NewRecommendationService()
	discoveryService := services.NewDiscoveryService()

	// Handlers
	healthHandler := handlers.NewHealthHandler(st)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	demoHandler := handlers.NewDemoHandler(discoveryService)
	adminHandler := handlers.NewAdminHandler(st, catalogService, cfg.SeedFile)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, healthHandler, analysisHandler, appointmentHandler, catalogHandler,
		recommendationHandler, demoHandler, adminHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
