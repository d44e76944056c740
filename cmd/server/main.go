package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/moodverse/moodverse-backend/internal/catalog"
	"github.com/moodverse/moodverse-backend/internal/config"
	"github.com/moodverse/moodverse-backend/internal/database"
	"github.com/moodverse/moodverse-backend/internal/handlers"
	"github.com/moodverse/moodverse-backend/internal/identity"
	"github.com/moodverse/moodverse-backend/internal/logging"
	"github.com/moodverse/moodverse-backend/internal/middleware"
	"github.com/moodverse/moodverse-backend/internal/routes"
	"github.com/moodverse/moodverse-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.DemoMode {
		slog.Warn("demo mode enabled; credential-less requests map to the demo identity")
	}

	// Mood and achievement catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.LoadFromFile(cfg.CatalogPath)
		if err != nil {
			slog.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("catalog loaded", "moods", cat.Size(), "achievements", len(cat.Achievements()))

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	notificationService := services.NewNotificationService(database.DB)
	crisisDetector := services.NewCrisisDetector(notificationService)
	achievementService := services.NewAchievementService(database.DB, cat, notificationService)
	moodService := services.NewMoodService(database.DB, cat, crisisDetector, achievementService)
	statsService := services.NewStatsService(database.DB, cat)
	customMoodService := services.NewCustomMoodService(database.DB, cat)
	meditationService := services.NewMeditationService(database.DB)
	friendService := services.NewFriendService(database.DB)
	uploadService := services.NewUploadService(cfg)

	// Handlers
	resolver := identity.NewResolver(cfg)
	authHandler := handlers.NewAuthHandler(authService, resolver)
	healthHandler := handlers.NewHealthHandler()
	moodHandler := handlers.NewMoodHandler(moodService, statsService, cat, resolver)
	customMoodHandler := handlers.NewCustomMoodHandler(customMoodService, resolver)
	achievementHandler := handlers.NewAchievementHandler(achievementService, resolver)
	notificationHandler := handlers.NewNotificationHandler(notificationService, resolver)
	meditationHandler := handlers.NewMeditationHandler(meditationService, resolver)
	friendHandler := handlers.NewFriendHandler(friendService, resolver)
	uploadHandler := handlers.NewUploadHandler(uploadService, resolver)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
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
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Stored uploads are served straight off disk.
	app.Static(cfg.UploadBaseURL, cfg.UploadDir)

	// Routes
	routes.Setup(app, cfg,
		authHandler, healthHandler, moodHandler, customMoodHandler,
		achievementHandler, notificationHandler, meditationHandler,
		friendHandler, uploadHandler)

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

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
