package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/moodverse/moodverse-backend/internal/config"
	"github.com/moodverse/moodverse-backend/internal/handlers"
	"github.com/moodverse/moodverse-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	moodHandler *handlers.MoodHandler,
	customMoodHandler *handlers.CustomMoodHandler,
	achievementHandler *handlers.AchievementHandler,
	notificationHandler *handlers.NotificationHandler,
	meditationHandler *handlers.MeditationHandler,
	friendHandler *handlers.FriendHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Static mood palette; public so onboarding screens can render it.
	api.Get("/moods/catalog", moodHandler.Catalog)
	api.Get("/meditations/techniques", meditationHandler.Techniques)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a JWT (or demo mode).
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Delete("/auth/account", authHandler.DeleteAccount)

	protected.Post("/moods", moodHandler.Create)
	protected.Get("/moods", moodHandler.List)
	protected.Get("/moods/stats", moodHandler.Stats)
	protected.Get("/moods/insights", moodHandler.Insights)
	protected.Get("/moods/report/weekly", moodHandler.WeeklyReport)
	protected.Get("/moods/export", moodHandler.Export)
	protected.Get("/moods/:id", moodHandler.Get)
	protected.Put("/moods/:id", moodHandler.Update)
	protected.Delete("/moods/:id", moodHandler.Delete)

	protected.Post("/custom-moods", customMoodHandler.Create)
	protected.Get("/custom-moods", customMoodHandler.List)
	protected.Delete("/custom-moods/:id", customMoodHandler.Delete)

	protected.Get("/achievements", achievementHandler.List)

	protected.Get("/notifications", notificationHandler.List)
	protected.Put("/notifications/:id/read", notificationHandler.MarkRead)

	protected.Post("/meditations", meditationHandler.Create)
	protected.Get("/meditations", meditationHandler.List)

	protected.Post("/friends", friendHandler.Request)
	protected.Get("/friends", friendHandler.List)
	protected.Put("/friends/:id/accept", friendHandler.Accept)
	protected.Delete("/friends/:id", friendHandler.Remove)

	protected.Post("/uploads", uploadHandler.Upload)
}
