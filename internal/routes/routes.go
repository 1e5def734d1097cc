package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/config"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	analysisHandler *handlers.AnalysisHandler,
	appointmentHandler *handlers.AppointmentHandler,
	catalogHandler *handlers.CatalogHandler,
	recommendationHandler *handlers.RecommendationHandler,
	demoHandler *handlers.DemoHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter, per IP
	api.Use(limiter.New(limiter.Config{
		Max:               cfg.RateLimitPerMin,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Analyzer
	api.Post("/analyze", analysisHandler.Analyze)
	api.Get("/analyses", analysisHandler.List)

	// Appointments
	api.Post("/appointments", appointmentHandler.Create)
	api.Get("/appointments", appointmentHandler.List)

	// Catalog
	api.Get("/products", catalogHandler.Products)
	api.Get("/concerns", catalogHandler.Concerns)
	api.Post("/recommendations", recommendationHandler.Tips)

	// Placeholder discovery
	demo := api.Group("/demo")
	demo.Post("/appointments", demoHandler.Providers)
	demo.Post("/products", demoHandler.Products)

	// Catalog maintenance
	admin := api.Group("/admin", middleware.AdminRequired(cfg))
	admin.Post("/seed", adminHandler.Seed)
	admin.Put("/concerns", adminHandler.UpsertConcern)
	admin.Put("/products", adminHandler.UpsertProduct)
}
