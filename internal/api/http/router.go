package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/unimeet/unimeet-api/internal/api/http/handlers"
	"github.com/unimeet/unimeet-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Events         *handlers.EventsHandler
	Clubs          *handlers.ClubsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Event and club reads are public; event
// mutations require a bearer token (role enforcement lives in the service).
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/login", cfg.Auth.Login)

	api.Get("/clubs", cfg.Clubs.List)

	events := api.Group("/events")
	events.Get("/", cfg.Events.List)
	events.Get("/:id", cfg.Events.Get)

	protected := events.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/", cfg.Events.Create)
	protected.Put("/:id", cfg.Events.Update)
	protected.Delete("/:id", cfg.Events.Cancel)
}
