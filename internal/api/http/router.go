package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/flight-service/internal/api/http/handlers"
	"github.com/spec-kit/flight-service/internal/auth"
	"github.com/spec-kit/flight-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Airports       *handlers.AirportsHandler
	Flights        *handlers.FlightsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Mutating airport/flight endpoints require
// ADMIN; reads accept ADMIN or USER.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh-token", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)

	airports := api.Group("/airports", cfg.AuthMiddleware.Handle)
	airports.Post("", auth.RequireRole(domain.RoleAdmin), cfg.Airports.Create)
	airports.Get("", auth.RequireRole(domain.RoleAdmin, domain.RoleUser), cfg.Airports.List)
	airports.Get("/:id", auth.RequireRole(domain.RoleAdmin, domain.RoleUser), cfg.Airports.GetByID)
	airports.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Airports.Update)
	airports.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Airports.Delete)

	flights := api.Group("/flights", cfg.AuthMiddleware.Handle)
	flights.Post("", auth.RequireRole(domain.RoleAdmin), cfg.Flights.Create)
	flights.Get("", auth.RequireRole(domain.RoleAdmin, domain.RoleUser), cfg.Flights.List)
	flights.Get("/:id", auth.RequireRole(domain.RoleAdmin, domain.RoleUser), cfg.Flights.GetByID)
	flights.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Flights.Update)
	flights.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Flights.Delete)
}
