package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/http/handlers"
	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Properties     *handlers.PropertiesHandler
	Agents         *handlers.AgentsHandler
	Contact        *handlers.ContactHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
	LoginLimiter   *LoginRateLimiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.LoginLimiter.Handle, cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Protect, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Protect, cfg.Auth.Me)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Protect, cfg.Auth.ChangePassword)

	properties := api.Group("/properties")
	properties.Get("/", cfg.Properties.List)
	properties.Get("/featured", cfg.Properties.Featured)
	properties.Get("/:id", cfg.Properties.Get)
	properties.Post("/", cfg.AuthMiddleware.Protect, auth.Authorize(domain.RoleAgent, domain.RoleAdmin), cfg.Properties.Create)
	properties.Put("/:id", cfg.AuthMiddleware.Protect, auth.Authorize(domain.RoleAgent, domain.RoleAdmin), cfg.Properties.Update)
	properties.Delete("/:id", cfg.AuthMiddleware.Protect, auth.Authorize(domain.RoleAgent, domain.RoleAdmin), cfg.Properties.Delete)

	agents := api.Group("/agents")
	agents.Get("/", cfg.Agents.List)
	agents.Get("/:id", cfg.Agents.Get)

	contact := api.Group("/contact")
	contact.Post("/", cfg.Contact.Create)
	contact.Get("/", cfg.AuthMiddleware.Protect, auth.Authorize(domain.RoleAdmin), cfg.Contact.List)
	contact.Patch("/:id", cfg.AuthMiddleware.Protect, auth.Authorize(domain.RoleAdmin), cfg.Contact.UpdateStatus)

	admin := api.Group("/admin", cfg.AuthMiddleware.Protect, auth.Authorize(domain.RoleAdmin))
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/properties", cfg.Admin.Properties)
	admin.Put("/agents/:id", cfg.Admin.UpdateAgentProfile)
}
