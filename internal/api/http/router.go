package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ironhall/gym-service/internal/api/http/handlers"
	"github.com/ironhall/gym-service/internal/auth"
	"github.com/ironhall/gym-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Members        *handlers.MemberHandler
	Stock          *handlers.StockHandler
	Employees      *handlers.EmployeeHandler
	Equipment      *handlers.EquipmentHandler
	Reports        *handlers.ReportHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    *RateLimiter
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	throttled := []fiber.Handler{}
	if cfg.RateLimiter != nil {
		throttled = append(throttled, cfg.RateLimiter.Limit)
	}

	authGroup := api.Group("/auth")
	authGroup.Post("/login", append(throttled, cfg.Auth.Login)...)
	authGroup.Get("/qr-token", cfg.Auth.QRToken)
	authGroup.Post("/qr-login", append(throttled, cfg.Auth.QRLogin)...)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle)

	admin.Get("/members", cfg.Members.List)
	admin.Post("/members", cfg.Members.Create)
	admin.Delete("/members/:id", cfg.Members.Delete)

	admin.Get("/dashboard", cfg.Reports.Dashboard)
	admin.Get("/analytics/logins", cfg.Reports.Logins)

	admin.Get("/stock", cfg.Stock.List)
	admin.Post("/stock", cfg.Stock.Create)
	admin.Put("/stock/:id", cfg.Stock.Update)
	admin.Delete("/stock/:id", cfg.Stock.Delete)

	admin.Get("/employees", cfg.Employees.List)
	admin.Post("/employees", cfg.Employees.Create)
	admin.Put("/employees/:id/toggle", cfg.Employees.Toggle)

	admin.Get("/equipment", cfg.Equipment.List)
	admin.Post("/equipment", cfg.Equipment.Create)
	admin.Put("/equipment/:id", cfg.Equipment.Update)
	admin.Put("/equipment/:id/maintenance", cfg.Equipment.RecordMaintenance)
	admin.Delete("/equipment/:id", cfg.Equipment.Delete)
}
