package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-monitor/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	SLA    *handlers.SLAHandler
	Rules  *handlers.RulesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	slaGroup := app.Group("/sla")
	slaGroup.Get("/summary", cfg.SLA.Summary)
	slaGroup.Get("/escalations", cfg.SLA.EscalationQueue)
	slaGroup.Get("/tickets/:id", cfg.SLA.TicketDeadline)

	slaGroup.Get("/rules", cfg.Rules.List)
	slaGroup.Post("/rules", cfg.Rules.Create)
	slaGroup.Put("/rules/:id", cfg.Rules.Update)
}
