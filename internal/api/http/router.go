package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Tickets   *handlers.TicketsHandler
	Metrics   http.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics))
	}

	app.Get("/", cfg.Dashboard.Show)
	tickets := app.Group("/tickets")
	tickets.Post("/new", cfg.Dashboard.OpenNewTicket)
	tickets.Post("/new/cancel", cfg.Dashboard.CancelNewTicket)
	tickets.Post("/new/submit", cfg.Dashboard.SubmitNewTicket)
	tickets.Post("/selected/close", cfg.Dashboard.CloseDetail)
	tickets.Post("/:id/select", cfg.Dashboard.SelectTicket)

	api := app.Group("/api/v1")
	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Get("/stats", cfg.Tickets.Stats)
}
