package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/session"
	"github.com/spec-kit/helpdesk/internal/view"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	tickets     *service.TicketService
	sessions    *session.Store
	renderer    *view.Renderer
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, tickets *service.TicketService, sessions *session.Store, renderer *view.Renderer) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tickets: tickets, sessions: sessions, renderer: renderer}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness by counting tickets and parsing the templates.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if count, err := h.tickets.Count(ctx); err != nil {
		depStatus["tickets"] = err.Error()
		ready = false
	} else {
		depStatus["tickets"] = count
	}

	depStatus["sessions"] = h.sessions.Len()

	if parsed, err := h.renderer.Validate(); err != nil {
		depStatus["templates"] = err.Error()
		ready = false
	} else {
		depStatus["templates"] = parsed
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
