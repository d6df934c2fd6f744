package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// TicketsHandler serves the read-only JSON API.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /api/v1/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter, err := parseTicketQuery(c)
	if err != nil {
		return err
	}
	data, err := h.service.Dashboard(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(data.Tickets))
	for i := range data.Tickets {
		items = append(items, ticketResponse(&data.Tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items, "stats": statsResponse(data.Stats)})
}

// GetTicket GET /api/v1/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.Ticket(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Stats GET /api/v1/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	stats, byStatus, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatsDetailResponse{
		StatsResponse: statsResponse(stats),
		ByStatus:      byStatus,
	}})
}

func parseTicketQuery(c *fiber.Ctx) (service.TicketFilter, error) {
	var query dto.TicketListQuery
	if err := c.QueryParser(&query); err != nil {
		return service.TicketFilter{}, apperrors.NewValidationError("invalid query", nil)
	}
	status, err := domain.ParseStatusFilter(query.Status)
	if err != nil {
		return service.TicketFilter{}, err
	}
	priority, err := domain.ParsePriorityFilter(query.Priority)
	if err != nil {
		return service.TicketFilter{}, err
	}
	return service.TicketFilter{SearchTerm: query.Search, Status: status, Priority: priority}, nil
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		Assignee:    ticket.Assignee,
		Requester:   ticket.Requester,
		Category:    ticket.Category,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		Comments:    ticket.Comments,
	}
}

func statsResponse(stats service.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
	}
}
