package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/session"
	"github.com/spec-kit/helpdesk/internal/view"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// DashboardHandler serves the HTML dashboard and its form actions.
type DashboardHandler struct {
	tickets  *service.TicketService
	sessions *session.Store
	renderer *view.Renderer
	catalog  view.Catalog
	now      func() time.Time
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(tickets *service.TicketService, sessions *session.Store, renderer *view.Renderer, catalog view.Catalog) *DashboardHandler {
	return &DashboardHandler{
		tickets:  tickets,
		sessions: sessions,
		renderer: renderer,
		catalog:  catalog,
		now:      time.Now,
	}
}

// Show GET /. Query parameters that are present update the filter state first.
// Parsed values alias the request buffer, so they are copied before the
// session keeps them.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()
	var query dto.TicketListQuery
	if err := c.QueryParser(&query); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	query.Search = utils.CopyString(query.Search)
	query.Status = utils.CopyString(query.Status)
	query.Priority = utils.CopyString(query.Priority)
	var status domain.StatusFilter
	if args.Has("status") {
		parsed, err := domain.ParseStatusFilter(query.Status)
		if err != nil {
			return err
		}
		status = parsed
	}
	var priority domain.PriorityFilter
	if args.Has("priority") {
		parsed, err := domain.ParsePriorityFilter(query.Priority)
		if err != nil {
			return err
		}
		priority = parsed
	}

	ctx := c.UserContext()
	var page view.DashboardPage
	err := h.withSession(c, func(controller *dashboard.Controller) error {
		if args.Has("q") {
			controller.SetSearchTerm(ctx, query.Search)
		}
		if args.Has("status") {
			controller.SetStatusFilter(ctx, status)
		}
		if args.Has("priority") {
			controller.SetPriorityFilter(ctx, priority)
		}
		state := controller.State()
		data, err := h.tickets.Dashboard(ctx, state.Filter())
		if err != nil {
			return err
		}
		page = view.BuildDashboardPage(h.catalog, state, data, h.now())
		return nil
	})
	if err != nil {
		return err
	}

	body, err := h.renderer.RenderDashboard(page)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Type("html", "utf-8")
	return c.Send(body)
}

// OpenNewTicket POST /tickets/new.
func (h *DashboardHandler) OpenNewTicket(c *fiber.Ctx) error {
	return h.act(c, func(ctx context.Context, controller *dashboard.Controller) error {
		controller.OpenNewTicket(ctx)
		return nil
	})
}

// CancelNewTicket POST /tickets/new/cancel.
func (h *DashboardHandler) CancelNewTicket(c *fiber.Ctx) error {
	return h.act(c, func(ctx context.Context, controller *dashboard.Controller) error {
		controller.CancelNewTicket(ctx)
		return nil
	})
}

// SubmitNewTicket POST /tickets/new/submit. The store is left unchanged.
func (h *DashboardHandler) SubmitNewTicket(c *fiber.Ctx) error {
	var form dto.NewTicketForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid form", nil)
	}
	draft := dashboard.NewTicketDraft{
		Title:       utils.CopyString(form.Title),
		Description: utils.CopyString(form.Description),
		Priority:    domain.TicketPriority(utils.CopyString(form.Priority)),
		Category:    utils.CopyString(form.Category),
	}
	return h.act(c, func(ctx context.Context, controller *dashboard.Controller) error {
		controller.SubmitNewTicket(ctx, draft)
		return nil
	})
}

// SelectTicket POST /tickets/:id/select.
func (h *DashboardHandler) SelectTicket(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.tickets.Ticket(c.UserContext(), id)
	if err != nil {
		return err
	}
	return h.act(c, func(ctx context.Context, controller *dashboard.Controller) error {
		controller.SelectTicket(ctx, *ticket)
		return nil
	})
}

// CloseDetail POST /tickets/selected/close.
func (h *DashboardHandler) CloseDetail(c *fiber.Ctx) error {
	return h.act(c, func(ctx context.Context, controller *dashboard.Controller) error {
		controller.CloseDetail(ctx)
		return nil
	})
}

func (h *DashboardHandler) act(c *fiber.Ctx, fn func(context.Context, *dashboard.Controller) error) error {
	ctx := c.UserContext()
	if err := h.withSession(c, func(controller *dashboard.Controller) error {
		return fn(ctx, controller)
	}); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *DashboardHandler) withSession(c *fiber.Ctx, fn func(*dashboard.Controller) error) error {
	id, err := h.sessions.Do(c.Cookies(observability.SessionCookie), fn)
	if id != "" {
		c.Cookie(&fiber.Cookie{
			Name:     observability.SessionCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return err
}

func ticketID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("ticket id must be numeric", map[string]any{"id": raw})
	}
	return id, nil
}
