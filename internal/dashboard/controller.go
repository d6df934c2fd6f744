// Package dashboard holds the per-viewer presentation state: the three
// filter inputs, the create ticket modal and the ticket detail modal.
//
// The two modals are independent. Create and submit only toggle
// visibility; nothing here writes to the ticket store.
package dashboard

import (
	"context"
	"strings"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/seed"
	"github.com/spec-kit/helpdesk/internal/service"
)

// State is a copy of the controller's fields.
type State struct {
	SearchTerm     string
	StatusFilter   domain.StatusFilter
	PriorityFilter domain.PriorityFilter
	NewTicketOpen  bool
	Selected       *domain.Ticket
}

// Filter returns the filter inputs in the engine's form.
func (s State) Filter() service.TicketFilter {
	return service.TicketFilter{
		SearchTerm: s.SearchTerm,
		Status:     s.StatusFilter,
		Priority:   s.PriorityFilter,
	}
}

// NewTicketDraft is the create form payload.
type NewTicketDraft struct {
	Title       string
	Description string
	Priority    domain.TicketPriority
	Category    string
}

// Normalize applies the form defaults: lowest priority and first category.
func (d NewTicketDraft) Normalize() NewTicketDraft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if !d.Priority.Valid() {
		d.Priority = domain.TicketPriorityLow
	}
	if d.Category == "" {
		d.Category = seed.Categories[0]
	}
	return d
}

// Controller owns one viewer's dashboard state. It is not safe for
// concurrent use.
type Controller struct {
	sessionID  string
	dispatcher events.Dispatcher

	searchTerm     string
	statusFilter   domain.StatusFilter
	priorityFilter domain.PriorityFilter
	newTicketOpen  bool
	selected       *domain.Ticket
}

// NewController returns a controller in the default state. dispatcher may be nil.
func NewController(sessionID string, dispatcher events.Dispatcher) *Controller {
	return &Controller{
		sessionID:      sessionID,
		dispatcher:     dispatcher,
		statusFilter:   domain.AnyStatus,
		priorityFilter: domain.AnyPriority,
	}
}

// SessionID returns the id events are tagged with.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	state := State{
		SearchTerm:     c.searchTerm,
		StatusFilter:   c.statusFilter,
		PriorityFilter: c.priorityFilter,
		NewTicketOpen:  c.newTicketOpen,
	}
	if c.selected != nil {
		selected := *c.selected
		state.Selected = &selected
	}
	return state
}

// SetSearchTerm updates the free-text search.
func (c *Controller) SetSearchTerm(ctx context.Context, term string) {
	if c.searchTerm == term {
		return
	}
	c.searchTerm = term
	c.publishFiltersChanged(ctx)
}

// SetStatusFilter updates the status filter.
func (c *Controller) SetStatusFilter(ctx context.Context, filter domain.StatusFilter) {
	filter = filter.Normalize()
	if c.statusFilter == filter {
		return
	}
	c.statusFilter = filter
	c.publishFiltersChanged(ctx)
}

// SetPriorityFilter updates the priority filter.
func (c *Controller) SetPriorityFilter(ctx context.Context, filter domain.PriorityFilter) {
	filter = filter.Normalize()
	if c.priorityFilter == filter {
		return
	}
	c.priorityFilter = filter
	c.publishFiltersChanged(ctx)
}

// OpenNewTicket shows the create modal.
func (c *Controller) OpenNewTicket(ctx context.Context) {
	if c.newTicketOpen {
		return
	}
	c.newTicketOpen = true
	c.publish(ctx, events.Event{Type: events.EventNewTicketOpened})
}

// CancelNewTicket hides the create modal.
func (c *Controller) CancelNewTicket(ctx context.Context) {
	if !c.newTicketOpen {
		return
	}
	c.newTicketOpen = false
	c.publish(ctx, events.Event{Type: events.EventNewTicketCancelled})
}

// SubmitNewTicket hides the create modal. The draft is not stored.
func (c *Controller) SubmitNewTicket(ctx context.Context, draft NewTicketDraft) {
	if !c.newTicketOpen {
		return
	}
	c.newTicketOpen = false
	draft = draft.Normalize()
	c.publish(ctx, events.Event{
		Type: events.EventNewTicketSubmitted,
		Payload: events.NewTicketSubmittedPayload{
			Title:       draft.Title,
			Description: draft.Description,
			Priority:    draft.Priority,
			Category:    draft.Category,
		},
	})
}

// SelectTicket opens the detail modal on a copy of ticket. Later changes
// to the caller's value are not reflected.
func (c *Controller) SelectTicket(ctx context.Context, ticket domain.Ticket) {
	snapshot := ticket
	c.selected = &snapshot
	id := ticket.ID
	c.publish(ctx, events.Event{Type: events.EventTicketSelected, TicketID: &id})
}

// CloseDetail clears the selection.
func (c *Controller) CloseDetail(ctx context.Context) {
	if c.selected == nil {
		return
	}
	id := c.selected.ID
	c.selected = nil
	c.publish(ctx, events.Event{Type: events.EventTicketDetailClosed, TicketID: &id})
}

func (c *Controller) publishFiltersChanged(ctx context.Context) {
	c.publish(ctx, events.Event{
		Type: events.EventFiltersChanged,
		Payload: events.FiltersChangedPayload{
			SearchTerm: c.searchTerm,
			Status:     c.statusFilter,
			Priority:   c.priorityFilter,
		},
	})
}

func (c *Controller) publish(ctx context.Context, event events.Event) {
	if c.dispatcher == nil {
		return
	}
	event.SessionID = c.sessionID
	_ = c.dispatcher.Publish(ctx, event)
}
