package events

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventNewTicketOpened    EventType = "new_ticket_opened"
	EventNewTicketCancelled EventType = "new_ticket_cancelled"
	EventNewTicketSubmitted EventType = "new_ticket_submitted"
	EventTicketSelected     EventType = "ticket_selected"
	EventTicketDetailClosed EventType = "ticket_detail_closed"
	EventFiltersChanged     EventType = "filters_changed"
)

// AllEventTypes lists every dashboard event type.
func AllEventTypes() []EventType {
	return []EventType{
		EventNewTicketOpened,
		EventNewTicketCancelled,
		EventNewTicketSubmitted,
		EventTicketSelected,
		EventTicketDetailClosed,
		EventFiltersChanged,
	}
}

// Event represents a viewer action on the dashboard.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	TicketID  *int64      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// NewTicketSubmittedPayload carries the discarded create form.
type NewTicketSubmittedPayload struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
	Category    string                `json:"category"`
}

// FiltersChangedPayload payload.
type FiltersChangedPayload struct {
	SearchTerm string                `json:"search_term"`
	Status     domain.StatusFilter   `json:"status"`
	Priority   domain.PriorityFilter `json:"priority"`
}
