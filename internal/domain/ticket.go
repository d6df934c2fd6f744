package domain

import (
	"time"

	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// Statuses returns every status in display order.
func Statuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusPending,
		TicketStatusResolved,
		TicketStatusClosed,
	}
}

// Priorities returns every priority from least to most urgent.
func Priorities() []TicketPriority {
	return []TicketPriority{
		TicketPriorityLow,
		TicketPriorityMedium,
		TicketPriorityHigh,
		TicketPriorityUrgent,
	}
}

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Valid reports whether p is one of the known priorities.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// ParseStatus converts raw input to a TicketStatus.
func ParseStatus(raw string) (TicketStatus, error) {
	status := TicketStatus(raw)
	if !status.Valid() {
		return "", apperrors.NewValidationError("invalid status", map[string]any{"status": raw})
	}
	return status, nil
}

// ParsePriority converts raw input to a TicketPriority.
func ParsePriority(raw string) (TicketPriority, error) {
	priority := TicketPriority(raw)
	if !priority.Valid() {
		return "", apperrors.NewValidationError("invalid priority", map[string]any{"priority": raw})
	}
	return priority, nil
}

// Ticket is a support request shown on the dashboard.
type Ticket struct {
	ID          int64
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	Assignee    string
	Requester   string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    int
}

// Validate checks the record-level invariants of a ticket.
func (t Ticket) Validate() error {
	details := map[string]any{"id": t.ID}
	switch {
	case !t.Status.Valid():
		details["status"] = string(t.Status)
		return apperrors.NewValidationError("invalid ticket status", details)
	case !t.Priority.Valid():
		details["priority"] = string(t.Priority)
		return apperrors.NewValidationError("invalid ticket priority", details)
	case t.Comments < 0:
		return apperrors.NewValidationError("negative comment count", details)
	case t.UpdatedAt.Before(t.CreatedAt):
		return apperrors.NewValidationError("ticket updated before it was created", details)
	}
	return nil
}
