package service

import (
	"strconv"
	"strings"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// TicketFilter describes the dashboard's three filter inputs.
type TicketFilter struct {
	SearchTerm string
	Status     domain.StatusFilter
	Priority   domain.PriorityFilter
}

// DefaultTicketFilter matches every ticket.
func DefaultTicketFilter() TicketFilter {
	return TicketFilter{Status: domain.AnyStatus, Priority: domain.AnyPriority}
}

// Stats holds the counters shown on the dashboard cards.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

// Matches reports whether ticket passes all three predicates.
func (f TicketFilter) Matches(ticket domain.Ticket) bool {
	return f.matchesSearch(ticket) && f.Status.Matches(ticket.Status) && f.Priority.Matches(ticket.Priority)
}

func (f TicketFilter) matchesSearch(ticket domain.Ticket) bool {
	term := strings.ToLower(f.SearchTerm)
	return strings.Contains(strings.ToLower(ticket.Title), term) ||
		strings.Contains(strings.ToLower(ticket.Description), term) ||
		strings.Contains(strconv.FormatInt(ticket.ID, 10), f.SearchTerm)
}

// FilterTickets returns the tickets that pass filter, in input order.
func FilterTickets(tickets []domain.Ticket, filter TicketFilter) []domain.Ticket {
	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if filter.Matches(ticket) {
			result = append(result, ticket)
		}
	}
	return result
}

// ComputeStats counts the full list for the dashboard cards.
// Pending and closed tickets only contribute to Total.
func ComputeStats(tickets []domain.Ticket) Stats {
	stats := Stats{Total: len(tickets)}
	for _, ticket := range tickets {
		switch ticket.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusResolved:
			stats.Resolved++
		}
	}
	return stats
}

// CountByStatus returns a count for every status, zeros included.
func CountByStatus(tickets []domain.Ticket) map[domain.TicketStatus]int {
	counts := make(map[domain.TicketStatus]int, len(domain.Statuses()))
	for _, status := range domain.Statuses() {
		counts[status] = 0
	}
	for _, ticket := range tickets {
		counts[ticket.Status]++
	}
	return counts
}
