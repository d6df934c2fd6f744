package service

import (
	"context"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
)

// TicketService answers the dashboard's read queries.
type TicketService struct {
	tickets repository.TicketRepository
}

// DashboardData is one render's worth of derived state.
type DashboardData struct {
	Tickets []domain.Ticket
	Stats   Stats
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository) *TicketService {
	return &TicketService{tickets: tickets}
}

// Dashboard rescans the store and returns the filtered list with stats over every ticket.
func (s *TicketService) Dashboard(ctx context.Context, filter TicketFilter) (DashboardData, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	return DashboardData{
		Tickets: FilterTickets(tickets, filter),
		Stats:   ComputeStats(tickets),
	}, nil
}

// Ticket fetches a single ticket.
func (s *TicketService) Ticket(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// Stats returns the card counters along with a per-status breakdown.
func (s *TicketService) Stats(ctx context.Context) (Stats, map[domain.TicketStatus]int, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return Stats{}, nil, err
	}
	return ComputeStats(tickets), CountByStatus(tickets), nil
}

// Count returns the number of stored tickets.
func (s *TicketService) Count(ctx context.Context) (int, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(tickets), nil
}
