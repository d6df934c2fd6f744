package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/helpdesk/internal/domain"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// TicketRepository encapsulates read access to the ticket list.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
}

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
	byID    map[int64]int
}

// NewMemoryTicketRepository builds a store seeded once from tickets.
func NewMemoryTicketRepository(tickets []domain.Ticket) (TicketRepository, error) {
	r := &memoryTicketRepository{
		tickets: make([]domain.Ticket, 0, len(tickets)),
		byID:    make(map[int64]int, len(tickets)),
	}
	for _, ticket := range tickets {
		if err := ticket.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.byID[ticket.ID]; exists {
			return nil, apperrors.NewValidationError("duplicate ticket id", map[string]any{"id": ticket.ID})
		}
		r.byID[ticket.ID] = len(r.tickets)
		r.tickets = append(r.tickets, ticket)
	}
	return r, nil
}

func (r *memoryTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Ticket, len(r.tickets))
	copy(result, r.tickets)
	return result, nil
}

func (r *memoryTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	ticket := r.tickets[idx]
	return &ticket, nil
}
