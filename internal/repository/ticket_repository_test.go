package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/seed"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

func TestListPreservesSeedOrder(t *testing.T) {
	repo, err := NewMemoryTicketRepository(seed.Default())
	require.NoError(t, err)

	tickets, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 5)
	for i, want := range []int64{1001, 1002, 1003, 1004, 1005} {
		assert.Equal(t, want, tickets[i].ID)
	}
}

func TestListReturnsCopies(t *testing.T) {
	repo, err := NewMemoryTicketRepository(seed.Default())
	require.NoError(t, err)

	tickets, err := repo.List(context.Background())
	require.NoError(t, err)
	tickets[0].Title = "mutated"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Title)

	one, err := repo.GetByID(context.Background(), 1001)
	require.NoError(t, err)
	one.Status = domain.TicketStatusClosed

	fresh, err := repo.GetByID(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, fresh.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, err := NewMemoryTicketRepository(seed.Default())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSeedValidation(t *testing.T) {
	dup := seed.Default()
	dup[1].ID = dup[0].ID
	_, err := NewMemoryTicketRepository(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	bad := seed.Default()
	bad[2].Status = "archived"
	_, err = NewMemoryTicketRepository(bad)
	assert.Error(t, err)

	empty, err := NewMemoryTicketRepository(nil)
	require.NoError(t, err)
	tickets, err := empty.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestCancelledContext(t *testing.T) {
	repo, err := NewMemoryTicketRepository(seed.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
