package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/seed"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

func newTicketService(t *testing.T) *TicketService {
	t.Helper()
	repo, err := repository.NewMemoryTicketRepository(seed.Default())
	require.NoError(t, err)
	return NewTicketService(repo)
}

func TestDashboardStatsCoverFullList(t *testing.T) {
	svc := newTicketService(t)

	data, err := svc.Dashboard(context.Background(), TicketFilter{SearchTerm: "impressora"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1003}, ids(data.Tickets))
	assert.Equal(t, Stats{Total: 5, Open: 2, InProgress: 1, Resolved: 1}, data.Stats)
}

func TestTicketLookup(t *testing.T) {
	svc := newTicketService(t)

	ticket, err := svc.Ticket(context.Background(), 1004)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, ticket.Status)

	_, err = svc.Ticket(context.Background(), 9999)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStatsAndCount(t *testing.T) {
	svc := newTicketService(t)

	stats, byStatus, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, byStatus[domain.TicketStatusPending])

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestActivityServiceLogsAndCounts(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	NewActivityService(dispatcher, zap.New(core), metrics).RegisterHandlers()

	id := int64(1001)
	ctx := context.Background()
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventTicketSelected, SessionID: "s1", TicketID: &id}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: events.EventFiltersChanged, SessionID: "s1"}))
	require.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventNewTicketSubmitted,
		Payload: events.NewTicketSubmittedPayload{Title: "x", Priority: domain.TicketPriorityLow},
	}))

	assert.Equal(t, 1, logs.FilterMessage("dashboard action").Len())
	assert.Equal(t, 1, logs.FilterMessage("filters changed").Len())
	assert.Equal(t, 1, logs.FilterMessage("new ticket form submitted").Len())

	entry := logs.FilterMessage("dashboard action").All()[0]
	assert.Equal(t, int64(1001), entry.ContextMap()["ticket_id"])

	registry := metrics.Registry()
	count, err := testutil.GatherAndCount(registry, "helpdesk_dashboard_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
