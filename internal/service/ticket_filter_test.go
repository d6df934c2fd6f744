package service

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/seed"
)

func ids(tickets []domain.Ticket) []int64 {
	out := make([]int64, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterTicketsSeedScenarios(t *testing.T) {
	tickets := seed.Default()

	tests := []struct {
		name   string
		filter TicketFilter
		want   []int64
	}{
		{
			name:   "search impressora",
			filter: TicketFilter{SearchTerm: "impressora", Status: domain.AnyStatus, Priority: domain.AnyPriority},
			want:   []int64{1003},
		},
		{
			name:   "status resolved",
			filter: TicketFilter{Status: domain.StatusFilterFor(domain.TicketStatusResolved), Priority: domain.AnyPriority},
			want:   []int64{1004},
		},
		{
			name:   "priority urgent",
			filter: TicketFilter{Status: domain.AnyStatus, Priority: domain.PriorityFilterFor(domain.TicketPriorityUrgent)},
			want:   []int64{1001},
		},
		{
			name:   "no match",
			filter: TicketFilter{SearchTerm: "zzz-no-match", Status: domain.AnyStatus, Priority: domain.AnyPriority},
			want:   []int64{},
		},
		{
			name:   "empty matches all in order",
			filter: DefaultTicketFilter(),
			want:   []int64{1001, 1002, 1003, 1004, 1005},
		},
		{
			name:   "zero filter matches all",
			filter: TicketFilter{},
			want:   []int64{1001, 1002, 1003, 1004, 1005},
		},
		{
			name:   "search by id fragment",
			filter: TicketFilter{SearchTerm: "100", Status: domain.AnyStatus, Priority: domain.AnyPriority},
			want:   []int64{1001, 1002, 1003, 1004, 1005},
		},
		{
			name:   "search exact id",
			filter: TicketFilter{SearchTerm: "1005"},
			want:   []int64{1005},
		},
		{
			name:   "search is case insensitive",
			filter: TicketFilter{SearchTerm: "EMAIL"},
			want:   []int64{1005},
		},
		{
			name:   "search description only",
			filter: TicketFilter{SearchTerm: "adobe"},
			want:   []int64{1002},
		},
		{
			name:   "search is not trimmed",
			filter: TicketFilter{SearchTerm: "  login"},
			want:   []int64{},
		},
		{
			name: "and semantics",
			filter: TicketFilter{
				SearchTerm: "solicitação",
				Status:     domain.StatusFilterFor(domain.TicketStatusInProgress),
				Priority:   domain.AnyPriority,
			},
			want: []int64{1002},
		},
		{
			name: "open and medium",
			filter: TicketFilter{
				Status:   domain.StatusFilterFor(domain.TicketStatusOpen),
				Priority: domain.PriorityFilterFor(domain.TicketPriorityMedium),
			},
			want: []int64{1005},
		},
		{
			name:   "closed has none",
			filter: TicketFilter{Status: domain.StatusFilterFor(domain.TicketStatusClosed)},
			want:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTickets(tickets, tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterTicketsSearchProperty(t *testing.T) {
	tickets := seed.Default()
	terms := []string{"", "não", "SISTEMA", "acesso", "3º", "1003", "00", "x", "celular"}

	for _, term := range terms {
		got := FilterTickets(tickets, TicketFilter{SearchTerm: term})
		included := map[int64]bool{}
		for _, t := range got {
			included[t.ID] = true
		}
		for _, ticket := range tickets {
			want := strings.Contains(strings.ToLower(ticket.Title), strings.ToLower(term)) ||
				strings.Contains(strings.ToLower(ticket.Description), strings.ToLower(term)) ||
				strings.Contains(strconv.FormatInt(ticket.ID, 10), term)
			assert.Equal(t, want, included[ticket.ID], "term %q ticket %d", term, ticket.ID)
		}
	}
}

func TestFilterTicketsStatusAndPriorityProperty(t *testing.T) {
	tickets := seed.Default()
	for _, status := range domain.Statuses() {
		for _, ticket := range FilterTickets(tickets, TicketFilter{Status: domain.StatusFilterFor(status)}) {
			assert.Equal(t, status, ticket.Status)
		}
	}
	for _, priority := range domain.Priorities() {
		for _, ticket := range FilterTickets(tickets, TicketFilter{Priority: domain.PriorityFilterFor(priority)}) {
			assert.Equal(t, priority, ticket.Priority)
		}
	}
}

func TestFilterTicketsEmptyInput(t *testing.T) {
	got := FilterTickets(nil, DefaultTicketFilter())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeStats(t *testing.T) {
	tickets := seed.Default()
	stats := ComputeStats(tickets)

	assert.Equal(t, Stats{Total: 5, Open: 2, InProgress: 1, Resolved: 1}, stats)
	assert.LessOrEqual(t, stats.Open+stats.InProgress+stats.Resolved, stats.Total)
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(seed.Default())
	require.Len(t, counts, len(domain.Statuses()))
	assert.Equal(t, 2, counts[domain.TicketStatusOpen])
	assert.Equal(t, 1, counts[domain.TicketStatusInProgress])
	assert.Equal(t, 1, counts[domain.TicketStatusPending])
	assert.Equal(t, 1, counts[domain.TicketStatusResolved])
	assert.Equal(t, 0, counts[domain.TicketStatusClosed])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, ComputeStats(seed.Default()).Total, total)
}
