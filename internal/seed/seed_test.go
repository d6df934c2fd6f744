package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestDefaultSeed(t *testing.T) {
	tickets := Default()
	require.Len(t, tickets, 5)

	ids := make([]int64, 0, len(tickets))
	for _, ticket := range tickets {
		ids = append(ids, ticket.ID)
		require.NoError(t, ticket.Validate())
	}
	assert.Equal(t, []int64{1001, 1002, 1003, 1004, 1005}, ids)
	assert.Equal(t, domain.TicketPriorityUrgent, tickets[0].Priority)
	assert.Equal(t, domain.TicketStatusResolved, tickets[3].Status)
	assert.Equal(t, 15, tickets[0].CreatedAt.Day())
	assert.Equal(t, 10, tickets[0].CreatedAt.Hour())
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	first := Default()
	first[0].Title = "changed"
	assert.Equal(t, "Sistema de login não está funcionando", Default()[0].Title)
}

func TestParse(t *testing.T) {
	doc := []byte(`
tickets:
  - id: 7
    title: VPN caiu
    description: Sem acesso remoto
    status: in-progress
    priority: high
    assignee: Ana
    requester: Bruno
    category: Acesso
    createdAt: "2024-04-01T08:00:00"
    updatedAt: "2024-04-01T09:30:00Z"
    comments: 4
`)
	tickets, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, tickets, 1)

	got := tickets[0]
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, domain.TicketStatusInProgress, got.Status)
	assert.Equal(t, domain.TicketPriorityHigh, got.Priority)
	assert.Equal(t, 4, got.Comments)
	assert.Equal(t, time.UTC, got.UpdatedAt.Location())
}

func TestParseRejectsUnknownEnum(t *testing.T) {
	_, err := Parse([]byte(`
tickets:
  - id: 1
    status: done
    priority: low
    createdAt: "2024-04-01T08:00:00"
    updatedAt: "2024-04-01T08:00:00"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket #0")
}

func TestParseRejectsBadTimestamp(t *testing.T) {
	_, err := Parse([]byte(`
tickets:
  - id: 1
    status: open
    priority: low
    createdAt: "15/03/2024"
    updatedAt: "2024-04-01T08:00:00"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "createdAt")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tickets:
  - id: 2001
    title: Monitor piscando
    status: open
    priority: medium
    createdAt: "2024-05-02T10:00:00"
    updatedAt: "2024-05-02T10:00:00"
`), 0o600))

	tickets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Monitor piscando", tickets[0].Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefaultsWithoutPath(t *testing.T) {
	tickets, err := Load("")
	require.NoError(t, err)
	assert.Len(t, tickets, 5)
}
