package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/", "GET", 200, 15*time.Millisecond)
	m.RecordRequest("/", "GET", 200, 5*time.Millisecond)
	m.RecordError("/api/v1/tickets/:id", "GET", "NOT_FOUND")
	m.RecordAction("ticket_selected")
	m.RecordSessionsSwept(3)
	m.RecordSessionsSwept(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/api/v1/tickets/:id", "GET", "NOT_FOUND")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("ticket_selected")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessionsSwept))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordAction("x")
	m.RecordSessionsSwept(1)
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "loud"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))

	debug, err := NewLogger(config.LoggerConfig{Level: "DEBUG"})
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(zap.DebugLevel))
}
