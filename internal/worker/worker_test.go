package worker

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/helpdesk/internal/dashboard"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/session"
)

func TestSessionSweeperRemovesIdleSessions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := session.NewStore(time.Minute, nil)
	metrics := observability.NewMetrics()

	_, err := store.Do("", func(*dashboard.Controller) error { return nil })
	require.NoError(t, err)

	sweeper, err := NewSessionSweeper("@every 1h", store, zap.New(core), metrics)
	require.NoError(t, err)
	sweeper.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	sweeper.Sweep()
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, logs.FilterMessage("idle sessions removed").Len())

	count, err := testutil.GatherAndCount(metrics.Registry(), "helpdesk_sessions_swept_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	sweeper.Start()
	sweeper.Stop()
}

func TestSessionSweeperRejectsBadSchedule(t *testing.T) {
	store := session.NewStore(time.Minute, nil)
	_, err := NewSessionSweeper("every now and then", store, zap.NewNop(), nil)
	assert.Error(t, err)
}

func TestStartActivityWorker(t *testing.T) {
	StartActivityWorker(nil)

	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartActivityWorker(service.NewActivityService(dispatcher, zap.New(core), nil))

	controller := dashboard.NewController("s1", dispatcher)
	controller.OpenNewTicket(context.Background())
	assert.Equal(t, 1, logs.FilterMessage("dashboard action").Len())
}
