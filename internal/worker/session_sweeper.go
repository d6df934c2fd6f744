package worker

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/session"
)

// SessionSweeper periodically drops idle viewer sessions.
type SessionSweeper struct {
	cron    *cron.Cron
	store   *session.Store
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// NewSessionSweeper schedules sweeps of store on a cron spec such as "@every 1m".
func NewSessionSweeper(schedule string, store *session.Store, logger *zap.Logger, metrics *observability.Metrics) (*SessionSweeper, error) {
	s := &SessionSweeper{
		cron:    cron.New(),
		store:   store,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins running scheduled sweeps in the background.
func (s *SessionSweeper) Start() {
	s.cron.Start()
	s.logger.Info("session sweeper started", zap.Int("entries", len(s.cron.Entries())))
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep runs one pass immediately.
func (s *SessionSweeper) Sweep() {
	removed := s.store.Sweep(s.now())
	s.metrics.RecordSessionsSwept(removed)
	if removed > 0 {
		s.logger.Info("idle sessions removed", zap.Int("removed", removed), zap.Int("remaining", s.store.Len()))
	}
}
