package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
)

// ActivityService logs and counts viewer actions on the dashboard.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventNewTicketOpened, a.handleModalEvent)
	a.dispatcher.Subscribe(events.EventNewTicketCancelled, a.handleModalEvent)
	a.dispatcher.Subscribe(events.EventNewTicketSubmitted, a.handleNewTicketSubmitted)
	a.dispatcher.Subscribe(events.EventTicketSelected, a.handleModalEvent)
	a.dispatcher.Subscribe(events.EventTicketDetailClosed, a.handleModalEvent)
	a.dispatcher.Subscribe(events.EventFiltersChanged, a.handleFiltersChanged)
}

func (a *ActivityService) handleModalEvent(ctx context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_type", string(event.Type)),
		zap.String("session_id", event.SessionID),
	}
	if event.TicketID != nil {
		fields = append(fields, zap.Int64("ticket_id", *event.TicketID))
	}
	a.logger.Info("dashboard action", fields...)
	a.metrics.RecordAction(string(event.Type))
	return nil
}

// Submissions are not stored anywhere; the log line is all that remains of them.
func (a *ActivityService) handleNewTicketSubmitted(ctx context.Context, event events.Event) error {
	a.logger.Info("new ticket form submitted",
		zap.String("session_id", event.SessionID),
		zap.Any("payload", event.Payload))
	a.metrics.RecordAction(string(event.Type))
	return nil
}

func (a *ActivityService) handleFiltersChanged(ctx context.Context, event events.Event) error {
	a.logger.Debug("filters changed",
		zap.String("session_id", event.SessionID),
		zap.Any("payload", event.Payload))
	a.metrics.RecordAction(string(event.Type))
	return nil
}
