package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFillsIDAndTimestamp(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got Event
	d.Subscribe(EventTicketSelected, func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	id := int64(1003)
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketSelected, TicketID: &id}))
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
	require.NotNil(t, got.TicketID)
	assert.Equal(t, int64(1003), *got.TicketID)
}

func TestPublishRunsAllHandlersDespiteErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventNewTicketOpened, func(context.Context, Event) error {
		calls++
		return errors.New("first failed")
	})
	d.Subscribe(EventNewTicketOpened, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventNewTicketOpened})
	assert.Equal(t, 2, calls)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
}

func TestPublishOnlyMatchingType(t *testing.T) {
	d := NewInMemoryDispatcher()
	called := false
	d.Subscribe(EventFiltersChanged, func(context.Context, Event) error {
		called = true
		return nil
	})
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketDetailClosed}))
	assert.False(t, called)
}
