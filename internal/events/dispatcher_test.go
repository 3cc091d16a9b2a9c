package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []Event
	d.Subscribe(EventProductCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	created := NewEvent(EventProductCreated, "product", "abc", time.Now(), nil)
	require.NoError(t, d.Publish(context.Background(), created))
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventProductDeleted, "product", "abc", time.Now(), nil)))

	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
}

func TestDispatcher_HandlerErrorsDoNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	calls := 0
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error { calls++; return boom })
	d.Subscribe(EventOrderCreated, func(context.Context, Event) error { calls++; return nil })

	err := d.Publish(context.Background(), NewEvent(EventOrderCreated, "order", "x", time.Now(), nil))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a := NewEvent(EventStaffUpdated, "staff", "1", time.Now(), nil)
	b := NewEvent(EventStaffUpdated, "staff", "1", time.Now(), nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDispatcher_SubscribeAllRunsAfterTypedHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var order []string
	d.SubscribeAll(func(context.Context, Event) error { order = append(order, "all"); return nil })
	d.Subscribe(EventCustomerDeleted, func(context.Context, Event) error { order = append(order, "typed"); return nil })

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventCustomerDeleted, "customer", "1", time.Now(), nil)))
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventStaffCreated, "staff", "2", time.Now(), nil)))

	assert.Equal(t, []string{"typed", "all", "all"}, order)
}

func TestDispatcher_RejectsUnknownType(t *testing.T) {
	d := NewInMemoryDispatcher()
	called := false
	d.SubscribeAll(func(context.Context, Event) error { called = true; return nil })

	err := d.Publish(context.Background(), NewEvent(EventType("product.archived"), "product", "1", time.Now(), nil))

	assert.ErrorIs(t, err, ErrUnknownEventType)
	assert.False(t, called)
	assert.True(t, EventOrderCreated.Known())
}
