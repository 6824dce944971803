package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatcherDeliversInSubscriptionOrder(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var calls []string
	d.Subscribe(EventOrderCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	d.Subscribe(EventOrderCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	d.Publish(context.Background(), Event{Type: EventOrderCreated, OrderID: "ORD001"})
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var reached bool
	d.Subscribe(EventOrderStatusChanged, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventOrderStatusChanged, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	d.Publish(context.Background(), Event{Type: EventOrderStatusChanged, OrderID: "ORD002"})
	assert.True(t, reached)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var called bool
	d.Subscribe(EventOrderCreated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	d.Publish(context.Background(), Event{Type: EventOrderDelivered, OrderID: "ORD003"})
	assert.False(t, called)
}
