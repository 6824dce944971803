package feed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartbiz360/biz-service/internal/domain"
)

type fakeSource struct {
	orders    []domain.Order
	listErr   error
	listCalls atomic.Int32
	listGate  chan struct{}

	created   []OrderDraft
	createErr error
}

func (f *fakeSource) ListOrders(_ context.Context) ([]domain.Order, error) {
	f.listCalls.Add(1)
	if f.listGate != nil {
		<-f.listGate
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Order{}, f.orders...), nil
}

func (f *fakeSource) CreateOrder(_ context.Context, draft OrderDraft) (*domain.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, draft)
	return &domain.Order{
		ID:           "ORD999",
		CustomerName: draft.CustomerName,
		Amount:       draft.Amount,
		Employee:     draft.Employee,
		PaymentType:  draft.PaymentType,
		Status:       domain.OrderStatusPending,
	}, nil
}

func newTestSimulator(source OrderSource, cfg Config) (*Simulator, *Subscription, *[]Event) {
	s := NewSimulator(source, cfg, zap.NewNop())
	sub := &Subscription{stop: make(chan struct{})}
	events := &[]Event{}
	return s, sub, events
}

func collect(events *[]Event) func(Event) {
	return func(e Event) { *events = append(*events, e) }
}

func TestTickSkipRollEmitsNothing(t *testing.T) {
	source := &fakeSource{orders: []domain.Order{{ID: "ORD001", Status: domain.OrderStatusPending}}}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 1})

	s.tick(context.Background(), sub, collect(events))

	assert.Empty(t, *events)
	assert.Zero(t, source.listCalls.Load())
}

func TestTickEmptyStoreEmitsNothing(t *testing.T) {
	source := &fakeSource{}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 1})

	s.tick(context.Background(), sub, collect(events))

	assert.Empty(t, *events)
	assert.Empty(t, source.created)
}

func TestTickListFailureIsSwallowed(t *testing.T) {
	source := &fakeSource{listErr: errors.New("backend down")}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 1})

	s.tick(context.Background(), sub, collect(events))

	assert.Empty(t, *events)
}

func TestTickNewOrderDraft(t *testing.T) {
	source := &fakeSource{orders: []domain.Order{{ID: "ORD001", Status: domain.OrderStatusDelivered}}}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 1, MinAmount: 50, MaxAmount: 250})

	s.tick(context.Background(), sub, collect(events))

	require.Len(t, source.created, 1)
	draft := source.created[0]
	assert.Equal(t, "Live Customer", draft.CustomerName)
	assert.Equal(t, "Charlie", draft.Employee)
	assert.Equal(t, domain.PaymentFull, draft.PaymentType)
	assert.GreaterOrEqual(t, draft.Amount, 50.0)
	assert.LessOrEqual(t, draft.Amount, 250.0)

	require.Len(t, *events, 1)
	event := (*events)[0]
	assert.Equal(t, EventNewOrder, event.Type)
	require.NotNil(t, event.Order)
	assert.Equal(t, "ORD999", event.Order.ID)
}

func TestTickAdvancesFirstActiveOrder(t *testing.T) {
	source := &fakeSource{orders: []domain.Order{
		{ID: "ORD001", Status: domain.OrderStatusDelivered},
		{ID: "ORD002", Status: domain.OrderStatusConfirmed},
		{ID: "ORD003", Status: domain.OrderStatusPending},
	}}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 0})

	s.tick(context.Background(), sub, collect(events))

	require.Len(t, *events, 1)
	event := (*events)[0]
	assert.Equal(t, EventOrderStatusChanged, event.Type)
	assert.Equal(t, "ORD002", event.OrderID)
	assert.Equal(t, domain.OrderStatusReadyForDelivery, event.NewStatus)
}

func TestTickPendingAdvancesToConfirmed(t *testing.T) {
	source := &fakeSource{orders: []domain.Order{{ID: "ORD010", Status: domain.OrderStatusPending}}}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 0})

	s.tick(context.Background(), sub, collect(events))

	require.Len(t, *events, 1)
	assert.Equal(t, domain.OrderStatusConfirmed, (*events)[0].NewStatus)
}

func TestTickNoAdvanceCandidate(t *testing.T) {
	source := &fakeSource{orders: []domain.Order{
		{ID: "ORD001", Status: domain.OrderStatusDelivered},
		{ID: "ORD002", Status: domain.OrderStatusCancelled},
	}}
	s, sub, events := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 0})

	s.tick(context.Background(), sub, collect(events))

	assert.Empty(t, *events)
}

func TestStopIsIdempotent(t *testing.T) {
	source := &fakeSource{}
	s := NewSimulator(source, Config{Period: time.Hour}, zap.NewNop())

	sub := s.Subscribe(func(Event) {})
	sub.Stop()
	assert.NotPanics(t, sub.Stop)
}

func TestStopDuringInFlightFetchSuppressesCallback(t *testing.T) {
	source := &fakeSource{
		orders:   []domain.Order{{ID: "ORD001", Status: domain.OrderStatusPending}},
		listGate: make(chan struct{}),
	}
	s, sub, _ := newTestSimulator(source, Config{SkipChance: 0, NewOrderChance: 0})

	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		s.tick(context.Background(), sub, func(Event) { calls.Add(1) })
		close(done)
	}()

	require.Eventually(t, func() bool { return source.listCalls.Load() == 1 },
		time.Second, time.Millisecond)
	sub.Stop()
	close(source.listGate)
	<-done

	assert.Zero(t, calls.Load())
}

func TestSubscribeDeliversOverTicker(t *testing.T) {
	source := &fakeSource{orders: []domain.Order{{ID: "ORD001", Status: domain.OrderStatusPending}}}
	s := NewSimulator(source, Config{Period: 5 * time.Millisecond, SkipChance: 0, NewOrderChance: 0}, zap.NewNop())

	var events atomic.Int32
	sub := s.Subscribe(func(Event) { events.Add(1) })
	defer sub.Stop()

	require.Eventually(t, func() bool { return events.Load() >= 2 },
		time.Second, time.Millisecond)
}
