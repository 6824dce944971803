// Package feed stands in for a realtime push channel: a recurring timer
// that probabilistically synthesizes order activity and delivers it to a
// single subscriber.
package feed

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/smartbiz360/biz-service/internal/domain"
)

// EventType tags the feed event union.
type EventType string

const (
	EventNewOrder           EventType = "new_order"
	EventOrderStatusChanged EventType = "order_status_changed"
)

// Event is a simulated domain event. Order is set for new_order; OrderID
// and NewStatus for order_status_changed.
type Event struct {
	Type      EventType
	Order     *domain.Order
	OrderID   string
	NewStatus domain.OrderStatus
}

// OrderDraft is the synthetic order the simulator submits on a new-order tick.
type OrderDraft struct {
	CustomerName string
	Amount       float64
	Employee     string
	PaymentType  domain.PaymentType
}

// OrderSource is the backing store surface the simulator depends on.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, draft OrderDraft) (*domain.Order, error)
}

// Config tunes tick period and event probabilities.
type Config struct {
	Period         time.Duration
	SkipChance     float64
	NewOrderChance float64
	MinAmount      int
	MaxAmount      int
}

func (c Config) withDefaults() Config {
	if c.Period <= 0 {
		c.Period = 5 * time.Second
	}
	if c.MaxAmount <= c.MinAmount {
		c.MinAmount, c.MaxAmount = 50, 250
	}
	return c
}

// Simulator drives the fake feed. One Subscribe call yields one
// Subscription; each subscription gets events in emission order.
type Simulator struct {
	source OrderSource
	cfg    Config
	logger *zap.Logger
	rng    *rand.Rand
}

// NewSimulator builds a simulator over the given order source.
func NewSimulator(source OrderSource, cfg Config, logger *zap.Logger) *Simulator {
	return &Simulator{
		source: source,
		cfg:    cfg.withDefaults(),
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Subscription is a cancellable handle on a running feed.
type Subscription struct {
	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
}

// Stop cancels the feed. It is idempotent, and once it returns no further
// callback invocations will start, including for ticks whose fetch is
// already in flight.
func (s *Subscription) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stop)
}

// deliver invokes the handler unless the subscription was stopped. Holding
// the same mutex as Stop makes the cancellation guarantee exact.
func (s *Subscription) deliver(handler func(Event), event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	handler(event)
}

// Subscribe starts the feed for a single handler and returns its
// cancellation handle.
func (s *Simulator) Subscribe(handler func(Event)) *Subscription {
	sub := &Subscription{stop: make(chan struct{})}
	go s.run(sub, handler)
	return sub
}

func (s *Simulator) run(sub *Subscription, handler func(Event)) {
	ticker := time.NewTicker(s.cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stop:
			return
		case <-ticker.C:
			s.tick(context.Background(), sub, handler)
		}
	}
}

// tick runs one simulation round: maybe skip, maybe synthesize a new order,
// otherwise advance the first Pending/Confirmed order one step.
func (s *Simulator) tick(ctx context.Context, sub *Subscription, handler func(Event)) {
	if s.rng.Float64() < s.cfg.SkipChance {
		return
	}

	orders, err := s.source.ListOrders(ctx)
	if err != nil {
		s.logger.Warn("feed tick: list orders failed", zap.Error(err))
		return
	}
	if len(orders) == 0 {
		return
	}

	if s.rng.Float64() < s.cfg.NewOrderChance {
		amount := float64(s.cfg.MinAmount + s.rng.Intn(s.cfg.MaxAmount-s.cfg.MinAmount+1))
		created, err := s.source.CreateOrder(ctx, OrderDraft{
			CustomerName: "Live Customer",
			Amount:       amount,
			Employee:     "Charlie",
			PaymentType:  domain.PaymentFull,
		})
		if err != nil {
			s.logger.Warn("feed tick: create order failed", zap.Error(err))
			return
		}
		sub.deliver(handler, Event{Type: EventNewOrder, Order: created})
		return
	}

	for i := range orders {
		status := orders[i].Status
		if status != domain.OrderStatusPending && status != domain.OrderStatusConfirmed {
			continue
		}
		next, _ := status.Next()
		sub.deliver(handler, Event{
			Type:      EventOrderStatusChanged,
			OrderID:   orders[i].ID,
			NewStatus: next,
		})
		return
	}
}
