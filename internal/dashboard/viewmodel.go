// Package dashboard holds the order view model that consumes the simulated
// feed and raises transient notices.
package dashboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/feed"
)

const noticeTTL = 3 * time.Second

// ViewModel keeps a most-recent-first working copy of the order list,
// reconciled against incoming feed events and local user actions with
// last-write-wins semantics.
type ViewModel struct {
	mu           sync.Mutex
	orders       []domain.Order
	notice       string
	noticeExpiry time.Time
	now          func() time.Time
}

// NewViewModel builds an empty view model.
func NewViewModel() *ViewModel {
	return &ViewModel{now: time.Now}
}

// SetOrders replaces the working copy, e.g. after the initial fetch.
func (vm *ViewModel) SetOrders(orders []domain.Order) {
	vm.mu.Lock()
	vm.orders = append([]domain.Order(nil), orders...)
	vm.mu.Unlock()
}

// Apply merges one feed event into the working copy. A status change for an
// unknown order id is silently dropped; the feed is best-effort UI sync,
// not a durable log.
func (vm *ViewModel) Apply(event feed.Event) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	switch event.Type {
	case feed.EventNewOrder:
		if event.Order == nil {
			return
		}
		vm.orders = append([]domain.Order{*event.Order}, vm.orders...)
		vm.setNotice(fmt.Sprintf("New order %s received from %s", event.Order.ID, event.Order.Employee))
	case feed.EventOrderStatusChanged:
		if vm.mergeStatus(event.OrderID, event.NewStatus) {
			vm.setNotice(fmt.Sprintf("Order %s status updated to %q", event.OrderID, event.NewStatus))
		}
	}
}

// ApplyLocalStatus routes a user-initiated status change through the same
// merge path as feed events, keeping last-write-wins behavior uniform.
func (vm *ViewModel) ApplyLocalStatus(orderID string, status domain.OrderStatus) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.mergeStatus(orderID, status)
}

// mergeStatus is the single mutation point for order status: it replaces
// only the status field, leaving every other field untouched. Callers hold
// the lock.
func (vm *ViewModel) mergeStatus(orderID string, status domain.OrderStatus) bool {
	for i := range vm.orders {
		if vm.orders[i].ID == orderID {
			vm.orders[i].Status = status
			return true
		}
	}
	return false
}

// Orders returns a copy of the working list, most recent first.
func (vm *ViewModel) Orders() []domain.Order {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]domain.Order(nil), vm.orders...)
}

// Notice returns the visible transient notice, if it has not expired. The
// slot holds at most one notice; new ones replace it immediately.
func (vm *ViewModel) Notice() (string, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.notice == "" || vm.now().After(vm.noticeExpiry) {
		return "", false
	}
	return vm.notice, true
}

// Dismiss clears the notice slot early.
func (vm *ViewModel) Dismiss() {
	vm.mu.Lock()
	vm.notice = ""
	vm.mu.Unlock()
}

func (vm *ViewModel) setNotice(text string) {
	vm.notice = text
	vm.noticeExpiry = vm.now().Add(noticeTTL)
}
