package events

import (
	"time"

	"github.com/smartbiz360/biz-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventOrderDelivered     EventType = "order_delivered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   string      `json:"order_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	CustomerName string             `json:"customer_name"`
	Employee     string             `json:"employee"`
	Amount       float64            `json:"amount"`
	PaymentType  domain.PaymentType `json:"payment_type"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// OrderDeliveredPayload payload.
type OrderDeliveredPayload struct {
	CustomerName string `json:"customer_name"`
	Employee     string `json:"employee"`
}
