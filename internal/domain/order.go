package domain

import "time"

// OrderStatus enumerates lifecycle states for orders.
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "Pending"
	OrderStatusConfirmed        OrderStatus = "Confirmed"
	OrderStatusReadyForDelivery OrderStatus = "Ready for Delivery"
	OrderStatusOutForDelivery   OrderStatus = "Out for Delivery"
	OrderStatusDelivered        OrderStatus = "Delivered"
	OrderStatusCancelled        OrderStatus = "Cancelled"
)

// PaymentType enumerates how an order is paid.
type PaymentType string

const (
	PaymentFull    PaymentType = "Full"
	PaymentAdvance PaymentType = "Advance"
	PaymentCredit  PaymentType = "Credit"
)

// Order is the aggregate for customer orders.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Amount       float64     `json:"amount"`
	Status       OrderStatus `json:"status"`
	Date         string      `json:"date"`
	Employee     string      `json:"employee"`
	PaymentType  PaymentType `json:"paymentType"`
	CreditAmount *float64    `json:"creditAmount,omitempty"`
	DueDate      *string     `json:"dueDate,omitempty"`
	OTPHash      string      `json:"-"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
}

// Next returns the forward pipeline successor of a status. The second
// return is false for terminal states and for Out for Delivery, which
// only advances through OTP-verified delivery.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusConfirmed, true
	case OrderStatusConfirmed:
		return OrderStatusReadyForDelivery, true
	case OrderStatusReadyForDelivery:
		return OrderStatusOutForDelivery, true
	}
	return s, false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition reports whether moving from s to target is a legal
// order lifecycle step.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if target == OrderStatusCancelled {
		return true
	}
	if next, ok := s.Next(); ok && next == target {
		return true
	}
	// Delivery completion happens via OTP verification.
	return s == OrderStatusOutForDelivery && target == OrderStatusDelivered
}
