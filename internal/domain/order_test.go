package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		status OrderStatus
		next   OrderStatus
		ok     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusReadyForDelivery, true},
		{OrderStatusReadyForDelivery, OrderStatusOutForDelivery, true},
		{OrderStatusOutForDelivery, OrderStatusOutForDelivery, false},
		{OrderStatusDelivered, OrderStatusDelivered, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			next, ok := tt.status.Next()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestOrderStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"pending skips ahead", OrderStatusPending, OrderStatusReadyForDelivery, false},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"out for delivery to delivered", OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{"confirmed to delivered", OrderStatusConfirmed, OrderStatusDelivered, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"backwards is illegal", OrderStatusConfirmed, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleEmployee, RoleDelivery, RoleAccountant} {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole(Role("Admin")))
	assert.False(t, ValidRole(Role("")))
}
