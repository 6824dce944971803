package dto

import "github.com/smartbiz360/biz-service/internal/domain"

// CreditEntryRequest records one repayment for a customer.
type CreditEntryRequest struct {
	Amount     float64 `json:"amount"`
	PaidOnTime bool    `json:"paidOnTime"`
	Date       string  `json:"date"`
}

// RentPaymentRequest is the payload for POST /tenants/:id/payments.
type RentPaymentRequest struct {
	Amount float64 `json:"amount"`
}

// OrdersResponse wraps an order listing.
type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}
