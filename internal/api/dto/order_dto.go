package dto

import "github.com/smartbiz360/biz-service/internal/domain"

// OrderCreateRequest is the payload for POST /orders.
type OrderCreateRequest struct {
	CustomerName string             `json:"customerName"`
	Amount       float64            `json:"amount"`
	Employee     string             `json:"employee"`
	PaymentType  domain.PaymentType `json:"paymentType"`
	CreditAmount *float64           `json:"creditAmount,omitempty"`
	DueDate      *string            `json:"dueDate,omitempty"`
}

// OrderStatusRequest is the payload for PATCH /orders/:id/status.
type OrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderOTPResponse returns a freshly issued delivery code.
type OrderOTPResponse struct {
	OrderID string        `json:"orderId"`
	OTP     string        `json:"otp"`
	Order   *domain.Order `json:"order"`
}

// OrderVerifyOTPRequest is the payload for POST /orders/:id/verify-otp.
type OrderVerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// OrderVerifyOTPResponse reports the verification outcome.
type OrderVerifyOTPResponse struct {
	OrderID  string `json:"orderId"`
	Verified bool   `json:"verified"`
}
