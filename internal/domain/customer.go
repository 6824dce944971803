package domain

import "time"

// CreditEntry records one past credit transaction for a customer.
type CreditEntry struct {
	Amount     float64 `json:"amount"`
	PaidOnTime bool    `json:"paidOnTime"`
	Date       string  `json:"date"`
}

// Customer tracks a credit customer and their scoring state.
type Customer struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	Phone                  string        `json:"phone"`
	CreditHistory          []CreditEntry `json:"creditHistory"`
	RiskScore              int           `json:"riskScore"`
	PredictedRepaymentDate string        `json:"predictedRepaymentDate"`
	CreatedAt              time.Time     `json:"-"`
	UpdatedAt              time.Time     `json:"-"`
}
