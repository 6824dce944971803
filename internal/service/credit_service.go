package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/repository"
	apperrors "github.com/smartbiz360/biz-service/pkg/util/errorutil"
)

// CreditService scores credit customers from their repayment history.
type CreditService struct {
	customers repository.CustomerRepository
	now       func() time.Time
}

// NewCreditService builds the service.
func NewCreditService(customers repository.CustomerRepository) *CreditService {
	return &CreditService{customers: customers, now: time.Now}
}

// ListCustomers returns all credit customers with history.
func (s *CreditService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

// AnalyzeCustomer recomputes and persists the risk score and predicted
// repayment date for one customer.
func (s *CreditService) AnalyzeCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, err
	}

	score, predicted := ScoreCreditHistory(customer.CreditHistory)
	if err := s.customers.UpdateScore(ctx, id, score, predicted); err != nil {
		return nil, err
	}
	customer.RiskScore = score
	customer.PredictedRepaymentDate = predicted
	return customer, nil
}

// RecordCredit appends a repayment record and re-scores the customer.
func (s *CreditService) RecordCredit(ctx context.Context, customerID string, entry domain.CreditEntry) (*domain.Customer, error) {
	if entry.Amount <= 0 {
		return nil, apperrors.NewValidationError("credit amount must be positive", nil)
	}
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}
	if err := s.customers.AddCreditEntry(ctx, customerID, entry); err != nil {
		return nil, err
	}
	return s.AnalyzeCustomer(ctx, customerID)
}

// ScoreCreditHistory derives a 5..95 risk score from repayment behavior.
// Higher is safer. A customer without history scores a neutral 50 with no
// repayment prediction. Otherwise the on-time ratio dominates, with a small
// bonus for history depth, and the prediction extends the latest entry by
// 30 days for reliable payers and 45 for the rest.
func ScoreCreditHistory(history []domain.CreditEntry) (int, string) {
	if len(history) == 0 {
		return 50, "N/A"
	}

	onTime := 0
	latest := ""
	for _, entry := range history {
		if entry.PaidOnTime {
			onTime++
		}
		if entry.Date > latest {
			latest = entry.Date
		}
	}
	ratio := float64(onTime) / float64(len(history))

	depth := len(history)
	if depth > 5 {
		depth = 5
	}
	score := int(20+70*ratio) + 2*depth
	if score > 95 {
		score = 95
	}
	if score < 5 {
		score = 5
	}

	predicted := "N/A"
	if latestDate, err := time.Parse("2006-01-02", latest); err == nil {
		grace := 45
		if ratio >= 0.75 {
			grace = 30
		}
		predicted = latestDate.AddDate(0, 0, grace).Format("2006-01-02")
	}
	return score, predicted
}
