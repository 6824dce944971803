package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbiz360/biz-service/internal/domain"
)

// CustomerRepository defines persistence access for credit customers.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	UpdateScore(ctx context.Context, id string, riskScore int, predictedRepaymentDate string) error
	AddCreditEntry(ctx context.Context, customerID string, entry domain.CreditEntry) error
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	const query = `
        SELECT id, name, phone, risk_score, predicted_repayment_date, created_at, updated_at
        FROM customers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.RiskScore,
			&c.PredictedRepaymentDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range customers {
		history, err := r.creditHistory(ctx, customers[i].ID)
		if err != nil {
			return nil, err
		}
		customers[i].CreditHistory = history
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const query = `
        SELECT id, name, phone, risk_score, predicted_repayment_date, created_at, updated_at
        FROM customers WHERE id=$1`

	var c domain.Customer
	if err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone,
		&c.RiskScore, &c.PredictedRepaymentDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	history, err := r.creditHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CreditHistory = history
	return &c, nil
}

func (r *customerRepository) UpdateScore(ctx context.Context, id string, riskScore int, predictedRepaymentDate string) error {
	const query = `
        UPDATE customers SET risk_score=$1, predicted_repayment_date=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, riskScore, predictedRepaymentDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) AddCreditEntry(ctx context.Context, customerID string, entry domain.CreditEntry) error {
	const query = `
        INSERT INTO credit_entries (customer_id, amount, paid_on_time, entry_date)
        VALUES ($1, $2, $3, $4)`

	entryDate, err := time.Parse(dateLayout, entry.Date)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query, customerID, entry.Amount, entry.PaidOnTime, entryDate)
	return err
}

func (r *customerRepository) creditHistory(ctx context.Context, customerID string) ([]domain.CreditEntry, error) {
	const query = `
        SELECT amount, paid_on_time, entry_date
        FROM credit_entries WHERE customer_id=$1 ORDER BY entry_date DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.CreditEntry
	for rows.Next() {
		var (
			entry     domain.CreditEntry
			entryDate time.Time
		)
		if err := rows.Scan(&entry.Amount, &entry.PaidOnTime, &entryDate); err != nil {
			return nil, err
		}
		entry.Date = entryDate.Format(dateLayout)
		history = append(history, entry)
	}
	return history, rows.Err()
}
