package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbiz360/biz-service/internal/domain"
)

const dateLayout = "2006-01-02"

// OrderRepository defines persistence access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	SetDeliveryOTP(ctx context.Context, id, otpHash string, status domain.OrderStatus) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (customer_name, amount, employee, payment_type, credit_amount, due_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, status, order_date, created_at, updated_at`

	var dueDate *time.Time
	if order.DueDate != nil {
		parsed, err := time.Parse(dateLayout, *order.DueDate)
		if err != nil {
			return err
		}
		dueDate = &parsed
	}

	var orderDate time.Time
	if err := r.pool.QueryRow(ctx, query,
		order.CustomerName,
		order.Amount,
		order.Employee,
		order.PaymentType,
		order.CreditAmount,
		dueDate,
	).Scan(&order.ID, &order.Status, &orderDate, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}
	order.Date = orderDate.Format(dateLayout)
	return nil
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, customer_name, amount, status, order_date, employee,
               payment_type, credit_amount, due_date, COALESCE(otp_hash, ''),
               created_at, updated_at
        FROM orders
        ORDER BY order_date DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT id, customer_name, amount, status, order_date, employee,
               payment_type, credit_amount, due_date, COALESCE(otp_hash, ''),
               created_at, updated_at
        FROM orders WHERE id=$1`

	return scanOrder(r.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) SetDeliveryOTP(ctx context.Context, id, otpHash string, status domain.OrderStatus) error {
	const query = `UPDATE orders SET otp_hash=$1, status=$2, updated_at=NOW() WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, otpHash, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order     domain.Order
		orderDate time.Time
		dueDate   *time.Time
	)
	if err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.Amount,
		&order.Status,
		&orderDate,
		&order.Employee,
		&order.PaymentType,
		&order.CreditAmount,
		&dueDate,
		&order.OTPHash,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	order.Date = orderDate.Format(dateLayout)
	if dueDate != nil {
		formatted := dueDate.Format(dateLayout)
		order.DueDate = &formatted
	}
	return &order, nil
}
