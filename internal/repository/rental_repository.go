package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbiz360/biz-service/internal/domain"
)

// RentalRepository defines persistence access for properties and tenants.
type RentalRepository interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
	UpdatePendingDues(ctx context.Context, tenantID string, pendingDues float64) error
}

type rentalRepository struct {
	pool *pgxpool.Pool
}

// NewRentalRepository returns a Postgres-backed implementation.
func NewRentalRepository(pool *pgxpool.Pool) RentalRepository {
	return &rentalRepository{pool: pool}
}

func (r *rentalRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	const query = `SELECT id, name, type, address FROM properties ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Address); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *rentalRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	const query = `
        SELECT id, name, property_id, rent_amount, deposit, due_day, contract_expiry, pending_dues
        FROM tenants ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, *tenant)
	}
	return tenants, rows.Err()
}

func (r *rentalRepository) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	const query = `
        SELECT id, name, property_id, rent_amount, deposit, due_day, contract_expiry, pending_dues
        FROM tenants WHERE id=$1`

	return scanTenant(r.pool.QueryRow(ctx, query, id))
}

func (r *rentalRepository) UpdatePendingDues(ctx context.Context, tenantID string, pendingDues float64) error {
	const query = `UPDATE tenants SET pending_dues=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, pendingDues, tenantID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var (
		tenant domain.Tenant
		expiry time.Time
	)
	if err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.PropertyID,
		&tenant.RentAmount,
		&tenant.Deposit,
		&tenant.DueDay,
		&expiry,
		&tenant.PendingDues,
	); err != nil {
		return nil, err
	}
	tenant.ContractExpiry = expiry.Format(dateLayout)
	return &tenant, nil
}
