package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbiz360/biz-service/internal/domain"
)

// ComplianceRepository defines persistence access for compliance items.
type ComplianceRepository interface {
	List(ctx context.Context) ([]domain.ComplianceItem, error)
}

type complianceRepository struct {
	pool *pgxpool.Pool
}

// NewComplianceRepository returns a Postgres-backed implementation.
func NewComplianceRepository(pool *pgxpool.Pool) ComplianceRepository {
	return &complianceRepository{pool: pool}
}

func (r *complianceRepository) List(ctx context.Context) ([]domain.ComplianceItem, error) {
	const query = `SELECT id, name, due_date, category FROM compliance_items ORDER BY due_date`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ComplianceItem
	for rows.Next() {
		var (
			item    domain.ComplianceItem
			dueDate time.Time
		)
		if err := rows.Scan(&item.ID, &item.Name, &dueDate, &item.Category); err != nil {
			return nil, err
		}
		item.DueDate = dueDate.Format(dateLayout)
		items = append(items, item)
	}
	return items, rows.Err()
}
