package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbiz360/biz-service/internal/domain"
)

// VehicleRepository defines persistence access for vehicles.
type VehicleRepository interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository returns a Postgres-backed implementation.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	const query = `
        SELECT id, name, number, puc_expiry, insurance_expiry, fc_expiry, road_tax_expiry
        FROM vehicles ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var (
			v                          domain.Vehicle
			puc, insurance, fc, roadTax time.Time
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Number, &puc, &insurance, &fc, &roadTax); err != nil {
			return nil, err
		}
		v.PUCExpiry = puc.Format(dateLayout)
		v.InsuranceExpiry = insurance.Format(dateLayout)
		v.FCExpiry = fc.Format(dateLayout)
		v.RoadTaxExpiry = roadTax.Format(dateLayout)
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
