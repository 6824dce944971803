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

// RentalService manages properties, tenants and rent collection.
type RentalService struct {
	rentals repository.RentalRepository
	now     func() time.Time
}

// NewRentalService builds the service.
func NewRentalService(rentals repository.RentalRepository) *RentalService {
	return &RentalService{rentals: rentals, now: time.Now}
}

// ListProperties returns all rentable units.
func (s *RentalService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.rentals.ListProperties(ctx)
}

// ListTenants returns all tenants.
func (s *RentalService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.rentals.ListTenants(ctx)
}

// RecordRentPayment reduces a tenant's pending dues, never below zero.
func (s *RentalService) RecordRentPayment(ctx context.Context, tenantID string, amount float64) (*domain.Tenant, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("payment amount must be positive", nil)
	}
	tenant, err := s.rentals.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tenant", map[string]any{"id": tenantID})
		}
		return nil, err
	}

	remaining := tenant.PendingDues - amount
	if remaining < 0 {
		remaining = 0
	}
	if err := s.rentals.UpdatePendingDues(ctx, tenantID, remaining); err != nil {
		return nil, err
	}
	tenant.PendingDues = remaining
	return tenant, nil
}

// TenantsWithDues returns tenants carrying unpaid rent.
func (s *RentalService) TenantsWithDues(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.rentals.ListTenants(ctx)
	if err != nil {
		return nil, err
	}
	var withDues []domain.Tenant
	for _, tenant := range tenants {
		if tenant.PendingDues > 0 {
			withDues = append(withDues, tenant)
		}
	}
	return withDues, nil
}

// ExpiringContracts returns tenants whose contract ends within the window.
func (s *RentalService) ExpiringContracts(ctx context.Context, withinDays int) ([]domain.Tenant, error) {
	tenants, err := s.rentals.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	cutoff := today.AddDate(0, 0, withinDays)
	var expiring []domain.Tenant
	for _, tenant := range tenants {
		expiry, err := time.Parse("2006-01-02", tenant.ContractExpiry)
		if err != nil {
			continue
		}
		if !expiry.Before(today.Truncate(24*time.Hour)) && !expiry.After(cutoff) {
			expiring = append(expiring, tenant)
		}
	}
	return expiring, nil
}
