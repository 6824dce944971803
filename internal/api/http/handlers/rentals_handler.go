package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/service"
)

// RentalsHandler exposes property and tenant endpoints.
type RentalsHandler struct {
	rentals *service.RentalService
}

// NewRentalsHandler constructs handler.
func NewRentalsHandler(rentalService *service.RentalService) *RentalsHandler {
	return &RentalsHandler{rentals: rentalService}
}

// ListProperties handles GET /properties.
func (h *RentalsHandler) ListProperties(c *fiber.Ctx) error {
	properties, err := h.rentals.ListProperties(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"properties": properties})
}

// ListTenants handles GET /tenants. With ?dues=true only tenants carrying
// unpaid rent are returned.
func (h *RentalsHandler) ListTenants(c *fiber.Ctx) error {
	if c.QueryBool("dues") {
		tenants, err := h.rentals.TenantsWithDues(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"tenants": tenants})
	}

	tenants, err := h.rentals.ListTenants(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tenants": tenants})
}

// RecordPayment handles POST /tenants/:id/payments.
func (h *RentalsHandler) RecordPayment(c *fiber.Ctx) error {
	var req dto.RentPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	tenant, err := h.rentals.RecordRentPayment(c.Context(), c.Params("id"), req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(tenant)
}

// ExpiringContracts handles GET /tenants/expiring?days=N.
func (h *RentalsHandler) ExpiringContracts(c *fiber.Ctx) error {
	days := c.QueryInt("days", 60)
	tenants, err := h.rentals.ExpiringContracts(c.Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tenants": tenants})
}
