package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/service"
)

// CustomersHandler exposes credit customer endpoints.
type CustomersHandler struct {
	credit *service.CreditService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(creditService *service.CreditService) *CustomersHandler {
	return &CustomersHandler{credit: creditService}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.credit.ListCustomers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"customers": customers})
}

// Analyze handles POST /customers/:id/score.
func (h *CustomersHandler) Analyze(c *fiber.Ctx) error {
	customer, err := h.credit.AnalyzeCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// RecordCredit handles POST /customers/:id/credits.
func (h *CustomersHandler) RecordCredit(c *fiber.Ctx) error {
	var req dto.CreditEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.credit.RecordCredit(c.Context(), c.Params("id"), domain.CreditEntry{
		Amount:     req.Amount,
		PaidOnTime: req.PaidOnTime,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(customer)
}
