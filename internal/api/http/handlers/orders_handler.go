package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/service"
)

// OrdersHandler exposes order tracking endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// List handles GET /orders, most recent first.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OrdersResponse{Orders: orders})
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.orders.Create(c.Context(), service.OrderCreateInput{
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		Employee:     req.Employee,
		PaymentType:  req.PaymentType,
		CreditAmount: req.CreditAmount,
		DueDate:      req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(order)
}

// Get handles GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.orders.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// GenerateOTP handles POST /orders/:id/otp. The plaintext code is returned
// once; only its hash is stored.
func (h *OrdersHandler) GenerateOTP(c *fiber.Ctx) error {
	otp, order, err := h.orders.GenerateDeliveryOTP(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderOTPResponse{OrderID: order.ID, OTP: otp, Order: order})
}

// VerifyOTP handles POST /orders/:id/verify-otp.
func (h *OrdersHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.OrderVerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	verified, err := h.orders.VerifyDeliveryOTP(c.Context(), c.Params("id"), req.OTP)
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderVerifyOTPResponse{OrderID: c.Params("id"), Verified: verified})
}
