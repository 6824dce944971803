package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartbiz360/biz-service/internal/service"
)

// RemindersHandler exposes compliance and vehicle reminder endpoints.
type RemindersHandler struct {
	reminders *service.ReminderService
}

// NewRemindersHandler constructs handler.
func NewRemindersHandler(reminderService *service.ReminderService) *RemindersHandler {
	return &RemindersHandler{reminders: reminderService}
}

// ListCompliance handles GET /compliance.
func (h *RemindersHandler) ListCompliance(c *fiber.Ctx) error {
	items, err := h.reminders.ListCompliance(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items})
}

// ListVehicles handles GET /vehicles.
func (h *RemindersHandler) ListVehicles(c *fiber.Ctx) error {
	vehicles, err := h.reminders.ListVehicles(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"vehicles": vehicles})
}

// Upcoming handles GET /reminders?days=N.
func (h *RemindersHandler) Upcoming(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	reminders, err := h.reminders.Upcoming(c.Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}
