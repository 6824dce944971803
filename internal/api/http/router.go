package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartbiz360/biz-service/internal/api/http/handlers"
	"github.com/smartbiz360/biz-service/internal/auth"
	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Orders         *handlers.OrdersHandler
	Customers      *handlers.CustomersHandler
	Rentals        *handlers.RentalsHandler
	Reminders      *handlers.RemindersHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	orders := protected.Group("/orders")
	orders.Get("", auth.RequireRole(), cfg.Orders.List)
	orders.Post("", auth.RequireRole(domain.RoleOwner, domain.RoleEmployee), cfg.Orders.Create)
	orders.Get("/:id", auth.RequireRole(), cfg.Orders.Get)
	orders.Patch("/:id/status", auth.RequireRole(domain.RoleOwner, domain.RoleEmployee, domain.RoleDelivery), cfg.Orders.UpdateStatus)
	orders.Post("/:id/otp", auth.RequireRole(domain.RoleOwner, domain.RoleEmployee), cfg.Orders.GenerateOTP)
	orders.Post("/:id/verify-otp", auth.RequireRole(domain.RoleOwner, domain.RoleDelivery), cfg.Orders.VerifyOTP)

	books := auth.RequireRole(domain.RoleOwner, domain.RoleAccountant)
	protected.Get("/customers", books, cfg.Customers.List)
	protected.Post("/customers/:id/score", books, cfg.Customers.Analyze)
	protected.Post("/customers/:id/credits", books, cfg.Customers.RecordCredit)

	protected.Get("/properties", books, cfg.Rentals.ListProperties)
	protected.Get("/tenants", books, cfg.Rentals.ListTenants)
	protected.Get("/tenants/expiring", books, cfg.Rentals.ExpiringContracts)
	protected.Post("/tenants/:id/payments", books, cfg.Rentals.RecordPayment)

	protected.Get("/compliance", books, cfg.Reminders.ListCompliance)
	protected.Get("/vehicles", books, cfg.Reminders.ListVehicles)
	protected.Get("/reminders", books, cfg.Reminders.Upcoming)

	protected.Get("/metrics", auth.RequireRole(domain.RoleOwner), func(c *fiber.Ctx) error {
		return c.JSON(cfg.Metrics.Snapshot())
	})
}
