package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/smartbiz360/biz-service/internal/api/http"
	"github.com/smartbiz360/biz-service/internal/api/http/handlers"
	"github.com/smartbiz360/biz-service/internal/auth"
	"github.com/smartbiz360/biz-service/internal/config"
	"github.com/smartbiz360/biz-service/internal/events"
	"github.com/smartbiz360/biz-service/internal/observability"
	"github.com/smartbiz360/biz-service/internal/persistence"
	"github.com/smartbiz360/biz-service/internal/repository"
	"github.com/smartbiz360/biz-service/internal/service"
	"github.com/smartbiz360/biz-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)
	complianceRepo := repository.NewComplianceRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	sessionRepo := repository.NewRefreshSessionRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
	})
	orderService := service.NewOrderService(orderRepo, dispatcher)
	creditService := service.NewCreditService(customerRepo)
	rentalService := service.NewRentalService(rentalRepo)
	reminderService := service.NewReminderService(complianceRepo, vehicleRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth),
		Orders:         handlers.NewOrdersHandler(orderService),
		Customers:      handlers.NewCustomersHandler(creditService),
		Rentals:        handlers.NewRentalsHandler(rentalService),
		Reminders:      handlers.NewRemindersHandler(reminderService),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
