// The dashboard binary is a terminal client for the business service: it
// restores the session from the stored token (or logs in interactively),
// then follows the simulated live order feed and prints its notices.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/apiclient"
	"github.com/smartbiz360/biz-service/internal/config"
	"github.com/smartbiz360/biz-service/internal/dashboard"
	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/feed"
	"github.com/smartbiz360/biz-service/internal/observability"
	"github.com/smartbiz360/biz-service/internal/session"
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

	client := apiclient.New(cfg.Client.APIBaseURL)
	store := session.NewFileTokenStore(cfg.Client.TokenPath, logger)
	manager := session.NewManager(store, client, logger)

	manager.Initialize()
	ctx := context.Background()

	if manager.State() != session.StateAuthenticated {
		if err := interactiveLogin(ctx, manager); err != nil {
			if msg, ok := manager.Err(); ok {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(1)
		}
	}

	user, _ := manager.CurrentUser()
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)

	orders, err := client.ListOrders(ctx)
	if err != nil {
		logger.Fatal("failed to fetch orders", zap.Error(err))
	}

	vm := dashboard.NewViewModel()
	vm.SetOrders(orders)
	printOrders(vm)

	simulator := feed.NewSimulator(&apiOrderSource{client: client}, feed.Config{
		Period:         cfg.Feed.TickPeriod(),
		SkipChance:     cfg.Feed.SkipChance,
		NewOrderChance: cfg.Feed.NewOrderChance,
		MinAmount:      cfg.Feed.MinAmount,
		MaxAmount:      cfg.Feed.MaxAmount,
	}, logger)

	subscription := simulator.Subscribe(func(event feed.Event) {
		vm.Apply(event)
		if notice, ok := vm.Notice(); ok {
			fmt.Println(notice)
		}
	})
	defer subscription.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("bye")
}

func interactiveLogin(ctx context.Context, manager *session.Manager) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("email: ")
	email, _ := reader.ReadString('\n')
	fmt.Print("password: ")
	password, _ := reader.ReadString('\n')

	return manager.Login(ctx, strings.TrimSpace(email), strings.TrimSpace(password))
}

func printOrders(vm *dashboard.ViewModel) {
	for _, order := range vm.Orders() {
		fmt.Printf("%s  %-20s %8.2f  %s\n", order.ID, order.CustomerName, order.Amount, order.Status)
	}
}

// apiOrderSource adapts the API client to the feed's order source contract.
type apiOrderSource struct {
	client *apiclient.Client
}

func (s *apiOrderSource) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.client.ListOrders(ctx)
}

func (s *apiOrderSource) CreateOrder(ctx context.Context, draft feed.OrderDraft) (*domain.Order, error) {
	return s.client.CreateOrder(ctx, dto.OrderCreateRequest{
		CustomerName: draft.CustomerName,
		Amount:       draft.Amount,
		Employee:     draft.Employee,
		PaymentType:  draft.PaymentType,
	})
}
