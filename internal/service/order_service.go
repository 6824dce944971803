package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smartbiz360/biz-service/internal/auth"
	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/events"
	"github.com/smartbiz360/biz-service/internal/repository"
	apperrors "github.com/smartbiz360/biz-service/pkg/util/errorutil"
)

// OrderService coordinates order workflows.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// OrderCreateInput describes order creation payload.
type OrderCreateInput struct {
	CustomerName string
	Amount       float64
	Employee     string
	PaymentType  domain.PaymentType
	CreditAmount *float64
	DueDate      *string
}

// Create persists a new order with server-assigned id, Pending status and
// today's date, then publishes an order_created event.
func (s *OrderService) Create(ctx context.Context, input OrderCreateInput) (*domain.Order, error) {
	if input.CustomerName == "" || input.Employee == "" {
		return nil, apperrors.NewValidationError("customer name and employee are required", nil)
	}
	if input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", nil)
	}
	switch input.PaymentType {
	case domain.PaymentFull, domain.PaymentAdvance:
	case domain.PaymentCredit:
		if input.CreditAmount == nil || *input.CreditAmount <= 0 {
			return nil, apperrors.NewValidationError("credit orders require a credit amount", nil)
		}
	default:
		return nil, apperrors.NewValidationError("unknown payment type", map[string]any{"paymentType": input.PaymentType})
	}

	order := &domain.Order{
		CustomerName: input.CustomerName,
		Amount:       input.Amount,
		Employee:     input.Employee,
		PaymentType:  input.PaymentType,
		CreditAmount: input.CreditAmount,
		DueDate:      input.DueDate,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventOrderCreated, order.ID, events.OrderCreatedPayload{
		CustomerName: order.CustomerName,
		Employee:     order.Employee,
		Amount:       order.Amount,
		PaymentType:  order.PaymentType,
	})
	return order, nil
}

// List returns all orders, most recent first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Get returns one order by id.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", map[string]any{"id": id})
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order along the delivery pipeline.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, newStatus domain.OrderStatus) (*domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(newStatus) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("cannot move order from %q to %q", order.Status, newStatus), nil)
	}
	if err := s.orders.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	oldStatus := order.Status
	order.Status = newStatus
	s.publish(ctx, events.EventOrderStatusChanged, order.ID, events.OrderStatusChangedPayload{
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
	return order, nil
}

// GenerateDeliveryOTP issues a one-time delivery code and stages the order
// for delivery. The plaintext code is returned exactly once.
func (s *OrderService) GenerateDeliveryOTP(ctx context.Context, id string) (string, *domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}
	switch order.Status {
	case domain.OrderStatusConfirmed, domain.OrderStatusReadyForDelivery:
	default:
		return "", nil, apperrors.NewValidationError(
			fmt.Sprintf("cannot issue delivery code for order in status %q", order.Status), nil)
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return "", nil, err
	}
	hash, err := auth.HashOTP(otp)
	if err != nil {
		return "", nil, err
	}
	if err := s.orders.SetDeliveryOTP(ctx, id, hash, domain.OrderStatusReadyForDelivery); err != nil {
		return "", nil, err
	}

	if order.Status != domain.OrderStatusReadyForDelivery {
		s.publish(ctx, events.EventOrderStatusChanged, order.ID, events.OrderStatusChangedPayload{
			OldStatus: order.Status,
			NewStatus: domain.OrderStatusReadyForDelivery,
		})
	}
	order.Status = domain.OrderStatusReadyForDelivery
	return otp, order, nil
}

// VerifyDeliveryOTP checks a delivery code. On match the order is marked
// Delivered; on mismatch the order is untouched and false is returned.
func (s *OrderService) VerifyDeliveryOTP(ctx context.Context, id, otp string) (bool, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if order.OTPHash == "" {
		return false, apperrors.NewValidationError("no delivery code issued for this order", nil)
	}
	if err := auth.CompareOTP(order.OTPHash, otp); err != nil {
		return false, nil
	}

	if err := s.orders.UpdateStatus(ctx, id, domain.OrderStatusDelivered); err != nil {
		return false, err
	}
	s.publish(ctx, events.EventOrderDelivered, order.ID, events.OrderDeliveredPayload{
		CustomerName: order.CustomerName,
		Employee:     order.Employee,
	})
	return true, nil
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, orderID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		OrderID:   orderID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
