package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/events"
	"github.com/smartbiz360/biz-service/internal/repository"
)

// memUserRepo is an in-memory repository.UserRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = fmt.Sprintf("U%d", r.seq)
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *user
	return &found, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// memSessionRepo is an in-memory repository.RefreshSessionRepository.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]string
	seq      int
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]string{}}
}

func (r *memSessionRepo) Create(_ context.Context, userID string, _ time.Duration) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	sessionID := fmt.Sprintf("S%d", r.seq)
	r.sessions[sessionID] = userID
	return sessionID, nil
}

func (r *memSessionRepo) Get(_ context.Context, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, ok := r.sessions[sessionID]
	if !ok {
		return "", repository.ErrSessionNotFound
	}
	return userID, nil
}

func (r *memSessionRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// memOrderRepo is an in-memory repository.OrderRepository.
type memOrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
	seq    int
}

func newMemOrderRepo(seed ...domain.Order) *memOrderRepo {
	r := &memOrderRepo{orders: append([]domain.Order{}, seed...), seq: len(seed)}
	return r
}

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	order.ID = fmt.Sprintf("ORD%03d", r.seq)
	order.Status = domain.OrderStatusPending
	order.Date = time.Now().Format("2006-01-02")
	r.orders = append([]domain.Order{*order}, r.orders...)
	return nil
}

func (r *memOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Order{}, r.orders...), nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			found := r.orders[i]
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memOrderRepo) SetDeliveryOTP(_ context.Context, id, otpHash string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].OTPHash = otpHash
			r.orders[i].Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

// memCustomerRepo is an in-memory repository.CustomerRepository.
type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*domain.Customer
}

func newMemCustomerRepo(seed ...domain.Customer) *memCustomerRepo {
	r := &memCustomerRepo{customers: map[string]*domain.Customer{}}
	for i := range seed {
		customer := seed[i]
		r.customers[customer.ID] = &customer
	}
	return r
}

func (r *memCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var customers []domain.Customer
	for _, customer := range r.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *customer
	found.CreditHistory = append([]domain.CreditEntry{}, customer.CreditHistory...)
	return &found, nil
}

func (r *memCustomerRepo) UpdateScore(_ context.Context, id string, riskScore int, predictedRepaymentDate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	if !ok {
		return pgx.ErrNoRows
	}
	customer.RiskScore = riskScore
	customer.PredictedRepaymentDate = predictedRepaymentDate
	return nil
}

func (r *memCustomerRepo) AddCreditEntry(_ context.Context, customerID string, entry domain.CreditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[customerID]
	if !ok {
		return pgx.ErrNoRows
	}
	customer.CreditHistory = append(customer.CreditHistory, entry)
	return nil
}

// memRentalRepo is an in-memory repository.RentalRepository.
type memRentalRepo struct {
	mu         sync.Mutex
	properties []domain.Property
	tenants    map[string]*domain.Tenant
}

func newMemRentalRepo(tenants ...domain.Tenant) *memRentalRepo {
	r := &memRentalRepo{tenants: map[string]*domain.Tenant{}}
	for i := range tenants {
		tenant := tenants[i]
		r.tenants[tenant.ID] = &tenant
	}
	return r
}

func (r *memRentalRepo) ListProperties(_ context.Context) ([]domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Property{}, r.properties...), nil
}

func (r *memRentalRepo) ListTenants(_ context.Context) ([]domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tenants []domain.Tenant
	for _, tenant := range r.tenants {
		tenants = append(tenants, *tenant)
	}
	return tenants, nil
}

func (r *memRentalRepo) GetTenant(_ context.Context, id string) (*domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tenant, ok := r.tenants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *tenant
	return &found, nil
}

func (r *memRentalRepo) UpdatePendingDues(_ context.Context, tenantID string, pendingDues float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tenant, ok := r.tenants[tenantID]
	if !ok {
		return pgx.ErrNoRows
	}
	tenant.PendingDues = pendingDues
	return nil
}

// stubComplianceRepo serves a fixed compliance list.
type stubComplianceRepo struct {
	items []domain.ComplianceItem
}

func (r *stubComplianceRepo) List(_ context.Context) ([]domain.ComplianceItem, error) {
	return append([]domain.ComplianceItem{}, r.items...), nil
}

// stubVehicleRepo serves a fixed vehicle list.
type stubVehicleRepo struct {
	vehicles []domain.Vehicle
}

func (r *stubVehicleRepo) List(_ context.Context) ([]domain.Vehicle, error) {
	return append([]domain.Vehicle{}, r.vehicles...), nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) {
	d.mu.Lock()
	d.events = append(d.events, event)
	d.mu.Unlock()
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
