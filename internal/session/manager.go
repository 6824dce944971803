package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/smartbiz360/biz-service/internal/apiclient"
	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/auth"
	"github.com/smartbiz360/biz-service/internal/domain"
)

// State names the session lifecycle phases.
type State string

const (
	StateInitializing    State = "initializing"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// AuthAPI is the backend surface the manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Register(ctx context.Context, name, email, password string, role domain.Role) (*dto.RegisterResponse, error)
	SetToken(token string)
	ClearToken()
}

// Manager owns the current-user session: it derives the user from a stored
// token at startup and drives login, register and logout against the API.
type Manager struct {
	store  TokenStore
	api    AuthAPI
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	state   State
	user    *domain.User
	lastErr string
	busy    bool
}

// NewManager builds a manager in the Initializing state.
func NewManager(store TokenStore, api AuthAPI, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		api:    api,
		logger: logger,
		now:    time.Now,
		state:  StateInitializing,
	}
}

// Initialize derives session state from the stored token without a network
// call. The token's claims are decoded but not signature-checked here; the
// server re-verifies the signature on every API request, so a forged token
// only ever yields a local shell that cannot read any data. Expired or
// undecodable tokens are cleared from the store.
func (m *Manager) Initialize() {
	token, ok := m.store.Load()
	if !ok {
		m.setUnauthenticated()
		return
	}

	claims, err := auth.DecodeUnverified(token)
	if err != nil {
		m.logger.Warn("stored token is not decodable; discarding", zap.Error(err))
		m.store.Clear()
		m.setUnauthenticated()
		return
	}
	if claims.Expired(m.now()) {
		m.store.Clear()
		m.setUnauthenticated()
		return
	}

	m.api.SetToken(token)
	m.mu.Lock()
	m.user = claims.User()
	m.state = StateAuthenticated
	m.mu.Unlock()
}

// Login authenticates against the backend. On success the token is
// persisted and attached to the API client; on failure the current user is
// left untouched and the error message is surfaced on the error slot.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.beginAttempt()
	defer m.endAttempt()

	result, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.setError(err, "login failed, please check your credentials")
		return err
	}

	m.store.Save(result.AccessToken)
	m.api.SetToken(result.AccessToken)

	m.mu.Lock()
	m.user = result.User
	m.state = StateAuthenticated
	m.lastErr = ""
	m.mu.Unlock()
	return nil
}

// Register creates an account but does not establish a session; callers
// log in explicitly afterwards. A duplicate email surfaces the backend's
// conflict message.
func (m *Manager) Register(ctx context.Context, name, email, password string, role domain.Role) error {
	m.beginAttempt()
	defer m.endAttempt()

	if _, err := m.api.Register(ctx, name, email, password, role); err != nil {
		m.setError(err, "registration failed, please try again")
		return err
	}
	return nil
}

// Logout clears the current user, the stored token and the client
// credential. It always succeeds and is idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()

	m.store.Clear()
	m.api.ClearToken()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated user, if any.
func (m *Manager) CurrentUser() (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, false
	}
	userCopy := *m.user
	return &userCopy, true
}

// Err returns the most recent auth error message. It is a single slot: each
// attempt overwrites it.
func (m *Manager) Err() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr, m.lastErr != ""
}

// ClearErr empties the error slot, e.g. when switching between forms.
func (m *Manager) ClearErr() {
	m.mu.Lock()
	m.lastErr = ""
	m.mu.Unlock()
}

// Busy reports whether a login or register attempt is in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.user = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
}

func (m *Manager) beginAttempt() {
	m.mu.Lock()
	m.busy = true
	m.lastErr = ""
	m.mu.Unlock()
}

func (m *Manager) endAttempt() {
	m.mu.Lock()
	m.busy = false
	m.mu.Unlock()
}

func (m *Manager) setError(err error, fallback string) {
	message := fallback
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	m.mu.Lock()
	m.lastErr = message
	m.mu.Unlock()
}
