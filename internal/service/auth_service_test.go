package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartbiz360/biz-service/internal/config"
	"github.com/smartbiz360/biz-service/internal/domain"
	apperrors "github.com/smartbiz360/biz-service/pkg/util/errorutil"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			RefreshTokenTTLHours:  168,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newTestAuthService() (*AuthService, *memUserRepo, *memSessionRepo) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo()
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, SessionRepo: sessions})
	return svc, users, sessions
}

func TestRegisterCreatesUser(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Alice  ", "Alice@Example.COM", "secret123", domain.RoleOwner)
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleOwner)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "alice@example.com", "secret456", domain.RoleEmployee)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "user with this email already exists", domainErr.Message)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     domain.Role
	}{
		{"missing name", "", "a@x", "secret123", domain.RoleOwner},
		{"missing email", "A", "", "secret123", domain.RoleOwner},
		{"missing password", "A", "a@x", "", domain.RoleOwner},
		{"unknown role", "A", "a@x", "secret123", domain.Role("Superadmin")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.userName, tc.email, tc.password, tc.role)
			require.Error(t, err)
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		})
	}
}

func TestLoginIssuesTokenAndSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleOwner)
	require.NoError(t, err)

	result, err := svc.Login(ctx, "Alice@Example.com ", "secret123")
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshSessionID)
	assert.False(t, result.ExpiresAt.IsZero())

	claims, err := svc.TokenManager().Parse(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, domain.RoleOwner, claims.Role)

	userID, err := sessions.Get(ctx, result.RefreshSessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleOwner)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret123"},
		{"wrong password", "alice@example.com", "wrong"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.email, tc.password)
			require.Error(t, err)
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
			assert.Equal(t, "invalid credentials", domainErr.Message)
		})
	}
}

func TestRefreshRotatesAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleOwner)
	require.NoError(t, err)
	result, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	token, expiresAt, err := svc.Refresh(ctx, result.RefreshSessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestRefreshRejectsUnknownSession(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Refresh(context.Background(), "no-such-session")
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret123", domain.RoleOwner)
	require.NoError(t, err)
	result, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RefreshSessionID))
	_, err = sessions.Get(ctx, result.RefreshSessionID)
	assert.Error(t, err)

	// unknown or empty sessions are a no-op
	assert.NoError(t, svc.Logout(ctx, result.RefreshSessionID))
	assert.NoError(t, svc.Logout(ctx, ""))
}
