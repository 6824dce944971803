package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/domain"
)

func TestLoginDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x", req.Email)

		json.NewEncoder(w).Encode(dto.LoginResponse{
			AccessToken: "tok-123",
			User:        &domain.User{ID: "U1", Name: "A", Email: "a@x", Role: domain.RoleOwner},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login(context.Background(), "a@x", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.AccessToken)
	assert.Equal(t, "U1", resp.User.ID)
}

func TestErrorBodySurfacesAsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "UNAUTHORIZED",
			"message": "invalid credentials",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), "a@x", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Equal(t, "invalid credentials", apiErr.Error())
}

func TestTokenAttachedAsBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dto.OrdersResponse{})
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetToken("tok-abc")

	_, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)

	client.ClearToken()
	_, err = client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestVerifyDeliveryOTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/ORD001/verify-otp", r.URL.Path)
		var req dto.OrderVerifyOTPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(dto.OrderVerifyOTPResponse{Verified: req.OTP == "123456"})
	}))
	defer server.Close()

	client := New(server.URL)

	ok, err := client.VerifyDeliveryOTP(context.Background(), "ORD001", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.VerifyDeliveryOTP(context.Background(), "ORD001", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}
