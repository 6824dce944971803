// Package apiclient is the HTTP client used by the dashboard binary. The
// client object carries the current access token explicitly so independent
// sessions never share credentials.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/domain"
)

// APIError carries the server's error payload for a failed request.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client talks to the business service API.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New builds a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches the access token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken detaches the current credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Login exchanges credentials for an access token and user payload.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account without establishing a session.
func (c *Client) Register(ctx context.Context, name, email, password string, role domain.Role) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh asks for a fresh access token using the refresh session cookie.
func (c *Client) Refresh(ctx context.Context) (*dto.RefreshResponse, error) {
	var out dto.RefreshResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the refresh session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// ListOrders returns all orders, most recent first.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out dto.OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, req dto.OrderCreateRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus moves an order along its pipeline.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	var out domain.Order
	path := fmt.Sprintf("/orders/%s/status", orderID)
	if err := c.do(ctx, http.MethodPatch, path, dto.OrderStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateDeliveryOTP issues a delivery verification code for an order.
func (c *Client) GenerateDeliveryOTP(ctx context.Context, orderID string) (*dto.OrderOTPResponse, error) {
	var out dto.OrderOTPResponse
	path := fmt.Sprintf("/orders/%s/otp", orderID)
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyDeliveryOTP checks a delivery code against an order.
func (c *Client) VerifyDeliveryOTP(ctx context.Context, orderID, otp string) (bool, error) {
	var out dto.OrderVerifyOTPResponse
	path := fmt.Sprintf("/orders/%s/verify-otp", orderID)
	if err := c.do(ctx, http.MethodPost, path, dto.OrderVerifyOTPRequest{OTP: otp}, &out); err != nil {
		return false, err
	}
	return out.Verified, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
