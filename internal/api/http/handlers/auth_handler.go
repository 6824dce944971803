package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbiz360/biz-service/internal/api/dto"
	"github.com/smartbiz360/biz-service/internal/config"
	"github.com/smartbiz360/biz-service/internal/service"
)

const refreshCookieName = "refreshToken"

// AuthHandler exposes registration, login and refresh endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	authCfg config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: authService, authCfg: authCfg}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		Message: "user registered successfully",
		User:    user,
	})
}

// Login handles POST /auth/login. A refresh session cookie is set alongside
// the access token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    result.RefreshSessionID,
		Path:     "/auth",
		Expires:  time.Now().Add(h.authCfg.RefreshTokenTTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(dto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        result.User,
	})
}

// Refresh handles POST /auth/refresh using the refresh session cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, exp, err := h.auth.Refresh(c.Context(), c.Cookies(refreshCookieName))
	if err != nil {
		return err
	}
	return c.JSON(dto.RefreshResponse{AccessToken: token, ExpiresAt: exp})
}

// Logout handles POST /auth/logout. Revokes the refresh session and clears
// the cookie; safe to call when no session exists.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), c.Cookies(refreshCookieName)); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(fiber.Map{"message": "logged out successfully"})
}
