package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/flight-service/internal/api/dto"
	"github.com/spec-kit/flight-service/internal/service"
	apperrors "github.com/spec-kit/flight-service/pkg/util"
)

// AuthHandler exposes registration, login and token-lifecycle endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("first_name, last_name, email, password required", nil)
	}

	user, pair, err := h.auth.Register(c.UserContext(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.NewTokenPairResponse(pair),
		},
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, pair, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.NewTokenPairResponse(pair),
		},
	})
}

// Refresh handles POST /api/v1/auth/refresh-token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.RefreshToken == "" {
		return apperrors.NewValidationError("refresh_token required", nil)
	}

	pair, err := h.auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"auth": dto.NewTokenPairResponse(pair)}})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AccessToken == "" || req.RefreshToken == "" {
		return apperrors.NewValidationError("access_token and refresh_token required", nil)
	}

	if err := h.auth.Logout(c.UserContext(), req.AccessToken, req.RefreshToken); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}
