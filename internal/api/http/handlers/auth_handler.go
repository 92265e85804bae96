package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/unimeet/unimeet-api/internal/api/dto"
	"github.com/unimeet/unimeet-api/internal/service"
	apperrors "github.com/unimeet/unimeet-api/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Geçersiz istek.")
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		UserID:    result.User.ID,
		Email:     result.User.Email,
		FullName:  result.User.FullName,
		Role:      string(result.User.Role),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}
