package handlers

import (
	"hospital-hms/internal/adapters/http/middleware"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Auth(c, fiber.StatusCreated, token, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Auth(c, fiber.StatusOK, token, user)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return response.User(c, middleware.CurrentUser(c))
}
