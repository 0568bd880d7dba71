package middleware

import (
	"strings"

	"hospital-hms/internal/adapters/persistence/models"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

// AuthMiddleware guards protected routes. It extracts the bearer token,
// resolves it to an identity through the auth service and attaches the
// identity to the request context for downstream handlers.
func AuthMiddleware(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			return response.Error(c, fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		user, err := authService.Authenticate(c.Context(), token)
		if err != nil {
			return response.FromError(c, err)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the identity attached by AuthMiddleware, or nil on
// unguarded routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
