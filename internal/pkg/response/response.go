package response

import (
	"errors"
	"log"

	"hospital-hms/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Success sends a 200 response with a data payload
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Created sends a 201 response with a data payload
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// List sends a 200 response with a count and a data payload
func List(c *fiber.Ctx, count int, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// Auth sends a response carrying a session token and the user
func Auth(c *fiber.Ctx, status int, token string, user interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// User sends a 200 response with the current user
func User(c *fiber.Ctx, user interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Error sends an error response with the {error: message} body
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// statusByKind is the single place error kinds map to HTTP statuses.
// Conflict maps to 400: duplicate unique fields surface as bad requests.
var statusByKind = map[domain.Kind]int{
	domain.KindValidation:   fiber.StatusBadRequest,
	domain.KindConflict:     fiber.StatusBadRequest,
	domain.KindUnauthorized: fiber.StatusUnauthorized,
	domain.KindForbidden:    fiber.StatusForbidden,
	domain.KindNotFound:     fiber.StatusNotFound,
	domain.KindInternal:     fiber.StatusInternalServerError,
}

// FromError maps a service error to its HTTP response. Unclassified errors
// are logged and returned as a generic 500 so internals never leak.
func FromError(c *fiber.Ctx, err error) error {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		status, ok := statusByKind[domainErr.Kind]
		if !ok {
			status = fiber.StatusInternalServerError
		}
		if domainErr.Kind == domain.KindInternal {
			log.Printf("internal error: %v", err)
			return Error(c, status, "Something went wrong!")
		}
		return Error(c, status, domainErr.Message)
	}

	log.Printf("unhandled error: %v", err)
	return Error(c, fiber.StatusInternalServerError, "Something went wrong!")
}
