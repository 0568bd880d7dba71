package handlers

import (
	"hospital-hms/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "healthy"
	if h.db == nil {
		dbStatus = "disabled"
	} else if err := config.HealthCheck(h.db); err != nil {
		dbStatus = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "Hospital API is running",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}
