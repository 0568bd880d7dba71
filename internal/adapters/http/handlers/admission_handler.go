package handlers

import (
	"hospital-hms/internal/adapters/http/middleware"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdmissionHandler handles admission endpoints
type AdmissionHandler struct {
	admissionService *services.AdmissionService
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(admissionService *services.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissionService: admissionService}
}

// Admit handles POST /api/admissions (doctor, nurse)
func (h *AdmissionHandler) Admit(c *fiber.Ctx) error {
	var input services.AdmitInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admission, err := h.admissionService.Admit(c.Context(), &input, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, admission)
}

// List handles GET /api/admissions
func (h *AdmissionHandler) List(c *fiber.Ctx) error {
	admissions, err := h.admissionService.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, len(admissions), admissions)
}

// Get handles GET /api/admissions/:id
func (h *AdmissionHandler) Get(c *fiber.Ctx) error {
	admission, err := h.admissionService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, admission)
}

// RecordVitals handles PUT /api/admissions/:id/vitals (doctor, nurse)
func (h *AdmissionHandler) RecordVitals(c *fiber.Ctx) error {
	var input services.VitalSignInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admission, err := h.admissionService.RecordVitals(c.Context(), c.Params("id"), &input, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, admission)
}

// DischargeRequest represents discharge request body
type DischargeRequest struct {
	DischargeSummary string `json:"dischargeSummary"`
}

// Discharge handles PUT /api/admissions/:id/discharge (doctor only)
func (h *AdmissionHandler) Discharge(c *fiber.Ctx) error {
	var req DischargeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admission, err := h.admissionService.Discharge(c.Context(), c.Params("id"), req.DischargeSummary)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, admission)
}
