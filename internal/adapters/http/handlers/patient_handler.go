package handlers

import (
	"hospital-hms/internal/adapters/http/middleware"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PatientHandler handles patient endpoints
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// Register handles POST /api/patients (clerk, doctor, nurse)
func (h *PatientHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterPatientInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	patient, err := h.patientService.Register(c.Context(), &input, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, patient)
}

// List handles GET /api/patients
func (h *PatientHandler) List(c *fiber.Ctx) error {
	patients, err := h.patientService.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, len(patients), patients)
}

// Get handles GET /api/patients/:id
func (h *PatientHandler) Get(c *fiber.Ctx) error {
	patient, err := h.patientService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, patient)
}

// Update handles PUT /api/patients/:id (doctor, nurse)
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	var input services.UpdatePatientInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	patient, err := h.patientService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, patient)
}

// Delete handles DELETE /api/patients/:id (admin only)
func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	if err := h.patientService.Delete(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, fiber.Map{})
}
