package handlers

import (
	"net/url"

	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DoctorHandler handles doctor endpoints
type DoctorHandler struct {
	doctorService *services.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(doctorService *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// Register handles POST /api/doctors (admin only)
func (h *DoctorHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterDoctorInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	doctor, err := h.doctorService.Register(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, doctor)
}

// List handles GET /api/doctors?specialization=&department=&status= (public)
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	filter := repositories.DoctorFilter{
		Specialization: c.Query("specialization"),
		Department:     c.Query("department"),
		Status:         c.Query("status"),
	}

	doctors, err := h.doctorService.List(c.Context(), filter)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, len(doctors), doctors)
}

// Get handles GET /api/doctors/:id (public)
func (h *DoctorHandler) Get(c *fiber.Ctx) error {
	doctor, err := h.doctorService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, doctor)
}

// Update handles PUT /api/doctors/:id (admin, doctor)
func (h *DoctorHandler) Update(c *fiber.Ctx) error {
	var input services.UpdateDoctorInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	doctor, err := h.doctorService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, doctor)
}

// BySpecialization handles GET /api/doctors/specialization/:spec (public)
func (h *DoctorHandler) BySpecialization(c *fiber.Ctx) error {
	spec := c.Params("spec")
	if unescaped, err := url.PathUnescape(spec); err == nil {
		spec = unescaped
	}

	doctors, err := h.doctorService.ListBySpecialization(c.Context(), spec)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, len(doctors), doctors)
}
