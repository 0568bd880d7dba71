package handlers

import (
	"hospital-hms/internal/adapters/http/middleware"
	"hospital-hms/internal/core/services"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles appointment endpoints
type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Book handles POST /api/appointments (clerk, doctor, nurse)
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	var input services.BookAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	appointment, err := h.appointmentService.Book(c.Context(), &input, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, appointment)
}

// List handles GET /api/appointments?status=&date=
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	filter := services.ListFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	appointments, err := h.appointmentService.List(c.Context(), filter)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, len(appointments), appointments)
}

// Get handles GET /api/appointments/:id
func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	appointment, err := h.appointmentService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, appointment)
}

// Update handles PUT /api/appointments/:id (doctor, nurse, clerk)
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var input services.UpdateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	appointment, err := h.appointmentService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, appointment)
}

// Cancel handles PUT /api/appointments/:id/cancel (any authenticated)
func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	appointment, err := h.appointmentService.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, appointment)
}

// ListForPatient handles GET /api/appointments/patient/:patientId
func (h *AppointmentHandler) ListForPatient(c *fiber.Ctx) error {
	appointments, err := h.appointmentService.ListForPatient(c.Context(), c.Params("patientId"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.List(c, len(appointments), appointments)
}
