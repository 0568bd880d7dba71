package middleware

import (
	"fmt"

	"hospital-hms/internal/core/domain"
	"hospital-hms/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Operation names a protected operation in the authorization table.
type Operation string

const (
	OpRegisterPatient   Operation = "patient:register"
	OpUpdatePatient     Operation = "patient:update"
	OpDeletePatient     Operation = "patient:delete"
	OpAdmitPatient      Operation = "admission:admit"
	OpRecordVitals      Operation = "admission:vitals"
	OpDischargePatient  Operation = "admission:discharge"
	OpBookAppointment   Operation = "appointment:book"
	OpUpdateAppointment Operation = "appointment:update"
	OpCancelAppointment Operation = "appointment:cancel"
	OpRegisterDoctor    Operation = "doctor:register"
	OpUpdateDoctor      Operation = "doctor:update"
)

// allowedRoles is the single authorization table consulted for every
// protected mutation. An empty role set means any authenticated identity.
var allowedRoles = map[Operation][]string{
	OpRegisterPatient:   {domain.RoleClerk, domain.RoleDoctor, domain.RoleNurse},
	OpUpdatePatient:     {domain.RoleDoctor, domain.RoleNurse},
	OpDeletePatient:     {domain.RoleAdmin},
	OpAdmitPatient:      {domain.RoleDoctor, domain.RoleNurse},
	OpRecordVitals:      {domain.RoleDoctor, domain.RoleNurse},
	OpDischargePatient:  {domain.RoleDoctor},
	OpBookAppointment:   {domain.RoleClerk, domain.RoleDoctor, domain.RoleNurse},
	OpUpdateAppointment: {domain.RoleDoctor, domain.RoleNurse, domain.RoleClerk},
	OpCancelAppointment: {},
	OpRegisterDoctor:    {domain.RoleAdmin},
	OpUpdateDoctor:      {domain.RoleAdmin, domain.RoleDoctor},
}

// Authorize enforces the role table for one operation. It must run after
// AuthMiddleware has attached the identity.
func Authorize(op Operation) fiber.Handler {
	roles := allowedRoles[op]

	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return response.Error(c, fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		if len(roles) == 0 {
			return c.Next()
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return response.Error(c, fiber.StatusForbidden,
			fmt.Sprintf("User role %s is not authorized to access this route", user.Role))
	}
}
