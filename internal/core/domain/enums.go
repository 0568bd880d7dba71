package domain

// Staff roles
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
	RoleClerk  = "registration_clerk"
)

// Patient statuses
const (
	PatientActive     = "active"
	PatientDischarged = "discharged"
	PatientReferred   = "referred"
)

// Admission statuses
const (
	AdmissionActive     = "active"
	AdmissionDischarged = "discharged"
)

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no-show"
)

// Doctor statuses
const (
	DoctorActive   = "active"
	DoctorInactive = "inactive"
	DoctorOnLeave  = "on-leave"
)

var (
	Roles = []string{RoleAdmin, RoleDoctor, RoleNurse, RoleClerk}

	Genders = []string{"male", "female", "other"}

	BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-", "Unknown"}

	PatientStatuses = []string{PatientActive, PatientDischarged, PatientReferred}

	Departments = []string{
		"Medicine", "Surgery", "Orthopedics", "Pediatrics", "ENT",
		"Ophthalmology", "Gynecology", "Dermatology", "Oncology",
	}

	Specializations = []string{
		"General Medicine", "Surgery", "Orthopedics", "Pediatrics", "ENT",
		"Ophthalmology", "Gynecology", "Dermatology", "Oncology", "Cardiology",
	}

	AppointmentStatuses = []string{
		AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow,
	}

	DoctorStatuses = []string{DoctorActive, DoctorInactive, DoctorOnLeave}

	Weekdays = []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}
)

// OneOf reports whether value is a member of the allowed set.
func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
