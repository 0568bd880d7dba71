package repositories

import (
	"context"
	"errors"
	"time"

	"hospital-hms/internal/adapters/persistence/models"
)

// ErrNotFound is returned when a record does not exist, regardless of the
// backing store.
var ErrNotFound = errors.New("record not found")

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PatientRepository defines patient repository interface
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByPatientID(ctx context.Context, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID string) error
	List(ctx context.Context) ([]*models.Patient, error)
}

// AdmissionRepository defines admission repository interface
type AdmissionRepository interface {
	Create(ctx context.Context, admission *models.Admission) error
	GetByAdmissionID(ctx context.Context, admissionID string) (*models.Admission, error)
	Update(ctx context.Context, admission *models.Admission) error
	AppendVital(ctx context.Context, vital *models.VitalSign) error
	List(ctx context.Context) ([]*models.Admission, error)
}

// AppointmentFilter narrows appointment listings. A nil Date means no date
// filter; a set Date matches the full calendar day.
type AppointmentFilter struct {
	Status string
	Date   *time.Time
}

// AppointmentRepository defines appointment repository interface
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByAppointmentID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	List(ctx context.Context, filter AppointmentFilter) ([]*models.Appointment, error)
	ListByPatient(ctx context.Context, patientPK uint) ([]*models.Appointment, error)
}

// DoctorFilter narrows doctor listings. Empty fields match everything.
type DoctorFilter struct {
	Specialization string
	Department     string
	Status         string
}

// DoctorRepository defines doctor repository interface
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByDoctorID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	List(ctx context.Context, filter DoctorFilter) ([]*models.Doctor, error)
}

// SequenceRepository hands out monotonically increasing counter values.
// Next must be atomic across concurrent callers of the same name.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (uint64, error)
}
