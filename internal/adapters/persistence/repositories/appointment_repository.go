package repositories

import (
	"context"
	"time"

	"hospital-hms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// appointmentRepository implements AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create creates a new appointment
func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Doctor", "BookedBy").
		Create(appointment).Error
}

// GetByAppointmentID gets an appointment by generated identifier
func (r *appointmentRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("BookedBy").
		Where("appointment_id = ?", appointmentID).
		First(&appointment).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &appointment, nil
}

// Update updates an appointment
func (r *appointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Doctor", "BookedBy").
		Save(appointment).Error
}

// List lists appointments matching the filter, ordered by date then time.
// A date filter matches the full calendar day.
func (r *appointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]*models.Appointment, error) {
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("BookedBy")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != nil {
		start := filter.Date.Truncate(24 * time.Hour)
		end := start.Add(24 * time.Hour)
		query = query.Where("appointment_date >= ? AND appointment_date < ?", start, end)
	}

	var appointments []*models.Appointment
	err := query.
		Order("appointment_date ASC").
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByPatient lists a patient's appointments, most recent date first
func (r *appointmentRepository) ListByPatient(ctx context.Context, patientPK uint) ([]*models.Appointment, error) {
	var appointments []*models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientPK).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
