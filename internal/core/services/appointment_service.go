package services

import (
	"context"
	"errors"
	"time"

	"hospital-hms/internal/adapters/persistence/models"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/core/domain"
	"hospital-hms/internal/pkg/identifier"
)

const dateLayout = "2006-01-02"

// AppointmentService owns scheduled visits and their status transitions.
// No double-booking or availability-overlap checks are performed.
type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	patientRepo     repositories.PatientRepository
	doctorRepo      repositories.DoctorRepository
	idgen           *identifier.Generator
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	patientRepo repositories.PatientRepository,
	doctorRepo repositories.DoctorRepository,
	sequences repositories.SequenceRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		idgen:           identifier.NewGenerator(sequences),
	}
}

// BookAppointmentInput represents booking input
type BookAppointmentInput struct {
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason"`
	Type            string `json:"type"`
}

func (in *BookAppointmentInput) validate() (time.Time, error) {
	var v domain.Violations
	var date time.Time

	if in.PatientID == "" {
		v.Add("patientId", "is required")
	}
	if in.DoctorID == "" {
		v.Add("doctorId", "is required")
	}
	if in.AppointmentDate == "" {
		v.Add("appointmentDate", "is required")
	} else {
		parsed, err := time.Parse(dateLayout, in.AppointmentDate)
		if err != nil {
			v.Add("appointmentDate", "must be a date in YYYY-MM-DD format")
		} else {
			date = parsed
		}
	}
	if in.AppointmentTime == "" {
		v.Add("appointmentTime", "is required")
	}

	return date, v.Err()
}

// Book schedules a visit after resolving both the patient and the doctor
func (s *AppointmentService) Book(ctx context.Context, input *BookAppointmentInput, actor *models.User) (*models.Appointment, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.GetByPatientID(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Patient not found")
		}
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByDoctorID(ctx, input.DoctorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Doctor not found")
		}
		return nil, err
	}

	appointmentID, err := s.idgen.Next(ctx, identifier.TypeAppointment)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		AppointmentID:   appointmentID,
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: date,
		AppointmentTime: input.AppointmentTime,
		Reason:          input.Reason,
		Type:            input.Type,
		BookedByID:      actor.ID,
		Status:          domain.AppointmentScheduled,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	appointment.Patient = patient
	appointment.Doctor = doctor
	appointment.BookedBy = actor
	return appointment, nil
}

// UpdateAppointmentInput represents a partial appointment update
type UpdateAppointmentInput struct {
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
	Reason          *string `json:"reason"`
	Type            *string `json:"type"`
	Status          *string `json:"status"`
}

func (in *UpdateAppointmentInput) validate() (*time.Time, error) {
	var v domain.Violations
	var date *time.Time

	if in.AppointmentDate != nil {
		parsed, err := time.Parse(dateLayout, *in.AppointmentDate)
		if err != nil {
			v.Add("appointmentDate", "must be a date in YYYY-MM-DD format")
		} else {
			date = &parsed
		}
	}
	if in.AppointmentTime != nil && *in.AppointmentTime == "" {
		v.Add("appointmentTime", "cannot be empty")
	}
	if in.Status != nil && !domain.OneOf(*in.Status, domain.AppointmentStatuses) {
		v.Add("status", "must be one of scheduled, completed, cancelled, no-show")
	}

	return date, v.Err()
}

// Update applies a partial update to an appointment
func (s *AppointmentService) Update(ctx context.Context, appointmentID string, input *UpdateAppointmentInput) (*models.Appointment, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	appointment, err := s.appointmentRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Appointment not found")
		}
		return nil, err
	}

	if date != nil {
		appointment.AppointmentDate = *date
	}
	if input.AppointmentTime != nil {
		appointment.AppointmentTime = *input.AppointmentTime
	}
	if input.Reason != nil {
		appointment.Reason = *input.Reason
	}
	if input.Type != nil {
		appointment.Type = *input.Type
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Cancel sets an appointment's status to cancelled. The transition is
// one-way and idempotent: cancelling twice succeeds silently.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Appointment not found")
		}
		return nil, err
	}

	appointment.Status = domain.AppointmentCancelled

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Get fetches an appointment by generated identifier
func (s *AppointmentService) Get(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Appointment not found")
		}
		return nil, err
	}
	return appointment, nil
}

// ListFilter narrows appointment listings
type ListFilter struct {
	Status string
	Date   string
}

// List lists appointments matching the filter, ordered by date then time.
// The date filter matches the full calendar day.
func (s *AppointmentService) List(ctx context.Context, filter ListFilter) ([]*models.Appointment, error) {
	repoFilter := repositories.AppointmentFilter{Status: filter.Status}

	if filter.Date != "" {
		date, err := time.Parse(dateLayout, filter.Date)
		if err != nil {
			var v domain.Violations
			v.Add("date", "must be a date in YYYY-MM-DD format")
			return nil, v.Err()
		}
		repoFilter.Date = &date
	}

	return s.appointmentRepo.List(ctx, repoFilter)
}

// ListForPatient lists a patient's appointments, most recent date first.
// An unknown patient yields an empty list, matching read-path leniency.
func (s *AppointmentService) ListForPatient(ctx context.Context, patientID string) ([]*models.Appointment, error) {
	patient, err := s.patientRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []*models.Appointment{}, nil
		}
		return nil, err
	}

	return s.appointmentRepo.ListByPatient(ctx, patient.ID)
}
