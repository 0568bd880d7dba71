package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-hms/internal/adapters/persistence/models"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/core/domain"
	"hospital-hms/internal/pkg/identifier"
)

// AdmissionService owns inpatient stays, their append-only vitals logs
// and the one-way discharge transition
type AdmissionService struct {
	admissionRepo repositories.AdmissionRepository
	patientRepo   repositories.PatientRepository
	idgen         *identifier.Generator
	now           func() time.Time
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(
	admissionRepo repositories.AdmissionRepository,
	patientRepo repositories.PatientRepository,
	sequences repositories.SequenceRepository,
) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		patientRepo:   patientRepo,
		idgen:         identifier.NewGenerator(sequences),
		now:           time.Now,
	}
}

// AdmitInput represents admission input
type AdmitInput struct {
	PatientID          string `json:"patientId"`
	Department         string `json:"department"`
	Ward               string `json:"ward"`
	BedNumber          string `json:"bedNumber"`
	ReasonForAdmission string `json:"reasonForAdmission"`
}

func (in *AdmitInput) validate() error {
	var v domain.Violations

	if in.Department == "" {
		v.Add("department", "is required")
	} else if !domain.OneOf(in.Department, domain.Departments) {
		v.Add("department", "is not a valid department")
	}
	if in.Ward == "" {
		v.Add("ward", "is required")
	}
	if in.BedNumber == "" {
		v.Add("bedNumber", "is required")
	}
	if strings.TrimSpace(in.ReasonForAdmission) == "" {
		v.Add("reasonForAdmission", "is required")
	}

	return v.Err()
}

// Admit admits an existing patient. The patient reference is resolved
// before anything is validated or persisted.
func (s *AdmissionService) Admit(ctx context.Context, input *AdmitInput, actor *models.User) (*models.Admission, error) {
	patient, err := s.patientRepo.GetByPatientID(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Patient not found")
		}
		return nil, err
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	admissionID, err := s.idgen.Next(ctx, identifier.TypeAdmission)
	if err != nil {
		return nil, err
	}

	admission := &models.Admission{
		AdmissionID:        admissionID,
		PatientID:          patient.ID,
		Department:         input.Department,
		Ward:               input.Ward,
		BedNumber:          input.BedNumber,
		AdmissionDate:      s.now(),
		AdmittedByID:       actor.ID,
		ReasonForAdmission: strings.TrimSpace(input.ReasonForAdmission),
		Status:             domain.AdmissionActive,
	}

	if err := s.admissionRepo.Create(ctx, admission); err != nil {
		return nil, err
	}

	admission.Patient = patient
	admission.AdmittedBy = actor
	return admission, nil
}

// VitalSignInput represents one vital-sign reading
type VitalSignInput struct {
	Temperature   float64              `json:"temperature"`
	BloodPressure models.BloodPressure `json:"bloodPressure"`
	PulseRate     int                  `json:"pulseRate"`
}

// RecordVitals appends one reading to an admission's vitals log. Prior
// readings are never touched.
func (s *AdmissionService) RecordVitals(ctx context.Context, admissionID string, input *VitalSignInput, actor *models.User) (*models.Admission, error) {
	admission, err := s.admissionRepo.GetByAdmissionID(ctx, admissionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Admission not found")
		}
		return nil, err
	}

	vital := &models.VitalSign{
		AdmissionID:   admission.ID,
		Temperature:   input.Temperature,
		BloodPressure: input.BloodPressure,
		PulseRate:     input.PulseRate,
		RecordedAt:    s.now(),
		RecordedByID:  actor.ID,
	}

	if err := s.admissionRepo.AppendVital(ctx, vital); err != nil {
		return nil, err
	}

	return s.admissionRepo.GetByAdmissionID(ctx, admissionID)
}

// Discharge transitions an admission to discharged, stamping the discharge
// timestamp and summary together. Re-discharging overwrites the timestamp
// and summary but the status never reverts to active.
func (s *AdmissionService) Discharge(ctx context.Context, admissionID, summary string) (*models.Admission, error) {
	admission, err := s.admissionRepo.GetByAdmissionID(ctx, admissionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Admission not found")
		}
		return nil, err
	}

	dischargedAt := s.now()
	admission.Status = domain.AdmissionDischarged
	admission.DischargeDate = &dischargedAt
	admission.DischargeSummary = summary

	if err := s.admissionRepo.Update(ctx, admission); err != nil {
		return nil, err
	}

	return admission, nil
}

// Get fetches an admission by generated identifier
func (s *AdmissionService) Get(ctx context.Context, admissionID string) (*models.Admission, error) {
	admission, err := s.admissionRepo.GetByAdmissionID(ctx, admissionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Admission not found")
		}
		return nil, err
	}
	return admission, nil
}

// List lists all admissions
func (s *AdmissionService) List(ctx context.Context) ([]*models.Admission, error) {
	return s.admissionRepo.List(ctx)
}
