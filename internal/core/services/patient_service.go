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

// PatientService owns patient records and their status transitions
type PatientService struct {
	patientRepo repositories.PatientRepository
	idgen       *identifier.Generator
	now         func() time.Time
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repositories.PatientRepository, sequences repositories.SequenceRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		idgen:       identifier.NewGenerator(sequences),
		now:         time.Now,
	}
}

// RegisterPatientInput represents patient registration input
type RegisterPatientInput struct {
	Name              string         `json:"name"`
	Age               *int           `json:"age"`
	Gender            string         `json:"gender"`
	ContactNumber     string         `json:"contactNumber"`
	Address           models.Address `json:"address"`
	BloodGroup        string         `json:"bloodGroup"`
	KnownDiseases     []string       `json:"knownDiseases"`
	Allergies         []string       `json:"allergies"`
	CurrentComplaints string         `json:"currentComplaints"`
}

func (in *RegisterPatientInput) validate() error {
	var v domain.Violations

	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "is required")
	}
	if in.Age == nil {
		v.Add("age", "is required")
	} else if *in.Age < 0 || *in.Age > 150 {
		v.Add("age", "must be between 0 and 150")
	}
	if in.Gender == "" {
		v.Add("gender", "is required")
	} else if !domain.OneOf(in.Gender, domain.Genders) {
		v.Add("gender", "must be one of male, female, other")
	}
	if in.ContactNumber == "" {
		v.Add("contactNumber", "is required")
	}
	if in.BloodGroup != "" && !domain.OneOf(in.BloodGroup, domain.BloodGroups) {
		v.Add("bloodGroup", "is not a valid blood group")
	}

	return v.Err()
}

// Register registers a new patient, minting its identifier exactly once
// before the first persistence and stamping the registering identity
func (s *PatientService) Register(ctx context.Context, input *RegisterPatientInput, actor *models.User) (*models.Patient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	patientID, err := s.idgen.Next(ctx, identifier.TypePatient)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		PatientID:         patientID,
		Name:              strings.TrimSpace(input.Name),
		Age:               *input.Age,
		Gender:            input.Gender,
		ContactNumber:     input.ContactNumber,
		Address:           input.Address,
		BloodGroup:        input.BloodGroup,
		KnownDiseases:     input.KnownDiseases,
		Allergies:         input.Allergies,
		CurrentComplaints: input.CurrentComplaints,
		RegisteredByID:    actor.ID,
		RegistrationDate:  s.now(),
		Status:            domain.PatientActive,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	patient.RegisteredBy = actor
	return patient, nil
}

// UpdatePatientInput represents a partial patient update. Nil fields are
// left unchanged; provided fields are re-validated.
type UpdatePatientInput struct {
	Name              *string         `json:"name"`
	Age               *int            `json:"age"`
	Gender            *string         `json:"gender"`
	ContactNumber     *string         `json:"contactNumber"`
	Address           *models.Address `json:"address"`
	BloodGroup        *string         `json:"bloodGroup"`
	KnownDiseases     *[]string       `json:"knownDiseases"`
	Allergies         *[]string       `json:"allergies"`
	CurrentComplaints *string         `json:"currentComplaints"`
	Status            *string         `json:"status"`
}

func (in *UpdatePatientInput) validate() error {
	var v domain.Violations

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		v.Add("name", "cannot be empty")
	}
	if in.Age != nil && (*in.Age < 0 || *in.Age > 150) {
		v.Add("age", "must be between 0 and 150")
	}
	if in.Gender != nil && !domain.OneOf(*in.Gender, domain.Genders) {
		v.Add("gender", "must be one of male, female, other")
	}
	if in.ContactNumber != nil && *in.ContactNumber == "" {
		v.Add("contactNumber", "cannot be empty")
	}
	if in.BloodGroup != nil && *in.BloodGroup != "" && !domain.OneOf(*in.BloodGroup, domain.BloodGroups) {
		v.Add("bloodGroup", "is not a valid blood group")
	}
	if in.Status != nil && !domain.OneOf(*in.Status, domain.PatientStatuses) {
		v.Add("status", "must be one of active, discharged, referred")
	}

	return v.Err()
}

// Update applies a partial update to a patient
func (s *PatientService) Update(ctx context.Context, patientID string, input *UpdatePatientInput) (*models.Patient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Patient not found")
		}
		return nil, err
	}

	if input.Name != nil {
		patient.Name = strings.TrimSpace(*input.Name)
	}
	if input.Age != nil {
		patient.Age = *input.Age
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.ContactNumber != nil {
		patient.ContactNumber = *input.ContactNumber
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.BloodGroup != nil {
		patient.BloodGroup = *input.BloodGroup
	}
	if input.KnownDiseases != nil {
		patient.KnownDiseases = *input.KnownDiseases
	}
	if input.Allergies != nil {
		patient.Allergies = *input.Allergies
	}
	if input.CurrentComplaints != nil {
		patient.CurrentComplaints = *input.CurrentComplaints
	}
	if input.Status != nil {
		patient.Status = *input.Status
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// Delete hard-removes a patient record
func (s *PatientService) Delete(ctx context.Context, patientID string) error {
	err := s.patientRepo.Delete(ctx, patientID)
	if errors.Is(err, repositories.ErrNotFound) {
		return domain.NewNotFound("Patient not found")
	}
	return err
}

// Get fetches a patient by generated identifier
func (s *PatientService) Get(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Patient not found")
		}
		return nil, err
	}
	return patient, nil
}

// List lists all patients
func (s *PatientService) List(ctx context.Context) ([]*models.Patient, error) {
	return s.patientRepo.List(ctx)
}
