package services

import (
	"context"
	"errors"

	"hospital-hms/internal/adapters/persistence/models"
	"hospital-hms/internal/adapters/persistence/repositories"
	"hospital-hms/internal/core/domain"
	"hospital-hms/internal/pkg/identifier"
)

// DoctorService owns doctor profiles, which reference doctor-role identities
type DoctorService struct {
	doctorRepo repositories.DoctorRepository
	userRepo   repositories.UserRepository
	idgen      *identifier.Generator
}

// NewDoctorService creates a new doctor service
func NewDoctorService(
	doctorRepo repositories.DoctorRepository,
	userRepo repositories.UserRepository,
	sequences repositories.SequenceRepository,
) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		userRepo:   userRepo,
		idgen:      identifier.NewGenerator(sequences),
	}
}

// RegisterDoctorInput represents doctor profile registration input
type RegisterDoctorInput struct {
	UserID          uint                `json:"userId"`
	Specialization  string              `json:"specialization"`
	Department      string              `json:"department"`
	Qualification   string              `json:"qualification"`
	Experience      *int                `json:"experience"`
	ContactNumber   string              `json:"contactNumber"`
	Availability    models.Availability `json:"availability"`
	ConsultationFee *float64            `json:"consultationFee"`
}

func (in *RegisterDoctorInput) validate() error {
	var v domain.Violations

	if in.Specialization == "" {
		v.Add("specialization", "is required")
	} else if !domain.OneOf(in.Specialization, domain.Specializations) {
		v.Add("specialization", "is not a valid specialization")
	}
	if in.Department == "" {
		v.Add("department", "is required")
	}
	if in.Qualification == "" {
		v.Add("qualification", "is required")
	}
	if in.Experience == nil {
		v.Add("experience", "is required")
	} else if *in.Experience < 0 {
		v.Add("experience", "must be zero or greater")
	}
	if in.ContactNumber == "" {
		v.Add("contactNumber", "is required")
	}
	if in.ConsultationFee == nil {
		v.Add("consultationFee", "is required")
	} else if *in.ConsultationFee < 0 {
		v.Add("consultationFee", "must be zero or greater")
	}
	for _, day := range in.Availability.Days {
		if !domain.OneOf(day, domain.Weekdays) {
			v.Addf("availability.days", "%s is not a valid weekday", day)
			break
		}
	}

	return v.Err()
}

// Register creates a doctor profile. The referenced user must exist and
// hold the doctor role; both failures surface as the same 400.
func (s *DoctorService) Register(ctx context.Context, input *RegisterDoctorInput) (*models.Doctor, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewValidation([]domain.FieldViolation{
				{Field: "userId", Message: "user must exist and have doctor role"},
			})
		}
		return nil, err
	}
	if user.Role != domain.RoleDoctor {
		return nil, domain.NewValidation([]domain.FieldViolation{
			{Field: "userId", Message: "user must exist and have doctor role"},
		})
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	doctorID, err := s.idgen.Next(ctx, identifier.TypeDoctor)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		DoctorID:        doctorID,
		UserID:          user.ID,
		Specialization:  input.Specialization,
		Department:      input.Department,
		Qualification:   input.Qualification,
		Experience:      *input.Experience,
		ContactNumber:   input.ContactNumber,
		Availability:    input.Availability,
		ConsultationFee: *input.ConsultationFee,
		Status:          domain.DoctorActive,
	}

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}

	doctor.User = user
	return doctor, nil
}

// UpdateDoctorInput represents a partial doctor profile update
type UpdateDoctorInput struct {
	Specialization  *string              `json:"specialization"`
	Department      *string              `json:"department"`
	Qualification   *string              `json:"qualification"`
	Experience      *int                 `json:"experience"`
	ContactNumber   *string              `json:"contactNumber"`
	Availability    *models.Availability `json:"availability"`
	ConsultationFee *float64             `json:"consultationFee"`
	Status          *string              `json:"status"`
}

func (in *UpdateDoctorInput) validate() error {
	var v domain.Violations

	if in.Specialization != nil && !domain.OneOf(*in.Specialization, domain.Specializations) {
		v.Add("specialization", "is not a valid specialization")
	}
	if in.Department != nil && *in.Department == "" {
		v.Add("department", "cannot be empty")
	}
	if in.Experience != nil && *in.Experience < 0 {
		v.Add("experience", "must be zero or greater")
	}
	if in.ConsultationFee != nil && *in.ConsultationFee < 0 {
		v.Add("consultationFee", "must be zero or greater")
	}
	if in.Status != nil && !domain.OneOf(*in.Status, domain.DoctorStatuses) {
		v.Add("status", "must be one of active, inactive, on-leave")
	}
	if in.Availability != nil {
		for _, day := range in.Availability.Days {
			if !domain.OneOf(day, domain.Weekdays) {
				v.Addf("availability.days", "%s is not a valid weekday", day)
				break
			}
		}
	}

	return v.Err()
}

// Update applies a partial update to a doctor profile
func (s *DoctorService) Update(ctx context.Context, doctorID string, input *UpdateDoctorInput) (*models.Doctor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Doctor not found")
		}
		return nil, err
	}

	if input.Specialization != nil {
		doctor.Specialization = *input.Specialization
	}
	if input.Department != nil {
		doctor.Department = *input.Department
	}
	if input.Qualification != nil {
		doctor.Qualification = *input.Qualification
	}
	if input.Experience != nil {
		doctor.Experience = *input.Experience
	}
	if input.ContactNumber != nil {
		doctor.ContactNumber = *input.ContactNumber
	}
	if input.Availability != nil {
		doctor.Availability = *input.Availability
	}
	if input.ConsultationFee != nil {
		doctor.ConsultationFee = *input.ConsultationFee
	}
	if input.Status != nil {
		doctor.Status = *input.Status
	}

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

// Get fetches a doctor by generated identifier
func (s *DoctorService) Get(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.NewNotFound("Doctor not found")
		}
		return nil, err
	}
	return doctor, nil
}

// List lists doctors matching the filter
func (s *DoctorService) List(ctx context.Context, filter repositories.DoctorFilter) ([]*models.Doctor, error) {
	return s.doctorRepo.List(ctx, filter)
}

// ListBySpecialization lists active doctors with the given specialization
func (s *DoctorService) ListBySpecialization(ctx context.Context, specialization string) ([]*models.Doctor, error) {
	return s.doctorRepo.List(ctx, repositories.DoctorFilter{
		Specialization: specialization,
		Status:         domain.DoctorActive,
	})
}
