package repositories

import (
	"context"

	"hospital-hms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// patientRepository implements PatientRepository interface
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create creates a new patient
func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Omit("RegisteredBy").Create(patient).Error
}

// GetByPatientID gets a patient by generated identifier
func (r *patientRepository) GetByPatientID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).
		Preload("RegisteredBy").
		Where("patient_id = ?", patientID).
		First(&patient).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &patient, nil
}

// Update updates a patient
func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Omit("RegisteredBy").Save(patient).Error
}

// Delete hard-deletes a patient by generated identifier
func (r *patientRepository) Delete(ctx context.Context, patientID string) error {
	result := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&models.Patient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List lists all patients
func (r *patientRepository) List(ctx context.Context) ([]*models.Patient, error) {
	var patients []*models.Patient
	err := r.db.WithContext(ctx).
		Preload("RegisteredBy").
		Order("id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}
