package repositories

import (
	"context"

	"hospital-hms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// admissionRepository implements AdmissionRepository interface
type admissionRepository struct {
	db *gorm.DB
}

// NewAdmissionRepository creates a new admission repository
func NewAdmissionRepository(db *gorm.DB) AdmissionRepository {
	return &admissionRepository{db: db}
}

// Create creates a new admission
func (r *admissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "AdmittedBy", "VitalSigns").
		Create(admission).Error
}

// GetByAdmissionID gets an admission by generated identifier, with its
// vitals log in recording order
func (r *admissionRepository) GetByAdmissionID(ctx context.Context, admissionID string) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("AdmittedBy").
		Preload("VitalSigns", func(db *gorm.DB) *gorm.DB {
			return db.Order("vital_signs.id ASC").Preload("RecordedBy")
		}).
		Where("admission_id = ?", admissionID).
		First(&admission).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &admission, nil
}

// Update updates an admission's own fields. The vitals log is append-only
// and is never touched here.
func (r *admissionRepository) Update(ctx context.Context, admission *models.Admission) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "AdmittedBy", "VitalSigns").
		Save(admission).Error
}

// AppendVital appends one reading to an admission's vitals log
func (r *admissionRepository) AppendVital(ctx context.Context, vital *models.VitalSign) error {
	return r.db.WithContext(ctx).Omit("RecordedBy").Create(vital).Error
}

// List lists all admissions
func (r *admissionRepository) List(ctx context.Context) ([]*models.Admission, error) {
	var admissions []*models.Admission
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("AdmittedBy").
		Order("id ASC").
		Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}
