package repositories

import (
	"context"

	"hospital-hms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// doctorRepository implements DoctorRepository interface
type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

// Create creates a new doctor profile
func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Omit("User").Create(doctor).Error
}

// GetByDoctorID gets a doctor by generated identifier
func (r *doctorRepository) GetByDoctorID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("doctor_id = ?", doctorID).
		First(&doctor).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &doctor, nil
}

// Update updates a doctor profile
func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Omit("User").Save(doctor).Error
}

// List lists doctors matching the filter
func (r *doctorRepository) List(ctx context.Context, filter DoctorFilter) ([]*models.Doctor, error) {
	query := r.db.WithContext(ctx).Preload("User")

	if filter.Specialization != "" {
		query = query.Where("specialization = ?", filter.Specialization)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var doctors []*models.Doctor
	err := query.Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
