package repositories

import (
	"context"

	"hospital-hms/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sequenceRepository implements SequenceRepository interface.
//
// Identifiers used to be minted by counting existing rows, which is a
// check-then-act race under concurrent inserts. The counter row is
// incremented in place inside a transaction instead, so two concurrent
// callers can never observe the same value.
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next atomically increments the named counter and returns the new value.
// The upsert makes the very first mint of a counter safe too: concurrent
// callers both racing to create the row converge on one insert and one
// increment instead of a duplicate-key failure.
func (r *sequenceRepository) Next(ctx context.Context, name string) (uint64, error) {
	var seq models.Sequence

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.Sequence{Name: name, Value: 1}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("value + 1")}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return tx.Where("name = ?", name).First(&seq).Error
	})
	if err != nil {
		return 0, err
	}

	return seq.Value, nil
}
