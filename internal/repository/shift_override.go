package repository

import (
	"context"
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftOverrideRepository handles database operations for shift overrides
type ShiftOverrideRepository struct {
	db *gorm.DB
}

// NewShiftOverrideRepository creates a new shift override repository
func NewShiftOverrideRepository(db *gorm.DB) *ShiftOverrideRepository {
	return &ShiftOverrideRepository{db: db}
}

// Upsert creates or replaces the override for (operator, date). The unique
// index on the pair turns concurrent writes into a single-row conflict update.
func (r *ShiftOverrideRepository) Upsert(override *models.ShiftOverride) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "operator_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"shift_id", "updated_at"}),
	}).Create(override).Error
}

// GetByID retrieves a shift override by ID
func (r *ShiftOverrideRepository) GetByID(id uuid.UUID) (*models.ShiftOverride, error) {
	var override models.ShiftOverride
	err := r.db.First(&override, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// GetByDate retrieves all overrides for a date, bounded by the caller's context
func (r *ShiftOverrideRepository) GetByDate(ctx context.Context, date time.Time) ([]models.ShiftOverride, error) {
	var overrides []models.ShiftOverride
	start, next := dayBounds(date)
	err := r.db.WithContext(ctx).Where("date >= ? AND date < ?", start, next).Find(&overrides).Error
	return overrides, err
}

// GetByOperatorAndDate retrieves the override for an operator on a date
func (r *ShiftOverrideRepository) GetByOperatorAndDate(operatorID uuid.UUID, date time.Time) (*models.ShiftOverride, error) {
	var override models.ShiftOverride
	start, next := dayBounds(date)
	err := r.db.Where("operator_id = ? AND date >= ? AND date < ?", operatorID, start, next).First(&override).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// Delete removes a shift override, reverting the operator to their default shift
func (r *ShiftOverrideRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftOverride{}, "id = ?", id).Error
}
