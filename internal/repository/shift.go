package repository

import (
	"context"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByName retrieves a shift by its unique name
func (r *ShiftRepository) GetByName(name string) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves all shifts ordered by start minute, bounded by the
// caller's context
func (r *ShiftRepository) GetAll(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).Order("start_minute asc, name asc").Find(&shifts).Error
	return shifts, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete removes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

// CountOperatorsWithDefault counts operators whose default shift is the given shift
func (r *ShiftRepository) CountOperatorsWithDefault(shiftID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Operator{}).Where("default_shift_id = ?", shiftID).Count(&count).Error
	return count, err
}
