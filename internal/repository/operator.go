package repository

import (
	"context"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperatorRepository handles database operations for operators.
// Operators are an external catalog; the scheduler only reads them.
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(id uuid.UUID) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByCode retrieves an operator by its unique code
func (r *OperatorRepository) GetByCode(code string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetActiveWithGrants retrieves all active operators with their authorization
// grants preloaded, ordered by code for deterministic roster resolution.
// Bounded by the caller's context so a hung catalog query cannot stall the
// schedule read path.
func (r *OperatorRepository) GetActiveWithGrants(ctx context.Context) ([]models.Operator, error) {
	var operators []models.Operator
	err := r.db.WithContext(ctx).Preload("Grants").Where("is_active = ?", true).Order("code asc").Find(&operators).Error
	return operators, err
}

// GetAll retrieves all operators
func (r *OperatorRepository) GetAll() ([]models.Operator, error) {
	var operators []models.Operator
	err := r.db.Order("code asc").Find(&operators).Error
	return operators, err
}
