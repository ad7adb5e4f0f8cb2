package repository

import (
	"context"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceActionRepository handles database operations for maintenance actions
type MaintenanceActionRepository struct {
	db *gorm.DB
}

// NewMaintenanceActionRepository creates a new maintenance action repository
func NewMaintenanceActionRepository(db *gorm.DB) *MaintenanceActionRepository {
	return &MaintenanceActionRepository{db: db}
}

// GetByID retrieves a maintenance action by ID
func (r *MaintenanceActionRepository) GetByID(id uuid.UUID) (*models.MaintenanceAction, error) {
	var action models.MaintenanceAction
	err := r.db.First(&action, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// GetActiveWithMachines retrieves all active, date-schedulable actions with
// their machines preloaded, ordered for deterministic collection. Actions
// triggered before each use have no date-based recurrence and are skipped.
// Bounded by the caller's context.
func (r *MaintenanceActionRepository) GetActiveWithMachines(ctx context.Context) ([]models.MaintenanceAction, error) {
	var actions []models.MaintenanceAction
	err := r.db.WithContext(ctx).Preload("Machine").
		Where("is_active = ? AND periodicity <> ?", true, models.PeriodicityBeforeEachUse).
		Order("id asc").
		Find(&actions).Error
	return actions, err
}

// GetByMachineID retrieves all actions declared on a machine
func (r *MaintenanceActionRepository) GetByMachineID(machineID uuid.UUID) ([]models.MaintenanceAction, error) {
	var actions []models.MaintenanceAction
	err := r.db.Where("machine_id = ?", machineID).Find(&actions).Error
	return actions, err
}
