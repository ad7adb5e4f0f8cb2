package repository

import (
	"context"
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaintenanceExecutionRepository handles database operations for execution records.
// Reads accept a context so the schedule read path can bound lookup time and
// degrade instead of blocking the whole response.
type MaintenanceExecutionRepository struct {
	db *gorm.DB
}

// NewMaintenanceExecutionRepository creates a new maintenance execution repository
func NewMaintenanceExecutionRepository(db *gorm.DB) *MaintenanceExecutionRepository {
	return &MaintenanceExecutionRepository{db: db}
}

// Upsert creates or overwrites the record for (action, machine, date).
// The composite unique index serializes concurrent writes for the same key:
// last write wins as a single-row conflict update, never a duplicate row.
func (r *MaintenanceExecutionRepository) Upsert(ctx context.Context, execution *models.MaintenanceExecution) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "action_id"}, {Name: "machine_id"}, {Name: "scheduled_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "actual_minutes", "completed_by_id", "notes", "completed_at", "updated_at",
		}),
	}).Create(execution).Error
}

// GetByID retrieves an execution record by ID
func (r *MaintenanceExecutionRepository) GetByID(id uuid.UUID) (*models.MaintenanceExecution, error) {
	var execution models.MaintenanceExecution
	err := r.db.First(&execution, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &execution, nil
}

// GetByKey retrieves the record for (action, machine, date)
func (r *MaintenanceExecutionRepository) GetByKey(actionID, machineID uuid.UUID, date time.Time) (*models.MaintenanceExecution, error) {
	var execution models.MaintenanceExecution
	start, next := dayBounds(date)
	err := r.db.Where("action_id = ? AND machine_id = ? AND scheduled_date >= ? AND scheduled_date < ?",
		actionID, machineID, start, next).First(&execution).Error
	if err != nil {
		return nil, err
	}
	return &execution, nil
}

// GetByDate retrieves all execution records for a date with the completing
// operator preloaded, bounded by the caller's context
func (r *MaintenanceExecutionRepository) GetByDate(ctx context.Context, date time.Time) ([]models.MaintenanceExecution, error) {
	var executions []models.MaintenanceExecution
	start, next := dayBounds(date)
	err := r.db.WithContext(ctx).Preload("CompletedBy").
		Where("scheduled_date >= ? AND scheduled_date < ?", start, next).
		Find(&executions).Error
	return executions, err
}

// Update persists changes to an existing execution record
func (r *MaintenanceExecutionRepository) Update(ctx context.Context, execution *models.MaintenanceExecution) error {
	return r.db.WithContext(ctx).Save(execution).Error
}

// Delete removes an execution record. Deleting a missing record is a no-op,
// so undo stays idempotent.
func (r *MaintenanceExecutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.MaintenanceExecution{}, "id = ?", id).Error
}
