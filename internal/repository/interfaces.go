package repository

import (
	"context"
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByName(name string) (*models.Shift, error)
	GetAll(ctx context.Context) ([]models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
	CountOperatorsWithDefault(shiftID uuid.UUID) (int64, error)
}

// OperatorRepositoryInterface defines the interface for operator repository operations
type OperatorRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Operator, error)
	GetByCode(code string) (*models.Operator, error)
	GetActiveWithGrants(ctx context.Context) ([]models.Operator, error)
	GetAll() ([]models.Operator, error)
}

// MachineRepositoryInterface defines the interface for machine repository operations
type MachineRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Machine, error)
	GetByCode(code string) (*models.Machine, error)
	GetAll() ([]models.Machine, error)
}

// MaintenanceActionRepositoryInterface defines the interface for action repository operations
type MaintenanceActionRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.MaintenanceAction, error)
	GetActiveWithMachines(ctx context.Context) ([]models.MaintenanceAction, error)
	GetByMachineID(machineID uuid.UUID) ([]models.MaintenanceAction, error)
}

// ShiftOverrideRepositoryInterface defines the interface for override repository operations
type ShiftOverrideRepositoryInterface interface {
	Upsert(override *models.ShiftOverride) error
	GetByID(id uuid.UUID) (*models.ShiftOverride, error)
	GetByDate(ctx context.Context, date time.Time) ([]models.ShiftOverride, error)
	GetByOperatorAndDate(operatorID uuid.UUID, date time.Time) (*models.ShiftOverride, error)
	Delete(id uuid.UUID) error
}

// MaintenanceExecutionRepositoryInterface defines the interface for execution repository operations
type MaintenanceExecutionRepositoryInterface interface {
	Upsert(ctx context.Context, execution *models.MaintenanceExecution) error
	GetByID(id uuid.UUID) (*models.MaintenanceExecution, error)
	GetByKey(actionID, machineID uuid.UUID, date time.Time) (*models.MaintenanceExecution, error)
	GetByDate(ctx context.Context, date time.Time) ([]models.MaintenanceExecution, error)
	Update(ctx context.Context, execution *models.MaintenanceExecution) error
	Delete(ctx context.Context, id uuid.UUID) error
}
