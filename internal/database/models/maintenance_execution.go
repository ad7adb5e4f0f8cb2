package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceExecution is the persisted completion record for a task on a date.
// The composite unique index serializes concurrent writes for the same key:
// upserts become single-row ON CONFLICT updates, so the last write wins and
// two concurrent completions can never produce duplicate rows.
type MaintenanceExecution struct {
	BaseModel
	ActionID      uuid.UUID       `json:"action_id" gorm:"type:uuid;not null;uniqueIndex:uq_executions_action_machine_date" validate:"required"`
	MachineID     uuid.UUID       `json:"machine_id" gorm:"type:uuid;not null;uniqueIndex:uq_executions_action_machine_date" validate:"required"`
	ScheduledDate time.Time       `json:"scheduled_date" gorm:"type:date;not null;uniqueIndex:uq_executions_action_machine_date" validate:"required"`
	Status        ExecutionStatus `json:"status" gorm:"type:varchar(20);not null" validate:"required"`
	ActualMinutes int             `json:"actual_minutes" gorm:"default:0" validate:"min=0"`
	CompletedByID *uuid.UUID      `json:"completed_by_id" gorm:"type:uuid"`
	Notes         string          `json:"notes" gorm:"type:text"`
	CompletedAt   *time.Time      `json:"completed_at"`

	Action      MaintenanceAction `json:"action,omitempty" gorm:"foreignKey:ActionID;constraint:OnDelete:CASCADE"`
	Machine     Machine           `json:"machine,omitempty" gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
	CompletedBy *Operator         `json:"completed_by,omitempty" gorm:"foreignKey:CompletedByID"`
}

// TableName returns the table name for MaintenanceExecution
func (MaintenanceExecution) TableName() string {
	return "maintenance_executions"
}
