package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceAction represents a recurring maintenance task defined on a machine.
// AnchorDate fixes the recurrence cycle: weekly actions recur every 7 days from it,
// monthly/quarterly/yearly actions recur on its day-of-month (clamped to shorter months).
type MaintenanceAction struct {
	BaseModel
	MachineID       uuid.UUID   `json:"machine_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description     string      `json:"description" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Periodicity     Periodicity `json:"periodicity" gorm:"type:varchar(30);not null" validate:"required"`
	Priority        Priority    `json:"priority" gorm:"type:varchar(20);not null" validate:"required"`
	DurationMinutes int         `json:"duration_minutes" gorm:"not null" validate:"required,min=1"`
	AnchorDate      time.Time   `json:"anchor_date" gorm:"type:date;not null" validate:"required"`
	IsActive        bool        `json:"is_active" gorm:"default:true"`

	Machine Machine `json:"machine,omitempty" gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MaintenanceAction
func (MaintenanceAction) TableName() string {
	return "maintenance_actions"
}
