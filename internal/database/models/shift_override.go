package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftOverride assigns an operator a shift other than their default for one date.
// A nil ShiftID explicitly removes the operator from that day's roster.
// Deleting the override reverts the operator to their default shift.
type ShiftOverride struct {
	BaseModel
	OperatorID uuid.UUID  `json:"operator_id" gorm:"type:uuid;not null;uniqueIndex:uq_overrides_operator_date" validate:"required"`
	Date       time.Time  `json:"date" gorm:"type:date;not null;uniqueIndex:uq_overrides_operator_date" validate:"required"`
	ShiftID    *uuid.UUID `json:"shift_id" gorm:"type:uuid"`

	Operator Operator `json:"operator,omitempty" gorm:"foreignKey:OperatorID;constraint:OnDelete:CASCADE"`
	Shift    *Shift   `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for ShiftOverride
func (ShiftOverride) TableName() string {
	return "shift_overrides"
}
