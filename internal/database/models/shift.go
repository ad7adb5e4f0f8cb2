package models

import "fmt"

// Shift represents a work shift definition. Start and end are stored as
// minutes from midnight so capacity math never touches time zones.
type Shift struct {
	BaseModel
	Name         string `json:"name" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	DisplayName  string `json:"display_name" gorm:"size:100" validate:"max=100"`
	StartMinute  int    `json:"start_minute" gorm:"not null" validate:"min=0,max=1439"`
	EndMinute    int    `json:"end_minute" gorm:"not null" validate:"min=1,max=1440"`
	BreakMinutes int    `json:"break_minutes" gorm:"not null;default:0" validate:"min=0"`

	Operators []Operator `json:"operators,omitempty" gorm:"foreignKey:DefaultShiftID"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// WindowMinutes returns the raw shift length before breaks
func (s *Shift) WindowMinutes() int {
	return s.EndMinute - s.StartMinute
}

// ClockString formats a minute-of-day as HH:MM
func ClockString(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
