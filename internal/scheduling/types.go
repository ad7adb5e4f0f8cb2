package scheduling

import (
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// The engine works on plain read-only snapshots handed in by the service
// layer. It never reaches into shared state and never touches storage, so a
// schedule for a date is a pure function of its inputs.

// Shift is the engine's view of a work shift
type Shift struct {
	ID           uuid.UUID
	Name         string
	StartMinute  int
	EndMinute    int
	BreakMinutes int
}

// Operator is the engine's view of an operator, grants included
type Operator struct {
	ID             uuid.UUID
	Code           string
	Name           string
	DefaultShiftID *uuid.UUID
	Grants         []string
}

// Override is a date-specific roster override. A nil ShiftID takes the
// operator off the roster for the day.
type Override struct {
	OperatorID uuid.UUID
	ShiftID    *uuid.UUID
}

// RosterEntry is one operator's effective shift on the target date
type RosterEntry struct {
	Operator Operator
	ShiftID  uuid.UUID
}

// DueTask is a maintenance action due on the target date, annotated with
// everything the allocator needs. Ephemeral: recomputed per request.
type DueTask struct {
	ActionID           uuid.UUID          `json:"action_id"`
	MachineID          uuid.UUID          `json:"machine_id"`
	Description        string             `json:"description"`
	MachineCode        string             `json:"machine_code"`
	MachineArea        string             `json:"machine_area"`
	AuthorizationGroup string             `json:"authorization_group,omitempty"`
	Periodicity        models.Periodicity `json:"periodicity"`
	Priority           models.Priority    `json:"priority"`
	DurationMinutes    int                `json:"duration_minutes"`
}

// ExecutionRecord is the engine's view of a persisted completion record
type ExecutionRecord struct {
	ActionID        uuid.UUID
	MachineID       uuid.UUID
	Status          models.ExecutionStatus
	ActualMinutes   int
	CompletedByName string
}

// ReasonCode explains why a task could not be placed
type ReasonCode string

const (
	ReasonNoAuthorizedOperator ReasonCode = "no_authorized_operator"
	ReasonNoAvailableCapacity  ReasonCode = "no_available_capacity"
)

// Text returns the display string for the reason
func (r ReasonCode) Text() string {
	switch r {
	case ReasonNoAuthorizedOperator:
		return "no authorized operator"
	case ReasonNoAvailableCapacity:
		return "no available capacity"
	}
	return string(r)
}

// NoteCode tags a placement decision so tests can assert on codes, not prose
type NoteCode string

const (
	NoteGroupedWithMachine NoteCode = "grouped_with_machine"
	NoteBestFitTie         NoteCode = "best_fit_tie"
)

// Config controls a single allocation run
type Config struct {
	// BreakMinutes is subtracted from a shift's capacity when the shift
	// itself does not encode a paid break.
	BreakMinutes int
	// BufferMinutes is a fixed safety margin subtracted from every lane.
	BufferMinutes int
	// GroupByMachine keeps a machine's tasks back-to-back in one lane.
	GroupByMachine bool
	// PrioritizeMandatory places mandatory tasks before ideal ones.
	PrioritizeMandatory bool
}

// DefaultConfig returns the allocation defaults
func DefaultConfig() Config {
	return Config{PrioritizeMandatory: true}
}

// ScheduledTask is a DueTask placed at a concrete start minute within a lane
type ScheduledTask struct {
	DueTask
	OperatorID      uuid.UUID              `json:"operator_id"`
	OperatorName    string                 `json:"operator_name"`
	StartMinute     int                    `json:"start_minute"`
	EndMinute       int                    `json:"end_minute"`
	StartTime       string                 `json:"start_time"`
	EndTime         string                 `json:"end_time"`
	Note            NoteCode               `json:"note,omitempty"`
	NoteText        string                 `json:"note_text,omitempty"`
	Status          models.ExecutionStatus `json:"status"`
	ActualMinutes   int                    `json:"actual_minutes,omitempty"`
	CompletedByName string                 `json:"completed_by_name,omitempty"`
}

// UnscheduledTask is a DueTask the allocator could not place
type UnscheduledTask struct {
	DueTask
	Reason     ReasonCode `json:"reason"`
	ReasonText string     `json:"reason_text"`
}

// Lane is one operator's ordered task sequence within a shift on the date
type Lane struct {
	OperatorID         uuid.UUID       `json:"operator_id"`
	OperatorCode       string          `json:"operator_code"`
	OperatorName       string          `json:"operator_name"`
	ShiftID            uuid.UUID       `json:"shift_id"`
	CapacityMinutes    int             `json:"capacity_minutes"`
	AssignedMinutes    int             `json:"assigned_minutes"`
	UtilizationPercent float64         `json:"utilization_percent"`
	Tasks              []ScheduledTask `json:"tasks"`

	grants   map[string]bool
	machines map[uuid.UUID]bool
}

// Remaining returns the unassigned capacity left in the lane
func (l *Lane) Remaining() int {
	return l.CapacityMinutes - l.AssignedMinutes
}

// ShiftSchedule groups the lanes of one shift in the daily response
type ShiftSchedule struct {
	ShiftID   uuid.UUID `json:"shift_id"`
	ShiftName string    `json:"shift_name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Lanes     []Lane    `json:"lanes"`
}

// Summary is the roll-up over the merged schedule
type Summary struct {
	TotalTasks       int `json:"total_tasks"`
	ScheduledTasks   int `json:"scheduled_tasks"`
	UnscheduledTasks int `json:"unscheduled_tasks"`
	ShiftCount       int `json:"shift_count"`
	OperatorCount    int `json:"operator_count"`
	TotalMinutes     int `json:"total_minutes"`
	MandatoryCount   int `json:"mandatory_count"`
	IdealCount       int `json:"ideal_count"`
}

// DailySchedule is the full response for one date
type DailySchedule struct {
	Date            string            `json:"date"`
	Shifts          []ShiftSchedule   `json:"shifts"`
	Unscheduled     []UnscheduledTask `json:"unscheduled"`
	Summary         Summary           `json:"summary"`
	OverlayDegraded bool              `json:"overlay_degraded,omitempty"`
}

// ParseDate parses a schedule date in YYYY-MM-DD form, normalized to UTC midnight
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
