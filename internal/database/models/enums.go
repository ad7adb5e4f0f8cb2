package models

// Periodicity defines how often a maintenance action recurs
type Periodicity string

const (
	PeriodicityBeforeEachUse Periodicity = "before_each_use"
	PeriodicityWeekly        Periodicity = "weekly"
	PeriodicityMonthly       Periodicity = "monthly"
	PeriodicityQuarterly     Periodicity = "quarterly"
	PeriodicityYearly        Periodicity = "yearly"
)

// Priority defines the scheduling priority class of a maintenance action
type Priority string

const (
	PriorityMandatory Priority = "mandatory"
	PriorityIdeal     Priority = "ideal"
)

// ExecutionStatus defines the completion state of a scheduled task
type ExecutionStatus string

const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusSkipped   ExecutionStatus = "skipped"
)

// IsValid checks if the Periodicity is valid
func (p Periodicity) IsValid() bool {
	switch p {
	case PeriodicityBeforeEachUse, PeriodicityWeekly, PeriodicityMonthly, PeriodicityQuarterly, PeriodicityYearly:
		return true
	}
	return false
}

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityMandatory, PriorityIdeal:
		return true
	}
	return false
}

// IsValid checks if the ExecutionStatus is valid
func (s ExecutionStatus) IsValid() bool {
	switch s {
	case ExecutionStatusPending, ExecutionStatusCompleted, ExecutionStatusSkipped:
		return true
	}
	return false
}
