package testutils

import (
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a morning shift with an eight-hour window and a 30-minute break
func (f *ShiftFactory) Create() *models.Shift {
	id := uuid.New()
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "morning-" + id.String()[:6],
		DisplayName:  "Morning Shift",
		StartMinute:  6 * 60,
		EndMinute:    14 * 60,
		BreakMinutes: 30,
	}
}

// WithName sets a custom name for the shift
func (f *ShiftFactory) WithName(name string) *models.Shift {
	shift := f.Create()
	shift.Name = name
	shift.DisplayName = name
	return shift
}

// WithWindow sets custom start and end minutes for the shift
func (f *ShiftFactory) WithWindow(startMinute, endMinute int) *models.Shift {
	shift := f.Create()
	shift.StartMinute = startMinute
	shift.EndMinute = endMinute
	return shift
}

// WithBreak sets a custom break length for the shift
func (f *ShiftFactory) WithBreak(breakMinutes int) *models.Shift {
	shift := f.Create()
	shift.BreakMinutes = breakMinutes
	return shift
}

// OperatorFactory provides methods to create test Operator data
type OperatorFactory struct{}

// NewOperatorFactory creates a new OperatorFactory
func NewOperatorFactory() *OperatorFactory {
	return &OperatorFactory{}
}

// Create creates an active operator with a unique code and no grants
func (f *OperatorFactory) Create() *models.Operator {
	id := uuid.New()
	return &models.Operator{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:     "OP-" + id.String()[:6],
		FullName: "Jane Operator",
		IsActive: true,
	}
}

// WithCode sets a custom code for the operator
func (f *OperatorFactory) WithCode(code string) *models.Operator {
	op := f.Create()
	op.Code = code
	return op
}

// WithDefaultShift sets the operator's default shift
func (f *OperatorFactory) WithDefaultShift(shiftID uuid.UUID) *models.Operator {
	op := f.Create()
	op.DefaultShiftID = &shiftID
	return op
}

// WithGrants attaches authorization grants for the given groups
func (f *OperatorFactory) WithGrants(groups ...string) *models.Operator {
	op := f.Create()
	for _, g := range groups {
		op.Grants = append(op.Grants, models.AuthorizationGrant{
			OperatorID: op.ID,
			Group:      g,
		})
	}
	return op
}

// Inactive creates an operator that is excluded from rosters
func (f *OperatorFactory) Inactive() *models.Operator {
	op := f.Create()
	op.IsActive = false
	return op
}

// MachineFactory provides methods to create test Machine data
type MachineFactory struct{}

// NewMachineFactory creates a new MachineFactory
func NewMachineFactory() *MachineFactory {
	return &MachineFactory{}
}

// Create creates a machine with a unique code and no authorization requirement
func (f *MachineFactory) Create() *models.Machine {
	id := uuid.New()
	return &models.Machine{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:        "MCH-" + id.String()[:6],
		Description: "Test machine",
		Area:        "hall-a",
	}
}

// WithCode sets a custom code for the machine
func (f *MachineFactory) WithCode(code string) *models.Machine {
	machine := f.Create()
	machine.Code = code
	return machine
}

// WithAuthorizationGroup requires operators to hold the given group
func (f *MachineFactory) WithAuthorizationGroup(group string) *models.Machine {
	machine := f.Create()
	machine.AuthorizationGroup = group
	return machine
}

// OnHold creates a machine whose maintenance is suspended
func (f *MachineFactory) OnHold() *models.Machine {
	machine := f.Create()
	machine.MaintenanceOnHold = true
	return machine
}

// MaintenanceActionFactory provides methods to create test MaintenanceAction data
type MaintenanceActionFactory struct{}

// NewMaintenanceActionFactory creates a new MaintenanceActionFactory
func NewMaintenanceActionFactory() *MaintenanceActionFactory {
	return &MaintenanceActionFactory{}
}

// Create creates a weekly mandatory 60-minute action anchored far in the past,
// so it is due on any date a whole number of weeks after 2024-01-01 (a Monday)
func (f *MaintenanceActionFactory) Create() *models.MaintenanceAction {
	return &models.MaintenanceAction{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MachineID:       uuid.New(),
		Description:     "Lubricate spindle bearings",
		Periodicity:     models.PeriodicityWeekly,
		Priority:        models.PriorityMandatory,
		DurationMinutes: 60,
		AnchorDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:        true,
	}
}

// WithMachine sets the machine for the action
func (f *MaintenanceActionFactory) WithMachine(machineID uuid.UUID) *models.MaintenanceAction {
	action := f.Create()
	action.MachineID = machineID
	return action
}

// WithPeriodicity sets the recurrence for the action
func (f *MaintenanceActionFactory) WithPeriodicity(p models.Periodicity) *models.MaintenanceAction {
	action := f.Create()
	action.Periodicity = p
	return action
}

// WithPriority sets the priority for the action
func (f *MaintenanceActionFactory) WithPriority(p models.Priority) *models.MaintenanceAction {
	action := f.Create()
	action.Priority = p
	return action
}

// WithDuration sets the duration for the action
func (f *MaintenanceActionFactory) WithDuration(minutes int) *models.MaintenanceAction {
	action := f.Create()
	action.DurationMinutes = minutes
	return action
}

// WithAnchor sets the recurrence anchor date for the action
func (f *MaintenanceActionFactory) WithAnchor(anchor time.Time) *models.MaintenanceAction {
	action := f.Create()
	action.AnchorDate = anchor
	return action
}

// ShiftOverrideFactory provides methods to create test ShiftOverride data
type ShiftOverrideFactory struct{}

// NewShiftOverrideFactory creates a new ShiftOverrideFactory
func NewShiftOverrideFactory() *ShiftOverrideFactory {
	return &ShiftOverrideFactory{}
}

// Create creates an override moving an operator to a different shift for one date
func (f *ShiftOverrideFactory) Create(operatorID uuid.UUID, date time.Time, shiftID *uuid.UUID) *models.ShiftOverride {
	return &models.ShiftOverride{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OperatorID: operatorID,
		Date:       date,
		ShiftID:    shiftID,
	}
}

// MaintenanceExecutionFactory provides methods to create test MaintenanceExecution data
type MaintenanceExecutionFactory struct{}

// NewMaintenanceExecutionFactory creates a new MaintenanceExecutionFactory
func NewMaintenanceExecutionFactory() *MaintenanceExecutionFactory {
	return &MaintenanceExecutionFactory{}
}

// Create creates a completed execution record for the given task key
func (f *MaintenanceExecutionFactory) Create(actionID, machineID uuid.UUID, date time.Time) *models.MaintenanceExecution {
	now := time.Now().UTC()
	return &models.MaintenanceExecution{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ActionID:      actionID,
		MachineID:     machineID,
		ScheduledDate: date,
		Status:        models.ExecutionStatusCompleted,
		ActualMinutes: 45,
		CompletedAt:   &now,
	}
}

// Skipped creates a skipped execution record for the given task key
func (f *MaintenanceExecutionFactory) Skipped(actionID, machineID uuid.UUID, date time.Time) *models.MaintenanceExecution {
	exec := f.Create(actionID, machineID, date)
	exec.Status = models.ExecutionStatusSkipped
	exec.ActualMinutes = 0
	return exec
}

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Shift     *ShiftFactory
	Operator  *OperatorFactory
	Machine   *MachineFactory
	Action    *MaintenanceActionFactory
	Override  *ShiftOverrideFactory
	Execution *MaintenanceExecutionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Shift:     NewShiftFactory(),
		Operator:  NewOperatorFactory(),
		Machine:   NewMachineFactory(),
		Action:    NewMaintenanceActionFactory(),
		Override:  NewShiftOverrideFactory(),
		Execution: NewMaintenanceExecutionFactory(),
	}
}

// CreatePlantFixture creates a shift, an operator rostered on it, a machine
// and a weekly action on that machine, all consistently linked
func (fs *FactorySet) CreatePlantFixture() (*models.Shift, *models.Operator, *models.Machine, *models.MaintenanceAction) {
	shift := fs.Shift.Create()
	operator := fs.Operator.WithDefaultShift(shift.ID)
	machine := fs.Machine.Create()
	action := fs.Action.WithMachine(machine.ID)
	return shift, operator, machine, action
}
