package scheduling

import (
	"errors"
	"testing"

	"maintenance-scheduler-backend/internal/database/models"
	apperrors "maintenance-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeShift(name string, startMinute, endMinute, breakMinutes int) Shift {
	return Shift{
		ID:           uuid.New(),
		Name:         name,
		StartMinute:  startMinute,
		EndMinute:    endMinute,
		BreakMinutes: breakMinutes,
	}
}

func makeOperator(code string, grants ...string) Operator {
	return Operator{ID: uuid.New(), Code: code, Name: code, Grants: grants}
}

func makeTask(machineCode string, priority models.Priority, duration int) DueTask {
	return DueTask{
		ActionID:        uuid.New(),
		MachineID:       uuid.New(),
		Description:     "task on " + machineCode,
		MachineCode:     machineCode,
		Priority:        priority,
		DurationMinutes: duration,
	}
}

func entry(op Operator, shift Shift) RosterEntry {
	return RosterEntry{Operator: op, ShiftID: shift.ID}
}

func TestAllocateFillsCapacityAndReportsOverflow(t *testing.T) {
	// 06:00-14:00 with a 30-minute break leaves 450 minutes of capacity.
	shift := makeShift("morning", 6*60, 14*60, 30)
	op := makeOperator("OP-A")

	t1 := makeTask("CNC-01", models.PriorityMandatory, 200)
	t2 := makeTask("CNC-02", models.PriorityMandatory, 150)
	t3 := makeTask("CNC-03", models.PriorityIdeal, 150)

	lanes, unscheduled, err := Allocate(
		[]DueTask{t1, t2, t3},
		[]RosterEntry{entry(op, shift)},
		[]Shift{shift},
		DefaultConfig(),
	)
	require.NoError(t, err)

	require.Len(t, lanes, 1)
	lane := lanes[0]
	assert.Equal(t, 450, lane.CapacityMinutes)
	assert.Equal(t, 350, lane.AssignedMinutes)
	assert.InDelta(t, 77.8, lane.UtilizationPercent, 0.001)

	require.Len(t, lane.Tasks, 2)
	assert.Equal(t, t1.ActionID, lane.Tasks[0].ActionID)
	assert.Equal(t, 6*60, lane.Tasks[0].StartMinute)
	assert.Equal(t, 6*60+200, lane.Tasks[0].EndMinute)
	assert.Equal(t, "06:00", lane.Tasks[0].StartTime)
	assert.Equal(t, "09:20", lane.Tasks[0].EndTime)
	assert.Equal(t, t2.ActionID, lane.Tasks[1].ActionID)
	assert.Equal(t, 6*60+200, lane.Tasks[1].StartMinute, "tasks are contiguous within the lane")

	require.Len(t, unscheduled, 1)
	assert.Equal(t, t3.ActionID, unscheduled[0].ActionID)
	assert.Equal(t, ReasonNoAvailableCapacity, unscheduled[0].Reason)
	assert.Equal(t, "no available capacity", unscheduled[0].ReasonText)
}

func TestAllocateAuthorizationFilter(t *testing.T) {
	shift := makeShift("morning", 6*60, 14*60, 0)
	ungranted := makeOperator("OP-A")
	granted := makeOperator("OP-B", "cnc")

	task := makeTask("CNC-01", models.PriorityMandatory, 60)
	task.AuthorizationGroup = "cnc"

	t.Run("only granted operators are candidates", func(t *testing.T) {
		lanes, unscheduled, err := Allocate(
			[]DueTask{task},
			[]RosterEntry{entry(ungranted, shift), entry(granted, shift)},
			[]Shift{shift},
			DefaultConfig(),
		)
		require.NoError(t, err)
		require.Empty(t, unscheduled)

		require.Len(t, lanes, 2)
		assert.Empty(t, lanes[0].Tasks, "OP-A holds no grant")
		require.Len(t, lanes[1].Tasks, 1)
		assert.Equal(t, granted.ID, lanes[1].Tasks[0].OperatorID)
	})

	t.Run("no granted operator on the roster", func(t *testing.T) {
		_, unscheduled, err := Allocate(
			[]DueTask{task},
			[]RosterEntry{entry(ungranted, shift)},
			[]Shift{shift},
			DefaultConfig(),
		)
		require.NoError(t, err)

		require.Len(t, unscheduled, 1)
		assert.Equal(t, ReasonNoAuthorizedOperator, unscheduled[0].Reason)
		assert.Equal(t, "no authorized operator", unscheduled[0].ReasonText)
	})

	t.Run("authorization outranks capacity in the reason", func(t *testing.T) {
		full := task
		full.DurationMinutes = 10000

		_, unscheduled, err := Allocate(
			[]DueTask{full},
			[]RosterEntry{entry(ungranted, shift)},
			[]Shift{shift},
			DefaultConfig(),
		)
		require.NoError(t, err)
		require.Len(t, unscheduled, 1)
		assert.Equal(t, ReasonNoAuthorizedOperator, unscheduled[0].Reason)
	})
}

func TestAllocateBestFitPrefersTightestLane(t *testing.T) {
	bigShift := makeShift("day", 6*60, 14*60, 0)     // 480 capacity
	smallShift := makeShift("short", 6*60, 8*60, 0)  // 120 capacity
	opBig := makeOperator("OP-A")
	opSmall := makeOperator("OP-B")

	task := makeTask("CNC-01", models.PriorityMandatory, 100)

	lanes, unscheduled, err := Allocate(
		[]DueTask{task},
		[]RosterEntry{entry(opBig, bigShift), entry(opSmall, smallShift)},
		[]Shift{bigShift, smallShift},
		DefaultConfig(),
	)
	require.NoError(t, err)
	require.Empty(t, unscheduled)

	require.Len(t, lanes, 2)
	assert.Empty(t, lanes[0].Tasks)
	require.Len(t, lanes[1].Tasks, 1, "the tighter lane wins best-fit")
	assert.Empty(t, lanes[1].Tasks[0].Note)
}

func TestAllocateBestFitTieBrokenByOperatorCode(t *testing.T) {
	shift := makeShift("morning", 6*60, 14*60, 0)
	opA := makeOperator("OP-A")
	opB := makeOperator("OP-B")

	task := makeTask("CNC-01", models.PriorityMandatory, 60)

	lanes, _, err := Allocate(
		[]DueTask{task},
		[]RosterEntry{entry(opB, shift), entry(opA, shift)},
		[]Shift{shift},
		DefaultConfig(),
	)
	require.NoError(t, err)

	require.Len(t, lanes, 2)
	require.Len(t, lanes[0].Tasks, 1)
	assert.Equal(t, "OP-A", lanes[0].OperatorCode)
	assert.Equal(t, NoteBestFitTie, lanes[0].Tasks[0].Note)
	assert.Equal(t, "best-fit tie broken by operator code", lanes[0].Tasks[0].NoteText)
}

func TestAllocateGroupByMachineOverridesBestFit(t *testing.T) {
	shift := makeShift("morning", 6*60, 14*60, 30) // 450 capacity
	opA := makeOperator("OP-A")
	opB := makeOperator("OP-B")

	machineM := uuid.New()
	filler := makeTask("OTHER-01", models.PriorityMandatory, 300)
	first := makeTask("M-01", models.PriorityMandatory, 200)
	first.MachineID = machineM
	second := makeTask("M-01", models.PriorityMandatory, 100)
	second.MachineID = machineM

	roster := []RosterEntry{entry(opA, shift), entry(opB, shift)}

	// Placement order by duration: filler(300) -> OP-A, first(200) does not
	// fit OP-A's 150 remaining -> OP-B. The final task fits both lanes and
	// best-fit alone would pick OP-A's tighter 150.
	t.Run("grouping keeps machine tasks in one lane", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GroupByMachine = true

		lanes, unscheduled, err := Allocate([]DueTask{filler, first, second}, roster, []Shift{shift}, cfg)
		require.NoError(t, err)
		require.Empty(t, unscheduled)

		require.Len(t, lanes, 2)
		require.Len(t, lanes[1].Tasks, 2, "both machine tasks land in OP-B's lane")
		assert.Equal(t, NoteGroupedWithMachine, lanes[1].Tasks[1].Note)
		assert.Equal(t, "grouped with same-machine task", lanes[1].Tasks[1].NoteText)
	})

	t.Run("without grouping best-fit splits them", func(t *testing.T) {
		lanes, unscheduled, err := Allocate([]DueTask{filler, first, second}, roster, []Shift{shift}, DefaultConfig())
		require.NoError(t, err)
		require.Empty(t, unscheduled)

		require.Len(t, lanes[0].Tasks, 2)
		require.Len(t, lanes[1].Tasks, 1)
		assert.Equal(t, second.ActionID, lanes[0].Tasks[1].ActionID)
		assert.Empty(t, lanes[0].Tasks[1].Note)
	})
}

func TestAllocatePriorityOrdering(t *testing.T) {
	shift := makeShift("short", 6*60, 6*60+100, 0) // 100 capacity
	op := makeOperator("OP-A")

	ideal := makeTask("CNC-01", models.PriorityIdeal, 80)
	mandatory := makeTask("CNC-02", models.PriorityMandatory, 60)

	t.Run("mandatory placed first", func(t *testing.T) {
		lanes, unscheduled, err := Allocate(
			[]DueTask{ideal, mandatory},
			[]RosterEntry{entry(op, shift)},
			[]Shift{shift},
			DefaultConfig(),
		)
		require.NoError(t, err)

		require.Len(t, lanes[0].Tasks, 1)
		assert.Equal(t, mandatory.ActionID, lanes[0].Tasks[0].ActionID)
		require.Len(t, unscheduled, 1)
		assert.Equal(t, ideal.ActionID, unscheduled[0].ActionID)
	})

	t.Run("duration order when priority is disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PrioritizeMandatory = false

		lanes, unscheduled, err := Allocate(
			[]DueTask{ideal, mandatory},
			[]RosterEntry{entry(op, shift)},
			[]Shift{shift},
			cfg,
		)
		require.NoError(t, err)

		require.Len(t, lanes[0].Tasks, 1)
		assert.Equal(t, ideal.ActionID, lanes[0].Tasks[0].ActionID)
		require.Len(t, unscheduled, 1)
		assert.Equal(t, mandatory.ActionID, unscheduled[0].ActionID)
	})
}

func TestAllocateCapacityRules(t *testing.T) {
	op := makeOperator("OP-A")

	t.Run("shift break wins over config fallback", func(t *testing.T) {
		shift := makeShift("morning", 6*60, 14*60, 45)
		cfg := DefaultConfig()
		cfg.BreakMinutes = 30

		lanes, _, err := Allocate(nil, []RosterEntry{entry(op, shift)}, []Shift{shift}, cfg)
		require.NoError(t, err)
		assert.Equal(t, 480-45, lanes[0].CapacityMinutes)
	})

	t.Run("config break applies when the shift has none", func(t *testing.T) {
		shift := makeShift("morning", 6*60, 14*60, 0)
		cfg := DefaultConfig()
		cfg.BreakMinutes = 30

		lanes, _, err := Allocate(nil, []RosterEntry{entry(op, shift)}, []Shift{shift}, cfg)
		require.NoError(t, err)
		assert.Equal(t, 480-30, lanes[0].CapacityMinutes)
	})

	t.Run("buffer is subtracted from every lane", func(t *testing.T) {
		shift := makeShift("morning", 6*60, 14*60, 30)
		cfg := DefaultConfig()
		cfg.BufferMinutes = 20

		lanes, _, err := Allocate(nil, []RosterEntry{entry(op, shift)}, []Shift{shift}, cfg)
		require.NoError(t, err)
		assert.Equal(t, 480-30-20, lanes[0].CapacityMinutes)
	})

	t.Run("capacity clamps to zero", func(t *testing.T) {
		shift := makeShift("tiny", 6*60, 6*60+20, 0)
		cfg := DefaultConfig()
		cfg.BufferMinutes = 60

		task := makeTask("CNC-01", models.PriorityMandatory, 10)
		lanes, unscheduled, err := Allocate([]DueTask{task}, []RosterEntry{entry(op, shift)}, []Shift{shift}, cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, lanes[0].CapacityMinutes)
		require.Len(t, unscheduled, 1)
		assert.Equal(t, ReasonNoAvailableCapacity, unscheduled[0].Reason)
	})
}

func TestAllocateEmptyRoster(t *testing.T) {
	task := makeTask("CNC-01", models.PriorityMandatory, 60)

	lanes, unscheduled, err := Allocate([]DueTask{task}, nil, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, lanes)
	require.Len(t, unscheduled, 1)
	assert.Equal(t, ReasonNoAvailableCapacity, unscheduled[0].Reason)
}

func TestAllocateValidation(t *testing.T) {
	op := makeOperator("OP-A")
	shift := makeShift("morning", 6*60, 14*60, 0)

	t.Run("negative break", func(t *testing.T) {
		_, _, err := Allocate(nil, nil, nil, Config{BreakMinutes: -1})
		assert.True(t, errors.Is(err, apperrors.ErrNegativeBreak))
	})

	t.Run("negative buffer", func(t *testing.T) {
		_, _, err := Allocate(nil, nil, nil, Config{BufferMinutes: -1})
		assert.True(t, errors.Is(err, apperrors.ErrNegativeBuffer))
	})

	t.Run("inverted shift window", func(t *testing.T) {
		bad := makeShift("bad", 14*60, 6*60, 0)
		_, _, err := Allocate(nil, []RosterEntry{entry(op, bad)}, []Shift{bad}, DefaultConfig())
		require.Error(t, err)
		assert.True(t, apperrors.IsDataIntegrity(err))
	})

	t.Run("roster references unknown shift", func(t *testing.T) {
		_, _, err := Allocate(nil, []RosterEntry{entry(op, shift)}, nil, DefaultConfig())
		require.Error(t, err)
		assert.True(t, apperrors.IsDataIntegrity(err))
	})
}

func TestAllocateDeterministic(t *testing.T) {
	shiftA := makeShift("morning", 6*60, 14*60, 30)
	shiftB := makeShift("evening", 14*60, 22*60, 30)
	roster := []RosterEntry{
		entry(makeOperator("OP-C", "cnc"), shiftB),
		entry(makeOperator("OP-A"), shiftA),
		entry(makeOperator("OP-B", "cnc"), shiftA),
	}

	tasks := []DueTask{
		makeTask("CNC-01", models.PriorityMandatory, 200),
		makeTask("CNC-02", models.PriorityIdeal, 150),
		makeTask("MILL-01", models.PriorityMandatory, 150),
		makeTask("MILL-02", models.PriorityIdeal, 90),
		makeTask("LATHE-01", models.PriorityMandatory, 600),
	}
	tasks[0].AuthorizationGroup = "cnc"
	tasks[1].AuthorizationGroup = "cnc"

	cfg := DefaultConfig()
	cfg.GroupByMachine = true

	lanes1, unscheduled1, err := Allocate(tasks, roster, []Shift{shiftA, shiftB}, cfg)
	require.NoError(t, err)
	lanes2, unscheduled2, err := Allocate(tasks, roster, []Shift{shiftA, shiftB}, cfg)
	require.NoError(t, err)

	assert.Equal(t, lanes1, lanes2)
	assert.Equal(t, unscheduled1, unscheduled2)
}
