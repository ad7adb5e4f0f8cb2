package scheduling

import (
	"testing"
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	lanes, unscheduled, shifts, _ := buildMergeFixture(t)
	schedule := MergeExecutions(lanes, unscheduled, shifts, nil, day(2025, time.June, 10), false)

	summary := schedule.Summary
	assert.Equal(t, 3, summary.TotalTasks)
	assert.Equal(t, 2, summary.ScheduledTasks)
	assert.Equal(t, 1, summary.UnscheduledTasks)
	assert.Equal(t, 1, summary.ShiftCount)
	assert.Equal(t, 1, summary.OperatorCount)
	assert.Equal(t, 350, summary.TotalMinutes)
	assert.Equal(t, 2, summary.MandatoryCount, "priority counts span scheduled and unscheduled")
	assert.Equal(t, 1, summary.IdealCount)
}

func TestSummarizeCountsOnlyWorkingOperators(t *testing.T) {
	shift := makeShift("morning", 6*60, 14*60, 30)
	busy := makeOperator("OP-A")
	idle := makeOperator("OP-B")

	task := makeTask("CNC-01", models.PriorityMandatory, 400)

	lanes, unscheduled, err := Allocate(
		[]DueTask{task},
		[]RosterEntry{entry(busy, shift), entry(idle, shift)},
		[]Shift{shift},
		DefaultConfig(),
	)
	require.NoError(t, err)

	schedule := MergeExecutions(lanes, unscheduled, []Shift{shift}, nil, day(2025, time.June, 10), false)

	assert.Equal(t, 1, schedule.Summary.OperatorCount, "idle lanes do not count")
	assert.Equal(t, 1, schedule.Summary.ShiftCount)
}

func TestSummarizeEmptySchedule(t *testing.T) {
	schedule := MergeExecutions(nil, nil, nil, nil, day(2025, time.June, 10), false)
	assert.Equal(t, Summary{}, schedule.Summary)
}
