package scheduling

import (
	"sort"
	"time"

	"maintenance-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

type executionKey struct {
	actionID  uuid.UUID
	machineID uuid.UUID
}

// MergeExecutions overlays persisted execution state onto the allocator's
// output and assembles the final schedule view. Every scheduled task without
// a record stays pending; unscheduled tasks never carry execution state
// because they were never assigned a slot. The allocation itself is never
// mutated here; the overlay is a read-side layer only.
//
// degraded marks a schedule whose execution lookup timed out: the allocation
// is still served, with every task reported pending and the flag set so the
// caller knows completion state is unknown.
func MergeExecutions(lanes []Lane, unscheduled []UnscheduledTask, shifts []Shift, executions []ExecutionRecord, date time.Time, degraded bool) DailySchedule {
	byKey := make(map[executionKey]ExecutionRecord, len(executions))
	for _, exec := range executions {
		byKey[executionKey{exec.ActionID, exec.MachineID}] = exec
	}

	for li := range lanes {
		for ti := range lanes[li].Tasks {
			task := &lanes[li].Tasks[ti]
			task.Status = models.ExecutionStatusPending
			if exec, ok := byKey[executionKey{task.ActionID, task.MachineID}]; ok {
				task.Status = exec.Status
				task.ActualMinutes = exec.ActualMinutes
				task.CompletedByName = exec.CompletedByName
			}
		}
	}

	if unscheduled == nil {
		unscheduled = []UnscheduledTask{}
	}

	schedule := DailySchedule{
		Date:            date.Format("2006-01-02"),
		Shifts:          groupByShift(lanes, shifts),
		Unscheduled:     unscheduled,
		OverlayDegraded: degraded,
	}
	schedule.Summary = Summarize(schedule)
	return schedule
}

// groupByShift folds lanes into their shifts, ordered by shift start time.
// Shifts nobody is rostered onto are omitted.
func groupByShift(lanes []Lane, shifts []Shift) []ShiftSchedule {
	ordered := make([]Shift, len(shifts))
	copy(ordered, shifts)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].StartMinute != ordered[j].StartMinute {
			return ordered[i].StartMinute < ordered[j].StartMinute
		}
		return ordered[i].Name < ordered[j].Name
	})

	out := make([]ShiftSchedule, 0, len(ordered))
	for _, shift := range ordered {
		var shiftLanes []Lane
		for _, lane := range lanes {
			if lane.ShiftID == shift.ID {
				shiftLanes = append(shiftLanes, lane)
			}
		}
		if len(shiftLanes) == 0 {
			continue
		}
		out = append(out, ShiftSchedule{
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			StartTime: clockString(shift.StartMinute),
			EndTime:   clockString(shift.EndMinute),
			Lanes:     shiftLanes,
		})
	}
	return out
}
