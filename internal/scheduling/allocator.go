package scheduling

import (
	"fmt"
	"math"
	"sort"

	"maintenance-scheduler-backend/internal/database/models"
	apperrors "maintenance-scheduler-backend/internal/errors"

	"github.com/google/uuid"
)

// Allocate places due tasks into per-operator lanes using greedy best-fit:
// tasks are taken mandatory-first and longest-first, and each one goes to the
// authorized lane with the least remaining capacity that still fits it, so
// large gaps stay open for large tasks. The heuristic is deliberate: a
// different placement rule could be swapped in behind the same lane-capacity
// bookkeeping without touching the rest of the pipeline.
//
// Identical inputs always produce identical output: every ordering is pinned
// by an explicit sort key and nothing depends on map iteration or the clock.
func Allocate(tasks []DueTask, roster []RosterEntry, shifts []Shift, cfg Config) ([]Lane, []UnscheduledTask, error) {
	if cfg.BreakMinutes < 0 {
		return nil, nil, apperrors.ErrNegativeBreak
	}
	if cfg.BufferMinutes < 0 {
		return nil, nil, apperrors.ErrNegativeBuffer
	}

	shiftByID := make(map[uuid.UUID]Shift, len(shifts))
	for _, shift := range shifts {
		if shift.EndMinute <= shift.StartMinute {
			return nil, nil, apperrors.NewDataIntegrityError("shift %s ends at or before its start", shift.Name)
		}
		shiftByID[shift.ID] = shift
	}

	lanes, err := buildLanes(roster, shiftByID, cfg)
	if err != nil {
		return nil, nil, err
	}

	ordered := sortTasks(tasks, cfg)

	var unscheduled []UnscheduledTask
	for _, task := range ordered {
		authorized := authorizedLanes(lanes, task)
		if task.AuthorizationGroup != "" && len(authorized) == 0 {
			unscheduled = append(unscheduled, unplaced(task, ReasonNoAuthorizedOperator))
			continue
		}

		candidates := fittingLanes(authorized, task)
		if len(candidates) == 0 {
			unscheduled = append(unscheduled, unplaced(task, ReasonNoAvailableCapacity))
			continue
		}

		lane, note := chooseLane(candidates, task, cfg)
		place(lane, shiftByID[lane.ShiftID], task, note)
	}

	for i := range lanes {
		lane := &lanes[i]
		if lane.CapacityMinutes > 0 {
			lane.UtilizationPercent = round1(float64(lane.AssignedMinutes) / float64(lane.CapacityMinutes) * 100)
		}
	}

	return lanes, unscheduled, nil
}

// buildLanes creates one empty lane per rostered operator. Capacity is the
// shift window minus the paid break and the configured buffer, clamped to
// zero. A break encoded on the shift wins over the config fallback.
func buildLanes(roster []RosterEntry, shiftByID map[uuid.UUID]Shift, cfg Config) ([]Lane, error) {
	lanes := make([]Lane, 0, len(roster))
	seen := make(map[uuid.UUID]bool, len(roster))

	for _, entry := range roster {
		if seen[entry.Operator.ID] {
			return nil, apperrors.NewDataIntegrityError("operator %s appears twice in the roster", entry.Operator.Code)
		}
		seen[entry.Operator.ID] = true

		shift, ok := shiftByID[entry.ShiftID]
		if !ok {
			return nil, apperrors.NewDataIntegrityError("operator %s is rostered onto unknown shift %s", entry.Operator.Code, entry.ShiftID)
		}

		breakMinutes := shift.BreakMinutes
		if breakMinutes == 0 {
			breakMinutes = cfg.BreakMinutes
		}
		capacity := shift.EndMinute - shift.StartMinute - breakMinutes - cfg.BufferMinutes
		if capacity < 0 {
			capacity = 0
		}

		grants := make(map[string]bool, len(entry.Operator.Grants))
		for _, g := range entry.Operator.Grants {
			grants[g] = true
		}

		lanes = append(lanes, Lane{
			OperatorID:      entry.Operator.ID,
			OperatorCode:    entry.Operator.Code,
			OperatorName:    entry.Operator.Name,
			ShiftID:         entry.ShiftID,
			CapacityMinutes: capacity,
			Tasks:           []ScheduledTask{},
			grants:          grants,
			machines:        make(map[uuid.UUID]bool),
		})
	}

	sort.Slice(lanes, func(i, j int) bool {
		return lanes[i].OperatorCode < lanes[j].OperatorCode
	})

	return lanes, nil
}

// sortTasks pins the placement order: mandatory before ideal when enabled,
// then longest first to reduce fragmentation, then machine code and action id
// as stable tie-breaks for deterministic output.
func sortTasks(tasks []DueTask, cfg Config) []DueTask {
	ordered := make([]DueTask, len(tasks))
	copy(ordered, tasks)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if cfg.PrioritizeMandatory && a.Priority != b.Priority {
			return a.Priority == models.PriorityMandatory
		}
		if a.DurationMinutes != b.DurationMinutes {
			return a.DurationMinutes > b.DurationMinutes
		}
		if a.MachineCode != b.MachineCode {
			return a.MachineCode < b.MachineCode
		}
		return a.ActionID.String() < b.ActionID.String()
	})

	return ordered
}

func authorizedLanes(lanes []Lane, task DueTask) []*Lane {
	var out []*Lane
	for i := range lanes {
		if task.AuthorizationGroup == "" || lanes[i].grants[task.AuthorizationGroup] {
			out = append(out, &lanes[i])
		}
	}
	return out
}

func fittingLanes(lanes []*Lane, task DueTask) []*Lane {
	var out []*Lane
	for _, lane := range lanes {
		if lane.Remaining() >= task.DurationMinutes {
			out = append(out, lane)
		}
	}
	return out
}

// chooseLane prefers a lane already visiting the task's machine when grouping
// is on; otherwise best-fit: the tightest lane the task still fits in, with
// operator code breaking exact-capacity ties.
func chooseLane(candidates []*Lane, task DueTask, cfg Config) (*Lane, NoteCode) {
	if cfg.GroupByMachine {
		var grouped []*Lane
		for _, lane := range candidates {
			if lane.machines[task.MachineID] {
				grouped = append(grouped, lane)
			}
		}
		if len(grouped) > 0 {
			return bestFit(grouped), NoteGroupedWithMachine
		}
	}

	best := bestFit(candidates)
	for _, lane := range candidates {
		if lane != best && lane.Remaining() == best.Remaining() {
			return best, NoteBestFitTie
		}
	}
	return best, ""
}

func bestFit(candidates []*Lane) *Lane {
	best := candidates[0]
	for _, lane := range candidates[1:] {
		if lane.Remaining() < best.Remaining() ||
			(lane.Remaining() == best.Remaining() && lane.OperatorCode < best.OperatorCode) {
			best = lane
		}
	}
	return best
}

// place appends the task at the lane cursor and advances it, keeping tasks
// contiguous from the shift start with no overlap.
func place(lane *Lane, shift Shift, task DueTask, note NoteCode) {
	start := shift.StartMinute + lane.AssignedMinutes
	end := start + task.DurationMinutes

	scheduled := ScheduledTask{
		DueTask:      task,
		OperatorID:   lane.OperatorID,
		OperatorName: lane.OperatorName,
		StartMinute:  start,
		EndMinute:    end,
		StartTime:    clockString(start),
		EndTime:      clockString(end),
		Note:         note,
	}
	switch note {
	case NoteGroupedWithMachine:
		scheduled.NoteText = "grouped with same-machine task"
	case NoteBestFitTie:
		scheduled.NoteText = "best-fit tie broken by operator code"
	}

	lane.Tasks = append(lane.Tasks, scheduled)
	lane.AssignedMinutes += task.DurationMinutes
	lane.machines[task.MachineID] = true
}

func unplaced(task DueTask, reason ReasonCode) UnscheduledTask {
	return UnscheduledTask{DueTask: task, Reason: reason, ReasonText: reason.Text()}
}

func clockString(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
