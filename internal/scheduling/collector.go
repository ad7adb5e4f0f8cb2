package scheduling

import (
	"sort"
	"time"

	"maintenance-scheduler-backend/internal/database/models"
)

// CollectDueTasks determines which maintenance actions are due on the date.
// An action is due when its recurrence cycle includes the date and the owning
// machine is not on maintenance hold. Priority and duration are copied from
// the action verbatim. An action that already has an execution record for the
// date is still collected; the overlay, not the collector, marks it done.
func CollectDueTasks(actions []models.MaintenanceAction, date time.Time) []DueTask {
	tasks := make([]DueTask, 0, len(actions))

	for _, action := range actions {
		if !action.IsActive || action.Machine.MaintenanceOnHold {
			continue
		}
		if !IsDue(action.Periodicity, action.AnchorDate, date) {
			continue
		}

		tasks = append(tasks, DueTask{
			ActionID:           action.ID,
			MachineID:          action.MachineID,
			Description:        action.Description,
			MachineCode:        action.Machine.Code,
			MachineArea:        action.Machine.Area,
			AuthorizationGroup: action.Machine.AuthorizationGroup,
			Periodicity:        action.Periodicity,
			Priority:           action.Priority,
			DurationMinutes:    action.DurationMinutes,
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].MachineCode != tasks[j].MachineCode {
			return tasks[i].MachineCode < tasks[j].MachineCode
		}
		return tasks[i].ActionID.String() < tasks[j].ActionID.String()
	})

	return tasks
}
