package scheduling

import "maintenance-scheduler-backend/internal/database/models"

// Summarize rolls up the merged schedule. Mandatory/ideal counts span both
// scheduled and unscheduled tasks, so the summary reflects total demand on
// the day, not just what was placed.
func Summarize(schedule DailySchedule) Summary {
	var summary Summary

	for _, shift := range schedule.Shifts {
		shiftHasTasks := false
		for _, lane := range shift.Lanes {
			if len(lane.Tasks) == 0 {
				continue
			}
			shiftHasTasks = true
			summary.OperatorCount++
			for _, task := range lane.Tasks {
				summary.ScheduledTasks++
				summary.TotalMinutes += task.DurationMinutes
				countPriority(&summary, task.Priority)
			}
		}
		if shiftHasTasks {
			summary.ShiftCount++
		}
	}

	for _, task := range schedule.Unscheduled {
		summary.UnscheduledTasks++
		countPriority(&summary, task.Priority)
	}

	summary.TotalTasks = summary.ScheduledTasks + summary.UnscheduledTasks
	return summary
}

func countPriority(summary *Summary, priority models.Priority) {
	switch priority {
	case models.PriorityMandatory:
		summary.MandatoryCount++
	case models.PriorityIdeal:
		summary.IdealCount++
	}
}
