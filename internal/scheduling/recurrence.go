package scheduling

import (
	"time"

	"maintenance-scheduler-backend/internal/database/models"
)

// Recurrence rules are anchored on each action's anchor date (the date the
// action was defined, unless set explicitly):
//
//   weekly     every 7th day counted from the anchor
//   monthly    the anchor's day-of-month each month, clamped to the last day
//              of shorter months (anchor Jan 31 -> due Feb 28/29)
//   quarterly  as monthly, every 3rd month from the anchor month
//   yearly     the anchor's month and day each year, Feb 29 clamped to Feb 28
//
// Dates before the anchor are never due. Actions triggered before each use
// have no date-based cycle at all.

// IsDue reports whether an action with the given periodicity and anchor
// recurs on the date. Both dates are compared at day granularity.
func IsDue(periodicity models.Periodicity, anchor, date time.Time) bool {
	anchor = truncateToDay(anchor)
	date = truncateToDay(date)
	if date.Before(anchor) {
		return false
	}

	switch periodicity {
	case models.PeriodicityWeekly:
		days := int(date.Sub(anchor).Hours() / 24)
		return days%7 == 0
	case models.PeriodicityMonthly:
		return monthsBetween(anchor, date) >= 0 && dueDayOfMonth(anchor, date) == date.Day()
	case models.PeriodicityQuarterly:
		months := monthsBetween(anchor, date)
		return months >= 0 && months%3 == 0 && dueDayOfMonth(anchor, date) == date.Day()
	case models.PeriodicityYearly:
		if date.Month() == time.February && anchor.Month() == time.February && anchor.Day() == 29 {
			return date.Day() == lastDayOfMonth(date.Year(), time.February)
		}
		return date.Month() == anchor.Month() && date.Day() == anchor.Day()
	}

	// before_each_use and anything unknown never recurs by date
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthsBetween(anchor, date time.Time) int {
	return (date.Year()-anchor.Year())*12 + int(date.Month()) - int(anchor.Month())
}

// dueDayOfMonth returns the day of the target month the cycle lands on:
// the anchor's day, clamped to the target month's length.
func dueDayOfMonth(anchor, date time.Time) int {
	last := lastDayOfMonth(date.Year(), date.Month())
	if anchor.Day() > last {
		return last
	}
	return anchor.Day()
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
