package schedule

import "time"

// AllDays returns every date in the given month, in order, at midnight
// UTC.
func AllDays(year int, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	days := make([]time.Time, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsWeekendOrHoliday reports whether day is a Saturday, a Sunday, or a
// member of the caller-supplied holiday set.
func IsWeekendOrHoliday(day time.Time, holidays map[time.Time]bool) bool {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return true
	}
	return holidays[normalizeDay(day)]
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ProductionDays counts the month's working days (Mon-Fri, excluding
// holidays) per the national production calendar.
func ProductionDays(year, month int, holidays map[time.Time]bool) int {
	count := 0
	for _, d := range AllDays(year, month) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday && !holidays[normalizeDay(d)] {
			count++
		}
	}
	return count
}

// BlockedWorkingDays counts the weekdays in the month during which the
// employee is unavailable (vacation or individually blocked). It lowers
// the employee's effective target, since those days can never be worked
// regardless of holiday status.
func BlockedWorkingDays(e Employee, year, month int) int {
	count := 0
	for _, d := range AllDays(year, month) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if e.IsBlocked(d) {
			count++
		}
	}
	return count
}
