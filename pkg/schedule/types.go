// Package schedule implements the duty-roster scheduling core: a
// deterministic, seeded, greedy-with-backtracking day builder followed by
// three stabilizing post-passes.
package schedule

import "fmt"

// ShiftType is a closed set of the six things an employee can be assigned
// to on any given day.
type ShiftType string

const (
	Morning  ShiftType = "morning"
	Evening  ShiftType = "evening"
	Night    ShiftType = "night"
	Workday  ShiftType = "workday"
	DayOff   ShiftType = "day_off"
	Vacation ShiftType = "vacation"
)

// IsDuty reports whether the shift is one of the three mandatory on-call
// shifts that must be covered every calendar day.
func (s ShiftType) IsDuty() bool {
	switch s {
	case Morning, Evening, Night:
		return true
	default:
		return false
	}
}

// IsWorking reports whether the shift counts toward an employee's monthly
// working-day norm.
func (s ShiftType) IsWorking() bool {
	return s.IsDuty() || s == Workday
}

func (s ShiftType) valid() bool {
	switch s {
	case Morning, Evening, Night, Workday, DayOff, Vacation:
		return true
	default:
		return false
	}
}

// Site is the operational location an employee belongs to. Exactly one
// site per employee.
type Site string

const (
	// Primary covers the MORNING and EVENING duty shifts.
	Primary Site = "primary"
	// Remote covers the NIGHT duty shift, serviced from a different
	// timezone during its own daytime hours.
	Remote Site = "remote"
)

// Serves reports whether the site is responsible for covering the given
// duty shift.
func (s Site) Serves(shift ShiftType) bool {
	switch s {
	case Primary:
		return shift == Morning || shift == Evening
	case Remote:
		return shift == Night
	default:
		return false
	}
}

func (s Site) valid() bool {
	return s == Primary || s == Remote
}

// ScheduleKind governs whether an employee can be rostered on
// weekends/holidays.
type ScheduleKind string

const (
	// Flexible employees may work any day of the week.
	Flexible ScheduleKind = "flexible"
	// FiveTwo employees never work weekends or holidays.
	FiveTwo ScheduleKind = "5/2"
)

func (k ScheduleKind) valid() bool {
	return k == Flexible || k == FiveTwo
}

// shiftHours gives the HQ-local wall-clock start/end hour for each
// non-rest shift, used by the calendar exporter. Evening ends at hour 24
// (midnight at the end of its date); night runs 00:00-08:00 on its own
// date.
var shiftHours = map[ShiftType][2]int{
	Morning: {8, 17},
	Evening: {15, 24},
	Night:   {0, 8},
	Workday: {9, 18},
}

// HQHours returns the local start and end hour for a duty or workday
// shift. ok is false for DAY_OFF/VACATION, which have no wall-clock range.
func HQHours(s ShiftType) (start, end int, ok bool) {
	h, ok := shiftHours[s]
	if !ok {
		return 0, 0, false
	}
	return h[0], h[1], true
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
