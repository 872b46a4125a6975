package schedule

import "time"

// VacationPeriod is a closed, inclusive date interval.
type VacationPeriod struct {
	Start time.Time
	End   time.Time
}

func (v VacationPeriod) covers(day time.Time) bool {
	return !day.Before(v.Start) && !day.After(v.End)
}

func (v VacationPeriod) validate() error {
	if v.End.Before(v.Start) {
		return invalidf("vacation end %s is before start %s", v.End.Format("2006-01-02"), v.Start.Format("2006-01-02"))
	}
	return nil
}

// Employee is one member of the on-call team.
type Employee struct {
	Name         string
	Site         Site
	ScheduleKind ScheduleKind

	OnDuty       bool
	MorningOnly  bool
	EveningOnly  bool

	Vacations        []VacationPeriod
	UnavailableDates map[string]bool // keyed by "2006-01-02"

	PreferredShift *ShiftType

	WorkloadPct int

	DaysOffWeekly map[time.Weekday]bool

	MaxMorningShifts      *int
	MaxEveningShifts      *int
	MaxNightShifts        *int
	MaxConsecutiveWorking *int

	Group string

	// Role is purely informational: it is kept in the Config (and so in
	// the JSON output), but no exporter renders it. It carries no
	// scheduling weight.
	Role string
}

// MaxConsecutiveWorkingDefault is the global default streak cap used when
// an employee has no individual override.
const MaxConsecutiveWorkingDefault = 5

// MaxConsecutiveOff is the ceiling on consecutive rest days before the
// excess-rest rescue phase considers upgrading DAY_OFF to WORKDAY.
const MaxConsecutiveOff = 3

// MaxCW returns the employee's effective streak cap.
func (e Employee) MaxCW() int {
	if e.MaxConsecutiveWorking != nil {
		return *e.MaxConsecutiveWorking
	}
	return MaxConsecutiveWorkingDefault
}

// IsOnVacation reports whether day falls inside any of the employee's
// vacation periods.
func (e Employee) IsOnVacation(day time.Time) bool {
	for _, v := range e.Vacations {
		if v.covers(day) {
			return true
		}
	}
	return false
}

// IsBlocked reports whether the employee is wholly unavailable on day:
// on vacation or has individually blocked the date.
func (e Employee) IsBlocked(day time.Time) bool {
	if e.IsOnVacation(day) {
		return true
	}
	return e.UnavailableDates[day.Format("2006-01-02")]
}

// IsDayOffWeekly reports whether day falls on one of the employee's fixed
// weekly rest days, independent of schedule kind.
func (e Employee) IsDayOffWeekly(day time.Time) bool {
	return e.DaysOffWeekly[day.Weekday()]
}

// CanWorkMorning reports whether the employee's flags allow the MORNING
// duty shift.
func (e Employee) CanWorkMorning() bool { return !e.EveningOnly }

// CanWorkEvening reports whether the employee's flags allow the EVENING
// duty shift.
func (e Employee) CanWorkEvening() bool { return !e.MorningOnly }

// WorksOnWeekend reports whether the employee's schedule kind permits
// weekend/holiday work.
func (e Employee) WorksOnWeekend() bool { return e.ScheduleKind == Flexible }

// validate enforces the construction-time invariants from the data model:
// exclusive-flag contradictions, workload range, preferred-shift
// restriction, streak-cap floor, and well-formed weekly rest days.
func (e Employee) validate() error {
	if e.Name == "" {
		return invalidf("employee name must not be empty")
	}
	if !e.Site.valid() {
		return invalidf("employee %q: invalid site %q", e.Name, e.Site)
	}
	if !e.ScheduleKind.valid() {
		return invalidf("employee %q: invalid schedule kind %q", e.Name, e.ScheduleKind)
	}
	if e.MorningOnly && e.EveningOnly {
		return invalidf("employee %q: morning_only and evening_only are mutually exclusive", e.Name)
	}
	if e.WorkloadPct < 1 || e.WorkloadPct > 100 {
		return invalidf("employee %q: workload_pct must be in [1,100], got %d", e.Name, e.WorkloadPct)
	}
	if e.PreferredShift != nil {
		switch *e.PreferredShift {
		case Vacation, DayOff:
			return invalidf("employee %q: preferred_shift cannot be vacation or day_off", e.Name)
		}
	}
	if e.MaxConsecutiveWorking != nil && *e.MaxConsecutiveWorking < 1 {
		return invalidf("employee %q: max_consecutive_working must be >= 1", e.Name)
	}
	for d := range e.DaysOffWeekly {
		if d < time.Sunday || d > time.Saturday {
			return invalidf("employee %q: days_off_weekly contains invalid weekday %d", e.Name, d)
		}
	}
	for _, v := range e.Vacations {
		if err := v.validate(); err != nil {
			return invalidf("employee %q: %v", e.Name, err)
		}
	}
	return nil
}
