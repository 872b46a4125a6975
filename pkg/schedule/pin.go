package schedule

import "time"

// PinnedAssignment fixes a single employee to a single shift on a single
// date. The day builder honors it unconditionally; post-passes never move
// it.
type PinnedAssignment struct {
	Date         time.Time
	EmployeeName string
	Shift        ShiftType
}

func (p PinnedAssignment) validate() error {
	if p.Shift == Vacation {
		return invalidf("pin for %q on %s: cannot pin vacation", p.EmployeeName, p.Date.Format("2006-01-02"))
	}
	if !p.Shift.valid() {
		return invalidf("pin for %q on %s: invalid shift %q", p.EmployeeName, p.Date.Format("2006-01-02"), p.Shift)
	}
	return nil
}

// CarryOverState seeds an employee's streak counters from the end of the
// previous month, so cross-month rest rules are still enforced.
type CarryOverState struct {
	EmployeeName       string
	LastShift          *ShiftType
	ConsecutiveWorking int
	ConsecutiveOff     int
}
