package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ConfigInvalid is returned by NewConfig when a construction-time
// invariant is violated (minimum on-duty headcount, month/year bounds,
// employee flag contradictions, pin integrity, ...). It is fatal: the
// caller never receives a Config to pass to Generate.
type ConfigInvalid struct {
	Reason string
}

func (e *ConfigInvalid) Error() string {
	return "invalid config: " + e.Reason
}

// Infeasible is raised internally by the day builder when a mandatory
// duty shift cannot be covered. The backtracking driver recovers from it
// up to a bounded number of times; once exhausted it is wrapped into a
// ScheduleError and surfaced to the caller.
type Infeasible struct {
	Shift  ShiftType
	Reason string
	Date   time.Time
}

func (e *Infeasible) Error() string {
	return fmt.Sprintf("cannot cover %s shift on %s: %s", e.Shift, e.Date.Format("2006-01-02"), e.Reason)
}

// ScheduleError reports that no schedule could be produced at all: either
// backtracking was exhausted, or the finished schedule still has an
// uncovered day.
type ScheduleError struct {
	Reason string
	Cause  error
}

func (e *ScheduleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schedule could not be built: %s: %v", e.Reason, e.Cause)
	}
	return "schedule could not be built: " + e.Reason
}

func (e *ScheduleError) Unwrap() error { return e.Cause }

// Warning is a non-fatal condition observed during generation: a
// deficit/excess the target-adjustment pass could not fully close, an
// unknown carry-over name, or a pin that placed a non-duty/on-leave
// employee into a duty shift. Warnings never cause Generate to return a
// partial Schedule.
type Warning struct {
	Employee string
	Message  string
}

func (w Warning) String() string {
	if w.Employee == "" {
		return w.Message
	}
	return w.Employee + ": " + w.Message
}

// IsInfeasible reports whether err is (or wraps) an Infeasible failure.
func IsInfeasible(err error) bool {
	var inf *Infeasible
	return errors.As(err, &inf)
}
