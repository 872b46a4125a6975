package schedule

import (
	"math/rand"
	"time"
)

// MaxBacktrackDays bounds how many already-built days a single rollback
// discards.
const MaxBacktrackDays = 3

// MaxBacktrackAttempts bounds the total number of rollbacks across the
// whole run; exceeding it surfaces a ScheduleError.
const MaxBacktrackAttempts = 10

type backtrackFrame struct {
	day    time.Time
	states map[string]EmployeeState
}

// runBacktracking drives the day builder across every day in allDays,
// recovering from Infeasible failures by rolling back a bounded window
// and re-seeding the rng. states is mutated in place and reflects the
// final day's counters on success.
func runBacktracking(
	allDays []time.Time,
	employees []Employee,
	states map[string]EmployeeState,
	holidays map[time.Time]bool,
	seed int64,
	pinsByDate map[string]map[string]ShiftType,
	onBacktrack func(day time.Time, reason string),
) ([]DaySchedule, error) {
	rng := rand.New(rand.NewSource(seed))

	var days []DaySchedule
	var stack []backtrackFrame
	dayIdx := 0
	totalBacktracks := 0

	for dayIdx < len(allDays) {
		day := allDays[dayIdx]
		savedStates := cloneStates(states)
		remainingDays := len(allDays) - dayIdx

		ds, err := buildDay(day, employees, states, holidays, rng, remainingDays, pinsByDate[day.Format("2006-01-02")])
		if err == nil {
			days = append(days, ds)
			stack = append(stack, backtrackFrame{day: day, states: savedStates})
			dayIdx++
			continue
		}

		totalBacktracks++
		if onBacktrack != nil {
			onBacktrack(day, err.Error())
		}

		if totalBacktracks > MaxBacktrackAttempts || len(stack) < 1 {
			return nil, &ScheduleError{
				Reason: "backtracking exhausted",
				Cause:  err,
			}
		}

		stepsBack := MaxBacktrackDays
		if stepsBack > len(stack) {
			stepsBack = len(stack)
		}
		for i := 0; i < stepsBack; i++ {
			if len(stack) == 0 {
				break
			}
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for name, st := range last.states {
				states[name] = st
			}
			days = days[:len(days)-1]
			dayIdx--
		}

		rng = rand.New(rand.NewSource(seed + int64(totalBacktracks)*1000 + int64(dayIdx)))
	}

	return days, nil
}
