package schedule

import (
	"math/rand"
	"sort"
)

// selectFair sorts candidates by minimum shift count for the given
// shift, then by whether the shift matches the employee's preference
// (soft tiebreak), then by a seeded random draw, and returns the first
// count. Determinism comes entirely from rng: two calls with the same
// rng state and inputs return the same employees in the same order.
func selectFair(candidates []Employee, states map[string]EmployeeState, shift ShiftType, rng *rand.Rand, count int) []Employee {
	type scored struct {
		emp   Employee
		count int
		pref  int
		tie   float64
	}
	scoredList := make([]scored, len(candidates))
	for i, e := range candidates {
		pref := 1
		if e.PreferredShift != nil && *e.PreferredShift == shift {
			pref = 0
		}
		scoredList[i] = scored{emp: e, count: states[e.Name].ShiftCount(shift), pref: pref, tie: rng.Float64()}
	}
	sort.SliceStable(scoredList, func(i, j int) bool {
		if scoredList[i].count != scoredList[j].count {
			return scoredList[i].count < scoredList[j].count
		}
		if scoredList[i].pref != scoredList[j].pref {
			return scoredList[i].pref < scoredList[j].pref
		}
		return scoredList[i].tie < scoredList[j].tie
	})
	if count > len(scoredList) {
		count = len(scoredList)
	}
	out := make([]Employee, count)
	for i := 0; i < count; i++ {
		out[i] = scoredList[i].emp
	}
	return out
}

// selectForMandatory prefers candidates who still have a deficit against
// their monthly norm (protecting employees who already met it), falling
// back to the full candidate pool when nobody has a deficit, then applies
// selectFair within whichever pool was chosen.
func selectForMandatory(candidates []Employee, states map[string]EmployeeState, shift ShiftType, remainingDays int, rng *rand.Rand, count int) []Employee {
	var deficitPool []Employee
	for _, e := range candidates {
		if states[e.Name].NeedsMoreWork(remainingDays) {
			deficitPool = append(deficitPool, e)
		}
	}
	pool := deficitPool
	if len(pool) == 0 {
		pool = candidates
	}
	return selectFair(pool, states, shift, rng, count)
}

// selectByUrgency sorts candidates descending by how urgently they need
// more working days relative to the days remaining in the month.
// Employees with no deficit are deprioritized via a negative rng
// sentinel rather than excluded, since callers may still need to pick
// from this list as a last resort.
func selectByUrgency(candidates []Employee, states map[string]EmployeeState, remainingDays int, rng *rand.Rand) []Employee {
	type scored struct {
		emp     Employee
		urgency float64
	}
	scoredList := make([]scored, len(candidates))
	denom := remainingDays
	if denom < 1 {
		denom = 1
	}
	for i, e := range candidates {
		st := states[e.Name]
		deficit := st.EffectiveTarget() - st.TotalWorking
		var urgency float64
		if deficit <= 0 {
			urgency = -rng.Float64()
		} else {
			urgency = float64(deficit)/float64(denom) + rng.Float64()*0.001
		}
		scoredList[i] = scored{emp: e, urgency: urgency}
	}
	sort.SliceStable(scoredList, func(i, j int) bool {
		return scoredList[i].urgency > scoredList[j].urgency
	})
	out := make([]Employee, len(scoredList))
	for i, s := range scoredList {
		out[i] = s.emp
	}
	return out
}
