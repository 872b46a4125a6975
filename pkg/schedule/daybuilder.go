package schedule

import (
	"math/rand"
	"time"
)

// buildDay constructs one day's DaySchedule in eight fixed phases, each
// honoring any pins already placed for today. It returns an *Infeasible
// the moment a mandatory duty shift cannot be covered; the caller
// (the backtracking driver) is responsible for recovery.
func buildDay(
	day time.Time,
	employees []Employee,
	states map[string]EmployeeState,
	holidays map[time.Time]bool,
	rng *rand.Rand,
	remainingDays int,
	pinsToday map[string]ShiftType,
) (DaySchedule, error) {
	isHoliday := IsWeekendOrHoliday(day, holidays)
	nextDay := day.AddDate(0, 0, 1)
	ds := DaySchedule{Date: day, IsHoliday: isHoliday}

	var primaryDuty, remoteDuty, nonDuty []Employee
	byName := make(map[string]Employee, len(employees))
	for _, e := range employees {
		byName[e.Name] = e
		switch {
		case e.Site == Primary && e.OnDuty:
			primaryDuty = append(primaryDuty, e)
		case e.Site == Remote && e.OnDuty:
			remoteDuty = append(remoteDuty, e)
		case !e.OnDuty:
			nonDuty = append(nonDuty, e)
		}
	}

	assigned := make(map[string]ShiftType, len(employees))
	for name, shift := range pinsToday {
		assigned[name] = shift
	}

	restingAfterNight := func(name string) bool {
		st := states[name]
		return st.LastShift != nil && *st.LastShift == Night
	}
	restingAfterEvening := func(name string) bool {
		st := states[name]
		return st.LastShift != nil && *st.LastShift == Evening
	}
	shiftLimitReached := func(e Employee, shift ShiftType) bool {
		st := states[e.Name]
		switch shift {
		case Morning:
			return e.MaxMorningShifts != nil && st.MorningCount >= *e.MaxMorningShifts
		case Evening:
			return e.MaxEveningShifts != nil && st.EveningCount >= *e.MaxEveningShifts
		case Night:
			return e.MaxNightShifts != nil && st.NightCount >= *e.MaxNightShifts
		default:
			return false
		}
	}

	// --- Phase 1: NIGHT (REMOTE, exactly one) ---
	nightPinned := false
	for _, s := range assigned {
		if s == Night {
			nightPinned = true
			break
		}
	}
	if !nightPinned {
		var eligible []Employee
		for _, e := range remoteDuty {
			if _, taken := assigned[e.Name]; taken {
				continue
			}
			if e.IsBlocked(day) || e.IsDayOffWeekly(day) {
				continue
			}
			if restingAfterNight(e.Name) {
				continue
			}
			if e.ScheduleKind == FiveTwo && isHoliday {
				continue
			}
			if states[e.Name].ConsecutiveWorking >= e.MaxCW() {
				continue
			}
			if shiftLimitReached(e, Night) {
				continue
			}
			eligible = append(eligible, e)
		}
		if len(eligible) == 0 {
			return ds, &Infeasible{Shift: Night, Reason: "no eligible remote on-duty employee", Date: day}
		}
		picked := selectForMandatory(eligible, states, Night, remainingDays, rng, 1)
		for _, e := range picked {
			assigned[e.Name] = Night
		}
	}

	// --- Eligibility pool for PRIMARY duty phases ---
	var primaryAvailable []Employee
	for _, e := range primaryDuty {
		if _, taken := assigned[e.Name]; taken {
			continue
		}
		if e.IsBlocked(day) || e.IsDayOffWeekly(day) {
			continue
		}
		if restingAfterNight(e.Name) {
			continue
		}
		if e.ScheduleKind == FiveTwo && isHoliday {
			continue
		}
		if states[e.Name].ConsecutiveWorking >= e.MaxCW() {
			continue
		}
		primaryAvailable = append(primaryAvailable, e)
	}

	morningPinned, eveningPinned := false, false
	for _, s := range assigned {
		if s == Morning {
			morningPinned = true
		}
		if s == Evening {
			eveningPinned = true
		}
	}

	morningGroupsTaken := groupsAssigned(assigned, byName, Morning)

	var morningEligible []Employee
	for _, e := range primaryAvailable {
		if !e.CanWorkMorning() {
			continue
		}
		if restingAfterEvening(e.Name) {
			continue
		}
		if shiftLimitReached(e, Morning) {
			continue
		}
		if e.Group != "" && morningGroupsTaken[e.Group] {
			continue
		}
		morningEligible = append(morningEligible, e)
	}

	// --- Phase 2: MORNING (PRIMARY, exactly one) ---
	var morningPick []Employee
	if !morningPinned {
		if len(morningEligible) == 0 {
			return ds, &Infeasible{Shift: Morning, Reason: "no eligible primary on-duty employee", Date: day}
		}
		morningPick = selectForMandatory(morningEligible, states, Morning, remainingDays, rng, 1)
		for _, e := range morningPick {
			assigned[e.Name] = Morning
		}
	}

	// --- Phase 3: EVENING (PRIMARY, exactly one) ---
	if !eveningPinned {
		inMorningPick := func(name string) bool {
			for _, e := range morningPick {
				if e.Name == name {
					return true
				}
			}
			return false
		}
		eveningGroupsTaken := groupsAssigned(assigned, byName, Evening)

		var pickPool []Employee
		for _, e := range primaryAvailable {
			if !e.CanWorkEvening() || inMorningPick(e.Name) {
				continue
			}
			if shiftLimitReached(e, Evening) {
				continue
			}
			if e.Group != "" && eveningGroupsTaken[e.Group] {
				continue
			}
			pickPool = append(pickPool, e)
		}
		if len(pickPool) == 0 {
			// Second pass over primaryAvailable with the same filters as
			// the first; it selects the same employees, so the pool stays
			// empty and the Infeasible below is returned.
			for _, e := range primaryAvailable {
				if !e.CanWorkEvening() || inMorningPick(e.Name) {
					continue
				}
				if shiftLimitReached(e, Evening) {
					continue
				}
				if e.Group != "" && eveningGroupsTaken[e.Group] {
					continue
				}
				pickPool = append(pickPool, e)
			}
		}
		if len(pickPool) == 0 {
			return ds, &Infeasible{Shift: Evening, Reason: "every available primary employee is taken by morning", Date: day}
		}

		var afterEveningDeficit []Employee
		for _, e := range pickPool {
			if restingAfterEvening(e.Name) && states[e.Name].NeedsMoreWork(remainingDays) && states[e.Name].ConsecutiveWorking < e.MaxCW()-1 {
				afterEveningDeficit = append(afterEveningDeficit, e)
			}
		}
		var eveningPick []Employee
		if len(afterEveningDeficit) > 0 {
			eveningPick = selectFair(afterEveningDeficit, states, Evening, rng, 1)
		} else {
			eveningPick = selectForMandatory(pickPool, states, Evening, remainingDays, rng, 1)
		}
		for _, e := range eveningPick {
			assigned[e.Name] = Evening
		}
	}

	// --- Phase 4: extra PRIMARY working days (weekdays only) ---
	if !isHoliday {
		nextIsHoliday := IsWeekendOrHoliday(nextDay, holidays)
		for {
			var extra []Employee
			for _, e := range primaryAvailable {
				if _, taken := assigned[e.Name]; taken {
					continue
				}
				if !states[e.Name].NeedsMoreWork(remainingDays) {
					continue
				}
				if states[e.Name].ConsecutiveWorking >= e.MaxCW() {
					continue
				}
				if restingAfterEvening(e.Name) {
					continue
				}
				extra = append(extra, e)
			}
			if len(extra) == 0 {
				break
			}
			byUrgency := selectByUrgency(extra, states, remainingDays, rng)
			if len(byUrgency) == 0 {
				break
			}
			candidate := byUrgency[0]

			if nextIsHoliday {
				candCWAfter := states[candidate.Name].ConsecutiveWorking + 1
				availTomorrow := 0
				for _, e := range primaryDuty {
					if e.Name == candidate.Name {
						if candCWAfter < e.MaxCW() {
							availTomorrow++
						}
						continue
					}
					s, has := assigned[e.Name]
					cwOK := states[e.Name].ConsecutiveWorking+1 < e.MaxCW()
					if !has || !s.IsWorking() || cwOK {
						availTomorrow++
					}
				}
				if availTomorrow < 2 {
					break
				}
			}
			assigned[candidate.Name] = Workday
		}
	}

	// --- Phase 5: remaining PRIMARY -> VACATION/DAY_OFF ---
	for _, e := range primaryDuty {
		if _, taken := assigned[e.Name]; taken {
			continue
		}
		if e.IsOnVacation(day) {
			assigned[e.Name] = Vacation
		} else {
			assigned[e.Name] = DayOff
		}
	}

	// --- Phase 6: REMOTE assignments beyond night ---
	for _, e := range remoteDuty {
		if _, taken := assigned[e.Name]; taken {
			continue
		}
		if e.IsOnVacation(day) {
			assigned[e.Name] = Vacation
			continue
		}
		if e.UnavailableDates[day.Format("2006-01-02")] || e.IsDayOffWeekly(day) {
			assigned[e.Name] = DayOff
			continue
		}
		if isHoliday {
			assigned[e.Name] = DayOff
			continue
		}
		if restingAfterNight(e.Name) {
			assigned[e.Name] = DayOff
			continue
		}
		if states[e.Name].ConsecutiveWorking >= e.MaxCW() {
			assigned[e.Name] = DayOff
			continue
		}
		empCWAfter := states[e.Name].ConsecutiveWorking + 1
		needsWork := states[e.Name].NeedsMoreWork(remainingDays)
		if empCWAfter >= e.MaxCW() && needsWork {
			othersAvailable := 0
			for _, other := range remoteDuty {
				if other.Name == e.Name {
					continue
				}
				if other.IsBlocked(nextDay) {
					continue
				}
				otherShift, has := assigned[other.Name]
				switch {
				case has && otherShift == Vacation:
					// not available tomorrow either way
				case has && otherShift == DayOff:
					othersAvailable++
				case has && (otherShift == Night || otherShift == Workday):
					if states[other.Name].ConsecutiveWorking+1 < other.MaxCW() {
						othersAvailable++
					}
				default:
					othersAvailable++
				}
			}
			if othersAvailable < 1 {
				assigned[e.Name] = DayOff
				continue
			}
		}
		if states[e.Name].NeedsMoreWork(remainingDays) {
			assigned[e.Name] = Workday
		} else {
			assigned[e.Name] = DayOff
		}
	}

	// --- Phase 7: non-duty employees ---
	for _, e := range nonDuty {
		if _, taken := assigned[e.Name]; taken {
			continue
		}
		switch {
		case e.IsOnVacation(day):
			assigned[e.Name] = Vacation
		case e.UnavailableDates[day.Format("2006-01-02")] || e.IsDayOffWeekly(day) || isHoliday:
			assigned[e.Name] = DayOff
		default:
			assigned[e.Name] = Workday
		}
	}

	// --- Phase 8: excess-rest rescue ---
	for _, e := range append(append([]Employee{}, primaryDuty...), remoteDuty...) {
		st := states[e.Name]
		if assigned[e.Name] != DayOff {
			continue
		}
		if st.ConsecutiveOff < MaxConsecutiveOff {
			continue
		}
		if isHoliday {
			continue
		}
		if restingAfterEvening(e.Name) {
			continue
		}
		if !st.NeedsMoreWork(remainingDays) {
			continue
		}
		if e.IsBlocked(day) || e.IsDayOffWeekly(day) || st.ConsecutiveWorking >= e.MaxCW() {
			continue
		}
		assigned[e.Name] = Workday
	}

	for _, e := range employees {
		if shift, ok := assigned[e.Name]; ok {
			ds.assign(e.Name, shift)
		}
	}

	for _, e := range employees {
		shift, ok := assigned[e.Name]
		if !ok {
			shift = DayOff
		}
		st := states[e.Name]
		st.Record(shift)
		states[e.Name] = st
	}

	return ds, nil
}

func groupsAssigned(assigned map[string]ShiftType, byName map[string]Employee, shift ShiftType) map[string]bool {
	taken := make(map[string]bool)
	for name, s := range assigned {
		if s != shift {
			continue
		}
		if e, ok := byName[name]; ok && e.Group != "" {
			taken[e.Group] = true
		}
	}
	return taken
}
