package schedule

import "time"

// targetAdjustment is the final post-pass: it pushes each on_duty
// employee's total_working exactly to effective_target where legally
// possible, by converting WORKDAY<->DAY_OFF on weekdays only, without
// creating a working streak longer than the employee's cap or a rest
// streak longer than MaxConsecutiveOff. A DAY_OFF is never turned into a
// WORKDAY the day after the employee's own EVENING or NIGHT. Employees
// the pass cannot fully close get a Warning.
func targetAdjustment(days []DaySchedule, employees []Employee, states map[string]EmployeeState, holidays map[time.Time]bool, pins []PinnedAssignment) ([]DaySchedule, []Warning) {
	pinned := pinnedSet(pins)
	var warnings []Warning

	for _, e := range employees {
		if !e.OnDuty {
			continue
		}
		st := states[e.Name]
		target := st.EffectiveTarget()
		actual := st.TotalWorking

		if actual > target {
			excess := actual - target
			for i := len(days) - 1; i >= 0 && excess > 0; i-- {
				day := &days[i]
				if !contains(day.Workday, e.Name) {
					continue
				}
				if IsWeekendOrHoliday(day.Date, holidays) {
					continue
				}
				if isPinned(pinned, day.Date, e.Name) {
					continue
				}
				if streakAround(e.Name, i, days, false) > MaxConsecutiveOff {
					continue
				}
				day.Workday = remove(day.Workday, e.Name)
				day.DayOff = append(day.DayOff, e.Name)
				st.TotalWorking--
				excess--
			}
			if excess > 0 {
				warnings = append(warnings, Warning{Employee: e.Name, Message: "could not remove enough excess working days to reach the monthly norm"})
			}
		} else if actual < target {
			deficit := target - actual
			for i := 0; i < len(days) && deficit > 0; i++ {
				day := &days[i]
				if !contains(day.DayOff, e.Name) {
					continue
				}
				if IsWeekendOrHoliday(day.Date, holidays) {
					continue
				}
				if e.IsBlocked(day.Date) {
					continue
				}
				if i > 0 && (contains(days[i-1].Evening, e.Name) || contains(days[i-1].Night, e.Name)) {
					continue
				}
				if streakAround(e.Name, i, days, true) > e.MaxCW() {
					continue
				}
				day.DayOff = remove(day.DayOff, e.Name)
				day.Workday = append(day.Workday, e.Name)
				st.TotalWorking++
				deficit--
			}
			if deficit > 0 {
				warnings = append(warnings, Warning{Employee: e.Name, Message: "could not close enough working-day deficit to reach the monthly norm"})
			}
		}

		states[e.Name] = st
	}

	return days, warnings
}
