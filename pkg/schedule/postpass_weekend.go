package schedule

import "time"

// balanceWeekendWork evens out weekend duty counts within each site,
// restricted to FLEXIBLE on_duty employees, by swapping a leader's
// weekend duty slot with a trailer's DAY_OFF on the same weekend day.
// Swaps change total_working, so the caller must recompute EmployeeState
// afterward.
func balanceWeekendWork(days []DaySchedule, employees []Employee, pins []PinnedAssignment) []DaySchedule {
	pinned := pinnedSet(pins)

	dayByDate := make(map[time.Time]*DaySchedule, len(days))
	var weekendDays []*DaySchedule
	for i := range days {
		dayByDate[days[i].Date] = &days[i]
		if days[i].Date.Weekday() == time.Saturday || days[i].Date.Weekday() == time.Sunday {
			weekendDays = append(weekendDays, &days[i])
		}
	}
	if len(weekendDays) == 0 {
		return days
	}

	for _, site := range []Site{Primary, Remote} {
		var dutyEmps []Employee
		for _, e := range employees {
			if e.Site == site && e.OnDuty && e.ScheduleKind == Flexible {
				dutyEmps = append(dutyEmps, e)
			}
		}
		if len(dutyEmps) < 2 {
			continue
		}
		byName := make(map[string]Employee, len(dutyEmps))
		for _, e := range dutyEmps {
			byName[e.Name] = e
		}
		attrs := dutyAttrsForSite(site)

		limit := len(weekendDays) * len(dutyEmps)
		for iter := 0; iter < limit; iter++ {
			counts := make(map[string]int, len(dutyEmps))
			for _, e := range dutyEmps {
				total := 0
				for _, d := range weekendDays {
					for _, attr := range attrs {
						if contains(*d.listForConst(attr), e.Name) {
							total++
						}
					}
				}
				counts[e.Name] = total
			}
			maxName, minName := maxMinByCount(dutyEmps, counts)
			if counts[maxName]-counts[minName] <= 1 {
				break
			}

			swapped := false
			for _, day := range weekendDays {
				if isPinned(pinned, day.Date, maxName) || isPinned(pinned, day.Date, minName) {
					continue
				}
				if contains(day.Vacation, minName) || contains(day.Vacation, maxName) {
					continue
				}

				var maxAttr ShiftType
				found := false
				for _, attr := range attrs {
					if contains(*day.listForConst(attr), maxName) {
						maxAttr = attr
						found = true
						break
					}
				}
				if !found {
					continue
				}
				if !contains(day.DayOff, minName) {
					continue
				}

				minEmp := byName[minName]
				if maxAttr == Morning && !minEmp.CanWorkMorning() {
					continue
				}
				if maxAttr == Evening && !minEmp.CanWorkEvening() {
					continue
				}
				if cap := maxShiftsFor(minEmp, maxAttr); cap != nil {
					cur := 0
					for _, d := range days {
						if contains(*d.listForConst(maxAttr), minName) {
							cur++
						}
					}
					if cur >= *cap {
						continue
					}
				}

				prev := dayByDate[day.Date.AddDate(0, 0, -1)]
				if maxAttr == Morning && prev != nil && contains(prev.Evening, minName) {
					continue
				}
				if prev != nil && contains(prev.Night, minName) {
					continue
				}
				next := dayByDate[day.Date.AddDate(0, 0, 1)]
				if maxAttr == Evening && next != nil && (contains(next.Morning, minName) || contains(next.Workday, minName)) {
					continue
				}
				if maxAttr == Night && next != nil && next.IsWorking(minName) {
					continue
				}
				if streakAround(minName, day.Date.Day()-1, days, true) > minEmp.MaxCW() {
					continue
				}

				moveShift(day, maxName, maxAttr, DayOff)
				moveShift(day, minName, DayOff, maxAttr)
				swapped = true
				break
			}
			if !swapped {
				break
			}
		}
	}

	return days
}

func moveShift(day *DaySchedule, name string, from, to ShiftType) {
	fromList := day.listFor(from)
	*fromList = remove(*fromList, name)
	day.assign(name, to)
}

// maxMinByCount finds the highest- and lowest-count employees, breaking
// ties by order (matching the deterministic iteration order of the
// employees slice) rather than Go's randomized map iteration.
func maxMinByCount(order []Employee, counts map[string]int) (maxName, minName string) {
	first := true
	var maxCount, minCount int
	for _, e := range order {
		c := counts[e.Name]
		if first {
			maxName, minName = e.Name, e.Name
			maxCount, minCount = c, c
			first = false
			continue
		}
		if c > maxCount {
			maxCount, maxName = c, e.Name
		}
		if c < minCount {
			minCount, minName = c, e.Name
		}
	}
	return maxName, minName
}
