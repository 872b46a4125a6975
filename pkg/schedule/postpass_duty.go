package schedule

import "time"

// balanceDutyShifts evens out duty-shift counts within each site by
// swapping a leader's duty slot with a trailer's WORKDAY on the same
// weekday. Both employees still work one day either way, so this pass
// never changes anyone's total_working.
func balanceDutyShifts(days []DaySchedule, employees []Employee, holidays map[time.Time]bool, pins []PinnedAssignment) []DaySchedule {
	pinned := pinnedSet(pins)

	dayByDate := make(map[time.Time]*DaySchedule, len(days))
	for i := range days {
		dayByDate[days[i].Date] = &days[i]
	}

	for _, site := range []Site{Primary, Remote} {
		var dutyEmps []Employee
		for _, e := range employees {
			if e.Site == site && e.OnDuty {
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

		limit := len(days) * len(dutyEmps)
		for iter := 0; iter < limit; iter++ {
			counts := make(map[string]int, len(dutyEmps))
			for _, e := range dutyEmps {
				total := 0
				for _, d := range days {
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
			for i := range days {
				day := &days[i]
				if IsWeekendOrHoliday(day.Date, holidays) {
					continue
				}
				if isPinned(pinned, day.Date, maxName) || isPinned(pinned, day.Date, minName) {
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
				if !contains(day.Workday, minName) {
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
				if prev != nil && contains(prev.Evening, maxName) {
					continue
				}
				if maxAttr == Morning && prev != nil && contains(prev.Evening, minName) {
					continue
				}
				next := dayByDate[day.Date.AddDate(0, 0, 1)]
				if maxAttr == Evening && next != nil && (contains(next.Morning, minName) || contains(next.Workday, minName)) {
					continue
				}
				if maxAttr == Night && next != nil && next.IsWorking(minName) {
					continue
				}

				moveShift(day, maxName, maxAttr, Workday)
				moveShift(day, minName, Workday, maxAttr)
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
