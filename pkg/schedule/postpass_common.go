package schedule

import "time"

// pinnedSet indexes pins by "date|name" for isPinned. A pinned
// (date, name) pair is immovable to every post-pass.
func pinnedSet(pins []PinnedAssignment) map[string]bool {
	set := make(map[string]bool, len(pins))
	for _, p := range pins {
		set[p.Date.Format("2006-01-02")+"|"+p.EmployeeName] = true
	}
	return set
}

func isPinned(pinned map[string]bool, date time.Time, name string) bool {
	return pinned[date.Format("2006-01-02")+"|"+name]
}

// streakAround returns the length of the run of days around days[idx]
// that would result if that day became working (working=true) or
// resting (working=false) for name — used to check a swap or flip does
// not create a too-long streak in either direction.
func streakAround(name string, idx int, days []DaySchedule, working bool) int {
	active := func(d DaySchedule) bool {
		if working {
			return d.IsWorking(name)
		}
		return contains(d.DayOff, name) || contains(d.Vacation, name)
	}

	left := 0
	for i := idx - 1; i >= 0; i-- {
		if active(days[i]) {
			left++
		} else {
			break
		}
	}
	right := 0
	for i := idx + 1; i < len(days); i++ {
		if active(days[i]) {
			right++
		} else {
			break
		}
	}
	return left + 1 + right
}

func dutyAttrsForSite(site Site) []ShiftType {
	if site == Primary {
		return []ShiftType{Morning, Evening}
	}
	return []ShiftType{Night}
}

// listForConst is the read-only counterpart of (*DaySchedule).listFor,
// usable on a value receiver.
func (d DaySchedule) listForConst(shift ShiftType) *[]string {
	switch shift {
	case Morning:
		return &d.Morning
	case Evening:
		return &d.Evening
	case Night:
		return &d.Night
	case Workday:
		return &d.Workday
	case DayOff:
		return &d.DayOff
	case Vacation:
		return &d.Vacation
	default:
		return nil
	}
}

func maxShiftsFor(e Employee, shift ShiftType) *int {
	switch shift {
	case Morning:
		return e.MaxMorningShifts
	case Evening:
		return e.MaxEveningShifts
	case Night:
		return e.MaxNightShifts
	default:
		return nil
	}
}
