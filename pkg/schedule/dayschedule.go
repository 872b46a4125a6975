package schedule

import "time"

// DaySchedule is one day's assignment: every employee name appears in
// exactly one of the six lists.
type DaySchedule struct {
	Date      time.Time
	IsHoliday bool

	Morning  []string
	Evening  []string
	Night    []string
	Workday  []string
	DayOff   []string
	Vacation []string
}

// AllAssigned returns every name assigned to a working shift (duty or
// workday) on this day.
func (d DaySchedule) AllAssigned() []string {
	out := make([]string, 0, len(d.Morning)+len(d.Evening)+len(d.Night)+len(d.Workday))
	out = append(out, d.Morning...)
	out = append(out, d.Evening...)
	out = append(out, d.Night...)
	out = append(out, d.Workday...)
	return out
}

// IsCovered reports whether every mandatory duty shift has at least one
// name assigned.
func (d DaySchedule) IsCovered() bool {
	return len(d.Morning) > 0 && len(d.Evening) > 0 && len(d.Night) > 0
}

// IsWorking reports whether name is assigned to a duty or workday shift
// on this day.
func (d DaySchedule) IsWorking(name string) bool {
	return contains(d.Morning, name) || contains(d.Evening, name) || contains(d.Night, name) || contains(d.Workday, name)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func remove(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// listFor returns a pointer to the slice field backing the given shift,
// so post-passes can move a name between lists in place.
func (d *DaySchedule) listFor(shift ShiftType) *[]string {
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

func (d *DaySchedule) assign(name string, shift ShiftType) {
	list := d.listFor(shift)
	*list = append(*list, name)
}
