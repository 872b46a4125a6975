package schedule

// Metadata summarizes a generated Schedule: shift totals, the production
// calendar norm, each employee's final working-day count, and the
// carry-over snapshot that seeds next month's streak rules.
type Metadata struct {
	TotalMornings           int
	TotalEvenings           int
	TotalNights             int
	HolidaysCount           int
	ProductionWorkingDays   int
	WorkingDaysPerEmployee  map[string]int
	CarryOver               []CarryOverState
}

// Schedule is the immutable result of a successful Generate call.
type Schedule struct {
	Config   Config
	Days     []DaySchedule
	Metadata Metadata
}

// DayFor returns the DaySchedule for the given date, or nil if date is
// outside the scheduled month.
func (s *Schedule) DayFor(date string) *DaySchedule {
	for i := range s.Days {
		if s.Days[i].Date.Format("2006-01-02") == date {
			return &s.Days[i]
		}
	}
	return nil
}
