package schedule

import (
	"testing"
	"time"
)

func TestAllDays_MarchHas31(t *testing.T) {
	days := AllDays(2025, 3)
	if len(days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(days))
	}
	if days[0].Day() != 1 || days[len(days)-1].Day() != 31 {
		t.Fatalf("unexpected day range: %v .. %v", days[0], days[len(days)-1])
	}
}

func TestAllDays_FebruaryNonLeapHas28(t *testing.T) {
	days := AllDays(2025, 2)
	if len(days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(days))
	}
}

func TestIsWeekendOrHoliday(t *testing.T) {
	holidays := map[time.Time]bool{date(2025, 3, 8): true}
	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2025, 3, 1), true},  // Saturday
		{date(2025, 3, 3), false}, // Monday
		{date(2025, 3, 8), true},  // explicit holiday (also Saturday)
	}
	for _, c := range cases {
		if got := IsWeekendOrHoliday(c.day, holidays); got != c.want {
			t.Errorf("IsWeekendOrHoliday(%s) = %v, want %v", c.day.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestProductionDays_ExcludesWeekendsAndHolidays(t *testing.T) {
	holidays := map[time.Time]bool{date(2025, 3, 8): true} // a Saturday, already excluded
	got := ProductionDays(2025, 3, holidays)
	// March 2025 has 21 weekdays; 3/8 is a Saturday so the holiday entry
	// does not remove an additional weekday.
	if got != 21 {
		t.Fatalf("expected 21 production days, got %d", got)
	}
}

func TestBlockedWorkingDays_CountsOnlyWeekdayVacation(t *testing.T) {
	e := Employee{
		Name: "P1",
		Vacations: []VacationPeriod{
			{Start: date(2025, 3, 3), End: date(2025, 3, 9)}, // Mon..Sun
		},
	}
	got := BlockedWorkingDays(e, 2025, 3)
	if got != 5 {
		t.Fatalf("expected 5 blocked weekdays, got %d", got)
	}
}
