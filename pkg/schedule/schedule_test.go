package schedule

import (
	"log/slog"
	"testing"
	"time"
)

// standardTeam returns a minimal valid 4 PRIMARY + 2 REMOTE flexible
// team with no vacations, pins, or carry-over, matching the scenarios
// described for the scheduling core.
func standardTeam() []Employee {
	var emps []Employee
	for _, name := range []string{"P1", "P2", "P3", "P4"} {
		emps = append(emps, Employee{
			Name:         name,
			Site:         Primary,
			ScheduleKind: Flexible,
			OnDuty:       true,
			WorkloadPct:  100,
		})
	}
	for _, name := range []string{"R1", "R2"} {
		emps = append(emps, Employee{
			Name:         name,
			Site:         Remote,
			ScheduleKind: Flexible,
			OnDuty:       true,
			WorkloadPct:  100,
		})
	}
	return emps
}

func mustGenerate(t *testing.T, cfg Config, holidays map[time.Time]bool) *Schedule {
	t.Helper()
	cfg, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	sched, _, err := Generate(cfg, holidays, slog.Default())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return sched
}

func date(y int, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// S1: March 2025, no holidays — 31 covered days, no PRIMARY in night.
func TestGenerate_March2025NoHolidays(t *testing.T) {
	cfg := Config{Month: 3, Year: 2025, Seed: 42, Employees: standardTeam()}
	sched := mustGenerate(t, cfg, map[time.Time]bool{})

	if len(sched.Days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(sched.Days))
	}

	nightCounts := map[string]int{"R1": 0, "R2": 0}
	for _, d := range sched.Days {
		if !d.IsCovered() {
			t.Errorf("day %s not covered", d.Date.Format("2006-01-02"))
		}
		for _, name := range d.Night {
			if name == "P1" || name == "P2" || name == "P3" || name == "P4" {
				t.Errorf("primary employee %s assigned to night on %s", name, d.Date.Format("2006-01-02"))
			}
			nightCounts[name]++
		}
	}
	if diff := abs(nightCounts["R1"] - nightCounts["R2"]); diff > 3 {
		t.Errorf("night counts too unbalanced: R1=%d R2=%d", nightCounts["R1"], nightCounts["R2"])
	}
}

// S2: February 2025 has 28 days.
func TestGenerate_February2025DayCount(t *testing.T) {
	cfg := Config{Month: 2, Year: 2025, Seed: 42, Employees: standardTeam()}
	sched := mustGenerate(t, cfg, map[time.Time]bool{})
	if len(sched.Days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(sched.Days))
	}
}

// S3: a single explicit holiday plus weekends are all marked is_holiday.
func TestGenerate_HolidayFlagging(t *testing.T) {
	holidays := map[time.Time]bool{date(2025, 3, 8): true}
	cfg := Config{Month: 3, Year: 2025, Seed: 42, Employees: standardTeam()}
	sched := mustGenerate(t, cfg, holidays)

	for _, d := range sched.Days {
		if !d.IsCovered() {
			t.Errorf("day %s not covered", d.Date.Format("2006-01-02"))
		}
		wantHoliday := d.Date.Weekday() == time.Saturday || d.Date.Weekday() == time.Sunday || d.Date.Equal(date(2025, 3, 8))
		if d.IsHoliday != wantHoliday {
			t.Errorf("day %s: IsHoliday=%v want %v", d.Date.Format("2006-01-02"), d.IsHoliday, wantHoliday)
		}
	}
}

// S4: a vacationing employee never appears in a working list during the
// vacation window.
func TestGenerate_VacationExclusion(t *testing.T) {
	emps := standardTeam()
	for i := range emps {
		if emps[i].Name == "P1" {
			emps[i].Vacations = []VacationPeriod{{Start: date(2025, 3, 3), End: date(2025, 3, 7)}}
		}
	}
	cfg := Config{Month: 3, Year: 2025, Seed: 42, Employees: emps}
	sched := mustGenerate(t, cfg, map[time.Time]bool{})

	for _, d := range sched.Days {
		if d.Date.Before(date(2025, 3, 3)) || d.Date.After(date(2025, 3, 7)) {
			continue
		}
		if !contains(d.Vacation, "P1") {
			t.Errorf("day %s: P1 not marked vacation", d.Date.Format("2006-01-02"))
		}
		if d.IsWorking("P1") {
			t.Errorf("day %s: P1 working while on vacation", d.Date.Format("2006-01-02"))
		}
	}
}

// S5: a pin is honored, and the after-evening rest rule applies the next
// day.
func TestGenerate_PinHonoredWithRestFollowing(t *testing.T) {
	emps := standardTeam()
	pinDate := date(2025, 3, 10)
	cfg := Config{
		Month:     3,
		Year:      2025,
		Seed:      42,
		Employees: emps,
		Pins:      []PinnedAssignment{{Date: pinDate, EmployeeName: "P2", Shift: Evening}},
	}
	sched := mustGenerate(t, cfg, map[time.Time]bool{})

	day := sched.DayFor("2025-03-10")
	if day == nil || !contains(day.Evening, "P2") {
		t.Fatalf("pin not honored: P2 not in evening on 2025-03-10")
	}
	next := sched.DayFor("2025-03-11")
	if next == nil {
		t.Fatal("missing 2025-03-11")
	}
	if contains(next.Morning, "P2") || contains(next.Workday, "P2") {
		t.Errorf("P2 violates after-evening rest on 2025-03-11")
	}
}

// S6: carry-over seeds the streak counters so the after-night rest rule
// is enforced on the very first day of the month.
func TestGenerate_CarryOverSeedsRest(t *testing.T) {
	emps := standardTeam()
	night := Night
	cfg := Config{
		Month:     2,
		Year:      2025,
		Seed:      42,
		Employees: emps,
		CarryOver: []CarryOverState{{EmployeeName: "P1", LastShift: &night, ConsecutiveWorking: 4}},
	}
	sched := mustGenerate(t, cfg, map[time.Time]bool{})

	first := sched.Days[0]
	if first.IsWorking("P1") {
		t.Errorf("P1 should be resting on first day of month after carried-over night shift")
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
