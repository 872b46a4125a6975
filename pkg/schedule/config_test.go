package schedule

import "testing"

func TestNewConfig_RejectsTooFewPrimaryOnDuty(t *testing.T) {
	team := standardTeam()
	emps := append(team[:3:3], team[4:]...) // 3 primary, 2 remote
	_, err := NewConfig(Config{Month: 3, Year: 2025, Employees: emps})
	if err == nil {
		t.Fatal("expected ConfigInvalid for too few on-duty primary employees")
	}
}

func TestNewConfig_RejectsDuplicateNames(t *testing.T) {
	emps := standardTeam()
	emps = append(emps, emps[0])
	_, err := NewConfig(Config{Month: 3, Year: 2025, Employees: emps})
	if err == nil {
		t.Fatal("expected ConfigInvalid for duplicate employee name")
	}
}

func TestNewConfig_RejectsOutOfRangeMonth(t *testing.T) {
	_, err := NewConfig(Config{Month: 13, Year: 2025, Employees: standardTeam()})
	if err == nil {
		t.Fatal("expected ConfigInvalid for month out of range")
	}
}

func TestNewConfig_RejectsPinOnIncompatibleSite(t *testing.T) {
	emps := standardTeam()
	_, err := NewConfig(Config{
		Month:     3,
		Year:      2025,
		Employees: emps,
		Pins:      []PinnedAssignment{{Date: date(2025, 3, 1), EmployeeName: "P1", Shift: Night}},
	})
	if err == nil {
		t.Fatal("expected ConfigInvalid for pin assigning PRIMARY employee to NIGHT")
	}
}

func TestNewConfig_RejectsVacationAsPin(t *testing.T) {
	p := PinnedAssignment{Date: date(2025, 3, 1), EmployeeName: "P1", Shift: Vacation}
	if err := p.validate(); err == nil {
		t.Fatal("expected validation error for vacation pin")
	}
}

func TestCollectConfigIssues_WarnsOnUnknownCarryOver(t *testing.T) {
	cfg := Config{
		Month:     3,
		Year:      2025,
		Employees: standardTeam(),
		CarryOver: []CarryOverState{{EmployeeName: "ghost"}},
	}
	warnings := CollectConfigIssues(cfg)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
}

func TestCollectConfigIssues_WarnsOnNonOnDutyPin(t *testing.T) {
	emps := standardTeam()
	emps = append(emps, Employee{Name: "Backoffice", Site: Primary, ScheduleKind: Flexible, OnDuty: false, WorkloadPct: 100})
	cfg := Config{
		Month:     3,
		Year:      2025,
		Employees: emps,
		Pins:      []PinnedAssignment{{Date: date(2025, 3, 1), EmployeeName: "Backoffice", Shift: Morning}},
	}
	warnings := CollectConfigIssues(cfg)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning for non-on_duty pin, got %d", len(warnings))
	}
}
