package schedule

import (
	"math/rand"
	"testing"
)

func TestSelectFair_PrefersMinimumShiftCount(t *testing.T) {
	candidates := []Employee{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	states := map[string]EmployeeState{
		"A": {NightCount: 3},
		"B": {NightCount: 0},
		"C": {NightCount: 1},
	}
	rng := rand.New(rand.NewSource(1))
	picked := selectFair(candidates, states, Night, rng, 1)
	if len(picked) != 1 || picked[0].Name != "B" {
		t.Fatalf("expected B (min night count), got %v", picked)
	}
}

func TestSelectFair_PreferenceIsSoftTiebreak(t *testing.T) {
	eveningPref := Evening
	candidates := []Employee{
		{Name: "A", PreferredShift: &eveningPref},
		{Name: "B"},
	}
	states := map[string]EmployeeState{"A": {}, "B": {}}
	rng := rand.New(rand.NewSource(1))
	picked := selectFair(candidates, states, Evening, rng, 1)
	if picked[0].Name != "A" {
		t.Fatalf("expected preferred employee A to win tie, got %v", picked[0].Name)
	}
}

func TestSelectForMandatory_PrefersDeficitPool(t *testing.T) {
	candidates := []Employee{{Name: "A"}, {Name: "B"}}
	states := map[string]EmployeeState{
		"A": {TargetWorkingDays: 10, TotalWorking: 10}, // no deficit
		"B": {TargetWorkingDays: 10, TotalWorking: 2},  // deficit
	}
	rng := rand.New(rand.NewSource(1))
	picked := selectForMandatory(candidates, states, Workday, 5, rng, 1)
	if picked[0].Name != "B" {
		t.Fatalf("expected B (has deficit), got %v", picked[0].Name)
	}
}

func TestSelectForMandatory_FallsBackWhenNoDeficit(t *testing.T) {
	candidates := []Employee{{Name: "A"}, {Name: "B"}}
	states := map[string]EmployeeState{
		"A": {TargetWorkingDays: 10, TotalWorking: 10, NightCount: 5},
		"B": {TargetWorkingDays: 10, TotalWorking: 10, NightCount: 1},
	}
	rng := rand.New(rand.NewSource(1))
	picked := selectForMandatory(candidates, states, Night, 5, rng, 1)
	if picked[0].Name != "B" {
		t.Fatalf("expected fair fallback to pick B (fewer nights), got %v", picked[0].Name)
	}
}

func TestSelectByUrgency_OrdersByDeficitRatio(t *testing.T) {
	candidates := []Employee{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	states := map[string]EmployeeState{
		"A": {TargetWorkingDays: 10, TotalWorking: 5}, // deficit 5
		"B": {TargetWorkingDays: 10, TotalWorking: 8}, // deficit 2
		"C": {TargetWorkingDays: 10, TotalWorking: 10}, // no deficit
	}
	rng := rand.New(rand.NewSource(1))
	ordered := selectByUrgency(candidates, states, 10, rng)
	if ordered[0].Name != "A" || ordered[1].Name != "B" || ordered[2].Name != "C" {
		t.Fatalf("unexpected urgency order: %v", ordered)
	}
}
