package schedule

import "fmt"

// MinPrimaryOnDuty and MinRemoteOnDuty are the smallest on-duty headcounts
// that make 24/7 coverage possible at all: two mandatory PRIMARY duty
// slots (MORNING, EVENING) need enough rotation depth to avoid immediate
// streak-cap deadlock, and likewise for the single REMOTE slot (NIGHT).
const (
	MinPrimaryOnDuty = 4
	MinRemoteOnDuty  = 2
)

// Config is the full input to Generate: the month to schedule, the team
// roster, and any fixed assignments or cross-month carry-over state.
type Config struct {
	Month int
	Year  int
	// Timezone is informational only; HQ wall-clock semantics are fixed
	// per §3 of the scheduling model regardless of this value.
	Timezone string
	Seed     int64

	Employees []Employee
	Pins      []PinnedAssignment
	CarryOver []CarryOverState
}

// NewConfig validates cfg and returns it (with an empty Timezone set to
// "Europe/Moscow"), or a *ConfigInvalid describing the first violated invariant. Construction validates
// eagerly: a Config that survives NewConfig is always safe to pass to
// Generate.
func NewConfig(cfg Config) (Config, error) {
	if cfg.Month < 1 || cfg.Month > 12 {
		return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("month must be in [1,12], got %d", cfg.Month)}
	}
	if cfg.Year < 2024 {
		return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("year must be >= 2024, got %d", cfg.Year)}
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Moscow"
	}

	seen := make(map[string]bool, len(cfg.Employees))
	var primaryDuty, remoteDuty int
	for _, e := range cfg.Employees {
		if err := e.validate(); err != nil {
			return Config{}, &ConfigInvalid{Reason: err.Error()}
		}
		if seen[e.Name] {
			return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("duplicate employee name %q", e.Name)}
		}
		seen[e.Name] = true
		if e.OnDuty {
			switch e.Site {
			case Primary:
				primaryDuty++
			case Remote:
				remoteDuty++
			}
		}
	}
	if primaryDuty < MinPrimaryOnDuty {
		return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("not enough on-duty primary employees: %d (minimum %d)", primaryDuty, MinPrimaryOnDuty)}
	}
	if remoteDuty < MinRemoteOnDuty {
		return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("not enough on-duty remote employees: %d (minimum %d)", remoteDuty, MinRemoteOnDuty)}
	}

	byName := make(map[string]Employee, len(cfg.Employees))
	for _, e := range cfg.Employees {
		byName[e.Name] = e
	}

	pinSeen := make(map[string]bool, len(cfg.Pins))
	for _, p := range cfg.Pins {
		if err := p.validate(); err != nil {
			return Config{}, &ConfigInvalid{Reason: err.Error()}
		}
		emp, ok := byName[p.EmployeeName]
		if !ok {
			return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("pin references unknown employee %q", p.EmployeeName)}
		}
		if !emp.Site.Serves(p.Shift) && p.Shift.IsDuty() {
			return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("pin for %q on %s: site %s does not serve %s", p.EmployeeName, p.Date.Format("2006-01-02"), emp.Site, p.Shift)}
		}
		key := p.Date.Format("2006-01-02") + "|" + p.EmployeeName
		if pinSeen[key] {
			return Config{}, &ConfigInvalid{Reason: fmt.Sprintf("more than one pin for %q on %s", p.EmployeeName, p.Date.Format("2006-01-02"))}
		}
		pinSeen[key] = true
	}

	return cfg, nil
}

// CollectConfigIssues returns non-fatal Warnings for conditions the
// construction-time invariants deliberately allow but that a caller may
// still want surfaced: carry-over entries naming an unknown employee, and
// pins that place a non-on_duty or currently-vacationing employee into a
// duty shift.
func CollectConfigIssues(cfg Config) []Warning {
	var warnings []Warning

	byName := make(map[string]Employee, len(cfg.Employees))
	for _, e := range cfg.Employees {
		byName[e.Name] = e
	}

	for _, co := range cfg.CarryOver {
		if _, ok := byName[co.EmployeeName]; !ok {
			warnings = append(warnings, Warning{
				Employee: co.EmployeeName,
				Message:  "carry_over references unknown employee; ignored",
			})
		}
	}

	for _, p := range cfg.Pins {
		emp, ok := byName[p.EmployeeName]
		if !ok {
			continue
		}
		if p.Shift.IsDuty() {
			if !emp.OnDuty {
				warnings = append(warnings, Warning{
					Employee: p.EmployeeName,
					Message:  fmt.Sprintf("pinned to duty shift %s on %s while not on_duty", p.Shift, p.Date.Format("2006-01-02")),
				})
			}
			if emp.IsOnVacation(p.Date) {
				warnings = append(warnings, Warning{
					Employee: p.EmployeeName,
					Message:  fmt.Sprintf("pinned to duty shift %s on %s while on vacation", p.Shift, p.Date.Format("2006-01-02")),
				})
			}
		}
	}

	return warnings
}
