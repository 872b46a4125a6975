package schedule

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Generate is the sole entry point of the scheduling core: a pure,
// synchronous, CPU-bound function from (Config, holidays) to Schedule.
// It never mutates its inputs and never returns a partial Schedule —
// either generation succeeds, or it returns an error and a nil Schedule.
//
// logger may be nil, in which case a discarding logger is used.
func Generate(cfg Config, holidays map[time.Time]bool, logger *slog.Logger) (*Schedule, []Warning, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(noopWriter{}, nil))
	}

	allDays := AllDays(cfg.Year, cfg.Month)
	productionDays := ProductionDays(cfg.Year, cfg.Month, holidays)
	logger.Info("computed production-day norm", "production_days", productionDays)

	states := make(map[string]EmployeeState, len(cfg.Employees))
	for _, e := range cfg.Employees {
		blocked := BlockedWorkingDays(e, cfg.Year, cfg.Month)
		target := int(math.Round(float64(productionDays) * float64(e.WorkloadPct) / 100))
		states[e.Name] = EmployeeState{
			TargetWorkingDays: target,
			VacationDays:      blocked,
		}
	}

	carryByName := make(map[string]CarryOverState, len(cfg.CarryOver))
	for _, co := range cfg.CarryOver {
		carryByName[co.EmployeeName] = co
	}
	for _, e := range cfg.Employees {
		co, ok := carryByName[e.Name]
		if !ok {
			continue
		}
		st := states[e.Name]
		if co.LastShift != nil {
			shift := *co.LastShift
			st.LastShift = &shift
		}
		st.ConsecutiveWorking = co.ConsecutiveWorking
		st.ConsecutiveOff = co.ConsecutiveOff
		states[e.Name] = st
	}

	warnings := CollectConfigIssues(cfg)

	pinsByDate := make(map[string]map[string]ShiftType)
	for _, p := range cfg.Pins {
		key := p.Date.Format("2006-01-02")
		if pinsByDate[key] == nil {
			pinsByDate[key] = make(map[string]ShiftType)
		}
		pinsByDate[key][p.EmployeeName] = p.Shift
	}

	days, err := runBacktracking(allDays, cfg.Employees, states, holidays, cfg.Seed, pinsByDate, func(day time.Time, reason string) {
		logger.Warn("day assignment failed, rolling back", "day", day.Format("2006-01-02"), "reason", reason)
	})
	if err != nil {
		return nil, nil, err
	}

	days = balanceWeekendWork(days, cfg.Employees, cfg.Pins)
	recomputeTotalWorking(cfg.Employees, states, days)

	days = balanceDutyShifts(days, cfg.Employees, holidays, cfg.Pins)

	var adjustWarnings []Warning
	days, adjustWarnings = targetAdjustment(days, cfg.Employees, states, holidays, cfg.Pins)
	warnings = append(warnings, adjustWarnings...)

	var uncovered []string
	for _, d := range days {
		if !d.IsCovered() {
			uncovered = append(uncovered, d.Date.Format("2006-01-02"))
		}
	}
	if len(uncovered) > 0 {
		return nil, nil, &ScheduleError{Reason: fmt.Sprintf("uncovered days: %v", uncovered)}
	}

	meta := buildMetadata(cfg.Employees, states, days, len(holidays), productionDays)

	for _, w := range warnings {
		logger.Warn("generation warning", "employee", w.Employee, "message", w.Message)
	}
	logger.Info("schedule generated",
		"days", len(days),
		"nights", meta.TotalNights,
		"mornings", meta.TotalMornings,
		"evenings", meta.TotalEvenings,
		"production_days", productionDays,
	)

	return &Schedule{Config: cfg, Days: days, Metadata: meta}, warnings, nil
}

func recomputeTotalWorking(employees []Employee, states map[string]EmployeeState, days []DaySchedule) {
	for _, e := range employees {
		total := 0
		for _, d := range days {
			if d.IsWorking(e.Name) {
				total++
			}
		}
		st := states[e.Name]
		st.TotalWorking = total
		states[e.Name] = st
	}
}

func buildMetadata(employees []Employee, states map[string]EmployeeState, days []DaySchedule, holidaysCount, productionDays int) Metadata {
	var nights, mornings, evenings int
	for _, d := range days {
		nights += len(d.Night)
		mornings += len(d.Morning)
		evenings += len(d.Evening)
	}

	working := make(map[string]int, len(employees))
	carryOver := make([]CarryOverState, 0, len(employees))
	for _, e := range employees {
		st := states[e.Name]
		working[e.Name] = st.TotalWorking
		carryOver = append(carryOver, CarryOverState{
			EmployeeName:       e.Name,
			LastShift:          st.LastShift,
			ConsecutiveWorking: st.ConsecutiveWorking,
			ConsecutiveOff:     st.ConsecutiveOff,
		})
	}

	return Metadata{
		TotalMornings:          mornings,
		TotalEvenings:          evenings,
		TotalNights:            nights,
		HolidaysCount:          holidaysCount,
		ProductionWorkingDays:  productionDays,
		WorkingDaysPerEmployee: working,
		CarryOver:              carryOver,
	}
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
