package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/666bes666/duty-schedule-gen/pkg/schedule"
)

// document is the YAML shape of a scheduling configuration file. It
// recognizes exactly the options enumerated in spec.md §6, plus the
// informational employee role, and is translated into schedule.Config
// by LoadDocument.
type document struct {
	Month     int            `yaml:"month"`
	Year      int            `yaml:"year"`
	Timezone  string         `yaml:"timezone"`
	Seed      int64          `yaml:"seed"`
	Employees []employeeDoc  `yaml:"employees"`
	Pins      []pinDoc       `yaml:"pins"`
	CarryOver []carryOverDoc `yaml:"carry_over"`
}

type vacationDoc struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type employeeDoc struct {
	Name               string        `yaml:"name"`
	City               string        `yaml:"city"`
	ScheduleType       string        `yaml:"schedule_type"`
	OnDuty             *bool         `yaml:"on_duty"`
	MorningOnly        bool          `yaml:"morning_only"`
	EveningOnly        bool          `yaml:"evening_only"`
	Vacations          []vacationDoc `yaml:"vacations"`
	UnavailableDates   []string      `yaml:"unavailable_dates"`
	PreferredShift     string        `yaml:"preferred_shift"`
	WorkloadPct        *int          `yaml:"workload_pct"`
	DaysOffWeekly      []int         `yaml:"days_off_weekly"`
	MaxMorningShifts   *int          `yaml:"max_morning_shifts"`
	MaxEveningShifts   *int          `yaml:"max_evening_shifts"`
	MaxNightShifts     *int          `yaml:"max_night_shifts"`
	MaxConsecutiveWork *int          `yaml:"max_consecutive_working"`
	Group              string        `yaml:"group"`
	Role               string        `yaml:"role"`
}

type pinDoc struct {
	Date         string `yaml:"date"`
	EmployeeName string `yaml:"employee_name"`
	Shift        string `yaml:"shift"`
}

type carryOverDoc struct {
	EmployeeName       string `yaml:"employee_name"`
	LastShift          string `yaml:"last_shift"`
	ConsecutiveWorking int    `yaml:"consecutive_working"`
	ConsecutiveOff     int    `yaml:"consecutive_off"`
}

// LoadDocument reads a YAML configuration document from path and
// translates it into a validated schedule.Config. Field names mirror
// the original Python implementation's (city/schedule_type/...) rather
// than the Go struct field names, since this is the document format
// operators already maintain.
func LoadDocument(path string) (schedule.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return schedule.Config{}, fmt.Errorf("config: parsing YAML in %s: %w", path, err)
	}

	cfg, err := doc.toConfig()
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	validated, err := schedule.NewConfig(cfg)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return validated, nil
}

func (d document) toConfig() (schedule.Config, error) {
	employees := make([]schedule.Employee, 0, len(d.Employees))
	for _, ed := range d.Employees {
		emp, err := ed.toEmployee()
		if err != nil {
			return schedule.Config{}, err
		}
		employees = append(employees, emp)
	}

	pins := make([]schedule.PinnedAssignment, 0, len(d.Pins))
	for _, pd := range d.Pins {
		date, err := time.Parse("2006-01-02", pd.Date)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("pin for %q: invalid date %q: %w", pd.EmployeeName, pd.Date, err)
		}
		shift, err := parseShift(pd.Shift)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("pin for %q on %q: %w", pd.EmployeeName, pd.Date, err)
		}
		pins = append(pins, schedule.PinnedAssignment{Date: date, EmployeeName: pd.EmployeeName, Shift: shift})
	}

	carryOver := make([]schedule.CarryOverState, 0, len(d.CarryOver))
	for _, cd := range d.CarryOver {
		co := schedule.CarryOverState{
			EmployeeName:       cd.EmployeeName,
			ConsecutiveWorking: cd.ConsecutiveWorking,
			ConsecutiveOff:     cd.ConsecutiveOff,
		}
		if cd.LastShift != "" {
			shift, err := parseShift(cd.LastShift)
			if err != nil {
				return schedule.Config{}, fmt.Errorf("carry_over for %q: %w", cd.EmployeeName, err)
			}
			co.LastShift = &shift
		}
		carryOver = append(carryOver, co)
	}

	return schedule.Config{
		Month:     d.Month,
		Year:      d.Year,
		Timezone:  d.Timezone,
		Seed:      d.Seed,
		Employees: employees,
		Pins:      pins,
		CarryOver: carryOver,
	}, nil
}

func (ed employeeDoc) toEmployee() (schedule.Employee, error) {
	site, err := parseCity(ed.City)
	if err != nil {
		return schedule.Employee{}, fmt.Errorf("employee %q: %w", ed.Name, err)
	}
	kind, err := parseScheduleType(ed.ScheduleType)
	if err != nil {
		return schedule.Employee{}, fmt.Errorf("employee %q: %w", ed.Name, err)
	}

	onDuty := true
	if ed.OnDuty != nil {
		onDuty = *ed.OnDuty
	}
	workloadPct := 100
	if ed.WorkloadPct != nil {
		workloadPct = *ed.WorkloadPct
	}

	vacations := make([]schedule.VacationPeriod, 0, len(ed.Vacations))
	for _, v := range ed.Vacations {
		start, err := time.Parse("2006-01-02", v.Start)
		if err != nil {
			return schedule.Employee{}, fmt.Errorf("employee %q: invalid vacation start %q: %w", ed.Name, v.Start, err)
		}
		end, err := time.Parse("2006-01-02", v.End)
		if err != nil {
			return schedule.Employee{}, fmt.Errorf("employee %q: invalid vacation end %q: %w", ed.Name, v.End, err)
		}
		vacations = append(vacations, schedule.VacationPeriod{Start: start, End: end})
	}

	unavailable := make(map[string]bool, len(ed.UnavailableDates))
	for _, raw := range ed.UnavailableDates {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return schedule.Employee{}, fmt.Errorf("employee %q: invalid unavailable date %q: %w", ed.Name, raw, err)
		}
		unavailable[raw] = true
	}

	daysOff := make(map[time.Weekday]bool, len(ed.DaysOffWeekly))
	for _, d := range ed.DaysOffWeekly {
		if d < 0 || d > 6 {
			return schedule.Employee{}, fmt.Errorf("employee %q: days_off_weekly contains invalid weekday %d", ed.Name, d)
		}
		daysOff[time.Weekday(d)] = true
	}

	var preferred *schedule.ShiftType
	if ed.PreferredShift != "" {
		shift, err := parseShift(ed.PreferredShift)
		if err != nil {
			return schedule.Employee{}, fmt.Errorf("employee %q: %w", ed.Name, err)
		}
		preferred = &shift
	}

	return schedule.Employee{
		Name:                  ed.Name,
		Site:                  site,
		ScheduleKind:          kind,
		OnDuty:                onDuty,
		MorningOnly:           ed.MorningOnly,
		EveningOnly:           ed.EveningOnly,
		Vacations:             vacations,
		UnavailableDates:      unavailable,
		PreferredShift:        preferred,
		WorkloadPct:           workloadPct,
		DaysOffWeekly:         daysOff,
		MaxMorningShifts:      ed.MaxMorningShifts,
		MaxEveningShifts:      ed.MaxEveningShifts,
		MaxNightShifts:        ed.MaxNightShifts,
		MaxConsecutiveWorking: ed.MaxConsecutiveWork,
		Group:                 ed.Group,
		Role:                  ed.Role,
	}, nil
}

// parseCity maps the document's "city" field to a Site: Moscow hosts the
// PRIMARY team, Khabarovsk the REMOTE team, matching the original
// implementation's City enum one-to-one.
func parseCity(city string) (schedule.Site, error) {
	switch city {
	case "moscow":
		return schedule.Primary, nil
	case "khabarovsk":
		return schedule.Remote, nil
	default:
		return "", fmt.Errorf("unknown city %q (want moscow or khabarovsk)", city)
	}
}

func parseScheduleType(kind string) (schedule.ScheduleKind, error) {
	switch kind {
	case "flexible":
		return schedule.Flexible, nil
	case "5/2":
		return schedule.FiveTwo, nil
	default:
		return "", fmt.Errorf("unknown schedule_type %q (want flexible or 5/2)", kind)
	}
}

func parseShift(s string) (schedule.ShiftType, error) {
	switch schedule.ShiftType(s) {
	case schedule.Morning, schedule.Evening, schedule.Night, schedule.Workday, schedule.DayOff, schedule.Vacation:
		return schedule.ShiftType(s), nil
	default:
		return "", fmt.Errorf("unknown shift %q", s)
	}
}
