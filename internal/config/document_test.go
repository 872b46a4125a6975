package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/666bes666/duty-schedule-gen/pkg/schedule"
)

const sampleDocument = `
month: 3
year: 2025
seed: 42
employees:
  - name: P1
    city: moscow
    schedule_type: flexible
  - name: P2
    city: moscow
    schedule_type: flexible
  - name: P3
    city: moscow
    schedule_type: flexible
  - name: P4
    city: moscow
    schedule_type: flexible
  - name: R1
    city: khabarovsk
    schedule_type: flexible
  - name: R2
    city: khabarovsk
    schedule_type: flexible
pins:
  - date: "2025-03-10"
    employee_name: P2
    shift: evening
carry_over:
  - employee_name: P1
    last_shift: night
    consecutive_working: 4
`

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadDocument(t *testing.T) {
	path := writeTempDoc(t, sampleDocument)

	cfg, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error: %v", err)
	}

	if cfg.Month != 3 || cfg.Year != 2025 {
		t.Fatalf("unexpected month/year: %d/%d", cfg.Month, cfg.Year)
	}
	if len(cfg.Employees) != 6 {
		t.Fatalf("expected 6 employees, got %d", len(cfg.Employees))
	}
	if cfg.Employees[0].Site != schedule.Primary {
		t.Errorf("expected P1 site to be primary, got %s", cfg.Employees[0].Site)
	}
	if cfg.Employees[4].Site != schedule.Remote {
		t.Errorf("expected R1 site to be remote, got %s", cfg.Employees[4].Site)
	}
	if len(cfg.Pins) != 1 || cfg.Pins[0].Shift != schedule.Evening {
		t.Fatalf("expected one evening pin, got %+v", cfg.Pins)
	}
	if len(cfg.CarryOver) != 1 || cfg.CarryOver[0].LastShift == nil || *cfg.CarryOver[0].LastShift != schedule.Night {
		t.Fatalf("expected carry-over last_shift=night, got %+v", cfg.CarryOver)
	}
}

func TestLoadDocumentRejectsUnknownCity(t *testing.T) {
	path := writeTempDoc(t, `
month: 3
year: 2025
employees:
  - name: P1
    city: novosibirsk
    schedule_type: flexible
`)
	if _, err := LoadDocument(path); err == nil {
		t.Fatal("expected an error for an unknown city")
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
