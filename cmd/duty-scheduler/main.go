package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/666bes666/duty-schedule-gen/internal/config"
	"github.com/666bes666/duty-schedule-gen/internal/holidays"
	"github.com/666bes666/duty-schedule-gen/internal/httpapi"
	"github.com/666bes666/duty-schedule-gen/internal/logging"
	"github.com/666bes666/duty-schedule-gen/pkg/export"
	"github.com/666bes666/duty-schedule-gen/pkg/schedule"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: duty-scheduler <generate|serve> [flags]")
}

// runGenerate loads a roster document, resolves holidays, builds a
// schedule, and writes it to the output directory in every export format.
func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to the YAML roster document (required)")
	holidaysFlag := fs.String("holidays", "", "comma-separated YYYY-MM-DD manual holiday fallback")
	outDir := fs.String("out", ".", "directory to write schedule.json/.ics/.xlsx into")
	_ = fs.Parse(args)

	envCfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading process config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(envCfg.LogFormat, envCfg.LogLevel)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "error: -config is required")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sch, tz, err := generate(ctx, logger, envCfg, *configPath, *holidaysFlag)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if err := writeExports(sch, tz, *outDir); err != nil {
		logger.Error("writing exports", "error", err)
		os.Exit(1)
	}

	printSummary(sch)
}

// runServe performs the same generation once, then serves the result over
// HTTP until interrupted.
func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to the YAML roster document (required)")
	holidaysFlag := fs.String("holidays", "", "comma-separated YYYY-MM-DD manual holiday fallback")
	_ = fs.Parse(args)

	envCfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading process config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(envCfg.LogFormat, envCfg.LogLevel)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "error: -config is required")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sch, tz, err := generate(ctx, logger, envCfg, *configPath, *holidaysFlag)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	metricsReg := prometheus.NewRegistry()
	metricsReg.MustRegister(httpapi.All()...)

	srv := httpapi.NewServer(logger, sch, tz, metricsReg, envCfg.CORSAllowedOrigins)

	httpServer := &http.Server{
		Addr:    envCfg.ListenAddr(),
		Handler: srv,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutting down http server", "error", err)
		}
	}()

	logger.Info("serving schedule", "addr", envCfg.ListenAddr())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// generate loads the roster document, resolves the holiday set through the
// fetch→manual→weekend-only fallback chain the original CLI uses, and runs
// the scheduling core.
func generate(ctx context.Context, logger *slog.Logger, envCfg *config.Config, configPath, holidaysFlag string) (*schedule.Schedule, *time.Location, error) {
	cfg, err := config.LoadDocument(configPath)
	if err != nil {
		return nil, nil, err
	}

	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", "timezone", cfg.Timezone, "error", err)
		tz = time.UTC
	}

	holidaySet := resolveHolidays(ctx, logger, envCfg, cfg, holidaysFlag)

	sch, warnings, err := schedule.Generate(cfg, holidaySet, logger)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	httpapi.ScheduleGenerationsTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		return nil, nil, fmt.Errorf("generating schedule: %w", err)
	}
	for _, w := range warnings {
		logger.Warn("schedule warning", "employee", w.Employee, "message", w.Message)
	}

	return sch, tz, nil
}

// resolveHolidays tries the production-calendar API first, falls back to
// a manually supplied date list, and finally to weekends-only — logging a
// warning at each step down, matching the original CLI's fallback chain.
func resolveHolidays(ctx context.Context, logger *slog.Logger, envCfg *config.Config, cfg schedule.Config, holidaysFlag string) map[time.Time]bool {
	timeout, err := time.ParseDuration(envCfg.HolidaysTimeout)
	if err != nil {
		timeout = holidays.DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	fetched, err := holidays.Fetch(ctx, client, envCfg.HolidaysBaseURL, cfg.Year, cfg.Month)
	if err == nil {
		return fetched
	}
	logger.Warn("fetching production calendar failed, falling back to manual holidays", "error", err)

	if holidaysFlag != "" {
		manual, err := holidays.ParseManual(logger, holidaysFlag, cfg.Year, cfg.Month)
		if err == nil {
			return manual
		}
		logger.Warn("parsing manual holidays failed, falling back to weekends only", "error", err)
	} else {
		logger.Warn("no manual holidays supplied, falling back to weekends only")
	}

	return holidays.WeekendOnly()
}

func writeExports(sch *schedule.Schedule, tz *time.Location, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	jsonPath := filepath.Join(outDir, "schedule.json")
	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", jsonPath, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	encErr := enc.Encode(sch)
	if cerr := f.Close(); cerr != nil && encErr == nil {
		encErr = cerr
	}
	if encErr != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, encErr)
	}

	xlsxPath := filepath.Join(outDir, "schedule.xlsx")
	if err := writeFile(xlsxPath, func(f *os.File) error { return export.WriteXLSX(f, sch) }); err != nil {
		return err
	}

	for _, site := range []schedule.Site{schedule.Primary, schedule.Remote} {
		icsPath := filepath.Join(outDir, fmt.Sprintf("schedule-%s.ics", site))
		if err := writeFile(icsPath, func(f *os.File) error { return export.WriteICS(f, sch, site, tz) }); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	writeErr := write(f)
	if cerr := f.Close(); cerr != nil && writeErr == nil {
		writeErr = cerr
	}
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	return nil
}

func printSummary(sch *schedule.Schedule) {
	fmt.Printf("Generated schedule for %04d-%02d: %d production days, %d holidays\n",
		sch.Config.Year, sch.Config.Month, sch.Metadata.ProductionWorkingDays, sch.Metadata.HolidaysCount)
	fmt.Printf("  mornings=%d evenings=%d nights=%d\n",
		sch.Metadata.TotalMornings, sch.Metadata.TotalEvenings, sch.Metadata.TotalNights)
	for _, emp := range sch.Config.Employees {
		fmt.Printf("  %-16s %3d working days\n", emp.Name, sch.Metadata.WorkingDaysPerEmployee[emp.Name])
	}
}
