// Package httpapi serves a single, previously generated schedule over HTTP:
// the JSON document, per-site ICS calendars, and the XLSX workbook, plus
// health and metrics endpoints for operators.
package httpapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/666bes666/duty-schedule-gen/pkg/export"
	"github.com/666bes666/duty-schedule-gen/pkg/schedule"
)

// Server holds the single in-memory schedule this process was generated
// for and exposes it over chi routes.
type Server struct {
	Router *chi.Mux

	logger    *slog.Logger
	startedAt time.Time

	mu  sync.RWMutex
	sch *schedule.Schedule
	tz  *time.Location
}

// NewServer builds the router. sch is the schedule to serve; it can later
// be swapped with SetSchedule (e.g. after a cron regenerates it).
func NewServer(logger *slog.Logger, sch *schedule.Schedule, tz *time.Location, metricsReg *prometheus.Registry, corsOrigins []string) *Server {
	s := &Server{
		Router:    chi.NewRouter(),
		logger:    logger,
		startedAt: time.Now(),
		sch:       sch,
		tz:        tz,
	}

	s.Router.Use(RequestID)
	s.Router.Use(Logger(logger))
	s.Router.Use(Metrics)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	s.Router.Get("/healthz", s.handleHealthz)
	s.Router.Get("/schedule.json", s.handleScheduleJSON)
	s.Router.Get("/schedule.ics", s.handleScheduleICS)
	s.Router.Get("/schedule.xlsx", s.handleScheduleXLSX)

	if metricsReg != nil {
		s.Router.Handle("/metrics", promhttp.HandlerFor(metricsReg, promhttp.HandlerOpts{}))
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// SetSchedule atomically replaces the schedule this server serves.
func (s *Server) SetSchedule(sch *schedule.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sch = sch
}

func (s *Server) current() *schedule.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sch
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	Respond(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(s.startedAt).Truncate(time.Second).String(),
	})
}

func (s *Server) handleScheduleJSON(w http.ResponseWriter, _ *http.Request) {
	sch := s.current()
	if sch == nil {
		RespondError(w, http.StatusServiceUnavailable, "not_ready", "no schedule has been generated yet")
		return
	}
	Respond(w, http.StatusOK, sch)
}

func (s *Server) handleScheduleICS(w http.ResponseWriter, r *http.Request) {
	sch := s.current()
	if sch == nil {
		RespondError(w, http.StatusServiceUnavailable, "not_ready", "no schedule has been generated yet")
		return
	}

	site := schedule.Primary
	switch r.URL.Query().Get("site") {
	case "", "primary":
		site = schedule.Primary
	case "remote":
		site = schedule.Remote
	default:
		RespondError(w, http.StatusBadRequest, "bad_request", "site must be one of: primary, remote")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=schedule-"+string(site)+".ics")
	if err := export.WriteICS(w, sch, site, s.tz); err != nil {
		s.logger.Error("writing ics export", "error", err, "site", site)
	}
}

func (s *Server) handleScheduleXLSX(w http.ResponseWriter, _ *http.Request) {
	sch := s.current()
	if sch == nil {
		RespondError(w, http.StatusServiceUnavailable, "not_ready", "no schedule has been generated yet")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=schedule.xlsx")
	if err := export.WriteXLSX(w, sch); err != nil {
		s.logger.Error("writing xlsx export", "error", err)
	}
}
