package httpapi

import "github.com/prometheus/client_golang/prometheus"

// RequestsServedTotal counts every HTTP request this instance has served,
// broken down by method, route pattern, and response status.
var RequestsServedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "duty_scheduler",
		Subsystem: "http",
		Name:      "requests_served_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "status"},
)

// ScheduleGenerationsTotal counts completed schedule.Generate runs, split by
// outcome so operators can watch for a rising infeasible/error rate.
var ScheduleGenerationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "duty_scheduler",
		Name:      "schedule_generations_total",
		Help:      "Total number of schedule generation attempts, by outcome.",
	},
	[]string{"outcome"},
)

// All returns the duty-scheduler metrics for registration with a Registry.
func All() []prometheus.Collector {
	return []prometheus.Collector{
		RequestsServedTotal,
		ScheduleGenerationsTotal,
	}
}
