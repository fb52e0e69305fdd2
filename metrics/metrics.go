// Package metrics exposes Prometheus instrumentation for solver runs.
//
// Every Collector owns a dedicated registry, so several collectors (one per
// test, one per CLI invocation) never clash on registration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for SolverRuns.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeFailed     = "failed"
)

// Collector holds the solver metrics and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	// SolverRuns counts solver invocations by algorithm and outcome.
	SolverRuns *prometheus.CounterVec
	// SolverDuration records solver wall-clock time in seconds.
	SolverDuration *prometheus.HistogramVec
}

// New creates a Collector registered on a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		SolverRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "tsp_solver_runs_total", Help: "Solver runs by algorithm and outcome."},
			[]string{"algorithm", "outcome"},
		),
		SolverDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tsp_solver_duration_seconds",
				Help:    "Solver duration in seconds.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 9),
			},
			[]string{"algorithm"},
		),
	}
	c.registry.MustRegister(c.SolverRuns)
	c.registry.MustRegister(c.SolverDuration)

	return c
}

// Registry returns the registry the collector's metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Observe records one solver run. A nil Collector is a no-op.
func (c *Collector) Observe(algorithm, outcome string, seconds float64) {
	if c == nil {
		return
	}
	c.SolverRuns.WithLabelValues(algorithm, outcome).Inc()
	c.SolverDuration.WithLabelValues(algorithm).Observe(seconds)
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// exposition format (node_exporter textfile collector layout).
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
