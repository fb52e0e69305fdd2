package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/malmiO/TSP/matrix"
	"github.com/malmiO/TSP/metrics"
	"github.com/malmiO/TSP/tsp"
)

// ErrSolverPanic wraps the value recovered from a panicking solver.
var ErrSolverPanic = errors.New("runner: solver panicked")

// Option configures a Runner.
type Option func(r *Runner)

// Runner runs a fixed list of solvers on one instance at a time.
// A Runner is safe for sequential reuse; its configuration is immutable
// after New.
type Runner struct {
	solvers []NamedSolver
	logger  zerolog.Logger
	metrics *metrics.Collector
	runID   string
}

// WithLogger sets the logger for per-solver diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithSolvers replaces the default solver list. An empty list is ignored.
func WithSolvers(solvers ...NamedSolver) Option {
	return func(r *Runner) {
		if len(solvers) > 0 {
			r.solvers = append([]NamedSolver(nil), solvers...)
		}
	}
}

// WithMetrics records every solver run into c.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Runner) {
		r.metrics = c
	}
}

// WithRunID fixes the run id attached to log lines. By default every RunAll
// call draws a fresh random UUID.
func WithRunID(id string) Option {
	return func(r *Runner) {
		if id != "" {
			r.runID = id
		}
	}
}

// New creates a Runner with the default solvers and a no-op logger.
func New(options ...Option) *Runner {
	r := &Runner{ // Default values
		solvers: DefaultSolvers(),
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(r)
	}

	return r
}

// RunAll runs every solver on (dist, home) and returns one record per solver
// that produced a feasible tour, in solver order.
func RunAll(dist matrix.Matrix, home int) []AlgorithmResult {
	return New().RunAll(dist, home)
}

// RunAll runs every configured solver on (dist, home) and returns one record
// per solver that produced a feasible tour, in solver order.
//
// Failing, panicking and infeasible solvers are logged and skipped. The
// returned slice is never nil.
func (r *Runner) RunAll(dist matrix.Matrix, home int) []AlgorithmResult {
	runID := r.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := r.logger.With().Str("run_id", runID).Logger()

	results := make([]AlgorithmResult, 0, len(r.solvers))
	for _, s := range r.solvers {
		start := time.Now()
		out, err := call(s.Solve, dist, home)
		elapsed := time.Since(start)

		l := logger.With().Str("algorithm", s.Name).Dur("elapsed", elapsed).Logger()
		switch {
		case err != nil:
			r.metrics.Observe(s.Name, metrics.OutcomeFailed, elapsed.Seconds())
			l.Warn().Err(err).Msg("solver failed, skipping")
			continue
		case !out.Feasible():
			r.metrics.Observe(s.Name, metrics.OutcomeInfeasible, elapsed.Seconds())
			l.Debug().Msg("solver found no feasible tour, skipping")
			continue
		}
		r.metrics.Observe(s.Name, metrics.OutcomeOK, elapsed.Seconds())

		// Records own their tour; callers may mutate it freely.
		tour := tsp.CopyTour(out.Tour)
		if tour == nil {
			tour = []int{}
		}
		l.Debug().Float64("cost", out.Cost).Str("tour", tsp.DebugString(tour)).Msg("solver finished")

		results = append(results, AlgorithmResult{
			Algorithm: s.Name,
			Tour:      tour,
			Cost:      out.Cost,
			Elapsed:   elapsed,
		})
	}
	logger.Info().Int("solvers", len(r.solvers)).Int("results", len(results)).Msg("run complete")

	return results
}

// call invokes solve and converts a panic into an error.
func call(solve tsp.SolverFunc, dist matrix.Matrix, home int) (out tsp.Outcome, err error) {
	defer func() {
		if v := recover(); v != nil {
			out, err = tsp.Outcome{}, fmt.Errorf("%w: %v", ErrSolverPanic, v)
		}
	}()

	return solve(dist, home)
}
