// Package runner executes every configured TSP solver on one instance and
// collects a comparable record per solver.
//
// Solvers run sequentially in declaration order. Each call is timed with the
// monotonic clock. A solver that returns an error or panics is logged and
// left out of the results; so is a solver whose Outcome is infeasible. The
// runner itself never fails: an instance nobody can solve simply yields an
// empty result list.
//
// Usage:
//
//	r := runner.New(runner.WithLogger(logger), runner.WithMetrics(collector))
//	results := r.RunAll(dist, 0)
//	best, ok := runner.Best(results)
package runner
