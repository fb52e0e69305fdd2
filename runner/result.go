package runner

import (
	"time"

	"github.com/malmiO/TSP/tsp"
)

// NamedSolver pairs a solver with the display name used in results, logs
// and metric labels.
type NamedSolver struct {
	Name  string
	Solve tsp.SolverFunc
}

// Display names of the built-in solvers.
const (
	NameBruteForce      = "Brute Force"
	NameHeldKarp        = "Held-Karp"
	NameNearestNeighbor = "Nearest Neighbor"
)

// DefaultSolvers returns the built-in solvers in their fixed order.
func DefaultSolvers() []NamedSolver {
	return []NamedSolver{
		{Name: NameBruteForce, Solve: tsp.BruteForce},
		{Name: NameHeldKarp, Solve: tsp.HeldKarp},
		{Name: NameNearestNeighbor, Solve: tsp.NearestNeighbor},
	}
}

// AlgorithmResult is the record of one successful solver run.
type AlgorithmResult struct {
	// Algorithm is the solver's display name.
	Algorithm string
	// Tour is the closed tour; never nil.
	Tour []int
	// Cost is the tour cost as reported by the solver.
	Cost float64
	// Elapsed is the wall-clock time of the solver call.
	Elapsed time.Duration
}

// Seconds returns Elapsed as fractional seconds.
func (r AlgorithmResult) Seconds() float64 { return r.Elapsed.Seconds() }

// Best returns the minimum-cost record; the earliest one wins ties.
// ok is false when results is empty.
func Best(results []AlgorithmResult) (best AlgorithmResult, ok bool) {
	for i, r := range results {
		if i == 0 || r.Cost < best.Cost {
			best = r
		}
	}

	return best, len(results) > 0
}
