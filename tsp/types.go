package tsp

import (
	"errors"
	"math"

	"github.com/malmiO/TSP/matrix"
)

// Sentinel errors. Solvers return these (possibly wrapped with %w together
// with the underlying matrix sentinel); match them with errors.Is.
var (
	// ErrNilMatrix is returned when dist is nil.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned when dist is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when some dist[i][i] is not zero.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self distance")

	// ErrNegativeWeight is returned when an off-diagonal distance is negative.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrIncompleteGraph is returned when a distance is ±Inf (missing edge).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrInvalidWeight is returned when a distance is NaN.
	ErrInvalidWeight = errors.New("tsp: NaN distance")

	// ErrAsymmetry is returned when dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrHomeOutOfRange is returned when home ∉ [0, n).
	ErrHomeOutOfRange = errors.New("tsp: home index out of range")

	// ErrDimensionMismatch is returned by tour helpers on malformed tours.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooLarge is returned when an exact solver is asked for an instance
	// beyond its enumeration or memory limit.
	ErrTooLarge = errors.New("tsp: instance too large for exact solver")
)

const (
	// MaxBruteForceCities bounds the number of non-home vertices BruteForce
	// will enumerate; 11! ≈ 4·10⁷ tours.
	MaxBruteForceCities = 11

	// MaxHeldKarpCities bounds the number of non-home vertices HeldKarp will
	// tabulate; the memo holds 2^m·m float64+int pairs, about 75 MB at 18.
	// Larger tables risk a fatal out-of-memory error, which recover cannot
	// intercept.
	MaxHeldKarpCities = 18
)

// SolverFunc is the common signature of every solver in this package.
type SolverFunc func(dist matrix.Matrix, home int) (Outcome, error)

// Outcome is the tagged result of a solver: either a feasible tour with its
// cost, or Infeasible. Build values with Found or Infeasible only.
type Outcome struct {
	// Tour is the closed tour, tour[0]==tour[len-1]==home. Nil when infeasible.
	Tour []int

	// Cost is the total tour cost; +Inf when infeasible.
	Cost float64

	found bool
}

// Found returns a feasible Outcome.
func Found(tour []int, cost float64) Outcome {
	return Outcome{Tour: tour, Cost: cost, found: true}
}

// Infeasible returns the Outcome of a solver that could not produce a
// usable tour. Tour is nil and Cost is +Inf.
func Infeasible() Outcome {
	return Outcome{Cost: math.Inf(1)}
}

// Feasible reports whether o carries a usable tour.
func (o Outcome) Feasible() bool { return o.found }
