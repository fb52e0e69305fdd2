// Package tsp - cost utilities shared by exact and heuristic solvers.
//
// TourCost is the independent recomputation used to cross-check solver
// output: it re-reads every edge through the matrix.Matrix interface and
// applies the same left-fold summation and 1e-9 rounding the solvers use.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"math"

	"github.com/malmiO/TSP/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist along consecutive pairs tour[i]→tour[i+1].
//
// Contract:
//   - dist must be square; tour must have len ≥ 2 with indices in [0..n-1].
//   - The tour is not required to be Hamiltonian; see ValidateTour for that.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (short tour or
// index out of range), ErrInvalidWeight (NaN), ErrIncompleteGraph (±Inf),
// ErrNegativeWeight.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	var (
		sum float64
		i   int
		w   float64
		err error
		L   = len(tour) - 1 // number of edges
	)
	for i = 0; i < L; i++ {
		if w, err = edgeCost(dist, nr, tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// edgeCost fetches the weight of u→v with strict validation.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, n, u, v int) (float64, error) {
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}

	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) {
		return 0, ErrInvalidWeight
	}
	if math.IsInf(w, 0) {
		return 0, ErrIncompleteGraph
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return w, nil
}

// pathCost is the unchecked hot-path twin of TourCost over a validated
// snapshot. The result is not rounded; callers round once at the end.
//
// Complexity: O(len(tour)).
func pathCost(d [][]float64, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += d[tour[i]][tour[i+1]]
	}

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
