// Package tsp - validation utilities shared by exact/heuristic solvers.
//
// validateInput is the single gate every solver passes through. It checks
// the matrix and home index and, on success, returns a private row snapshot
// so that the hot loops index [][]float64 directly instead of calling At.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case; exactly one O(n²) allocation (the snapshot).
package tsp

import (
	"fmt"
	"math"

	"github.com/malmiO/TSP/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// validateInput verifies dist and home and returns a row snapshot of dist.
//
// Checks, in order:
//  1. dist non-nil and square (ErrNilMatrix, ErrNonSquare).
//  2. 0 ≤ home < n (ErrHomeOutOfRange).
//  3. every entry finite (ErrInvalidWeight for NaN, ErrIncompleteGraph for ±Inf).
//  4. off-diagonal entries non-negative (ErrNegativeWeight).
//  5. diagonal zero within symTol (ErrNonZeroDiagonal).
//  6. symmetric within symTol (ErrAsymmetry).
//
// Errors from the matrix validators are joined with the tsp sentinel, so both
// errors.Is(err, tsp.ErrAsymmetry) and errors.Is(err, matrix.ErrAsymmetry) hold.
//
// Complexity: O(n²) time, O(n²) space.
func validateInput(dist matrix.Matrix, home int) ([][]float64, error) {
	// Stage 1: shape.
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}

	// Stage 2: home range (after n is known).
	n := dist.Rows()
	if home < 0 || home >= n {
		return nil, fmt.Errorf("%w: home=%d, n=%d", ErrHomeOutOfRange, home, n)
	}

	// Stage 3: snapshot + per-entry checks.
	var (
		d    = make([][]float64, n)
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if w, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
			}
			if math.IsNaN(w) {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidWeight, i, j)
			}
			if math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrIncompleteGraph, i, j)
			}
			if i != j && w < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrNegativeWeight, i, j, w)
			}
			d[i][j] = w
		}
	}

	// Stage 4: structural properties.
	if err = matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNonZeroDiagonal, err)
	}
	if err = matrix.ValidateSymmetric(dist, symTol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAsymmetry, err)
	}

	return d, nil
}

// otherVertices returns the indices 0..n-1 except home, in ascending order.
//
// Complexity: O(n).
func otherVertices(n, home int) []int {
	out := make([]int, 0, n)

	var v int
	for v = 0; v < n; v++ {
		if v != home {
			out = append(out, v)
		}
	}

	return out
}
