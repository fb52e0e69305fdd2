// Package tsp - tour utilities shared by exact and heuristic solvers.
//
// Helpers that operate purely on tour structure (index sequences) without
// touching a distance matrix:
//   - ValidateTour: enforce Hamiltonian cycle invariants around a home vertex.
//   - canonicalizeOrientationInPlace: canonical direction w.r.t. neighbors of home.
//   - EqualToursModuloReversal: equality of closed tours up to direction.
//   - CopyTour: independent copy of a tour slice.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input: sentinel errors from types.go only.
//   - O(n) time for every helper; in-place mutation where noted.
package tsp

import (
	"slices"
	"strconv"
	"strings"
)

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==home,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// For n==1 the only valid tour is [home, home].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, home int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if home < 0 || home >= n {
		return ErrHomeOutOfRange
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != home || tour[n] != home {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// canonicalizeOrientationInPlace fixes the tour direction under a fixed home.
// If tour[1] > tour[n-1] the interior segment [1..n-1] is reversed in place,
// which yields a unique representative for the two directions of one cycle.
//
// Requirements: len(tour) ≥ 3 and tour[0]==tour[n].
//
// Complexity: O(n) time, O(1) space.
func canonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	var n = len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		reverseInterior(tour)
	}

	return nil
}

// reverseInterior reverses tour[1..len-2] in place, keeping both home ends.
func reverseInterior(tour []int) {
	var (
		i = 1
		k = len(tour) - 2
	)
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// EqualToursModuloReversal reports whether two closed tours describe the same
// cycle from the same home, in either direction.
//
// Complexity: O(n) time, O(1) space.
func EqualToursModuloReversal(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var n = len(a) - 1
	if a[0] != b[0] || a[n] != b[n] || a[0] != a[n] {
		return false
	}
	if n < 2 {
		return true
	}

	ca, cb := CopyTour(a), CopyTour(b)
	if canonicalizeOrientationInPlace(ca) != nil || canonicalizeOrientationInPlace(cb) != nil {
		return false
	}

	return slices.Equal(ca, cb)
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		n  = len(tour) - 1
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[n]))
	sb.WriteByte(']')

	return sb.String()
}
