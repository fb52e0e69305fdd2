// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance-matrix abstraction consumed by
// the tsp solvers.
//
// The Matrix interface is a small, bounds-checked view over a two-dimensional
// float64 table. Dense is the canonical row-major implementation; FromRows
// builds one from a [][]float64 literal, which is the form callers usually
// hold (scenario files, tests, the CLI).
//
// Validators in this package check structural properties only (shape,
// symmetry, zero diagonal, finiteness). Domain rules such as "distances are
// non-negative" belong to the consuming package.
//
// Complexity:
//
//	Rows, Cols, At and Set are O(1). Clone and FromRows are O(r*c).
//	ValidateSymmetric and ValidateZeroDiagonal are O(n²) and O(n).
package matrix
