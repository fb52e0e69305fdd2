// Package tsp provides exact and heuristic solvers for the small-instance
// symmetric Travelling Salesman Problem with a fixed home vertex.
//
// Every solver shares one contract:
//
//	func(dist matrix.Matrix, home int) (Outcome, error)
//
// dist is a complete, symmetric, non-negative n×n matrix with a zero
// diagonal; home is the mandatory start/end vertex. A feasible Outcome
// carries a closed tour of length n+1 with tour[0]==tour[n]==home and its
// cost. Invalid input is reported through the sentinel errors in types.go.
//
// Solvers:
//
//   - BruteForce: enumerates all (n−1)! orderings of the non-home vertices.
//     Exact. Time O((n−1)!·n), practical for n ≲ 11.
//
//   - HeldKarp: dynamic programme over subsets of non-home vertices.
//     Exact. Time O(2^(n−1)·(n−1)²), memory O(2^(n−1)·(n−1)).
//     Guards against internal inconsistency by falling back to BruteForce
//     for n ≤ 10 and reporting Infeasible otherwise.
//
//   - NearestNeighbor: greedy construction, ties broken by lowest index.
//     Heuristic. Time O(n²).
//
// Costs are left-fold sums along the tour rounded to 1e-9, so TourCost on a
// returned tour reproduces the reported cost exactly.
//
// All solvers are deterministic and allocate their own working state; they
// never mutate dist and may be called concurrently on the same matrix.
package tsp
