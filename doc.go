// Package tspbench compares exact and heuristic solvers for small symmetric
// Travelling Salesman instances with a fixed home city.
//
// What is inside:
//
//	matrix/        - Matrix interface, Dense row-major storage, structural validators
//	tsp/           - BruteForce, HeldKarp, NearestNeighbor + tour/cost helpers
//	runner/        - runs every solver, times it, isolates failures
//	metrics/       - Prometheus counters and histograms for solver runs
//	scenario/      - playable rounds: generation, TOML/YAML files, route scoring
//	internal/cli/  - the tspbench command (solve, generate, evaluate)
//	cmd/tspbench/  - main package
//
// Quick example:
//
//	dist, _ := matrix.FromRows([][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	})
//	results := runner.RunAll(dist, 0)
//	best, _ := runner.Best(results) // cost 80, tour [0 1 3 2 0]
//
// Every solver returns a closed tour starting and ending at home, with a cost
// that tsp.TourCost reproduces exactly. Invalid input is reported through
// sentinel errors matched with errors.Is.
package tspbench
