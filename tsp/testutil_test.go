// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malmiO/TSP/matrix"
	"github.com/malmiO/TSP/tsp"
)

const (
	// homeV is the canonical home vertex used across tests.
	homeV = 0

	// seedDet is the fixed seed for random instances.
	seedDet = int64(42)

	// classic4Optimum is the known optimal cost of classic4.
	classic4Optimum = 80.0
)

// classic4 is the four-location reference instance; optimum 80 via 0→1→3→2→0.
func classic4() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// uniform returns an n×n matrix with every off-diagonal entry equal to w.
func uniform(n int, w float64) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			if i != j {
				a[i][j] = w
			}
		}
	}

	return a
}

// cycleDist returns ring distances dist(i,j)=min(|i-j|, n-|i-j|); optimum n.
func cycleDist(n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			a[i][j] = float64(d)
		}
	}

	return a
}

// randomSymmetric returns an n×n symmetric integer matrix with entries in [1, maxW].
func randomSymmetric(rng *rand.Rand, n, maxW int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := float64(1 + rng.Intn(maxW))
			a[i][j], a[j][i] = w, w
		}
	}

	return a
}

// mustDense wraps matrix.FromRows and fails the test on error.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// requireValidOutcome asserts the structural tour invariant and that the
// independently recomputed cost matches the reported one exactly.
func requireValidOutcome(t *testing.T, dist matrix.Matrix, home int, out tsp.Outcome) {
	t.Helper()
	require.True(t, out.Feasible())
	require.NoError(t, tsp.ValidateTour(out.Tour, dist.Rows(), home), "tour %s", tsp.DebugString(out.Tour))

	got, err := tsp.TourCost(dist, out.Tour)
	require.NoError(t, err)
	require.Equal(t, out.Cost, got)
}

// solvers lists every exported solver under a stable test name.
var solvers = []struct {
	name  string
	solve tsp.SolverFunc
}{
	{"BruteForce", tsp.BruteForce},
	{"HeldKarp", tsp.HeldKarp},
	{"NearestNeighbor", tsp.NearestNeighbor},
}
