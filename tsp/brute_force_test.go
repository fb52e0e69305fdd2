package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malmiO/TSP/tsp"
)

func TestBruteForce_Classic4(t *testing.T) {
	dist := mustDense(t, classic4())

	res, err := tsp.BruteForce(dist, homeV)
	require.NoError(t, err)
	require.Equal(t, classic4Optimum, res.Cost)
	// First strictly-better permutation in lexicographic order.
	require.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	requireValidOutcome(t, dist, homeV, res)
}

func TestBruteForce_NonZeroHome(t *testing.T) {
	dist := mustDense(t, classic4())

	res, err := tsp.BruteForce(dist, 2)
	require.NoError(t, err)
	require.Equal(t, classic4Optimum, res.Cost)
	require.Equal(t, []int{2, 0, 1, 3, 2}, res.Tour)
	requireValidOutcome(t, dist, 2, res)
}

func TestBruteForce_TieKeepsFirstEnumerated(t *testing.T) {
	dist := mustDense(t, uniform(5, 7))

	res, err := tsp.BruteForce(dist, homeV)
	require.NoError(t, err)
	require.Equal(t, 35.0, res.Cost)
	require.Equal(t, []int{0, 1, 2, 3, 4, 0}, res.Tour)
}

func TestBruteForce_SingleLocation(t *testing.T) {
	dist := mustDense(t, [][]float64{{0}})

	res, err := tsp.BruteForce(dist, homeV)
	require.NoError(t, err)
	require.True(t, res.Feasible())
	require.Equal(t, []int{0, 0}, res.Tour)
	require.Zero(t, res.Cost)
}

func TestBruteForce_TwoLocations(t *testing.T) {
	dist := mustDense(t, [][]float64{{0, 4}, {4, 0}})

	res, err := tsp.BruteForce(dist, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1}, res.Tour)
	require.Equal(t, 8.0, res.Cost)
}

func TestBruteForce_TooLarge(t *testing.T) {
	dist := mustDense(t, uniform(tsp.MaxBruteForceCities+2, 1))

	_, err := tsp.BruteForce(dist, homeV)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestNextPermutation_Lexicographic(t *testing.T) {
	p := []int{1, 2, 3}
	seen := [][]int{append([]int(nil), p...)}
	for tsp.NextPermutationForTest(p) {
		seen = append(seen, append([]int(nil), p...))
	}

	require.Equal(t, [][]int{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}, seen)
	// The last permutation is left untouched.
	require.Equal(t, []int{3, 2, 1}, p)
}
