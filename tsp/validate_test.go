package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malmiO/TSP/matrix"
	"github.com/malmiO/TSP/tsp"
)

func TestSolvers_RejectInvalidInput(t *testing.T) {
	withEntry := func(i, j int, w float64, symmetric bool) matrix.Matrix {
		a := classic4()
		a[i][j] = w
		if symmetric {
			a[j][i] = w
		}
		return mustDense(t, a)
	}

	cases := []struct {
		name    string
		dist    matrix.Matrix
		home    int
		wantErr error
		alsoIs  error
	}{
		{"nil matrix", nil, 0, tsp.ErrNilMatrix, nil},
		{"non-square", mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), 0, tsp.ErrNonSquare, matrix.ErrNonSquare},
		{"home negative", mustDense(t, classic4()), -1, tsp.ErrHomeOutOfRange, nil},
		{"home past end", mustDense(t, classic4()), 4, tsp.ErrHomeOutOfRange, nil},
		{"NaN entry", withEntry(0, 1, math.NaN(), true), 0, tsp.ErrInvalidWeight, nil},
		{"missing edge", withEntry(1, 2, math.Inf(1), true), 0, tsp.ErrIncompleteGraph, nil},
		{"negative edge", withEntry(2, 3, -1, true), 0, tsp.ErrNegativeWeight, nil},
		{"non-zero diagonal", withEntry(2, 2, 5, false), 0, tsp.ErrNonZeroDiagonal, matrix.ErrNonZeroDiagonal},
		{"asymmetric", withEntry(0, 3, 21, false), 0, tsp.ErrAsymmetry, matrix.ErrAsymmetry},
	}

	for _, s := range solvers {
		for _, tc := range cases {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				out, err := s.solve(tc.dist, tc.home)
				require.ErrorIs(t, err, tc.wantErr)
				if tc.alsoIs != nil {
					require.ErrorIs(t, err, tc.alsoIs)
				}
				require.False(t, out.Feasible())
			})
		}
	}
}

func TestSolvers_DoNotMutateInput(t *testing.T) {
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			dist := mustDense(t, classic4())
			before := dist.ToRows()

			_, err := s.solve(dist, homeV)
			require.NoError(t, err)
			require.Equal(t, before, dist.ToRows())
		})
	}
}
