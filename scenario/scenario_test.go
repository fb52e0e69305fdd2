package scenario_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/malmiO/TSP/runner"
	"github.com/malmiO/TSP/scenario"
)

// fixture is a four-city round whose optimum is A→B→D→C→A with cost 80.
func fixture() *scenario.Scenario {
	return &scenario.Scenario{
		Home:   "A",
		Cities: []string{"B", "C", "D"},
		Distances: [][]float64{
			{0, 10, 15, 20},
			{10, 0, 35, 25},
			{15, 35, 0, 30},
			{20, 25, 30, 0},
		},
	}
}

// cityNames returns n distinct names C0, C1, ...
func cityNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("C%d", i)
	}

	return out
}

func TestParseList(t *testing.T) {
	require.Equal(t, []string{"A", "B", "C", "A"}, scenario.ParseList(" a, b ,,C,a "))
	require.Nil(t, scenario.ParseList(" , ,"))
	require.Nil(t, scenario.ParseList(""))
}

func TestValidateSelection(t *testing.T) {
	cases := []struct {
		name     string
		selected []string
		home     string
		wantErr  error
	}{
		{"ok", []string{"B", "C", "D"}, "A", nil},
		{"empty", nil, "A", scenario.ErrNoCities},
		{"home selected", []string{"A", "B", "C"}, "A", scenario.ErrHomeSelected},
		{"too few", []string{"B", "C"}, "A", scenario.ErrTooFewCities},
		{"duplicate", []string{"B", "C", "B"}, "A", scenario.ErrDuplicateCity},
		{"too many", cityNames(scenario.MaxCities + 1), "HOME", scenario.ErrTooManyCities},
		{"at the limit", cityNames(scenario.MaxCities), "HOME", nil},
		{"blank name", []string{"B", " ", "C"}, "A", scenario.ErrEmptyName},
		{"blank home", []string{"B", "C", "D"}, "", scenario.ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := scenario.ValidateSelection(tc.selected, tc.home)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerate(t *testing.T) {
	s, err := scenario.Generate(rand.New(rand.NewSource(42)), "A", []string{"B", "C", "D", "E"})
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, s.Names())
	require.Len(t, s.Distances, 5)

	for i, row := range s.Distances {
		for j, d := range row {
			if i == j {
				require.Zero(t, d)
				continue
			}
			require.GreaterOrEqual(t, d, float64(scenario.MinDistance))
			require.LessOrEqual(t, d, float64(scenario.MaxDistance))
			require.Equal(t, d, s.Distances[j][i])
			require.Equal(t, float64(int(d)), d)
		}
	}

	again, err := scenario.Generate(rand.New(rand.NewSource(42)), "A", []string{"B", "C", "D", "E"})
	require.NoError(t, err)
	require.Equal(t, s, again)
}

func TestGenerate_RejectsBadSelection(t *testing.T) {
	_, err := scenario.Generate(rand.New(rand.NewSource(1)), "A", []string{"B"})
	require.ErrorIs(t, err, scenario.ErrTooFewCities)
}

func TestValidate_Distances(t *testing.T) {
	s := fixture()
	s.Distances = s.Distances[:3]
	require.ErrorIs(t, s.Validate(), scenario.ErrBadDistances)

	s = fixture()
	s.Distances[1][2] = 36
	require.ErrorIs(t, s.Validate(), scenario.ErrBadDistances)

	s = fixture()
	s.Distances[2][2] = 1
	require.ErrorIs(t, s.Validate(), scenario.ErrBadDistances)

	s = fixture()
	s.Distances[0][3], s.Distances[3][0] = -1, -1
	require.ErrorIs(t, s.Validate(), scenario.ErrBadDistances)

	s = fixture()
	s.Distances[3] = s.Distances[3][:2]
	require.ErrorIs(t, s.Validate(), scenario.ErrBadDistances)
}

func TestIndexAndTourNames(t *testing.T) {
	s := fixture()

	i, ok := s.Index("A")
	require.True(t, ok)
	require.Equal(t, 0, i)
	i, ok = s.Index("D")
	require.True(t, ok)
	require.Equal(t, 3, i)
	_, ok = s.Index("Z")
	require.False(t, ok)

	names, err := s.TourNames([]int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C", "A"}, names)

	_, err = s.TourNames([]int{0, 9, 0})
	require.ErrorIs(t, err, scenario.ErrUnknownCity)
}

func TestSolve(t *testing.T) {
	results, err := fixture().Solve(runner.New())
	require.NoError(t, err)
	require.Len(t, results, 3)

	best, ok := runner.Best(results)
	require.True(t, ok)
	require.Equal(t, 80.0, best.Cost)
}
