package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malmiO/TSP/scenario"
)

const roundTOML = `
home = "A"
cities = ["B", "C", "D"]
distances = [
  [0.0, 10.0, 15.0, 20.0],
  [10.0, 0.0, 35.0, 25.0],
  [15.0, 35.0, 0.0, 30.0],
  [20.0, 25.0, 30.0, 0.0],
]
`

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := New(&out, &errOut).RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	return out.String(), errOut.String(), err
}

func writeRound(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "round.toml")
	require.NoError(t, os.WriteFile(path, []byte(roundTOML), 0o644))

	return path
}

func TestSolve_FromFile(t *testing.T) {
	out, logs, err := execute(t, context.Background(), "solve", "--file", writeRound(t))
	require.NoError(t, err)

	for _, want := range []string{"Brute Force", "Held-Karp", "Nearest Neighbor", "A → B → D → C → A", "cost 80"} {
		require.Contains(t, out, want)
	}
	require.Contains(t, logs, "solvers finished")
}

func TestSolve_Generated(t *testing.T) {
	out, logs, err := execute(t, context.Background(), "solve", "--home", "a", "--cities", "b,c,d,e", "--seed", "7")
	require.NoError(t, err)
	require.Contains(t, out, "Best:")
	require.Contains(t, logs, "generating round")
}

func TestSolve_FlagConflict(t *testing.T) {
	_, _, err := execute(t, context.Background(), "solve", "--file", "x.toml", "--home", "A")
	require.ErrorContains(t, err, "either --file")
}

func TestSolve_BadSelection(t *testing.T) {
	_, _, err := execute(t, context.Background(), "solve", "--home", "A", "--cities", "A,B,C")
	require.ErrorIs(t, err, scenario.ErrHomeSelected)
}

func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := execute(t, ctx, "solve", "--file", writeRound(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_MetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "tsp.prom")
	_, _, err := execute(t, context.Background(), "--metrics-file", metricsPath, "solve", "--file", writeRound(t))
	require.NoError(t, err)

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(raw), `tsp_solver_runs_total{algorithm="Held-Karp",outcome="ok"} 1`)
}

func TestGenerate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	out, _, err := execute(t, context.Background(), "generate", "--home", "A", "--cities", "B,C,D", "--seed", "3", "-o", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")

	s, err := scenario.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, s.Names())
}

func TestGenerate_Stdout(t *testing.T) {
	first, _, err := execute(t, context.Background(), "generate", "--home", "A", "--cities", "B,C,D", "--seed", "3")
	require.NoError(t, err)
	second, _, err := execute(t, context.Background(), "generate", "--home", "A", "--cities", "B,C,D", "--seed", "3")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.True(t, strings.HasPrefix(first, `home = "A"`), first)
}

func TestEvaluate(t *testing.T) {
	round := writeRound(t)

	out, _, err := execute(t, context.Background(), "evaluate", "--file", round, "--path", "a,c,d,b,a")
	require.NoError(t, err)
	require.Contains(t, out, "Optimal route found")

	out, _, err = execute(t, context.Background(), "evaluate", "--file", round, "--path", "A,C,B,D,A")
	require.NoError(t, err)
	require.Contains(t, out, "Not optimal: 15 longer")

	lower := filepath.Join(t.TempDir(), "lower.toml")
	require.NoError(t, os.WriteFile(lower, []byte(strings.ToLower(roundTOML)), 0o644))
	out, _, err = execute(t, context.Background(), "evaluate", "--file", lower, "--path", "a,b,d,c,a")
	require.NoError(t, err)
	require.Contains(t, out, "Optimal route found")

	_, _, err = execute(t, context.Background(), "evaluate", "--file", round, "--path", "A,B,A")
	require.ErrorIs(t, err, scenario.ErrPathTooShort)
}
