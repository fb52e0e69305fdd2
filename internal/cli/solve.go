package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/malmiO/TSP/runner"
	"github.com/malmiO/TSP/scenario"
)

func (c *CLI) solveCommand() *cobra.Command {
	var (
		file  string
		round roundFlags
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run every solver on a round and compare them",
		Long: `Run brute force, Held-Karp and nearest neighbour on one round.

The round is read from --file (TOML or YAML) or generated from --home,
--cities and --seed.`,
		Example: `  tspbench solve --file round.toml
  tspbench solve --home A --cities B,C,D,E --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var (
				s   *scenario.Scenario
				err error
			)
			switch {
			case file != "" && (round.home != "" || round.cities != ""):
				return errors.New("use either --file or --home/--cities, not both")
			case file != "":
				s, err = scenario.Load(file)
			default:
				s, err = round.generate(logger)
			}
			if err != nil {
				return err
			}
			if err = ctx.Err(); err != nil {
				return err
			}

			results, err := c.solve(cmd, s)
			if err != nil {
				return err
			}
			return c.printResults(s, results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario file (.toml, .yaml)")
	round.register(cmd)

	return cmd
}

// solve runs all solvers on s with the command's logger and the CLI's
// metrics collector.
func (c *CLI) solve(cmd *cobra.Command, s *scenario.Scenario) ([]runner.AlgorithmResult, error) {
	logger := loggerFromContext(cmd.Context())
	logger.Info().Str("home", s.Home).Strs("cities", s.Cities).Msg("solving round")

	prog := newProgress(logger)
	results, err := s.Solve(runner.New(runner.WithLogger(logger), runner.WithMetrics(c.collector)))
	if err != nil {
		return nil, err
	}
	prog.done("solvers finished")

	return results, nil
}

// printResults renders the comparison table and the best route.
func (c *CLI) printResults(s *scenario.Scenario, results []runner.AlgorithmResult) error {
	if len(results) == 0 {
		printWarning(c.out, "no solver produced a tour")
		return nil
	}

	var (
		routes  = make([][]string, len(results))
		bestIdx int
		err     error
	)
	for i, r := range results {
		if routes[i], err = s.TourNames(r.Tour); err != nil {
			return err
		}
		if r.Cost < results[bestIdx].Cost {
			bestIdx = i
		}
	}

	printTitle(c.out, "Solver comparison")
	printKeyValue(c.out, "Home", s.Home)
	printKeyValue(c.out, "Cities", formatRoute(s.Cities))
	_, _ = c.out.Write([]byte(renderResults(results, routes, bestIdx) + "\n"))
	printSuccess(c.out, "Best: %s %s (cost %s)", results[bestIdx].Algorithm, formatRoute(routes[bestIdx]), formatCost(results[bestIdx].Cost))

	return nil
}
