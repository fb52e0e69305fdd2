package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/malmiO/TSP/scenario"
)

func (c *CLI) evaluateCommand() *cobra.Command {
	var (
		file string
		path string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score your own route against the best solver",
		Long: `Validate a route through every city of a round and compare its cost
with the cheapest tour found by the solvers.

The route is a comma-separated list of city names that starts and ends at
the home city. Names are case-insensitive.`,
		Example: `  tspbench evaluate --file round.toml --path "A,C,B,D,A"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(file)
			if err != nil {
				return err
			}
			route := scenario.ParseList(path)
			if err = s.ValidatePath(route); err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}
			if err = cmd.Context().Err(); err != nil {
				return err
			}

			results, err := c.solve(cmd, s)
			if err != nil {
				return err
			}
			ev, err := s.Evaluate(route, results)
			if err != nil {
				return err
			}

			printTitle(c.out, "Your route")
			printKeyValue(c.out, "Route", formatRoute(ev.UserPath))
			printKeyValue(c.out, "Cost", formatCost(ev.UserCost))
			printKeyValue(c.out, "Best", fmt.Sprintf("%s (%s, cost %s)", formatRoute(ev.BestPath), ev.Best.Algorithm, formatCost(ev.Best.Cost)))
			if ev.IsOptimal {
				printSuccess(c.out, "Optimal route found")
			} else {
				printFailure(c.out, "Not optimal: %s longer than the best route", formatCost(ev.Gap()))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario file (.toml, .yaml)")
	cmd.Flags().StringVar(&path, "path", "", `route, e.g. "A,C,B,D,A"`)
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
