package cli

import (
	"github.com/spf13/cobra"

	"github.com/malmiO/TSP/scenario"
)

func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		round  roundFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random round",
		Long: `Generate a round with random symmetric distances between 50 and 100.

Without --output the round is printed as TOML.`,
		Example: `  tspbench generate --home A --cities B,C,D,E --seed 7 -o round.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := round.generate(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}

			if output == "" {
				data, err := s.Encode(scenario.FormatTOML)
				if err != nil {
					return err
				}
				_, err = c.out.Write(data)
				return err
			}

			if err = s.Save(output); err != nil {
				return err
			}
			printSuccess(c.out, "Wrote %s", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.toml, .yaml)")
	round.register(cmd)
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("cities")

	return cmd
}
