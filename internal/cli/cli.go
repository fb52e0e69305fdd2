package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/malmiO/TSP/metrics"
	"github.com/malmiO/TSP/scenario"
)

const appName = "tspbench"

// Set at build time with -ldflags "-X github.com/malmiO/TSP/internal/cli.version=...".
var (
	version = "dev"
	commit  = "none"
)

// CLI holds shared state for all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	verbose     bool
	metricsFile string
	collector   *metrics.Collector
}

// New creates a CLI printing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out:       out,
		errOut:    errOut,
		collector: metrics.New(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "tspbench compares TSP solvers on small rounds",
		Long:          `tspbench runs brute force, Held-Karp and nearest-neighbour solvers on small symmetric TSP instances, times them, and scores your own route against the best one.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if c.verbose {
				level = zerolog.DebugLevel
			}
			logger := newLogger(c.errOut, level)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.metricsFile == "" {
				return nil
			}
			if err := c.collector.WriteTextfile(c.metricsFile); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug().Str("path", c.metricsFile).Msg("wrote metrics")

			return nil
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the command")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.evaluateCommand())

	return root
}

// roundFlags are the flags describing a generated round.
type roundFlags struct {
	home   string
	cities string
	seed   uint64
}

func (f *roundFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.home, "home", "", "home city")
	cmd.Flags().StringVar(&f.cities, "cities", "", "comma-separated cities to visit")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for distances (0 picks one)")
}

// generate builds a random round from the flags, logging the seed used.
func (f *roundFlags) generate(logger zerolog.Logger) (*scenario.Scenario, error) {
	seed := f.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info().Uint64("seed", seed).Msg("generating round")

	home := scenario.ParseList(f.home)
	if len(home) != 1 {
		return nil, fmt.Errorf("--home: want exactly one city, got %q", f.home)
	}

	return scenario.Generate(rand.New(rand.NewSource(seed)), home[0], scenario.ParseList(f.cities))
}
