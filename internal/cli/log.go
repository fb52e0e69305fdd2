// Package cli implements the tspbench command-line interface.
//
// The CLI generates TSP rounds, runs every solver on them, and scores a
// player's own route against the best algorithm result. It is built with
// cobra and logs through zerolog.
//
// # Commands
//
//   - solve: run all solvers on a scenario file or a freshly generated round
//   - generate: write a random round to a TOML or YAML file
//   - evaluate: validate and score a route against the best solver result
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context and handed to the solver runner.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger creates a console logger on w filtered at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.00"}).
		Level(level).
		With().Timestamp().Logger()
}

// loggerFromContext retrieves the logger attached to ctx.
// Without one it returns a disabled logger, so commands never need nil checks.
func loggerFromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration.
type progress struct {
	logger zerolog.Logger
	start  time.Time
}

func newProgress(l zerolog.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Info().Dur("took", time.Since(p.start).Round(time.Millisecond)).Msg(msg)
}
