package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// newLogger builds a zerolog.Logger writing to w at the level implied by
// verbosity: 0 is Warn, 1 is Info, 2+ is Debug. The cipher core never
// logs; this logger is consulted only by the command layer, which emits
// debug-level records of the message length (encrypt/decrypt) and of each
// shuffle iteration. Individual deck operations are not logged.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

func withLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func loggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
