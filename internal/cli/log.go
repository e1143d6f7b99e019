// Package cli implements the slidefix command-line interface: repairing deck
// documents, validating repaired output, and rendering repair reports. Built
// on cobra, with verbose logging via charmbracelet/log carried through the
// command context.
package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
)

type contextKey struct{}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func withLogger(ctx context.Context, logger *charmlog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

func loggerFrom(ctx context.Context) *charmlog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*charmlog.Logger); ok {
		return logger
	}
	return charmlog.Default()
}
