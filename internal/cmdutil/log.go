// Package cmdutil holds small helpers shared by the command-line front end.
package cmdutil

import (
	"io"
	"log/slog"
)

// Level names accepted by NewLogger.
const (
	LevelQuiet = "quiet" // errors only
	LevelInfo  = "info"
	LevelTrace = "trace" // adds one debug record per traceback step
)

// NewLogger returns a text logger on w. Timestamps are omitted so output is
// reproducible under test.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case LevelQuiet:
		lvl = slog.LevelError
	case LevelTrace:
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
}
