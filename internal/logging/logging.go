// Package logging builds the application loggers.
package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New creates the application logger. Text goes to w at the given level,
// or to stderr when w is nil. If trace is set, every record down to debug
// level is also written to it as JSON.
func New(level slog.Leveler, w io.Writer, trace io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr,
		}),
	}

	if trace != nil {
		handlers = append(handlers, slog.NewJSONHandler(trace, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: replaceAttr,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level name (debug, info, warn, error) to a level.
func ParseLevel(name string) (level slog.Level, err error) {
	err = level.UnmarshalText([]byte(name))
	return
}

// replaceAttr standardizes the "error" key to "err".
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}
