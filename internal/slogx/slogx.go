// Package slogx wraps the standard library's log/slog to give the
// analyzer driver a small, leveled logger for per-phase tracing (the
// CLI's -v/--verbose flag). See DESIGN.md for why this stays on the
// standard library instead of a third-party logger.
package slogx

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger narrows slog.Logger to the phase-tracing vocabulary the analyzer
// driver and resolver need: named phases, a file in progress, and
// promotion to Warn/Error for resolver-reported problems that should also
// surface outside the diagnostic collector (e.g. setup failures).
type Logger struct {
	*slog.Logger
}

// New builds a Logger writing text-formatted records to w at the given
// level. Pass slog.LevelWarn+1 or higher to silence Phase entirely.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// Discard returns a Logger that drops every record, used when the CLI is
// invoked without -v.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

// Default returns a Logger writing to stderr at the given verbosity: 0
// suppresses phase tracing, 1 enables Info, 2+ enables Debug.
func Default(verbosity int) *Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return New(os.Stderr, level)
}

// Phase logs the start of one analyzer-driver pipeline step for one file,
// e.g. Phase(ctx, "pragma-resolve", "contracts/Token.sol").
func (l *Logger) Phase(ctx context.Context, phase, file string) {
	l.Logger.InfoContext(ctx, "phase", slog.String("phase", phase), slog.String("file", file))
}

// PhaseDone logs the completion of a phase along with how many
// diagnostics it recorded.
func (l *Logger) PhaseDone(ctx context.Context, phase, file string, diagnostics int) {
	l.Logger.DebugContext(ctx, "phase done",
		slog.String("phase", phase),
		slog.String("file", file),
		slog.Int("diagnostics", diagnostics),
	)
}
