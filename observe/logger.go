// Package observe provides subscribers for the knapsack search hooks:
// a structured slog logger and a set of Prometheus collectors.
//
// Observers never influence the search; they only read the events the
// driver publishes through knapsack.Hooks.
package observe

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Logger wraps slog.Logger with search-specific helpers and consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to w with the given level
// ("debug", "info", "warn", "error") and format ("json" or "text").
// A nil w writes to stderr.
func NewLogger(w io.Writer, level, format string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// ParseLevel maps a level name to slog.Level. Unknown names map to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithInstance tags every record with the instance name.
func (l *Logger) WithInstance(name string) *Logger {
	return &Logger{Logger: l.Logger.With("instance", name)}
}

// Hooks returns search hooks that log:
//   - DEBUG: every extraction and iteration,
//   - INFO:  every incumbent improvement and the final result,
//   - WARN:  a CAPPED termination (valid but not proven optimal).
//
// Debug hooks stay nil when DEBUG is disabled.
func (l *Logger) Hooks() knapsack.Hooks {
	h := knapsack.Hooks{
		OnIncumbent: func(iter int, inc knapsack.Incumbent) {
			l.Info("incumbent improved",
				"iteration", iter,
				"profit", inc.Profit,
				"weight", inc.Weight,
				"items", len(inc.Selection),
			)
		},
		OnFinish: l.LogResult,
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return h
	}
	h.OnExtract = func(iter int, n knapsack.Node) {
		l.Debug("node extracted",
			"iteration", iter,
			"level", n.Level(),
			"bound", n.Bound(),
			"profit", n.Profit(),
			"weight", n.Weight(),
		)
	}
	h.OnIteration = func(p knapsack.Progress) {
		l.Debug("iteration done",
			"iteration", p.Iteration,
			"frontier", p.FrontierLen,
			"best_profit", p.Incumbent.Profit,
		)
	}

	return h
}

// LogResult logs a finished search. CAPPED results are logged at WARN.
func (l *Logger) LogResult(r knapsack.Result) {
	attrs := []any{
		"profit", r.Profit,
		"weight", r.Weight,
		"items", len(r.Selection),
		"terminated_by", r.TerminatedBy.String(),
		"iterations", r.Stats.Iterations,
		"pruned", r.Stats.Pruned,
		"max_frontier", r.Stats.MaxFrontier,
	}
	if r.TerminatedBy == knapsack.StateCapped {
		l.Warn("search stopped at iteration cap; result may be suboptimal", attrs...)

		return
	}
	l.Info("search completed", attrs...)
}
