// Package devtools helps debugging the store: it logs a diff of the state
// after each dispatch and replays recorded actions.
package devtools

import (
	"context"
	"log/slog"

	"github.com/viant/simdash/store"
)

// Logger logs every dispatch with the resulting state diff at debug level
type Logger struct {
	logger       *slog.Logger
	contextLines int
}

func (l *Logger) OnChange(ctx context.Context, change *store.Change) {
	patch, stats, err := Diff(change.Prev, change.Next, l.contextLines)
	if err != nil {
		l.logger.Warn("failed to diff state", "action", change.Action.ActionType(), "error", err)
		return
	}
	if patch == "" {
		l.logger.DebugContext(ctx, "action dispatched", "action", change.Action.ActionType(), "changed", false)
		return
	}
	l.logger.DebugContext(ctx, "action dispatched",
		"action", change.Action.ActionType(),
		"changed", true,
		"added", stats.Added,
		"removed", stats.Removed,
		"hunks", stats.Hunks,
		"diff", patch)
}

// NewLogger creates a debug logger; nil logger means slog.Default()
func NewLogger(logger *slog.Logger, contextLines int) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger, contextLines: contextLines}
}
