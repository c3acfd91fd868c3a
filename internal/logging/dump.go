package logging

import (
	"context"
	"log/slog"
	"runtime"

	"indentlog/internal/dump"
)

// Dump logs value line by line at level. Each line is nested depth levels
// below the caller's current scope, plus its own depth inside the value.
// Values that already implement dump.Node are walked as-is; anything else
// goes through dump.FromValue.
func Dump(ctx context.Context, logger *slog.Logger, level slog.Level, value any, depth int, opts dump.Options) {
	if logger == nil || !logger.Enabled(ctx, level) {
		return
	}

	var caller string
	if pc, _, _, ok := runtime.Caller(1); ok {
		caller = callerName(pc)
	}

	dump.Walk(dump.FromValue(value), depth, opts, func(line dump.Line) {
		args := []any{Lvl(line.Depth)}
		if caller != "" {
			args = append(args, Func(caller))
		}
		logger.Log(ctx, level, line.Text, args...)
	})
}
