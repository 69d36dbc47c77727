package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores the run identifier in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// RunIDExtractor injects the run identifier into every record logged with a
// context that carries one.
func RunIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := RunIDFromContext(ctx); id != "" {
			return RunID(id), true
		}
		return slog.Attr{}, false
	}
}
