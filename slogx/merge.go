package slogx

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = fanout(nil)

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, h.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanout, len(f))
	for i, h := range f {
		derived[i] = h.WithAttrs(attrs)
	}
	return derived
}

func (f fanout) WithGroup(name string) slog.Handler {
	derived := make(fanout, len(f))
	for i, h := range f {
		derived[i] = h.WithGroup(name)
	}
	return derived
}

// MergeHandlers will merge many [slog.Handler] into one, so a record is written to each handler that's enabled for its level.
// Deriving a logger from the merged handler doesn't change the original.
func MergeHandlers(a, b slog.Handler, others ...slog.Handler) slog.Handler {
	return append(fanout{a, b}, others...)
}
