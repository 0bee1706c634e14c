package slogx

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler replaces attributes with the same key instead of repeating them.
// This matters for loggers that are derived from each other, like a cloned registry's logger that sets its own handle over the original's.
//
// Attributes added after [slog.Logger.WithGroup] are flattened to keys like "group.key".
type DedupeHandler struct {
	group string
	attrs []slog.Attr
	index map[string]int
	impl  slog.Handler
}

func NewDedupeHandler(impl slog.Handler) slog.Handler {
	if impl == nil {
		panic("nil implementing handler")
	}
	if dedupe, ok := impl.(*DedupeHandler); ok {
		return dedupe
	}
	return &DedupeHandler{
		impl: impl,
	}
}

// Deduped returns a logger that uses a [DedupeHandler] over log's handler.
// A nil logger results in a logger that discards everything.
func Deduped(log *slog.Logger) *slog.Logger {
	if log == nil {
		return DiscardLogger()
	}
	if _, ok := log.Handler().(*DedupeHandler); ok {
		return log
	}
	return slog.New(NewDedupeHandler(log.Handler()))
}

func (s *DedupeHandler) derive() *DedupeHandler {
	return &DedupeHandler{
		group: s.group,
		attrs: slices.Clone(s.attrs),
		index: maps.Clone(s.index),
		impl:  s.impl,
	}
}

func (s *DedupeHandler) set(attr slog.Attr) {
	if len(s.group) > 0 {
		attr.Key = s.group + "." + attr.Key
	}
	if i, ok := s.index[attr.Key]; ok {
		s.attrs[i] = attr
		return
	}
	if s.index == nil {
		s.index = map[string]int{}
	}
	s.index[attr.Key] = len(s.attrs)
	s.attrs = append(s.attrs, attr)
}

func (s *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.impl.Enabled(ctx, level)
}

func (s *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	h := s
	if record.NumAttrs() > 0 {
		h = s.derive()
		record.Attrs(func(attr slog.Attr) bool {
			h.set(attr)
			return true
		})
		record = slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	}
	return h.impl.WithAttrs(h.attrs).Handle(ctx, record)
}

func (s *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	h := s.derive()
	for _, attr := range attrs {
		h.set(attr)
	}
	return h
}

func (s *DedupeHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return s
	}
	h := s.derive()
	if len(h.group) > 0 {
		name = h.group + "." + name
	}
	h.group = name
	return h
}
