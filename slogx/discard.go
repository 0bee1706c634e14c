package slogx

import (
	"context"
	"log/slog"
)

var _ slog.Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard returns a [slog.Handler] that drops every record.
func Discard() slog.Handler {
	return discardHandler{}
}

// DiscardLogger returns a [slog.Logger] that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(discardHandler{})
}
