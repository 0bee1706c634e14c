package slogx

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"strings"
	"testing"
)

func TestMergeHandlers(t *testing.T) {
	var (
		bufA, bufB, bufC strings.Builder
	)
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&bufA, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufB, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufC, &slog.HandlerOptions{}),
	))
	log.Info("A message", "test", "test")
	a, b, c := bufA.String(), bufB.String(), bufC.String()
	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestMergeHandlers_Levels(t *testing.T) {
	var quiet, loud strings.Builder
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&loud, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
	log.Debug("Details")
	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "Details")
}

func TestMergeHandlers_DerivedIsIndependent(t *testing.T) {
	var bufA, bufB strings.Builder
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&bufA, nil),
		slog.NewTextHandler(&bufB, nil),
	))
	log.With("registry", 1).Info("Derived")
	log.Info("Original")

	lines := strings.Split(strings.TrimSpace(bufA.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "registry=1")
	assert.NotContains(t, lines[1], "registry=1")
}
