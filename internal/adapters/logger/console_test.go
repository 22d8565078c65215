package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/brief/internal/adapters/logger"
)

func newConsole(t *testing.T, opts *slog.HandlerOptions) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewConsoleHandler(buf, opts)), buf
}

func TestConsoleHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newConsole(t, &slog.HandlerOptions{Level: slog.LevelInfo})

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestConsoleHandler_WithAttrs(t *testing.T) {
	lg, buf := newConsole(t, nil)

	lg.With("key", "value").Info("attr message", "count", 2)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestConsoleHandler_WithGroup(t *testing.T) {
	lg, buf := newConsole(t, nil)

	lg.WithGroup("req").Info("grouped", "id", 7)

	g := goldie.New(t)
	g.Assert(t, "handler_group", buf.Bytes())
}

func TestConsoleHandler_NestedGroups(t *testing.T) {
	lg, buf := newConsole(t, nil)

	lg.WithGroup("cache").WithGroup("graph").Info("evicted", "entries", 3)

	assert.Equal(t, "evicted cache.graph.entries=3\n", buf.String())
}

func TestConsoleHandler_StageAndEngineAttrs(t *testing.T) {
	lg, buf := newConsole(t, nil)

	lg.Warn("continuing with reduced context",
		"error", errors.New("scan timed out"),
		logger.StageKey, "graph",
		"project", "/work/demo",
	)

	g := goldie.New(t)
	g.Assert(t, "handler_stage", buf.Bytes())
}

func TestConsoleHandler_GroupedStageStaysAnAttribute(t *testing.T) {
	lg, buf := newConsole(t, nil)

	lg.WithGroup("batch").Info("prepared", logger.StageKey, "rank")

	assert.Equal(t, "prepared batch.stage=rank\n", buf.String())
}

func TestConsoleHandler_QuotesEmptyValues(t *testing.T) {
	lg, buf := newConsole(t, nil)

	lg.Info("session reset", "project", "")

	assert.Equal(t, "session reset project=\"\"\n", buf.String())
}
