package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			lg.Log(t.Context(), tt.level, "message")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("cache", "latest-default")}).
		WithGroup("run")
	lg := slog.New(h)

	lg.Info("ready", "port", 0)
	assert.Equal(t, "ready run.cache=latest-default run.port=0\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	h := logger.NewPrettyHandler(failingWriter{}, nil)
	err := h.Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelInfo, "x", 0))
	require.Error(t, err)
}
