package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, PrettyHandlerOptions{})

	assert.NotNil(t, handler.Handler)
	assert.NotNil(t, handler.l)
}

func TestPrettyHandlerHandle(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		attrs []slog.Attr
		want  []string
	}{
		{"debug", slog.LevelDebug, []slog.Attr{slog.String("key", "value")}, []string{"DEBUG:", `"key":"value"`}},
		{"info", slog.LevelInfo, []slog.Attr{slog.Int("count", 42)}, []string{"INFO:", `"count":42`}},
		{"warn", slog.LevelWarn, []slog.Attr{slog.Bool("flag", true)}, []string{"WARN:", `"flag":true`}},
		{"error value", slog.LevelError, []slog.Attr{slog.Any("err", errors.New("disk full"))}, []string{"ERROR:", `"err":"disk full"`}},
		{"no attributes", slog.LevelInfo, nil, []string{"INFO:", "{}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewPrettyHandler(&buf, PrettyHandlerOptions{SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug}})
			record := slog.NewRecord(time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC), tt.level, "a message", 0)
			record.AddAttrs(tt.attrs...)

			require.NoError(t, handler.Handle(context.Background(), record))

			out := buf.String()
			assert.Contains(t, out, "[03:04:05.006]")
			assert.Contains(t, out, "a message")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestPrettyHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{}))

	logger.With("component", "storage").WithGroup("book").Info("saved", "count", 3)

	out := buf.String()
	assert.Contains(t, out, `"component":"storage"`)
	assert.Contains(t, out, `"book.count":3`)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
