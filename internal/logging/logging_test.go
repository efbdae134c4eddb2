package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"  DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("warn", "text", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "tt_tasks_1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=tt_tasks_1") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("info", "json", &buf)
	logger.Info("hello")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
