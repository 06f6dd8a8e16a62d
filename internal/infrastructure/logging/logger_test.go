package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		logger := New(Config{Level: tt.level, Format: "json"})
		if logger.GetLevel() != tt.want {
			t.Errorf("level %q: got %v, want %v", tt.level, logger.GetLevel(), tt.want)
		}
	}
}

func TestNewConsoleFormat(t *testing.T) {
	logger := New(Config{Level: "info", Format: "console"})
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("unexpected level %v", logger.GetLevel())
	}
}
