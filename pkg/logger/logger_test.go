package logger

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wonny/marketbrief/pkg/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Env:       "test",
		LogLevel:  "debug",
		LogFormat: "json",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("Expected logger to be created")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithField(t *testing.T) {
	log := New(&config.Config{Env: "test", LogLevel: "error"})

	derived := log.WithField("sector", "technology")
	if derived == nil {
		t.Fatal("Expected derived logger")
	}
	if derived == log {
		t.Error("WithField should return a new logger")
	}
}

func TestWithError(t *testing.T) {
	log := New(&config.Config{Env: "test", LogLevel: "error"})

	derived := log.WithError(errors.New("boom"))
	if derived == nil || derived == log {
		t.Error("WithError should return a new logger")
	}
}
