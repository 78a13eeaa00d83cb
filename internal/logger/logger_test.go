package logger

import (
	"context"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want level
	}{
		{"debug", "debug", levelDebug},
		{"info", "info", levelInfo},
		{"warn", "warn", levelWarn},
		{"error", "error", levelError},
		{"mixed case", "DeBuG", levelDebug},
		{"unknown defaults to info", "verbose", levelInfo},
		{"empty defaults to info", "", levelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic.
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  string
		logLevel  level
		shouldLog bool
	}{
		{"debug passes at debug", "debug", levelDebug, true},
		{"debug filtered at info", "info", levelDebug, false},
		{"info passes at info", "info", levelInfo, true},
		{"warn passes at info", "info", levelWarn, true},
		{"error always passes", "debug", levelError, true},
		{"info filtered at error", "error", levelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.minLevel).(*implLogger)
			if got := tt.logLevel >= l.min; got != tt.shouldLog {
				t.Errorf("level %v at min %q: logged = %v, want %v", tt.logLevel, tt.minLevel, got, tt.shouldLog)
			}
		})
	}
}
