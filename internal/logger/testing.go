package logger

import (
	"log/slog"
	"os"
)

// EnvTestLevel overrides the level of NewTestLogger, e.g. TEST_LOG_LEVEL=debug.
const EnvTestLevel = "TEST_LOG_LEVEL"

// NewTestLogger creates a logger for tests.
// It logs WARN and above to stdout unless TEST_LOG_LEVEL says otherwise.
func NewTestLogger() *slog.Logger {
	level := slog.LevelWarn // Quiet by default
	if v := os.Getenv(EnvTestLevel); v != "" {
		if parsed, err := ParseLevel(v); err == nil {
			level = parsed
		}
	}

	return NewLogger(Config{
		Level:  level,
		Format: "text",
		Output: os.Stdout,
	})
}
