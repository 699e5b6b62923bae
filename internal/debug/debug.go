package debug

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DebugOutput logs a formatted message if debugging is enabled
func DebugOutput(logger *zap.Logger, enabled bool, format string, args ...interface{}) {
	if enabled {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Timing measures and logs execution time if debugging is enabled
func Timing(logger *zap.Logger, enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(logger, enabled, "Starting: %s", operation)

	return func() {
		logger.Debug("Completed",
			zap.String("operation", operation),
			zap.Duration("took", time.Since(start)))
	}
}
