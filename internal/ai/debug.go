package ai

import "sync/atomic"

// debugLoggingEnabled guards per-tick debug logs of the AI, spawn and
// world packages. Checking an atomic is cheaper than building slog
// attributes every tick.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables per-tick debug logging.
// Called once from main after parsing config.LogLevel.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if per-tick debug logging is enabled:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("mob moved", "objectID", id, "x", x, "y", y)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
