package domain

import "strings"

// EnvStatus describes how an environment was obtained by the cache.
type EnvStatus string

const (
	// EnvStatusCached indicates a complete environment was already present.
	EnvStatusCached EnvStatus = "cached"
	// EnvStatusCreated indicates the environment was built by this call.
	EnvStatusCreated EnvStatus = "created"
	// EnvStatusRecreated indicates an incomplete environment was removed and built again.
	EnvStatusRecreated EnvStatus = "recreated"
)

// Built reports whether the status involved running the builder.
func (s EnvStatus) Built() bool {
	return s == EnvStatusCreated || s == EnvStatusRecreated
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name to a LogLevel.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug, true
	case "info":
		return LogLevelInfo, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	default:
		return LogLevelInfo, false
	}
}
