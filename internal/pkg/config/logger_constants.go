package config

import "slices"

// Levels accepted in LoggerSettings.LogLevel
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Sinks accepted in LoggerSettings.LogType
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LogLevels lists the accepted levels from most to least verbose.
var LogLevels = []string{LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical}

// ValidLogLevel reports whether level is one of LogLevels.
func ValidLogLevel(level string) bool {
	return slices.Contains(LogLevels, level)
}
