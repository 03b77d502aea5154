// Package log provides a leveled logger with structured fields, backed by logrus.
package log

var (
	// std is the default logger.
	std = New()
)

// Default returns the standard logger. Tests should create their own loggers instead.
func Default() Logger {
	return std
}

