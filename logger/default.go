package logger

// defaultSlot holds the package-level logger. It discards everything
// until a host application calls SetDefault.
var defaultSlot Slot

// Default returns the default logger
func Default() *Logger {
	return defaultSlot.Logger()
}

// SetDefault replaces the default logger with a new one wrapping b
func SetDefault(b Backend) *Logger {
	return defaultSlot.Logger(b)
}

// Package-level convenience functions using the default logger

// Debug logs at DebugLevel using the default logger
func Debug(progName any, fn ...MessageFunc) error {
	return Default().Debug(progName, fn...)
}

// Info logs at InfoLevel using the default logger
func Info(progName any, fn ...MessageFunc) error {
	return Default().Info(progName, fn...)
}

// Warn logs at WarnLevel using the default logger
func Warn(progName any, fn ...MessageFunc) error {
	return Default().Warn(progName, fn...)
}

// Error logs at ErrorLevel using the default logger
func Error(progName any, fn ...MessageFunc) error {
	return Default().Error(progName, fn...)
}

// Fatal logs at FatalLevel using the default logger. It does not exit.
func Fatal(progName any, fn ...MessageFunc) error {
	return Default().Fatal(progName, fn...)
}

// Unknown logs at UnknownLevel using the default logger
func Unknown(progName any, fn ...MessageFunc) error {
	return Default().Unknown(progName, fn...)
}
