package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log call
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Logging at this level never exits.
	FatalLevel
	// UnknownLevel is the catch-all top level. It is always enabled.
	UnknownLevel
)

// String returns the severity label used in log lines
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "ANY"
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike ParseLevel
// it rejects names it does not know.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, ok := lookupLevel(string(text))
	if !ok {
		return fmt.Errorf("core: unknown level %q", text)
	}
	*l = lvl
	return nil
}

// ParseLevel converts a string to a Level, falling back to InfoLevel
func ParseLevel(s string) Level {
	if lvl, ok := lookupLevel(s); ok {
		return lvl
	}
	return InfoLevel
}

func lookupLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	case "UNKNOWN", "ANY":
		return UnknownLevel, true
	default:
		return InfoLevel, false
	}
}
