package logger

import (
	"github.com/philipp01105/optlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

// MessageFunc builds a message only when the backend decides to log it
type MessageFunc = core.MessageFunc

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
	UnknownLevel = core.UnknownLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
