package logger

// Backend is the capability set of a wrapped logger.
//
// Add must filter by level, call fn only when the level passes, and
// resolve the message as described in core.Resolve. The predicates
// report whether the given level is currently enabled.
type Backend interface {
	Add(level Level, message, progName any, fn MessageFunc) error
	DebugEnabled() bool
	InfoEnabled() bool
	WarnEnabled() bool
	ErrorEnabled() bool
	FatalEnabled() bool
}

// A Logger can itself serve as the backend of another Logger
var _ Backend = (*Logger)(nil)

// Logger forwards log calls to an optional Backend (immutable)
type Logger struct {
	backend Backend
}

// New wraps b. A nil b yields a Logger that discards everything.
//
// A typed nil such as (*textlog.Logger)(nil) is not a nil Backend: it
// is stored and called like any other backend, so Wrapped reports it
// and the backend's own nil handling decides what happens.
func New(b Backend) *Logger {
	return &Logger{backend: b}
}

// Wrapped returns the wrapped Backend, or nil
func (l *Logger) Wrapped() Backend {
	if l == nil {
		return nil
	}
	return l.backend
}

// Add forwards a log call to the backend unchanged and returns its
// error. Without a backend it returns nil and fn is never called.
func (l *Logger) Add(level Level, message, progName any, fn MessageFunc) error {
	if l == nil || l.backend == nil {
		return nil
	}
	return l.backend.Add(level, message, progName, fn)
}

// Log is an alias for Add
func (l *Logger) Log(level Level, message, progName any, fn MessageFunc) error {
	return l.Add(level, message, progName, fn)
}

// Debug logs at DebugLevel. Without fn, progName doubles as the message.
func (l *Logger) Debug(progName any, fn ...MessageFunc) error {
	return l.Add(DebugLevel, nil, progName, first(fn))
}

// Info logs at InfoLevel. Without fn, progName doubles as the message.
func (l *Logger) Info(progName any, fn ...MessageFunc) error {
	return l.Add(InfoLevel, nil, progName, first(fn))
}

// Warn logs at WarnLevel. Without fn, progName doubles as the message.
func (l *Logger) Warn(progName any, fn ...MessageFunc) error {
	return l.Add(WarnLevel, nil, progName, first(fn))
}

// Error logs at ErrorLevel. Without fn, progName doubles as the message.
func (l *Logger) Error(progName any, fn ...MessageFunc) error {
	return l.Add(ErrorLevel, nil, progName, first(fn))
}

// Fatal logs at FatalLevel. It does not exit the program.
func (l *Logger) Fatal(progName any, fn ...MessageFunc) error {
	return l.Add(FatalLevel, nil, progName, first(fn))
}

// Unknown logs at UnknownLevel, the catch-all top level
func (l *Logger) Unknown(progName any, fn ...MessageFunc) error {
	return l.Add(UnknownLevel, nil, progName, first(fn))
}

// first returns the optional producer; extras are ignored
func first(fn []MessageFunc) MessageFunc {
	if len(fn) == 0 {
		return nil
	}
	return fn[0]
}

// DebugEnabled reports whether the backend logs at DebugLevel
func (l *Logger) DebugEnabled() bool {
	if l == nil || l.backend == nil {
		return false
	}
	return l.backend.DebugEnabled()
}

// InfoEnabled reports whether the backend logs at InfoLevel
func (l *Logger) InfoEnabled() bool {
	if l == nil || l.backend == nil {
		return false
	}
	return l.backend.InfoEnabled()
}

// WarnEnabled reports whether the backend logs at WarnLevel
func (l *Logger) WarnEnabled() bool {
	if l == nil || l.backend == nil {
		return false
	}
	return l.backend.WarnEnabled()
}

// ErrorEnabled reports whether the backend logs at ErrorLevel
func (l *Logger) ErrorEnabled() bool {
	if l == nil || l.backend == nil {
		return false
	}
	return l.backend.ErrorEnabled()
}

// FatalEnabled reports whether the backend logs at FatalLevel
func (l *Logger) FatalEnabled() bool {
	if l == nil || l.backend == nil {
		return false
	}
	return l.backend.FatalEnabled()
}
