package textlog

import (
	"io"
	"time"

	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/formatter"
	"github.com/philipp01105/optlog/handler"
	"github.com/philipp01105/optlog/logger"
)

var _ logger.Backend = (*Logger)(nil)

// Logger is a severity-leveled text logger (immutable). A nil *Logger
// drops every call and reports every level disabled.
type Logger struct {
	handler  handler.Handler
	level    core.Level
	progName any
	now      func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler     handler.Handler
	writer      io.Writer
	formatter   formatter.Formatter
	level       core.Level
	progName    any
	coarseClock bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.DebugLevel, // Log everything unless told otherwise
	}
}

// WithHandler sets the handler. It takes precedence over WithWriter.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithWriter writes lines to w through a handler.WriterHandler
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithFormatter sets the formatter used with WithWriter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithProgName sets the program name used when a call passes none
func (b *Builder) WithProgName(progName any) *Builder {
	b.progName = progName
	return b
}

// WithCoarseClock timestamps lines from core.CoarseNow instead of time.Now
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil && b.writer != nil {
		h = handler.NewWriterHandler(handler.WriterConfig{
			Writer:    b.writer,
			Formatter: b.formatter,
		})
	}

	now := time.Now
	if b.coarseClock {
		core.StartCoarseClock()
		now = core.CoarseNow
	}

	return &Logger{
		handler:  h,
		level:    b.level,
		progName: b.progName,
		now:      now,
	}
}

// WithProgName creates a new Logger sharing the handler but carrying a
// different default program name (immutable operation)
func (l *Logger) WithProgName(progName any) *Logger {
	return &Logger{
		handler:  l.handler,
		level:    l.level,
		progName: progName,
		now:      l.now,
	}
}

// Level returns the minimum level that is written
func (l *Logger) Level() core.Level {
	return l.level
}

// Add writes a line at the given level.
//
// The message is message if non-nil, else the result of fn, else
// progName (in which case the line carries the default program name).
// fn is only called when level passes the threshold. Handler errors are
// returned unchanged.
func (l *Logger) Add(level core.Level, message, progName any, fn core.MessageFunc) error {
	// Level check optimization - exit early BEFORE any allocations
	if l == nil || l.handler == nil || level < l.level {
		return nil
	}

	msg, prog := core.Resolve(message, progName, fn, l.progName)

	entry := core.GetEntry()
	entry.Time = l.now()
	entry.Level = level
	entry.ProgName = core.Label(prog)
	entry.Message = core.Stringify(msg)

	err := l.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// Log is an alias for Add
func (l *Logger) Log(level core.Level, message, progName any, fn core.MessageFunc) error {
	return l.Add(level, message, progName, fn)
}

// DebugEnabled reports whether DebugLevel lines are written
func (l *Logger) DebugEnabled() bool { return l != nil && l.level <= core.DebugLevel }

// InfoEnabled reports whether InfoLevel lines are written
func (l *Logger) InfoEnabled() bool { return l != nil && l.level <= core.InfoLevel }

// WarnEnabled reports whether WarnLevel lines are written
func (l *Logger) WarnEnabled() bool { return l != nil && l.level <= core.WarnLevel }

// ErrorEnabled reports whether ErrorLevel lines are written
func (l *Logger) ErrorEnabled() bool { return l != nil && l.level <= core.ErrorLevel }

// FatalEnabled reports whether FatalLevel lines are written
func (l *Logger) FatalEnabled() bool { return l != nil && l.level <= core.FatalLevel }

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l != nil && l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
