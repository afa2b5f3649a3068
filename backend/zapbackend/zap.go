// Package zapbackend adapts *zap.Logger to logger.Backend.
//
// Entries are written through the logger's core, so FatalLevel and
// UnknownLevel (both mapped to zapcore.FatalLevel) never run zap's
// exit hook. Options applied by the *zap.Logger rather than its core,
// such as zap.AddCaller and zap.AddStacktrace, are skipped for the same
// reason: entries carry no caller and no stack.
//
// The program name becomes the entry's logger name. It replaces the
// name given with zap.Logger.Named rather than being joined to it; the
// Named name is only used when a call has no program name.
package zapbackend

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/logger"
)

var _ logger.Backend = (*Backend)(nil)

// Backend forwards log calls to a zap logger
type Backend struct {
	logger   *zap.Logger
	progName any
}

// Option configures a Backend
type Option func(*Backend)

// WithProgName sets the program name used when a call passes none
func WithProgName(progName any) Option {
	return func(b *Backend) {
		b.progName = progName
	}
}

// New creates a Backend writing to l
func New(l *zap.Logger, opts ...Option) *Backend {
	b := &Backend{logger: l}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add writes an entry when zap has the level enabled
func (b *Backend) Add(level core.Level, message, progName any, fn core.MessageFunc) error {
	lvl := zapLevel(level)
	c := b.logger.Core()
	if !c.Enabled(lvl) {
		return nil
	}

	msg, prog := core.Resolve(message, progName, fn, b.progName)
	ent := zapcore.Entry{
		Level:      lvl,
		Time:       time.Now(),
		LoggerName: core.Label(prog),
		Message:    core.Stringify(msg),
	}
	if ent.LoggerName == "" {
		ent.LoggerName = b.logger.Name()
	}

	if ce := c.Check(ent, nil); ce != nil {
		ce.Write()
	}
	return nil
}

// DebugEnabled reports whether zap logs at debug
func (b *Backend) DebugEnabled() bool { return b.logger.Core().Enabled(zapcore.DebugLevel) }

// InfoEnabled reports whether zap logs at info
func (b *Backend) InfoEnabled() bool { return b.logger.Core().Enabled(zapcore.InfoLevel) }

// WarnEnabled reports whether zap logs at warn
func (b *Backend) WarnEnabled() bool { return b.logger.Core().Enabled(zapcore.WarnLevel) }

// ErrorEnabled reports whether zap logs at error
func (b *Backend) ErrorEnabled() bool { return b.logger.Core().Enabled(zapcore.ErrorLevel) }

// FatalEnabled reports whether zap logs at fatal
func (b *Backend) FatalEnabled() bool { return b.logger.Core().Enabled(zapcore.FatalLevel) }

func zapLevel(level core.Level) zapcore.Level {
	switch {
	case level <= core.DebugLevel:
		return zapcore.DebugLevel
	case level == core.InfoLevel:
		return zapcore.InfoLevel
	case level == core.WarnLevel:
		return zapcore.WarnLevel
	case level == core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
