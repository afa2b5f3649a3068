// Package zerologbackend adapts zerolog.Logger to logger.Backend.
//
// Events are created with Logger.WithLevel, which never exits or
// panics. UnknownLevel maps to zerolog.NoLevel, so those events carry
// no level field and are written at any threshold short of Disabled.
package zerologbackend

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/optlog/backend"
	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/logger"
)

var _ logger.Backend = (*Backend)(nil)

// Backend forwards log calls to a zerolog logger
type Backend struct {
	logger   zerolog.Logger
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
func New(l zerolog.Logger, opts ...Option) *Backend {
	b := &Backend{logger: l}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add writes an event when zerolog has the level enabled
func (b *Backend) Add(level core.Level, message, progName any, fn core.MessageFunc) error {
	lvl := zerologLevel(level)
	if !b.enabled(lvl) {
		return nil
	}

	msg, prog := core.Resolve(message, progName, fn, b.progName)
	e := b.logger.WithLevel(lvl)
	if p := core.Label(prog); p != "" {
		e = e.Str(backend.ProgNameKey, p)
	}
	e.Msg(core.Stringify(msg))
	return nil
}

// enabled mirrors zerolog's own check against the logger and global levels
func (b *Backend) enabled(lvl zerolog.Level) bool {
	return lvl >= b.logger.GetLevel() && lvl >= zerolog.GlobalLevel()
}

// DebugEnabled reports whether zerolog logs at debug
func (b *Backend) DebugEnabled() bool { return b.enabled(zerolog.DebugLevel) }

// InfoEnabled reports whether zerolog logs at info
func (b *Backend) InfoEnabled() bool { return b.enabled(zerolog.InfoLevel) }

// WarnEnabled reports whether zerolog logs at warn
func (b *Backend) WarnEnabled() bool { return b.enabled(zerolog.WarnLevel) }

// ErrorEnabled reports whether zerolog logs at error
func (b *Backend) ErrorEnabled() bool { return b.enabled(zerolog.ErrorLevel) }

// FatalEnabled reports whether zerolog logs at fatal
func (b *Backend) FatalEnabled() bool { return b.enabled(zerolog.FatalLevel) }

func zerologLevel(level core.Level) zerolog.Level {
	switch {
	case level <= core.DebugLevel:
		return zerolog.DebugLevel
	case level == core.InfoLevel:
		return zerolog.InfoLevel
	case level == core.WarnLevel:
		return zerolog.WarnLevel
	case level == core.ErrorLevel:
		return zerolog.ErrorLevel
	case level == core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
