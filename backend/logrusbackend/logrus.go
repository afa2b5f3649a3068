// Package logrusbackend adapts *logrus.Logger to logger.Backend.
//
// Entries go through Entry.Log, which never exits or panics for
// logrus.FatalLevel; UnknownLevel maps to FatalLevel as well.
package logrusbackend

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/optlog/backend"
	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/logger"
)

var _ logger.Backend = (*Backend)(nil)

// Backend forwards log calls to a logrus logger
type Backend struct {
	logger   *logrus.Logger
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
func New(l *logrus.Logger, opts ...Option) *Backend {
	b := &Backend{logger: l}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add writes an entry when logrus has the level enabled
func (b *Backend) Add(level core.Level, message, progName any, fn core.MessageFunc) error {
	lvl := logrusLevel(level)
	if !b.logger.IsLevelEnabled(lvl) {
		return nil
	}

	msg, prog := core.Resolve(message, progName, fn, b.progName)
	entry := logrus.NewEntry(b.logger)
	if p := core.Label(prog); p != "" {
		entry = entry.WithField(backend.ProgNameKey, p)
	}
	entry.Log(lvl, core.Stringify(msg))
	return nil
}

// DebugEnabled reports whether logrus logs at debug
func (b *Backend) DebugEnabled() bool { return b.logger.IsLevelEnabled(logrus.DebugLevel) }

// InfoEnabled reports whether logrus logs at info
func (b *Backend) InfoEnabled() bool { return b.logger.IsLevelEnabled(logrus.InfoLevel) }

// WarnEnabled reports whether logrus logs at warn
func (b *Backend) WarnEnabled() bool { return b.logger.IsLevelEnabled(logrus.WarnLevel) }

// ErrorEnabled reports whether logrus logs at error
func (b *Backend) ErrorEnabled() bool { return b.logger.IsLevelEnabled(logrus.ErrorLevel) }

// FatalEnabled reports whether logrus logs at fatal
func (b *Backend) FatalEnabled() bool { return b.logger.IsLevelEnabled(logrus.FatalLevel) }

func logrusLevel(level core.Level) logrus.Level {
	switch {
	case level <= core.DebugLevel:
		return logrus.DebugLevel
	case level == core.InfoLevel:
		return logrus.InfoLevel
	case level == core.WarnLevel:
		return logrus.WarnLevel
	case level == core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}
