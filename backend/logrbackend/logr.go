// Package logrbackend adapts logr.Logger to logger.Backend.
//
// logr only knows verbosity levels and errors. Debug is written at V(1),
// Info and Warn at V(0), and Error, Fatal and Unknown through
// Logger.Error with a nil error. Warn, Fatal and Unknown add the
// original severity under backend.SeverityKey so sinks can tell them
// apart.
package logrbackend

import (
	"github.com/go-logr/logr"

	"github.com/philipp01105/optlog/backend"
	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/logger"
)

// DebugVerbosity is the V level debug messages are written at
const DebugVerbosity = 1

var _ logger.Backend = (*Backend)(nil)

// Backend forwards log calls to a logr logger
type Backend struct {
	logger   logr.Logger
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
func New(l logr.Logger, opts ...Option) *Backend {
	b := &Backend{logger: l}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add writes a log line when the sink has the level enabled
func (b *Backend) Add(level core.Level, message, progName any, fn core.MessageFunc) error {
	if !b.enabled(level) {
		return nil
	}

	msg, prog := core.Resolve(message, progName, fn, b.progName)
	text := core.Stringify(msg)

	var kv []any
	if p := core.Label(prog); p != "" {
		kv = append(kv, backend.ProgNameKey, p)
	}
	if level == core.WarnLevel || level >= core.FatalLevel {
		kv = append(kv, backend.SeverityKey, level.String())
	}

	switch {
	case level <= core.DebugLevel:
		b.logger.V(DebugVerbosity).Info(text, kv...)
	case level <= core.WarnLevel:
		b.logger.Info(text, kv...)
	default:
		b.logger.Error(nil, text, kv...)
	}
	return nil
}

func (b *Backend) enabled(level core.Level) bool {
	switch {
	case level <= core.DebugLevel:
		return b.logger.V(DebugVerbosity).Enabled()
	case level <= core.WarnLevel:
		return b.logger.Enabled()
	default:
		// logr writes errors regardless of verbosity
		return b.logger.GetSink() != nil
	}
}

// DebugEnabled reports whether the sink is enabled at V(1)
func (b *Backend) DebugEnabled() bool { return b.enabled(core.DebugLevel) }

// InfoEnabled reports whether the sink is enabled at V(0)
func (b *Backend) InfoEnabled() bool { return b.enabled(core.InfoLevel) }

// WarnEnabled reports whether the sink is enabled at V(0)
func (b *Backend) WarnEnabled() bool { return b.enabled(core.WarnLevel) }

// ErrorEnabled reports whether the logger has a sink
func (b *Backend) ErrorEnabled() bool { return b.enabled(core.ErrorLevel) }

// FatalEnabled reports whether the logger has a sink
func (b *Backend) FatalEnabled() bool { return b.enabled(core.FatalLevel) }
