// Package slogbackend adapts *slog.Logger to logger.Backend.
//
// slog has no fatal or catch-all level, so FatalLevel and UnknownLevel
// map to LevelFatal and LevelUnknown above slog.LevelError. Use
// ReplaceAttr in the handler options to print them by name.
package slogbackend

import (
	"context"
	"log/slog"

	"github.com/philipp01105/optlog/backend"
	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/logger"
)

// Levels above slog.LevelError
const (
	LevelFatal   = slog.LevelError + 4
	LevelUnknown = slog.LevelError + 8
)

var _ logger.Backend = (*Backend)(nil)

// Backend forwards log calls to a slog logger
type Backend struct {
	logger   *slog.Logger
	progName any
	ctx      context.Context
}

// Option configures a Backend
type Option func(*Backend)

// WithProgName sets the program name used when a call passes none
func WithProgName(progName any) Option {
	return func(b *Backend) {
		b.progName = progName
	}
}

// WithContext sets the context passed to the slog handler
func WithContext(ctx context.Context) Option {
	return func(b *Backend) {
		b.ctx = ctx
	}
}

// New creates a Backend writing to l
func New(l *slog.Logger, opts ...Option) *Backend {
	b := &Backend{logger: l, ctx: context.Background()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add writes a record when slog has the level enabled
func (b *Backend) Add(level core.Level, message, progName any, fn core.MessageFunc) error {
	lvl := slogLevel(level)
	if !b.logger.Enabled(b.ctx, lvl) {
		return nil
	}

	msg, prog := core.Resolve(message, progName, fn, b.progName)
	if p := core.Label(prog); p != "" {
		b.logger.LogAttrs(b.ctx, lvl, core.Stringify(msg), slog.String(backend.ProgNameKey, p))
		return nil
	}
	b.logger.LogAttrs(b.ctx, lvl, core.Stringify(msg))
	return nil
}

// DebugEnabled reports whether slog logs at debug
func (b *Backend) DebugEnabled() bool { return b.logger.Enabled(b.ctx, slog.LevelDebug) }

// InfoEnabled reports whether slog logs at info
func (b *Backend) InfoEnabled() bool { return b.logger.Enabled(b.ctx, slog.LevelInfo) }

// WarnEnabled reports whether slog logs at warn
func (b *Backend) WarnEnabled() bool { return b.logger.Enabled(b.ctx, slog.LevelWarn) }

// ErrorEnabled reports whether slog logs at error
func (b *Backend) ErrorEnabled() bool { return b.logger.Enabled(b.ctx, slog.LevelError) }

// FatalEnabled reports whether slog logs at LevelFatal
func (b *Backend) FatalEnabled() bool { return b.logger.Enabled(b.ctx, LevelFatal) }

// ReplaceAttr renders LevelFatal and LevelUnknown as FATAL and ANY. It
// is meant for slog.HandlerOptions.ReplaceAttr.
func ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch {
	case lvl >= LevelUnknown:
		a.Value = slog.StringValue(core.UnknownLevel.String())
	case lvl >= LevelFatal:
		a.Value = slog.StringValue(core.FatalLevel.String())
	}
	return a
}

// slogLevel converts a core.Level to a slog.Level.
func slogLevel(level core.Level) slog.Level {
	switch {
	case level <= core.DebugLevel:
		return slog.LevelDebug
	case level == core.InfoLevel:
		return slog.LevelInfo
	case level == core.WarnLevel:
		return slog.LevelWarn
	case level == core.ErrorLevel:
		return slog.LevelError
	case level == core.FatalLevel:
		return LevelFatal
	default:
		return LevelUnknown
	}
}
