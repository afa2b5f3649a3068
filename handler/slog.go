package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/optlog/backend"
	"github.com/philipp01105/optlog/core"
)

const (
	slogLevelFatal   = slog.LevelError + 4
	slogLevelUnknown = slog.LevelError + 8
)

// SlogHandler exposes a Handler as a slog.Handler, so code logging
// through log/slog produces the same lines as the rest of the program.
//
// A string attribute named backend.ProgNameKey becomes the entry's
// program name. Every other attribute is appended to the message as
// key=value, with group names joined by dots.
type SlogHandler struct {
	handler  Handler
	level    core.Level
	progName string
	attrs    []string
	group    string
}

// NewSlogHandler creates a slog.Handler writing entries at or above level to h
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it on
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	progName := s.progName
	var sb strings.Builder
	sb.WriteString(record.Message)
	for _, a := range s.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		if p, ok := s.progNameAttr(a); ok {
			progName = p
			return true
		}
		appendAttr(&sb, s.group, a)
		return true
	})

	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.ProgName = progName
	entry.Message = sb.String()

	err := s.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := s.clone()
	for _, a := range attrs {
		if p, ok := s.progNameAttr(a); ok {
			clone.progName = p
			continue
		}
		var sb strings.Builder
		appendAttr(&sb, s.group, a)
		if sb.Len() > 0 {
			clone.attrs = append(clone.attrs, sb.String()[1:])
		}
	}
	return clone
}

// WithGroup returns a new SlogHandler with the given group name
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := s.clone()
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return clone
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]string, len(s.attrs), len(s.attrs)+4)
	copy(attrs, s.attrs)
	return &SlogHandler{
		handler:  s.handler,
		level:    s.level,
		progName: s.progName,
		attrs:    attrs,
		group:    s.group,
	}
}

// progNameAttr reports whether a is the top-level program name attribute
func (s *SlogHandler) progNameAttr(a slog.Attr) (string, bool) {
	if s.group != "" || a.Key != backend.ProgNameKey {
		return "", false
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindString {
		return "", false
	}
	return v.String(), true
}

// slogLevelToCore converts a slog.Level to a core.Level
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slogLevelUnknown:
		return core.UnknownLevel
	case level >= slogLevelFatal:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value" for a, flattening groups
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if strings.ContainsAny(s, " =\"") || s == "" {
			fmt.Fprintf(sb, "%q", s)
		} else {
			sb.WriteString(s)
		}
	default:
		sb.WriteString(a.Value.String())
	}
}
