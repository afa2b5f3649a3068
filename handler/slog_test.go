package handler

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/optlog/core"
)

func newSlogLogger(buf *bytes.Buffer, level core.Level) *slog.Logger {
	return slog.New(NewSlogHandler(NewWriterHandler(WriterConfig{Writer: buf}), level))
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(Discard, core.InfoLevel)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, core.DebugLevel)

	logger.Info("test message", "key", "value", "count", 42, "progname", "worker")

	output := buf.String()
	if !strings.Contains(output, "INFO -- worker: test message key=value count=42\n") {
		t.Errorf("Unexpected output: %s", output)
	}
}

func TestSlogHandler_QuotedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, core.DebugLevel)

	logger.Info("m", "path", "a b", "empty", "")

	if !strings.Contains(buf.String(), `: m path="a b" empty=""`) {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, core.DebugLevel).With("request_id", "req-123", "progname", "api")

	logger.Info("test message")

	if !strings.Contains(buf.String(), "INFO -- api: test message request_id=req-123\n") {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, core.DebugLevel).WithGroup("auth")

	logger.Info("test message", "user_id", 123, "progname", "grouped")

	output := buf.String()
	if !strings.Contains(output, "auth.user_id=123") {
		t.Errorf("Expected 'auth.user_id=123' in output, got: %s", output)
	}
	if !strings.Contains(output, "auth.progname=grouped") {
		t.Errorf("Grouped progname should stay an attribute, got: %s", output)
	}
	if !strings.Contains(output, "INFO -- : test message") {
		t.Errorf("Expected empty program name, got: %s", output)
	}
}

func TestSlogHandler_NestedGroupAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, core.DebugLevel)

	logger.Info("m", slog.Group("req", slog.String("method", "GET"), slog.Int("status", 200)))

	if !strings.Contains(buf.String(), "m req.method=GET req.status=200\n") {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newSlogLogger(&buf, core.InfoLevel)

	logger.Debug("should not appear")
	if buf.Len() > 0 {
		t.Error("Debug message should not have been logged")
	}

	logger.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Expected 'should appear' in output, got: %s", buf.String())
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug - 4, core.DebugLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.FatalLevel},
		{slog.LevelError + 8, core.UnknownLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
