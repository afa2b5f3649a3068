package logrusbackend

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/philipp01105/optlog/backend"
	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/logger"
)

func TestBackend_Add(t *testing.T) {
	tests := []struct {
		name     string
		message  any
		progName any
		fn       core.MessageFunc
		wantMsg  string
		wantProg any
	}{
		{"message", "my message", nil, nil, "my message", nil},
		{"message with progname", "my message", "my prog", nil, "my message", "my prog"},
		{"func with progname", nil, "my prog", func() any { return "some block message" }, "some block message", "my prog"},
		{"progname demoted", nil, "my prog", nil, "my prog", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, hook := test.NewNullLogger()
			l.SetLevel(logrus.DebugLevel)
			b := New(l)

			if err := b.Add(core.InfoLevel, tt.message, tt.progName, tt.fn); err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			e := hook.LastEntry()
			if e == nil {
				t.Fatal("Expected an entry")
			}
			if e.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMsg)
			}
			if e.Level != logrus.InfoLevel {
				t.Errorf("Level = %v, want info", e.Level)
			}
			if got := e.Data[backend.ProgNameKey]; got != tt.wantProg {
				t.Errorf("progname = %v, want %v", got, tt.wantProg)
			}
		})
	}
}

func TestBackend_FatalDoesNotExit(t *testing.T) {
	l, hook := test.NewNullLogger()
	exited := false
	l.ExitFunc = func(int) { exited = true }
	b := New(l)

	_ = b.Add(core.FatalLevel, "fatal but alive", nil, nil)
	_ = b.Add(core.UnknownLevel, "unknown but alive", nil, nil)

	if exited {
		t.Error("Fatal must not call the exit func")
	}
	if len(hook.AllEntries()) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(hook.AllEntries()))
	}
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.FatalLevel {
			t.Errorf("Level = %v, want fatal", e.Level)
		}
	}
}

func TestLogrusLevel(t *testing.T) {
	tests := []struct {
		level core.Level
		want  logrus.Level
	}{
		{core.DebugLevel, logrus.DebugLevel},
		{core.InfoLevel, logrus.InfoLevel},
		{core.WarnLevel, logrus.WarnLevel},
		{core.ErrorLevel, logrus.ErrorLevel},
		{core.FatalLevel, logrus.FatalLevel},
		{core.UnknownLevel, logrus.FatalLevel},
	}

	for _, tt := range tests {
		if got := logrusLevel(tt.level); got != tt.want {
			t.Errorf("logrusLevel(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestBackend_LevelFiltering(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.WarnLevel)
	b := New(l)

	called := false
	_ = b.Add(core.InfoLevel, nil, nil, func() any { called = true; return "x" })
	if called {
		t.Error("MessageFunc ran for a disabled level")
	}
	if len(hook.AllEntries()) != 0 {
		t.Error("Info entry should have been filtered")
	}

	if b.DebugEnabled() || b.InfoEnabled() {
		t.Error("Debug and info should be disabled at warn")
	}
	if !b.WarnEnabled() || !b.ErrorEnabled() || !b.FatalEnabled() {
		t.Error("Warn and above should be enabled at warn")
	}
}

func TestBackend_DefaultProgName(t *testing.T) {
	l, hook := test.NewNullLogger()
	b := New(l, WithProgName("app"))

	_ = b.Add(core.ErrorLevel, "hello", nil, nil)
	if got := hook.LastEntry().Data[backend.ProgNameKey]; got != "app" {
		t.Errorf("progname = %v, want app", got)
	}
}

func TestBackend_BehindFacade(t *testing.T) {
	l, hook := test.NewNullLogger()
	log := logger.New(New(l))

	_ = log.Error("worker", func() any { return "job failed" })

	e := hook.LastEntry()
	if e == nil || e.Message != "job failed" || e.Data[backend.ProgNameKey] != "worker" {
		t.Errorf("Unexpected entry: %+v", e)
	}
}
