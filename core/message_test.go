package core

import (
	"errors"
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		message  any
		progName any
		fn       MessageFunc
		def      any
		wantMsg  any
		wantProg any
	}{
		{
			name:     "message and progname",
			message:  "my message",
			progName: "my prog",
			wantMsg:  "my message",
			wantProg: "my prog",
		},
		{
			name:     "message only",
			message:  "my message",
			wantMsg:  "my message",
			wantProg: nil,
		},
		{
			name:     "message without progname uses default",
			message:  "my message",
			def:      "app",
			wantMsg:  "my message",
			wantProg: "app",
		},
		{
			name:     "func with progname",
			progName: "my prog",
			fn:       func() any { return "some block message" },
			wantMsg:  "some block message",
			wantProg: "my prog",
		},
		{
			name:     "message wins over func",
			message:  "my message",
			fn:       func() any { return "ignored" },
			wantMsg:  "my message",
			wantProg: nil,
		},
		{
			name:     "progname demoted to message",
			progName: "my prog",
			wantMsg:  "my prog",
			wantProg: nil,
		},
		{
			name:     "progname demoted, default label",
			progName: "my prog",
			def:      "app",
			wantMsg:  "my prog",
			wantProg: "app",
		},
		{
			name:     "empty string is a present message",
			message:  "",
			progName: "my prog",
			fn:       func() any { return "ignored" },
			wantMsg:  "",
			wantProg: "my prog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, prog := Resolve(tt.message, tt.progName, tt.fn, tt.def)
			if msg != tt.wantMsg {
				t.Errorf("msg = %v, want %v", msg, tt.wantMsg)
			}
			if prog != tt.wantProg {
				t.Errorf("prog = %v, want %v", prog, tt.wantProg)
			}
		})
	}
}

func TestResolve_FuncNotCalledWhenMessagePresent(t *testing.T) {
	called := false
	Resolve("msg", nil, func() any { called = true; return "x" }, nil)
	if called {
		t.Error("MessageFunc must not run when a message is given")
	}
}

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "hello", "hello"},
		{"nil", nil, "nil"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", stringer{}, "stringer"},
		{"duration", 2 * time.Second, "2s"},
		{"int", 42, "42"},
		{"struct", struct{ A int }{1}, "{A:1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.v); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label(nil); got != "" {
		t.Errorf("Label(nil) = %q, want empty", got)
	}
	if got := Label("prog"); got != "prog" {
		t.Errorf("Label(prog) = %q", got)
	}
}
