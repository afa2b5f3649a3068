package logger

import "testing"

func TestDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	d := Default()
	if d == nil || d != Default() {
		t.Fatal("Default() should return the same Logger on every call")
	}

	called := false
	_ = Info(nil, func() any { called = true; return "x" })
	if called {
		t.Error("MessageFunc ran without a default backend")
	}

	rec := &recorder{}
	set := SetDefault(rec)
	if set == d || Default() != set {
		t.Error("SetDefault() should install a new Logger")
	}

	funcs := []struct {
		level Level
		log   func(any, ...MessageFunc) error
	}{
		{DebugLevel, Debug},
		{InfoLevel, Info},
		{WarnLevel, Warn},
		{ErrorLevel, Error},
		{FatalLevel, Fatal},
		{UnknownLevel, Unknown},
	}
	for _, f := range funcs {
		_ = f.log("prog")
	}

	if len(rec.calls) != len(funcs) {
		t.Fatalf("Expected %d calls, got %d", len(funcs), len(rec.calls))
	}
	for i, f := range funcs {
		if c := rec.calls[i]; c.level != f.level || c.progName != "prog" || c.message != nil {
			t.Errorf("call %d = %+v, want level %v", i, c, f.level)
		}
	}
}
