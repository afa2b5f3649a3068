package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{Pid: 4242})

	entry := &core.Entry{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:    core.InfoLevel,
		ProgName: "worker",
		Message:  "hello world",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// I, [2026-01-15T12:00:00.000000 #4242]  INFO -- worker: hello world
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{Pid: 4242})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Message: "disk almost full",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// {"time":"2026-01-15T12:00:00.000000","severity":"WARN","pid":4242,"progname":"","message":"disk almost full"}
}
