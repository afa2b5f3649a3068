package formatter

import (
	"bytes"
	"os"
	"strconv"

	"github.com/philipp01105/optlog/core"
)

// TextFormatter formats log entries as classic severity lines
type TextFormatter struct {
	Config
	pid string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	if cfg.Pid == 0 {
		cfg.Pid = os.Getpid()
	}
	return &TextFormatter{Config: cfg, pid: strconv.Itoa(cfg.Pid)}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)
	return copyBuffer(buf), nil
}

// pre-formatted severity columns to avoid padding at runtime
var (
	levelLetters = [...]string{
		core.DebugLevel:   "D, [",
		core.InfoLevel:    "I, [",
		core.WarnLevel:    "W, [",
		core.ErrorLevel:   "E, [",
		core.FatalLevel:   "F, [",
		core.UnknownLevel: "A, [",
	}
	levelLabels = [...]string{
		core.DebugLevel:   "] DEBUG -- ",
		core.InfoLevel:    "]  INFO -- ",
		core.WarnLevel:    "]  WARN -- ",
		core.ErrorLevel:   "] ERROR -- ",
		core.FatalLevel:   "] FATAL -- ",
		core.UnknownLevel: "]   ANY -- ",
	}
)

// FormatEntry writes the formatted entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	lvl := entry.Level
	if lvl < core.DebugLevel || int(lvl) >= len(levelLetters) {
		lvl = core.UnknownLevel
	}

	buf.WriteString(levelLetters[lvl])
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(" #")
	buf.WriteString(f.pid)
	buf.WriteString(levelLabels[lvl])
	buf.WriteString(entry.ProgName)
	buf.WriteString(": ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
