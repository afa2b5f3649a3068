package textlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/formatter"
	"github.com/philipp01105/optlog/handler"
)

// Format represents the log output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level to output.
	Level core.Level `yaml:"level"`

	// Format is the output format (text or json).
	Format Format `yaml:"format"`

	// ProgName is the program name used when a call passes none.
	ProgName string `yaml:"progname"`

	// TimestampFormat is the time layout (empty for formatter.DefaultTimestampFormat).
	TimestampFormat string `yaml:"timestamp_format"`

	// Output names the destination: "stderr" (default) or "stdout".
	Output string `yaml:"output"`

	// File, when its Path is set, replaces Output with a rotating file.
	File FileConfig `yaml:"file"`

	// CoarseClock trades timestamp precision for speed.
	CoarseClock bool `yaml:"coarse_clock"`

	// Writer overrides Output when set.
	Writer io.Writer `yaml:"-"`
}

// FileConfig configures file output.
type FileConfig struct {
	Path string `yaml:"path"`

	// MaxSize is the size in bytes that triggers rotation (0 = never).
	MaxSize int64 `yaml:"max_size"`

	// MaxBackups is the number of rotated files kept (0 = all).
	MaxBackups int `yaml:"max_backups"`

	// RotateInterval triggers rotation by age, e.g. "24h" (0 = never).
	RotateInterval time.Duration `yaml:"rotate_interval"`
}

// DefaultConfig returns the defaults: every level, text lines, stderr.
func DefaultConfig() Config {
	return Config{
		Level:  core.DebugLevel,
		Format: FormatText,
		Output: "stderr",
	}
}

// New creates a Logger from cfg. Unrecognized formats fall back to text
// and unrecognized outputs to stderr; use LoadConfig for strict checks.
// The only error is a log file that cannot be opened.
func New(cfg Config) (*Logger, error) {
	fcfg := formatter.Config{TimestampFormat: cfg.TimestampFormat}
	var f formatter.Formatter
	switch ParseFormat(string(cfg.Format)) {
	case FormatJSON:
		f = formatter.NewJSONFormatter(fcfg)
	default:
		f = formatter.NewTextFormatter(fcfg)
	}

	b := NewBuilder().
		WithFormatter(f).
		WithLevel(cfg.Level).
		WithCoarseClock(cfg.CoarseClock)
	if cfg.ProgName != "" {
		b.WithProgName(cfg.ProgName)
	}

	switch {
	case cfg.Writer != nil:
		b.WithWriter(cfg.Writer)
	case cfg.File.Path != "":
		h, err := handler.NewFileHandler(handler.FileConfig{
			Filename:       cfg.File.Path,
			Formatter:      f,
			MaxSize:        cfg.File.MaxSize,
			MaxBackups:     cfg.File.MaxBackups,
			RotateInterval: cfg.File.RotateInterval,
		})
		if err != nil {
			return nil, fmt.Errorf("textlog: open log file: %w", err)
		}
		b.WithHandler(h)
	default:
		w, _ := openOutput(cfg.Output)
		b.WithWriter(w)
	}
	return b.Build(), nil
}

// LoadConfig decodes a YAML document on top of DefaultConfig. Unknown
// keys, level names, formats and outputs are errors. An empty document
// yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("textlog: decode config: %w", err)
	}

	switch strings.ToLower(string(cfg.Format)) {
	case "text", "":
		cfg.Format = FormatText
	case "json":
		cfg.Format = FormatJSON
	default:
		return Config{}, fmt.Errorf("textlog: unknown format %q", cfg.Format)
	}

	if cfg.File.Path == "" {
		if _, err := openOutput(cfg.Output); err != nil {
			return Config{}, err
		}
	}
	if cfg.File.MaxSize < 0 || cfg.File.MaxBackups < 0 || cfg.File.RotateInterval < 0 {
		return Config{}, fmt.Errorf("textlog: negative file rotation limit")
	}
	return cfg, nil
}

// ParseFormat parses a log format string.
// Returns FormatText if the string is not recognized.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

func openOutput(name string) (io.Writer, error) {
	switch strings.ToLower(name) {
	case "stderr", "":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return os.Stderr, fmt.Errorf("textlog: unknown output %q", name)
	}
}
