package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/formatter"
)

// WriterConfig holds configuration for a writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// WriterHandler writes formatted entries to an io.Writer. Each entry is
// formatted into a handler-owned buffer and written with a single Write
// call under the handler's mutex.
type WriterHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	buf             bytes.Buffer
	closed          bool
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &WriterHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}
	return h
}

// Handle formats and writes an entry. Write errors are returned unchanged.
func (h *WriterHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// Close marks the handler closed. The underlying writer is owned by the
// caller and is left open.
func (h *WriterHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
