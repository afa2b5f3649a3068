package handler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/optlog/core"
	"github.com/philipp01105/optlog/formatter"
)

const backupTimeFormat = "2006-01-02T15-04-05.000000000"

// FileHandler writes log entries to a file with rotation support
type FileHandler struct {
	mu             sync.Mutex
	filename       string
	file           *os.File
	formatter      formatter.Formatter
	buf            bytes.Buffer
	maxSize        int64
	maxBackups     int
	rotateInterval time.Duration
	currentSize    int64
	lastRotateTime time.Time
	now            func() time.Time
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the maximum size in bytes before rotation (0 = no size rotation)
	MaxSize int64
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// RotateInterval is the interval for time-based rotation (0 = no interval rotation)
	RotateInterval time.Duration
}

// NewFileHandler opens or creates the log file, and its directory, for appending
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("handler: filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, err
	}

	file, err := openAppend(cfg.Filename)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &FileHandler{
		filename:       cfg.Filename,
		file:           file,
		formatter:      cfg.Formatter,
		maxSize:        cfg.MaxSize,
		maxBackups:     cfg.MaxBackups,
		rotateInterval: cfg.RotateInterval,
		currentSize:    info.Size(),
		lastRotateTime: time.Now(),
		now:            time.Now,
	}, nil
}

func openAppend(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Handle formats an entry and appends it to the file, rotating first
// when the size or interval limit has been reached
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return ErrClosed
	}

	data, err := h.format(entry)
	if err != nil {
		return err
	}

	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := h.file.Write(data)
	h.currentSize += int64(n)
	return err
}

func (h *FileHandler) format(entry *core.Entry) ([]byte, error) {
	if bf, ok := h.formatter.(formatter.BufferFormatter); ok {
		h.buf.Reset()
		bf.FormatEntry(entry, &h.buf)
		return h.buf.Bytes(), nil
	}
	return h.formatter.Format(entry)
}

// rotateIfNeeded checks and performs rotation if needed
func (h *FileHandler) rotateIfNeeded() error {
	needRotate := h.maxSize > 0 && h.currentSize >= h.maxSize
	if h.rotateInterval > 0 && h.now().Sub(h.lastRotateTime) >= h.rotateInterval {
		needRotate = true
	}
	if !needRotate {
		return nil
	}
	return h.rotate()
}

// rotate renames the current file with a timestamp suffix and reopens
func (h *FileHandler) rotate() error {
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	rotatedName := h.filename + "." + h.now().Format(backupTimeFormat)
	if err := os.Rename(h.filename, rotatedName); err != nil {
		file, openErr := openAppend(h.filename)
		if openErr != nil {
			h.file = nil
			return fmt.Errorf("handler: rotation failed: %v, reopen failed: %w", err, openErr)
		}
		h.file = file
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	file, err := openAppend(h.filename)
	if err != nil {
		h.file = nil
		return err
	}

	h.file = file
	h.currentSize = 0
	h.lastRotateTime = h.now()
	return nil
}

// cleanupOldBackups removes the oldest backups beyond MaxBackups.
// Only files named by rotate count as backups; backup names sort
// chronologically.
func (h *FileHandler) cleanupOldBackups() {
	base := filepath.Base(h.filename)
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(h.filename), base+".*"))
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if isBackupName(base, filepath.Base(match)) {
			backups = append(backups, match)
		}
	}
	sort.Strings(backups)

	if len(backups) > h.maxBackups {
		for _, file := range backups[:len(backups)-h.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// isBackupName reports whether name is base plus a rotation timestamp
func isBackupName(base, name string) bool {
	suffix, ok := strings.CutPrefix(name, base+".")
	if !ok {
		return false
	}
	_, err := time.Parse(backupTimeFormat, suffix)
	return err == nil
}

// Close syncs and closes the file
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	err := h.file.Sync()
	if cerr := h.file.Close(); err == nil {
		err = cerr
	}
	h.file = nil
	return err
}
