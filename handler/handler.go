package handler

import (
	"errors"

	"github.com/philipp01105/optlog/core"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry. The entry is only valid for the
	// duration of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Discard is a Handler that drops every entry
var Discard Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Handle(*core.Entry) error { return nil }
func (discardHandler) Close() error             { return nil }
