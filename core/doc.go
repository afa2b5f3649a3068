// Package core defines the shared types used across optlog.
//
// It provides the Level type for severity filtering, the MessageFunc
// type for deferred message construction, and the Entry type that a
// backend builds once a log call has passed its level check.
//
// Resolve implements the message fallback rule every backend applies:
// an explicit message wins, otherwise the MessageFunc result is used,
// otherwise the program name itself becomes the message and the label
// falls back to the backend's default program name. The facade in
// package logger never calls Resolve; it is backend-side behaviour.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it.
package core
