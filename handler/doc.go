// Package handler provides the Handler interface and its built-in
// implementations for writing resolved log entries to outputs.
//
// Built-in handlers:
//
//   - WriterHandler formats entries and writes them to any io.Writer
//     (default: os.Stderr), one Write call per line, serialized by a
//     mutex so concurrent loggers never interleave partial lines.
//   - FileHandler appends to a file and rotates it by size or age,
//     keeping at most MaxBackups timestamped copies.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - Discard drops every entry.
//
// SlogHandler goes the other way: it turns any Handler into a
// slog.Handler so log/slog callers share the same output.
//
// Handlers receive entries only after the logger's level check and
// message resolution, so a handler never sees a deferred message.
package handler
