// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which appends into a caller-provided bytes.Buffer.
// Handlers check for BufferFormatter at construction time and prefer
// it, so the write path reuses one handler-owned buffer.
//
// TextFormatter renders the classic severity line
//
//	I, [2026-01-15T12:00:00.000000 #4242]  INFO -- my prog: my message
//
// with the severity right-aligned to five columns and an empty program
// name rendered as nothing between "--" and ":". JSONFormatter emits
// one object per line with the same information.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
