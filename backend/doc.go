// Package backend holds what the logger.Backend adapters share. Each
// subpackage makes a widely used logging library usable behind the
// optlog facade:
//
//   - zapbackend wraps *zap.Logger
//   - slogbackend wraps *slog.Logger
//   - logrusbackend wraps *logrus.Logger
//   - zerologbackend wraps zerolog.Logger
//   - logrbackend wraps logr.Logger
//
// Every adapter checks the level with its library first and only then
// resolves the message with core.Resolve, so a MessageFunc never runs
// for a disabled level. The program name travels as the ProgNameKey
// attribute (zap uses the logger name instead) and is omitted when
// empty. FatalLevel and UnknownLevel never exit or panic, whatever the
// library would do for its own fatal helpers.
//
// These libraries report sink failures through their own error
// channels, so adapter Add methods always return nil.
package backend

const (
	// ProgNameKey is the attribute carrying the program name
	ProgNameKey = "progname"
	// SeverityKey carries the original severity where the library has no matching level
	SeverityKey = "severity"
)
