// Package logger is the public API of optlog: a null-safe logging
// facade. Most users only need to import this package.
//
// A Logger wraps an optional Backend. When the Backend is nil every
// call is a no-op and every level predicate reports false, so library
// code can log unconditionally without checking whether its host ever
// configured logging:
//
//	log := logger.New(nil)
//	log.Info("ready") // discarded
//
// When a Backend is present the Logger forwards each call to it
// unchanged. Filtering, message resolution and writing are entirely
// the Backend's job; the facade never evaluates a MessageFunc itself:
//
//	log := logger.New(textlog.NewBuilder().WithLevel(logger.InfoLevel).Build())
//	log.Debug("cache", func() any { return expensiveDump() }) // dump never built
//
// A Logger is immutable after construction. Replacing the backend
// means building a new Logger, which is what Slot does for owners that
// want a lazily initialized, replaceable logger:
//
//	type Client struct {
//	    logger.Slot
//	}
//
//	c.Logger().Warn("retrying")       // silent until configured
//	c.Logger(zapbackend.New(zl))      // replace
//
// A nil *Logger behaves exactly like a Logger wrapping no Backend.
package logger
