// Package textlog is a severity-leveled text logger that satisfies
// logger.Backend. It writes the classic line format
//
//	I, [2026-01-15T12:00:00.000000 #4242]  INFO -- my prog: my message
//
// through a formatter and handler pipeline.
//
// A Logger is immutable after construction; the level, default
// program name and handler are set once via the Builder (or a Config)
// and never modified, which makes it safe for concurrent use.
//
//	log := textlog.NewBuilder().
//	    WithWriter(os.Stdout).
//	    WithLevel(core.InfoLevel).
//	    WithProgName("worker").
//	    Build()
//
// Add applies the level check before anything else, so a filtered-out
// call never runs its MessageFunc and allocates nothing. A Logger
// built without a handler or writer drops every call.
//
// Configuration can also be loaded from YAML with LoadConfig:
//
//	level: warn
//	format: json
//	progname: worker
//	output: stdout
//
// A file block sends output to a rotating file instead:
//
//	file:
//	  path: /var/log/worker.log
//	  max_size: 10485760
//	  max_backups: 5
//	  rotate_interval: 24h
package textlog
