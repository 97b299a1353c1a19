// Package app provides the orchestration layer for rlg.
//
// # Overview
//
// This package wires configuration, the entry writer, the tail preview and
// the interactive UI together for a single invocation. It is the only place
// that reads the wall clock, and it does so through Options.Clock so tests
// can pin "now".
//
// # Data Flow
//
//	┌──────────────┐
//	│   New()      │ Resolve config and output streams
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read rlg.toml (defaults when missing)
//	       └─────> config.ExpandPath() Resolve a --file override
//
//	Write(text):
//	┌─────────────────────────────────────────┐
//	│ journal.Append()                        │
//	│  ├─> revlines backward scan (headers)   │
//	│  └─> single append write                │
//	│ Show()                                  │
//	│  ├─> logtail.Read()  (fresh handle)     │
//	│  └─> logtail.Render()                   │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned):
//   - Home directory cannot be resolved
//   - Log file cannot be opened or written; the preview is then skipped
//   - Preview file cannot be opened for a reason other than absence
//
// Reported on stderr, invocation continues:
//   - Missing config file (defaults used)
//   - Unparsable or invalid config (defaults used)
//   - Unreadable lines met by the header scan or the preview
//   - Unreadable preferences
//
// Diagnostics go through a standard library logger with the "rlg: " prefix.
package app
