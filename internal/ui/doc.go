// Package ui provides the interactive terminal pieces of rlg.
//
// # Overview
//
// Two small Bubble Tea programs live here:
//
//   - Prompt: a one-line text input used when rlg is run without entry text
//   - Viewer: a scrollable, live-reloading view of the end of the log
//
// Neither writes to the log. The prompt returns text to the caller, which
// appends it through package journal; the viewer only reads, using
// package logtail so that large logs are never read in full.
//
// # Package Structure
//
//   - prompt.go: PromptModel and Prompt
//   - viewer.go: Viewer model, rendering and RunViewer
//   - watch.go: fsnotify-based change notification with a polling fallback
//   - theme.go: colour palettes and Lipgloss styles
//
// # Live Reload
//
// Watch observes the log's parent directory, since editors and sync tools
// often replace a file rather than write to it, and filters events down to
// the log's own path. When fsnotify cannot be set up (for example the
// directory does not exist yet) it polls the file's size and modification
// time instead. Notifications are coalesced into a channel of capacity one,
// so a burst of writes triggers a single reload.
//
// # Key Bindings (viewer)
//
//   - q, esc, ctrl+c: quit
//   - r: reload now
//   - t: next theme (saved to prefs)
//   - g/home, G/end: jump to top or bottom
//   - arrows, pgup/pgdn, j/k: scroll
//
// # Themes
//
// Nightfox, Kanagawa and Slate are available. The choice is persisted with
// package prefs, separate from rlg.toml.
package ui
