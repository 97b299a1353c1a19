// Package config loads rlg's optional TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use <user config dir>/rlg.toml (~/.config/rlg.toml on Linux)
//  3. If the file doesn't exist, return defaults plus an ErrNotFound note
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Log file: ~/rlg.md
//   - Style: markdown
//   - Preview lines: 6
//
// # TOML Format
//
//	default_log_file = "~/notes/lab.md"
//	style = "markdown"
//	preview_lines = 6
//
// All fields are optional.
//
// # Path Expansion
//
// default_log_file may start with "~", "$HOME" or "${HOME}". The result is made
// absolute and, when the file already exists, symlinks are resolved so the
// preview banner shows the real location.
//
// # Validation
//
// Values are checked with ozzo-validation after defaults are applied: style
// must be "markdown" and preview_lines must be between 0 and 1000.
//
// # Error Handling
//
// Load returns errors for:
//   - Home or config directory resolution failures
//   - File read errors (a missing file only yields ErrNotFound with defaults)
//   - TOML parsing errors
//   - Validation failures
//
// Callers decide whether a bad config is fatal; the CLI warns and continues
// with Default().
package config
