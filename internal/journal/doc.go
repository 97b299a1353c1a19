// Package journal appends timestamped entries to a Markdown lab log.
//
// # File Layout
//
// A log is a single Markdown file that only ever grows:
//
//	# Lab Log
//
//	## 2024
//
//	### 2024-01-15
//	- 2024-01-15 10:00:00: calibrated the scope
//	- 2024-01-15 16:42:10: swapped the PSU
//
//	### 2024-01-16
//	- 2024-01-16 09:03:55: reran the sweep
//
// # Headers
//
// DetermineHeaders looks only at the most recent non-blank line, read from
// the end of the file with package revlines:
//
//   - Starts with "- <today>": no header
//   - Starts with "- <this year>": day header
//   - Anything else: year header, then day header
//   - No lines, or a read failure first: title, year header, day header
//
// Dates are compared as string prefixes of zero-padded layouts, so no
// calendar arithmetic is involved.
//
// # Appending
//
// Append opens the file once for read and append, decides the headers from
// the existing content and writes headers plus entry in one Write call. The
// caller supplies the timestamp; nothing in this package reads the clock.
//
// There is no locking. Two processes appending to the same file at the same
// moment are not coordinated.
package journal
