package journal

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/five82/rlg/internal/revlines"
)

const fileMode = 0o644

// Result describes a completed append.
type Result struct {
	Path     string
	Decision Decision
	Written  string // exact text appended, headers included
}

// AppendOption configures Append.
type AppendOption func(*appendConfig)

type appendConfig struct {
	onScanError func(error)
	chunkSize   int
}

// WithScanErrorHandler receives the read failure that ended the header scan.
func WithScanErrorHandler(fn func(error)) AppendOption {
	return func(c *appendConfig) {
		c.onScanError = fn
	}
}

// WithChunkSize sets the backward read size used for the header scan.
func WithChunkSize(n int) AppendOption {
	return func(c *appendConfig) {
		c.chunkSize = n
	}
}

// lineBreaks maps every line break in entry text to a single space so an
// entry always occupies exactly one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FormatEntry returns the entry line for text at now, without a terminator.
// Line breaks inside text become spaces.
func FormatEntry(text string, now time.Time) string {
	return entryMarker + now.Format(TimestampLayout) + ": " + lineBreaks.Replace(text)
}

// Append adds an entry for text at now to the log at path, creating the file
// if needed. Headers are decided from the file as it was before the write and
// go out together with the entry in a single write.
func Append(path, text string, now time.Time, opts ...AppendOption) (Result, error) {
	var cfg appendConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, fileMode)
	if err != nil {
		return Result{}, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := revlines.New(file, revlines.WithChunkSize(cfg.chunkSize))
	decision := DetermineHeaders(scanner.Lines(), now, cfg.onScanError)

	out := decision.Text(now) + FormatEntry(text, now) + "\n"
	if _, err := file.WriteString(out); err != nil {
		return Result{}, fmt.Errorf("write log: %w", err)
	}
	if err := file.Close(); err != nil {
		return Result{}, fmt.Errorf("close log: %w", err)
	}

	return Result{Path: path, Decision: decision, Written: out}, nil
}
