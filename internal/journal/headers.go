package journal

import (
	"iter"
	"strings"
	"time"
)

// Layouts used for every date written to or compared against the log.
const (
	YearLayout      = "2006"
	DayLayout       = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Title opens a fresh log file.
const Title = "# Lab Log\n"

const entryMarker = "- "

// Decision is the set of headers that must precede a new entry.
type Decision int

const (
	// NoHeader means today's day section is already at the tail.
	NoHeader Decision = iota
	// DayHeader means the last entry is from an earlier day this year.
	DayHeader
	// YearHeader means the last entry is from another year; a day header follows.
	YearHeader
	// FreshFile means there is no readable prior entry; title, year and day follow.
	FreshFile
)

func (d Decision) String() string {
	switch d {
	case NoHeader:
		return "none"
	case DayHeader:
		return "day"
	case YearHeader:
		return "year"
	case FreshFile:
		return "fresh"
	default:
		return "unknown"
	}
}

// Text renders the headers for d at now.
func (d Decision) Text(now time.Time) string {
	switch d {
	case DayHeader:
		return DayHeaderText(now)
	case YearHeader:
		return YearHeaderText(now) + DayHeaderText(now)
	case FreshFile:
		return Title + YearHeaderText(now) + DayHeaderText(now)
	default:
		return ""
	}
}

// YearHeaderText returns the year section heading for now.
func YearHeaderText(now time.Time) string {
	return "\n## " + now.Format(YearLayout)
}

// DayHeaderText returns the day section heading for now.
func DayHeaderText(now time.Time) string {
	return "\n\n### " + now.Format(DayLayout) + "\n"
}

// DetermineHeaders decides which headers a new entry at now needs, given the
// file's lines in reverse order. Only the most recent non-blank line is
// inspected. The first failed element stops the scan and is passed to onErr
// (which may be nil); the file is then treated as having no prior entries.
func DetermineHeaders(lines iter.Seq2[string, error], now time.Time, onErr func(error)) Decision {
	day := entryMarker + now.Format(DayLayout)
	year := entryMarker + now.Format(YearLayout)

	for line, err := range lines {
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return FreshFile
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, day) {
			return NoHeader
		}
		if !strings.HasPrefix(line, year) {
			return YearHeader
		}
		return DayHeader
	}
	return FreshFile
}
