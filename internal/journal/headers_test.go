package journal

import (
	"errors"
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/five82/rlg/internal/revlines"
)

var testNow = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local)

func reverseOf(content string) iter.Seq2[string, error] {
	return revlines.New(strings.NewReader(content)).Lines()
}

func TestDetermineHeaders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Decision
	}{
		{
			name:    "empty file",
			content: "",
			want:    FreshFile,
		},
		{
			name:    "only blank lines",
			content: "\n\n   \n",
			want:    FreshFile,
		},
		{
			name:    "same day",
			content: "# Lab Log\n\n## 2024\n\n### 2024-01-15\n- 2024-01-15 09:00:00: first\n",
			want:    NoHeader,
		},
		{
			name:    "same day with trailing blanks",
			content: "- 2024-01-15 09:00:00: first\n\n\t\n",
			want:    NoHeader,
		},
		{
			name:    "earlier day same year",
			content: "### 2024-01-14\n- 2024-01-14 23:59:59: late night\n",
			want:    DayHeader,
		},
		{
			name:    "previous year",
			content: "## 2023\n\n### 2023-12-31\n- 2023-12-31 23:59:59: new year's eve\n",
			want:    YearHeader,
		},
		{
			name:    "title only",
			content: "# Lab Log\n",
			want:    YearHeader,
		},
		{
			name:    "only most recent line matters",
			content: "- 2024-01-15 08:00:00: earlier today\n- 2023-06-01 12:00:00: pasted in by hand\n",
			want:    YearHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineHeaders(reverseOf(tt.content), testNow, nil)
			if got != tt.want {
				t.Errorf("DetermineHeaders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetermineHeaders_ScanErrorFallsBackToFreshFile(t *testing.T) {
	readErr := errors.New("bad sector")
	lines := func(yield func(string, error) bool) {
		if !yield("", nil) {
			return
		}
		if !yield("", readErr) {
			return
		}
		yield("- 2024-01-15 09:00:00: never reached", nil)
	}

	var reported []error
	got := DetermineHeaders(lines, testNow, func(err error) { reported = append(reported, err) })
	if got != FreshFile {
		t.Fatalf("DetermineHeaders() = %v, want %v", got, FreshFile)
	}
	if len(reported) != 1 || !errors.Is(reported[0], readErr) {
		t.Fatalf("reported = %v, want [%v]", reported, readErr)
	}
}

func TestDetermineHeaders_StopsAfterFirstEntry(t *testing.T) {
	pulled := 0
	lines := func(yield func(string, error) bool) {
		for _, line := range []string{"", "- 2024-01-10 08:00:00: a", "- 2024-01-09 08:00:00: b"} {
			pulled++
			if !yield(line, nil) {
				return
			}
		}
	}

	if got := DetermineHeaders(lines, testNow, nil); got != DayHeader {
		t.Fatalf("DetermineHeaders() = %v, want %v", got, DayHeader)
	}
	if pulled != 2 {
		t.Fatalf("lines pulled = %d, want 2", pulled)
	}
}

func TestDecisionText(t *testing.T) {
	tests := []struct {
		decision Decision
		want     string
	}{
		{NoHeader, ""},
		{DayHeader, "\n\n### 2024-01-15\n"},
		{YearHeader, "\n## 2024\n\n### 2024-01-15\n"},
		{FreshFile, "# Lab Log\n\n## 2024\n\n### 2024-01-15\n"},
	}

	for _, tt := range tests {
		t.Run(tt.decision.String(), func(t *testing.T) {
			if got := tt.decision.Text(testNow); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecisionText_ZeroPadded(t *testing.T) {
	now := time.Date(987, time.March, 4, 5, 6, 7, 0, time.Local)
	if got, want := DayHeader.Text(now), "\n\n### 0987-03-04\n"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if got, want := FormatEntry("x", now), "- 0987-03-04 05:06:07: x"; got != want {
		t.Fatalf("FormatEntry() = %q, want %q", got, want)
	}
}
