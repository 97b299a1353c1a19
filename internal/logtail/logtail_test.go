package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.md")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read none (0)",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "read none (negative)",
			maxLines: -1,
			expected: nil,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines, nil)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_ChronologicalOrder(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.md")
	if err := os.WriteFile(logPath, []byte("A\nB\nC\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Read(logPath, 2, nil)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %q, want %q", got, want)
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.md"), 6, nil)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %q, want nil", got)
	}
}

func TestRead_SkipsUndecodableLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.md")
	if err := os.WriteFile(logPath, []byte("A\nB\n\xff\xfe\nC\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var reported int
	got, err := Read(logPath, 3, func(error) { reported++ })
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %q, want %q", got, want)
	}
	if reported != 1 {
		t.Fatalf("reported = %d, want 1", reported)
	}
}

func TestLast_StopsPulling(t *testing.T) {
	pulled := 0
	lines := func(yield func(string, error) bool) {
		for _, line := range []string{"C", "B", "A"} {
			pulled++
			if !yield(line, nil) {
				return
			}
		}
	}

	got := Last(lines, 2, nil)
	if want := []string{"B", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Last() = %q, want %q", got, want)
	}
	if pulled != 2 {
		t.Fatalf("lines pulled = %d, want 2", pulled)
	}
}

func TestLast_ReportsEachFailure(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	lines := func(yield func(string, error) bool) {
		_ = yield("", errA) && yield("two", nil) && yield("", errB) && yield("one", nil)
	}

	var reported []error
	got := Last(lines, 5, func(err error) { reported = append(reported, err) })
	if want := []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Last() = %q, want %q", got, want)
	}
	if want := []error{errA, errB}; !reflect.DeepEqual(reported, want) {
		t.Fatalf("reported = %v, want %v", reported, want)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	lines := []string{"### 2024-01-15", "- 2024-01-15 10:00:00: hello"}

	if err := Render(&buf, "/tmp/rlg.md", 6, lines, Styles{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "====================| Last 6 lines of /tmp/rlg.md |====================\n" +
		"### 2024-01-15\n" +
		"- 2024-01-15 10:00:00: hello\n"
	if got := buf.String(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRender_DefaultStylesOnPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	lines := []string{"# Lab Log", "", "## 2024"}

	if err := Render(&buf, "rlg.md", 3, lines, DefaultStyles(&buf)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("Render() wrote escape codes to a non-terminal: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "# Lab Log\n\n## 2024\n") {
		t.Fatalf("Render() = %q, want lines in order", buf.String())
	}
}

func TestColorizeLine_Unstyled(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty line", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "entry without separator", input: "- loose bullet"},
		{name: "entry", input: "- 2024-01-15 10:00:00: a: b"},
		{name: "plain text", input: "free text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorizeLine(tt.input, Styles{}); got != tt.input {
				t.Errorf("ColorizeLine() = %q, want %q", got, tt.input)
			}
		})
	}
}
