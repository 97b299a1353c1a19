package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForChange(t *testing.T, changes <-chan struct{}, timeout time.Duration) {
	t.Helper()
	select {
	case _, ok := <-changes:
		if !ok {
			t.Fatalf("changes closed before a change arrived")
		}
	case <-time.After(timeout):
		t.Fatalf("no change reported within %v", timeout)
	}
}

func TestWatch_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rlg.md")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := Watch(ctx, path, 50*time.Millisecond, nil)
	time.Sleep(100 * time.Millisecond)

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(path, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitForChange(t, changes, 5*time.Second)
}

func TestWatch_PollsWhenDirectoryMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later")
	path := filepath.Join(dir, "rlg.md")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reported []error
	changes := Watch(ctx, path, 20*time.Millisecond, func(err error) { reported = append(reported, err) })
	if len(reported) != 1 {
		t.Fatalf("reported = %v, want one fallback notice", reported)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitForChange(t, changes, 5*time.Second)
}

func TestStartPoller_ReportsChangeRightAfterStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rlg.md")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 1)
	startPoller(ctx, path, 10*time.Millisecond, changes)
	// No pause: the write may land before the polling goroutine first runs.
	if err := os.WriteFile(path, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitForChange(t, changes, 5*time.Second)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rlg.md")
	ctx, cancel := context.WithCancel(context.Background())

	changes := Watch(ctx, path, 20*time.Millisecond, nil)
	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("changes not closed after cancel")
		}
	}
}
