package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultPollInterval = 2 * time.Second

// Watch reports changes to the file at path until ctx is cancelled. The
// parent directory is watched so that files replaced by editors or created
// after startup are still noticed. When fsnotify is unavailable it falls back
// to polling the file's size and modification time.
//
// Bursts of changes are coalesced: the channel holds at most one pending
// notification.
func Watch(ctx context.Context, path string, pollEvery time.Duration, onErr func(error)) <-chan struct{} {
	changes := make(chan struct{}, 1)
	path = filepath.Clean(path)

	fsWatcher, err := fsnotify.NewWatcher()
	if err == nil {
		if err = fsWatcher.Add(filepath.Dir(path)); err != nil {
			_ = fsWatcher.Close()
		}
	}
	if err != nil {
		report(onErr, fmt.Errorf("watch %s: %w; polling instead", path, err))
		startPoller(ctx, path, pollEvery, changes)
		return changes
	}

	go func() {
		defer close(changes)
		defer func() { _ = fsWatcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					notify(changes)
				}
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				report(onErr, fmt.Errorf("watch %s: %w", path, err))
			}
		}
	}()
	return changes
}

// startPoller launches a goroutine that stats path at a fixed cadence and
// signals when its size or mtime moves. The baseline is taken before it
// returns, so any later change is reported.
func startPoller(ctx context.Context, path string, interval time.Duration, changes chan<- struct{}) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	last := stat(path)
	go func() {
		defer close(changes)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if current := stat(path); current != last {
				last = current
				notify(changes)
			}
		}
	}()
}

type fileStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}

func notify(changes chan<- struct{}) {
	select {
	case changes <- struct{}{}:
	default:
	}
}

func report(onErr func(error), err error) {
	if onErr != nil {
		onErr(err)
	}
}
