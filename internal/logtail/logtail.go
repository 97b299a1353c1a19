package logtail

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/five82/rlg/internal/revlines"
)

// Last collects up to maxLines readable lines from a reverse line sequence
// and returns them in file order. Failed elements are handed to onErr (which
// may be nil) and do not count toward maxLines.
func Last(lines iter.Seq2[string, error], maxLines int, onErr func(error)) []string {
	if maxLines <= 0 {
		return nil
	}
	out := make([]string, 0, min(maxLines, 64))
	for line, err := range lines {
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			continue
		}
		out = append(out, line)
		if len(out) == maxLines {
			break
		}
	}
	slices.Reverse(out)
	return out
}

// Read returns at most maxLines from the end of the file at path, scanning
// backward from a freshly opened handle.
func Read(path string, maxLines int, onErr func(error)) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	return Last(revlines.New(file).Lines(), maxLines, onErr), nil
}
