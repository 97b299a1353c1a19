// Package prefs handles rlg viewer preferences persistence.
// Preferences are stored in <user config dir>/rlg/prefs.toml, next to but
// separate from rlg.toml so the viewer never rewrites the user's config.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/rlg/internal/config"
)

// Prefs holds user preferences for the viewer.
type Prefs struct {
	Theme       string `toml:"theme"`
	ViewerLines int    `toml:"viewer_lines"`
}

const (
	defaultTheme       = "Nightfox"
	defaultViewerLines = 500
)

func defaults() Prefs {
	return Prefs{Theme: defaultTheme, ViewerLines: defaultViewerLines}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "rlg", "prefs.toml"), nil
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. The error is informational; the returned Prefs are
// always usable.
func Load(path string) (Prefs, error) {
	prefs := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("open prefs: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, fmt.Errorf("read prefs: %w", err)
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults(), fmt.Errorf("parse prefs: %w", err)
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	if prefs.ViewerLines <= 0 {
		prefs.ViewerLines = defaultViewerLines
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return config.ExpandPath(path)
}
