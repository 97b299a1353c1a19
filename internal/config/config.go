package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings rlg reads from rlg.toml.
type Config struct {
	LogFile      string // absolute, expanded
	// Style names the log format. Markdown is the only one written, so any
	// other value fails validation and the field never changes the output.
	Style        string
	PreviewLines int
}

const (
	configFileName      = "rlg.toml"
	defaultLogFile      = "~/rlg.md"
	defaultStyle        = StyleMarkdown
	defaultPreviewLines = 6
	maxPreviewLines     = 1000
)

// StyleMarkdown is the only log style currently written.
const StyleMarkdown = "markdown"

// ErrNotFound reports that no config file exists; Load still returns defaults.
var ErrNotFound = errors.New("config file not found")

// Default returns the built-in configuration with paths expanded.
func Default() (Config, error) {
	logFile, err := ExpandPath(defaultLogFile)
	if err != nil {
		return Config{}, err
	}
	return Config{LogFile: logFile, Style: defaultStyle, PreviewLines: defaultPreviewLines}, nil
}

// DefaultPath returns <user config dir>/rlg.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config at path, or DefaultPath when path is empty. A missing
// file yields the defaults together with an error wrapping ErrNotFound so the
// caller can mention it.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, resolved)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DefaultLogFile string `toml:"default_log_file"`
		Style          string `toml:"style"`
		PreviewLines   *int   `toml:"preview_lines"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.DefaultLogFile); logFile != "" {
		cfg.LogFile, err = ExpandPath(logFile)
		if err != nil {
			return Config{}, fmt.Errorf("default_log_file: %w", err)
		}
	}
	if style := strings.TrimSpace(raw.Style); style != "" {
		cfg.Style = strings.ToLower(style)
	}
	if raw.PreviewLines != nil {
		cfg.PreviewLines = *raw.PreviewLines
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogFile, validation.Required),
		validation.Field(&c.Style, validation.Required, validation.In(StyleMarkdown)),
		validation.Field(&c.PreviewLines, validation.Min(0), validation.Max(maxPreviewLines)),
	)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading "~" or "$HOME", makes the path absolute and
// resolves symlinks when the target exists.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	for _, prefix := range []string{"~", "$HOME", "${HOME}"} {
		if trimmed != prefix && !strings.HasPrefix(trimmed, prefix+"/") {
			continue
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, prefix))
		break
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
