package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/five82/rlg/internal/config"
	"github.com/five82/rlg/internal/journal"
	"github.com/five82/rlg/internal/logtail"
	"github.com/five82/rlg/internal/prefs"
	"github.com/five82/rlg/internal/ui"
)

// Options configure one rlg invocation.
type Options struct {
	ConfigPath   string
	PrefsPath    string           // empty uses the default prefs location
	LogFile      string           // overrides the configured log file
	PreviewLines *int             // nil uses the configured value
	Stdout       io.Writer        // nil uses os.Stdout
	Stderr       io.Writer        // nil uses os.Stderr
	Clock        func() time.Time // nil uses time.Now
}

// App holds the resolved settings for an invocation.
type App struct {
	logFile      string
	previewLines int
	prefsPath    string
	stdout       io.Writer
	logger       *log.Logger
	now          func() time.Time
}

// New resolves configuration. A missing or broken config file is reported on
// stderr and the defaults are used; only an unusable environment (no home
// directory) is fatal.
func New(opts Options) (*App, error) {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := log.New(stderr, "rlg: ", 0)

	cfg, err := config.Load(opts.ConfigPath)
	switch {
	case err == nil:
	case errors.Is(err, config.ErrNotFound):
		logger.Printf("no config file found, using defaults")
	default:
		logger.Printf("unable to load config: %v; using defaults", err)
		cfg, err = config.Default()
		if err != nil {
			return nil, fmt.Errorf("default config: %w", err)
		}
	}

	a := &App{
		logFile:      cfg.LogFile,
		previewLines: cfg.PreviewLines,
		prefsPath:    opts.PrefsPath,
		stdout:       stdout,
		logger:       logger,
		now:          opts.Clock,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if opts.LogFile != "" {
		if a.logFile, err = config.ExpandPath(opts.LogFile); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
	}
	if opts.PreviewLines != nil {
		if *opts.PreviewLines < 0 {
			return nil, fmt.Errorf("preview lines must not be negative, got %d", *opts.PreviewLines)
		}
		a.previewLines = *opts.PreviewLines
	}
	return a, nil
}

// LogFile returns the resolved log path.
func (a *App) LogFile() string {
	return a.logFile
}

// Write appends text as a new entry and prints the tail of the log. When the
// file cannot be opened nothing is written and no preview is shown.
func (a *App) Write(text string) error {
	_, err := journal.Append(a.logFile, text, a.now(),
		journal.WithScanErrorHandler(a.lineError))
	if err != nil {
		return err
	}
	return a.Show()
}

// Show prints the last lines of the log without writing.
func (a *App) Show() error {
	lines, err := logtail.Read(a.logFile, a.previewLines, a.lineError)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return logtail.Render(a.stdout, a.logFile, a.previewLines, lines, logtail.DefaultStyles(a.stdout))
}

// Prompt asks for entry text interactively and writes it.
func (a *App) Prompt(ctx context.Context) error {
	p := a.loadPrefs()
	text, err := ui.Prompt(ctx, a.logFile, p.Theme)
	if err != nil {
		return err
	}
	return a.Write(text)
}

// View opens the live viewer on the log. Problems met while it runs are
// shown in its status line and logged once it exits.
func (a *App) View(ctx context.Context) error {
	p := a.loadPrefs()
	var problems viewerProblems
	err := ui.RunViewer(ctx, ui.ViewerOptions{
		Path:      a.logFile,
		MaxLines:  p.ViewerLines,
		ThemeName: p.Theme,
		PrefsPath: a.prefsPath,
		OnError:   problems.add,
	})
	problems.flush(a.logger)
	return err
}

func (a *App) loadPrefs() prefs.Prefs {
	p, err := prefs.Load(a.prefsPath)
	if err != nil {
		a.logger.Printf("preferences: %v", err)
	}
	if !slices.Contains(ui.ThemeNames(), p.Theme) {
		a.logger.Printf("unknown theme %q, using %s", p.Theme, ui.DefaultThemeName)
		p.Theme = ui.DefaultThemeName
	}
	return p
}

// viewerProblems collects errors reported while the viewer owns the terminal.
// Reloads see the same bad lines again, so each message is kept once.
type viewerProblems struct {
	mu   sync.Mutex
	seen map[string]bool
	msgs []string
}

func (p *viewerProblems) add(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := err.Error()
	if p.seen[msg] {
		return
	}
	if p.seen == nil {
		p.seen = make(map[string]bool)
	}
	p.seen[msg] = true
	p.msgs = append(p.msgs, msg)
}

func (p *viewerProblems) flush(logger *log.Logger) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, msg := range p.msgs {
		logger.Printf("viewer: %s", msg)
	}
	p.msgs, p.seen = nil, nil
}

func (a *App) lineError(err error) {
	a.logger.Printf("error reading line: %v", err)
}
