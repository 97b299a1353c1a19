package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/rlg/internal/logtail"
	"github.com/five82/rlg/internal/prefs"
)

const defaultViewerLines = 500

// ViewerOptions configures the live log viewer.
type ViewerOptions struct {
	Path      string
	MaxLines  int // zero uses 500
	ThemeName string
	PrefsPath string // empty uses the default prefs location
	PollEvery time.Duration
	OnError   func(error) // called from background goroutines
}

type linesMsg struct {
	lines    []string
	err      error
	problems []error // unreadable lines skipped while loading
	at       time.Time
}

type changedMsg struct{}

type watchErrMsg struct{ err error }

// Viewer is a Bubble Tea model that shows the tail of a log file and reloads
// it whenever the file changes.
type Viewer struct {
	path      string
	maxLines  int
	prefsPath string
	onError   func(error)
	changes   <-chan struct{}
	watchErrs <-chan error
	done      <-chan struct{}

	theme  Theme
	styles Styles

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	lines      []string
	loadErr    error
	lastLoaded time.Time
	status     string
}

// NewViewer builds a Viewer. changes may be nil when live reload is not wanted.
func NewViewer(opts ViewerOptions, changes <-chan struct{}) Viewer {
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = defaultViewerLines
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}
	theme := GetTheme(themeName)
	return Viewer{
		path:      opts.Path,
		maxLines:  maxLines,
		prefsPath: opts.PrefsPath,
		onError:   opts.OnError,
		changes:   changes,
		theme:     theme,
		styles:    theme.Styles(),
	}
}

// Init implements tea.Model.
func (v Viewer) Init() tea.Cmd {
	return tea.Batch(v.load(), v.waitForChange(), v.waitForWatchError())
}

// Update implements tea.Model.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		bodyHeight := max(v.height-2, 1)
		if !v.ready {
			v.viewport = viewport.New(v.width, bodyHeight)
			v.ready = true
		} else {
			v.viewport.Width = v.width
			v.viewport.Height = bodyHeight
		}
		v.refreshContent(v.viewport.AtBottom() || v.viewport.YOffset == 0)
		return v, nil

	case linesMsg:
		follow := !v.ready || v.viewport.AtBottom()
		v.lines, v.loadErr, v.lastLoaded = msg.lines, msg.err, msg.at
		if n := len(msg.problems); n > 0 {
			v.status = unreadableStatus(n)
		}
		v.refreshContent(follow)
		return v, nil

	case watchErrMsg:
		v.status = "watch: " + msg.err.Error()
		return v, v.waitForWatchError()

	case changedMsg:
		return v, tea.Batch(v.load(), v.waitForChange())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "r":
			return v, v.load()
		case "t":
			v.cycleTheme()
			return v, nil
		case "g", "home":
			v.viewport.GotoTop()
			return v, nil
		case "G", "end":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v Viewer) View() string {
	if !v.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.renderHeader(), v.viewport.View(), v.renderFooter())
}

func (v *Viewer) cycleTheme() {
	v.theme = GetTheme(NextTheme(v.theme.Name))
	v.styles = v.theme.Styles()
	v.refreshContent(v.viewport.AtBottom())

	p, _ := prefs.Load(v.prefsPath)
	p.Theme = v.theme.Name
	if err := prefs.Save(v.prefsPath, p); err != nil {
		v.status = "theme not saved"
		report(v.onError, err)
		return
	}
	v.status = "theme: " + v.theme.Name
}

func (v *Viewer) refreshContent(follow bool) {
	if !v.ready {
		return
	}
	v.viewport.SetContent(v.renderLines())
	if follow {
		v.viewport.GotoBottom()
	}
}

func (v Viewer) renderLines() string {
	if v.loadErr != nil {
		return v.styles.Error.Render(v.loadErr.Error())
	}
	if len(v.lines) == 0 {
		return v.styles.Muted.Render("No entries yet.")
	}
	var b strings.Builder
	for i, line := range v.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(truncate(logtail.ColorizeLine(line, v.styles.Log), v.width))
	}
	return b.String()
}

func (v Viewer) renderHeader() string {
	title := fmt.Sprintf("%s  %d lines", v.path, len(v.lines))
	return v.styles.Header.Width(v.width).Render(truncate(title, v.width-2))
}

func (v Viewer) renderFooter() string {
	help := "q quit  r reload  t theme  g/G top/bottom"
	if v.status != "" {
		help = v.status + "  │  " + help
	}
	if !v.lastLoaded.IsZero() {
		help += "  │  loaded " + v.lastLoaded.Format("15:04:05")
	}
	return v.styles.Footer.Width(v.width).Render(truncate(help, v.width-2))
}

func (v Viewer) load() tea.Cmd {
	path, maxLines, onErr := v.path, v.maxLines, v.onError
	return func() tea.Msg {
		var problems []error
		lines, err := logtail.Read(path, maxLines, func(err error) {
			problems = append(problems, err)
			report(onErr, err)
		})
		return linesMsg{lines: lines, err: err, problems: problems, at: time.Now()}
	}
}

func (v Viewer) waitForChange() tea.Cmd {
	changes := v.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (v Viewer) waitForWatchError() tea.Cmd {
	errs, done := v.watchErrs, v.done
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case err := <-errs:
			return watchErrMsg{err: err}
		case <-done:
			return nil
		}
	}
}

func unreadableStatus(n int) string {
	if n == 1 {
		return "1 unreadable line skipped"
	}
	return fmt.Sprintf("%d unreadable lines skipped", n)
}

// RunViewer shows the log at opts.Path until the user quits or ctx is cancelled.
func RunViewer(ctx context.Context, opts ViewerOptions) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErrs := make(chan error, 4)
	changes := Watch(watchCtx, opts.Path, opts.PollEvery, func(err error) {
		report(opts.OnError, err)
		select {
		case watchErrs <- err:
		default:
		}
	})

	viewer := NewViewer(opts, changes)
	viewer.watchErrs, viewer.done = watchErrs, watchCtx.Done()
	program := tea.NewProgram(viewer, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
