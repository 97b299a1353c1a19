// Package cli implements the rlg command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/rlg/internal/app"
	"github.com/five82/rlg/internal/buildinfo"
	"github.com/five82/rlg/internal/ui"
)

// ErrNoText is returned when no entry text is given and there is no terminal
// to prompt on.
var ErrNoText = errors.New("no entry text given")

type env struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
}

type rootFlags struct {
	file       string
	lines      int
	configPath string
	show       bool
	view       bool
}

// Execute runs rlg with args (without the program name).
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(env{
		stdout: stdout,
		stderr: stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	})
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(e env) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "rlg [flags] [text...]",
		Short: "Append a timestamped entry to your lab log",
		Long: `rlg appends a timestamped line to a Markdown lab log, adding year and
day headings whenever the date moves on, then shows the last few lines.

Everything after the flags is joined with single spaces into the entry:

  rlg swapped the 12V PSU, ripple gone
  rlg -f ~/projects/amp/log.md first power-on

Run without text in a terminal to get an input prompt.`,
		Version:       versionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, e, flags, args)
		},
	}
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetVersionTemplate("rlg {{.Version}}\n")

	// Entry text may contain words that look like flags once it has started.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "log file to write to (default from config, ~/rlg.md)")
	cmd.Flags().IntVarP(&flags.lines, "lines", "n", 0, "number of lines to preview (default from config, 6)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "override config path (default <config dir>/rlg.toml)")
	cmd.Flags().BoolVar(&flags.show, "show", false, "only preview the end of the log")
	cmd.Flags().BoolVar(&flags.view, "view", false, "open a live view of the log")
	cmd.MarkFlagsMutuallyExclusive("show", "view")

	return cmd
}

func runRoot(cmd *cobra.Command, e env, flags rootFlags, args []string) error {
	var previewLines *int
	if cmd.Flags().Changed("lines") {
		if flags.lines < 0 {
			return fmt.Errorf("--lines must not be negative")
		}
		previewLines = &flags.lines
	}
	text := strings.Join(args, " ")
	if (flags.show || flags.view) && text != "" {
		return fmt.Errorf("entry text cannot be combined with --show or --view")
	}

	a, err := app.New(app.Options{
		ConfigPath:   flags.configPath,
		LogFile:      flags.file,
		PreviewLines: previewLines,
		Stdout:       e.stdout,
		Stderr:       e.stderr,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	switch {
	case flags.show:
		return a.Show()
	case flags.view:
		return a.View(ctx)
	case strings.TrimSpace(text) != "":
		return a.Write(text)
	case e.isTerminal != nil && e.isTerminal():
		if err := a.Prompt(ctx); err != nil && !errors.Is(err, ui.ErrCancelled) {
			return err
		}
		return nil
	default:
		return ErrNoText
	}
}

func versionString() string {
	if buildinfo.CommitHash == "unknown" {
		return buildinfo.Version
	}
	return fmt.Sprintf("%s (%s, built %s)", buildinfo.Version, buildinfo.CommitHash, buildinfo.BuildDate)
}
