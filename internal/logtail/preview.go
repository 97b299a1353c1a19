package logtail

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerRule = "===================="

// Banner returns the plain heading printed above a preview.
func Banner(path string, maxLines int) string {
	return fmt.Sprintf("%s| Last %d lines of %s |%s", bannerRule, maxLines, path, bannerRule)
}

// Styles colour a preview. The zero value renders plain text.
type Styles struct {
	Banner    lipgloss.Style
	Title     lipgloss.Style
	Year      lipgloss.Style
	Day       lipgloss.Style
	Timestamp lipgloss.Style
}

// DefaultStyles returns styles bound to w's terminal. Writers that are not a
// colour terminal get no escape codes.
func DefaultStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Banner:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"}),
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "45"}),
		Year:      r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "208"}),
		Day:       r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"}),
		Timestamp: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"}),
	}
}

// Render writes the banner and lines to w.
func Render(w io.Writer, path string, maxLines int, lines []string, styles Styles) error {
	var b strings.Builder
	b.WriteString(styles.Banner.Render(Banner(path, maxLines)))
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteString(ColorizeLine(line, styles))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ColorizeLine styles one log line by its Markdown role. Entry text is left
// verbatim and lines that match no role are returned unchanged.
func ColorizeLine(line string, styles Styles) string {
	switch {
	case strings.HasPrefix(line, "### "):
		return styles.Day.Render(line)
	case strings.HasPrefix(line, "## "):
		return styles.Year.Render(line)
	case strings.HasPrefix(line, "# "):
		return styles.Title.Render(line)
	case strings.HasPrefix(line, "- "):
		stamp, text, ok := strings.Cut(line[2:], ": ")
		if !ok {
			return line
		}
		return "- " + styles.Timestamp.Render(stamp) + ": " + text
	default:
		return line
	}
}
