package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/macropower/propedit/pkg/editor"
	"github.com/macropower/propedit/pkg/properrors"
)

type styles struct {
	path      lipgloss.Style
	changed   lipgloss.Style
	unchanged lipgloss.Style
	detail    lipgloss.Style
	added     lipgloss.Style
	removed   lipgloss.Style
	header    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		path:      r.NewStyle().Foreground(lipgloss.Color("211")),
		changed:   r.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓"),
		unchanged: r.NewStyle().Foreground(lipgloss.Color("244")).SetString("="),
		detail:    r.NewStyle().Foreground(lipgloss.Color("244")),
		added:     r.NewStyle().Foreground(lipgloss.Color("42")),
		removed:   r.NewStyle().Foreground(lipgloss.Color("196")),
		header:    r.NewStyle().Bold(true),
	}
}

// Text writes a styled summary line per result, followed by its diff.
type Text struct {
	w      io.Writer
	styles styles
	mu     sync.Mutex
}

// TextOption configures a [Text] reporter.
type TextOption func(*textConfig)

type textConfig struct {
	profile *termenv.Profile
}

// WithColor forces colour on or off. By default colour is used only when
// the writer is a terminal.
func WithColor(color bool) TextOption {
	return func(c *textConfig) {
		p := termenv.Ascii
		if color {
			p = termenv.ANSI256
		}

		c.profile = &p
	}
}

// NewText creates a [Text] reporter.
func NewText(w io.Writer, opts ...TextOption) *Text {
	cfg := &textConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	profile := termenv.Ascii
	if cfg.profile != nil {
		profile = *cfg.profile
	} else if isTerminal(w) {
		profile = termenv.EnvColorProfile()
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &Text{
		w:      w,
		styles: newStyles(r),
	}
}

// Report implements [editor.Reporter].
func (t *Text) Report(res *editor.Result) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sb strings.Builder

	mark := t.styles.unchanged.String()
	state := "unchanged"

	if res.Changed {
		mark = t.styles.changed.String()
		state = "changed"

		if res.DryRun {
			state = "would change"
		}
	}

	fmt.Fprintf(&sb, "%s %s %s", mark, t.styles.path.Render(res.Path), state)

	if details := summary(res); details != "" {
		sb.WriteString(" " + t.styles.detail.Render("("+details+")"))
	}

	sb.WriteByte('\n')

	if res.Backup != "" {
		sb.WriteString("  " + t.styles.detail.Render("backup: "+res.Backup) + "\n")
	}

	if res.Diff != "" {
		for i, line := range strings.Split(strings.TrimSuffix(res.Diff, "\n"), "\n") {
			sb.WriteString(t.diffLine(i, line) + "\n")
		}
	}

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return fmt.Errorf("%w: %w", properrors.ErrWrite, err)
	}

	return nil
}

// diffLine styles line i of a unified diff. Only the two leading lines
// are file headers.
func (t *Text) diffLine(i int, line string) string {
	switch {
	case i < 2 && (strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ")):
		return t.styles.header.Render(line)
	case strings.HasPrefix(line, "+"):
		return t.styles.added.Render(line)
	case strings.HasPrefix(line, "-"):
		return t.styles.removed.Render(line)
	default:
		return line
	}
}

func summary(res *editor.Result) string {
	var parts []string

	if n := len(res.Updated); n > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", n))
	}

	if n := len(res.Deleted); n > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", n))
	}

	if n := len(res.Appended); n > 0 {
		parts = append(parts, fmt.Sprintf("%d added", n))
	}

	return strings.Join(parts, ", ")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
