package prompt

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// 256-color palette for the default theme.
const (
	colorMuted   = "244"
	colorBlue    = "39"
	colorViolet  = "135"
	colorGreen   = "46"
	colorYellow  = "220"
	colorRed     = "196"
	colorCyan    = "51"
	colorTeal    = "66"
	colorWarmTan = "144"
)

// Theme maps segment categories to lipgloss styles. Categories without a
// style render as plain text.
type Theme struct {
	name   string
	styles map[Category]lipgloss.Style
}

// Name returns the theme's identifier.
func (t *Theme) Name() string { return t.name }

// Render styles a segment's text according to its category.
func (t *Theme) Render(seg Segment) string {
	if style, ok := t.styles[seg.Category]; ok {
		return style.Render(seg.Text)
	}
	return seg.Text
}

// DefaultTheme returns the standard colorized theme.
func DefaultTheme() *Theme {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return &Theme{
		name: "default",
		styles: map[Category]lipgloss.Style{
			CategoryTime:         fg(colorMuted),
			CategoryDir:          fg(colorBlue),
			CategoryVenv:         fg(colorWarmTan),
			CategoryGitStaged:    fg(colorGreen),
			CategoryGitChanged:   fg(colorYellow),
			CategoryGitDeleted:   fg(colorRed),
			CategoryGitUntracked: fg(colorCyan),
			CategoryGitStash:     fg(colorTeal),
			CategoryGitClean:     fg(colorGreen),
			CategoryGitBranch:    fg(colorViolet),
			CategoryPromptGlyph:  fg(colorGreen),
		},
	}
}

// PlainTheme returns a colorless theme. Used with --no-color and for
// deterministic output in tests.
func PlainTheme() *Theme {
	return &Theme{name: "plain"}
}

// ThemeByName resolves a configured theme name, falling back to the default.
func ThemeByName(name string) *Theme {
	if name == "plain" {
		return PlainTheme()
	}
	return DefaultTheme()
}

// InitTerminal prepares the color environment for rendering. When
// CLICOLOR_FORCE or COLORTERM request it, the lipgloss color profile is
// forced so hook-invoked renders keep their colors even without a tty on
// stdout.
func InitTerminal() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
