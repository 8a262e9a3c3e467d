package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Compositor assembles the final multi-line prompt block from the left and
// right segment sequences. It is stateless across renders; every call works
// from a fresh snapshot.
type Compositor struct {
	theme *Theme
	width int
	glyph string
}

// NewCompositor creates a compositor for the given theme, terminal width and
// input-marker glyph. A width of 0 or less means the width is unknown and
// disables right alignment.
func NewCompositor(theme *Theme, width int, glyph string) *Compositor {
	return &Compositor{theme: theme, width: width, glyph: glyph}
}

// Render produces the prompt block: the left segments, the right-aligned
// status block, and the glyph on its own final line. The returned string has
// no trailing newline so the shell cursor rests after the glyph.
func (c *Compositor) Render(left, right []Segment) string {
	leftStr := c.join(left)
	rightStr := c.join(right)

	var b strings.Builder
	b.WriteString(leftStr)

	if rightStr != "" {
		col := alignColumn(c.width, VisibleWidth(rightStr))
		if col > VisibleWidth(leftStr) {
			b.WriteString(cursorColumn(col))
			b.WriteString(rightStr)
		} else {
			// Unknown width or no room on the line: the left segment is
			// never overlapped or truncated.
			b.WriteString("\n")
			b.WriteString(rightStr)
		}
	}

	b.WriteString("\n")
	b.WriteString(c.theme.Render(Segment{Text: c.glyph, Category: CategoryPromptGlyph}))
	b.WriteString(" ")
	return b.String()
}

// join renders segments through the theme, separated by single spaces.
func (c *Compositor) join(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, c.theme.Render(seg))
	}
	return strings.Join(parts, " ")
}

// alignColumn returns the 0-based start column for the right block, leaving
// the last terminal cell free. A non-positive width yields -1, forcing the
// wrapped layout.
func alignColumn(width, rightWidth int) int {
	if width <= 0 {
		return -1
	}
	return width - rightWidth - 1
}

// cursorColumn emits the CSI cursor-horizontal-absolute sequence for a
// 0-based column.
func cursorColumn(col int) string {
	return fmt.Sprintf("\x1b[%dG", col+1)
}

// TerminalWidth queries the live terminal column count on stdout, returning
// 0 when stdout is not a terminal or the query fails.
func TerminalWidth() int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
