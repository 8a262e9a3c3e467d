package prompt

import "github.com/charmbracelet/lipgloss"

// VisibleWidth returns the number of terminal cells s occupies: escape
// sequences never count, wide runes count as two cells.
func VisibleWidth(s string) int {
	return lipgloss.Width(s)
}
