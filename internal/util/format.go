package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates s to maxWidth terminal cells and adds "..." if
// needed. Wide runes count as two cells.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// CellText flattens cell content for a single terminal line: runs of
// whitespace, newlines included, become one space.
func CellText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
