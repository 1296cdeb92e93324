package ui

import (
	"github.com/mattn/go-runewidth"
)

// Display-width helpers for proper handling of wide characters (emoji, CJK,
// combining marks). All widths are screen columns, not byte lengths.

// StringWidth returns the display width of a string
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth truncates a string to fit within maxWidth columns without
// splitting multi-column characters
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	width := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw < 0 {
			rw = 0
		}
		if width+rw > maxWidth {
			return s[:i]
		}
		width += rw
	}
	return s
}
