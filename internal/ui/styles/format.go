package styles

import "github.com/charmbracelet/x/ansi"

// TruncateString cuts s to maxWidth cells, ending in "..." when shortened.
// Escape sequences are preserved and not counted.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return ansi.Truncate(s, maxWidth, "")
	}
	return ansi.Truncate(s, maxWidth, "...")
}
