package presentation

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Wrap word-wraps text to width and hard-breaks any word that is still too
// long. A width below one returns text unchanged.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}

// WrapLines wraps each line and joins the result with newlines.
func WrapLines(lines []string, width int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Wrap(l, width)
	}
	return strings.Join(out, "\n")
}
