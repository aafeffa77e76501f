// Package overlay composites one rendered block on top of another without
// clearing the screen. Escape sequences in both layers are preserved.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Anchor is where the foreground block is placed.
type Anchor int

const (
	Center Anchor = iota
	Top
	Bottom
)

// Place draws fg over bg inside a width×height canvas. margin keeps Top and
// Bottom blocks that many rows away from the edge.
func Place(fg, bg string, width, height int, anchor Anchor, margin int) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, strings.Repeat(" ", width))
	}

	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(l))
	}

	x := max((width-fgWidth)/2, 0)
	var y int
	switch anchor {
	case Top:
		y = margin
	case Bottom:
		y = height - len(fgLines) - margin
	default:
		y = (height - len(fgLines)) / 2
	}
	y = max(y, 0)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bg starting at column x with fg.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(fg)
	var right string
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}
