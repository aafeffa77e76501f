// Package presentation renders domain values for the terminal: result lines
// for the interactive session, and tables or JSON for CLI subcommands.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatJSON writes v as indented JSON.
func (f *Formatter) FormatJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

var entryHeader = []string{"ID", "NAME", "TYPE", "HP", "ATTACK", "EVOLVES"}

// FormatEntries writes entries as an aligned table.
func (f *Formatter) FormatEntries(entries []EntryDTO) error {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, entryHeader)
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Name,
			e.Type,
			strconv.Itoa(e.HP),
			strconv.Itoa(e.Attack),
			yesNo(e.CanEvolve),
		})
	}
	_, err := io.WriteString(f.writer, Table(rows))
	return err
}

// Table aligns rows into space-separated columns sized by display width.
// Every line, including the last, ends in a newline.
func Table(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Summary is the one-line count printed under a catalog table.
func Summary(shown, total int) string {
	if shown == total {
		return fmt.Sprintf("%d entries", total)
	}
	return fmt.Sprintf("%d of %d entries", shown, total)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
