// Package help contains the help overlay component. Its content is markdown
// rendered with glamour.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pokedex/internal/keys"
	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/ui/markdown"
	"github.com/zjrosen/pokedex/internal/ui/overlay"
	"github.com/zjrosen/pokedex/internal/ui/styles"
)

const (
	boxMaxWidth  = 90
	boxMinWidth  = 40
	boxMaxHeight = 30
)

const menusDoc = `# Pokedex Help

Type a menu number or an answer at the prompt and press **enter**.

## Main menu

1. New Pokedex: pick an owner name, then a starter
2. Existing Pokedex: open one owner's collection
3. Delete a Pokedex
4. Merge Pokedexes: copy the second owner's records into the first, then remove the second
5. Sort owners by name
6. Print owners in a direction (F or B) a number of times
7. Exit

## Pokedex menu

1. Add a record by catalog ID
2. Display in BFS, pre-order, in-order, post-order or alphabetical order
3. Release a record
4. Fight: score is attack × 1.5 + HP × 1.2, higher wins
5. Evolve into the next catalog ID; if that is already owned, the original is released
6. Back to the main menu
`

// Model holds the help view state.
type Model struct {
	keys     keys.KeyMap
	style    string
	width    int
	height   int
	viewport viewport.Model
}

// New creates a help view rendering with the given markdown style.
func New(style string) Model {
	return Model{keys: keys.DefaultKeyMap(), style: style}
}

// Markdown returns the help document source.
func (m Model) Markdown() string {
	var b strings.Builder
	b.WriteString(menusDoc)
	b.WriteString("\n## Keys\n\n| Key | Action |\n|---|---|\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			fmt.Fprintf(&b, "| `%s` | %s |\n", bindingKeys(binding), binding.Help().Desc)
		}
	}
	return b.String()
}

func bindingKeys(b key.Binding) string {
	return strings.Join(b.Keys(), "`, `")
}

// SetSize updates dimensions and re-renders the document.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.refresh()
	return m
}

// SetStyle changes the markdown style and re-renders.
func (m Model) SetStyle(style string) Model {
	m.style = style
	m.refresh()
	return m
}

// Update scrolls the document.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	inner := m.boxWidth() - 4

	content := m.Markdown()
	if r, err := markdown.New(inner, m.style); err != nil {
		log.ErrorErr(log.CatUI, "Help renderer failed", err)
	} else if out, err := r.Render(content); err != nil {
		log.ErrorErr(log.CatUI, "Help render failed", err)
	} else {
		content = strings.TrimRight(out, "\n")
	}

	// Borders and footer take 4 rows.
	height := max(min(boxMaxHeight, m.height-4), 3)
	m.viewport = viewport.New(inner, height)
	m.viewport.SetContent(content)
}

// View renders the help box.
func (m Model) View() string {
	footer := styles.HintStyle.Render("↑/↓ scroll · esc or ? to close")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderHighlightFocusColor).
		Padding(0, 1).
		Render(m.viewport.View() + "\n" + footer)
}

// Overlay renders the help box centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(m.View(), bg, m.width, m.height, overlay.Center, 0)
}
