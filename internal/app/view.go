package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/presentation"
	"github.com/zjrosen/pokedex/internal/ui/styles"
)

func titleLine(s string) string   { return styles.TitleStyle.Render(s) }
func errorLine(s string) string   { return styles.ErrorStyle.Render(s) }
func successLine(s string) string { return styles.SuccessStyle.Render(s) }
func hintLine(s string) string    { return styles.HintStyle.Render(s) }

func recordLine(r *dex.Record) string {
	t := r.Type.String()
	return strings.Replace(r.String(), "Type: "+t, "Type: "+styles.TypeStyle(r.Type).Render(t), 1)
}

// println appends lines to the transcript and scrolls to the newest.
func (m *Model) println(lines ...string) {
	m.lines = append(m.lines, lines...)
	if limit := m.cfg.UI.MaxOutputLines; limit > 0 && len(m.lines) > limit {
		m.lines = slices.Clone(m.lines[len(m.lines)-limit:])
	}
	m.refreshOutput()
}

func (m *Model) printMenu(items ...string) {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = styles.MenuKeyStyle.Render(fmt.Sprintf("%d.", i+1)) + " " + styles.MenuItemStyle.Render(item)
	}
	m.println(lines...)
}

// Transcript returns the output lines printed so far.
func (m Model) Transcript() []string {
	return slices.Clone(m.lines)
}

func (m *Model) refreshOutput() {
	m.output.SetContent(presentation.WrapLines(m.lines, m.output.Width))
	m.output.GotoBottom()
}

func (m Model) chromeHeight() int {
	h := 2 // status bar and input line
	if m.cfg.UI.ShowHelp {
		h++
	}
	return h
}

func (m *Model) resize() {
	m.output.Width = m.width
	m.output.Height = max(m.height-m.chromeHeight(), 1)
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 10)
	m.footer.Width = m.width
	m.help = m.help.SetSize(m.width, m.height)
	m.logOverlay = m.logOverlay.SetSize(m.width, m.height)
	m.refreshOutput()
}

func (m Model) statusBar() string {
	left := styles.TitleStyle.Render("Pokedex")
	status := fmt.Sprintf("%d owners", m.svc.Registry().Len())
	if m.owner != nil {
		status += " · " + m.owner.Name
	}
	if m.lastChange != "" {
		status += " · " + m.lastChange
	}
	return styles.TruncateString(left+styles.StatusBarStyle.Render(status), m.width)
}

// View implements tea.Model.
func (m Model) View() string {
	parts := []string{m.statusBar(), m.output.View(), m.input.View()}
	if m.cfg.UI.ShowHelp {
		parts = append(parts, m.footer.View(m.keys))
	}
	view := strings.Join(parts, "\n")

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	if m.debug && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return view
}
