// Package logoverlay provides an in-app log viewer that shows recent debug
// log entries without leaving the TUI.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/ui/overlay"
	"github.com/zjrosen/pokedex/internal/ui/styles"
)

const (
	viewportMaxHeight = 20
	viewportMinHeight = 5
	boxMaxWidth       = 140
	boxMinWidth       = 40
	maxEntries        = 1000
)

// Model is the log overlay component state.
type Model struct {
	visible  bool
	minLevel log.Level
	entries  []string
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden log overlay.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Append records a log entry, dropping the oldest past the buffer limit.
func (m Model) Append(entry string) Model {
	m.entries = append(m.entries, strings.TrimSuffix(entry, "\n"))
	if over := len(m.entries) - maxEntries; over > 0 {
		m.entries = m.entries[over:]
	}
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
	return m
}

// Len returns the number of buffered entries.
func (m Model) Len() int {
	return len(m.entries)
}

// Update handles keys while the overlay is visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "c":
			m.entries = nil
		case "d":
			m.minLevel = log.LevelDebug
		case "i":
			m.minLevel = log.LevelInfo
		case "w":
			m.minLevel = log.LevelWarn
		case "e":
			m.minLevel = log.LevelError
		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil
		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "esc":
			m.visible = false
			return m, nil
		default:
			return m, nil
		}
		m.refreshViewport()
	}
	return m, nil
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()
	divider := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor).
		Render(strings.Repeat("─", boxWidth))

	var b strings.Builder
	b.WriteString(styles.TitleStyle.PaddingLeft(1).Render("Logs"))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.filterHint())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderHighlightFocusColor).
		Width(boxWidth).
		Render(b.String())
}

// Overlay renders the log box centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(m.View(), bg, m.width, m.height, overlay.Center, 0)
}

// Visible returns whether the overlay is currently visible.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips visibility.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
	return m
}

// SetSize updates the overlay's knowledge of the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.refreshViewport()
	return m
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	contentWidth := m.boxWidth() - 2

	// Header, footer and borders take 6 rows.
	height := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)

	offset := m.viewport.YOffset
	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.SetYOffset(offset)
}

func (m Model) content(width int) string {
	var lines []string
	for _, entry := range m.entries {
		level, known := entryLevel(entry)
		if known && level < m.minLevel {
			continue
		}
		lines = append(lines, colorize(entry, level, known, width))
	}
	if len(lines) == 0 {
		return styles.HintStyle.Italic(true).Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// entryLevel reads the [LEVEL] tag written by log.Format.
func entryLevel(entry string) (log.Level, bool) {
	for _, l := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+l.String()+"]") {
			return l, true
		}
	}
	return log.LevelDebug, false
}

func colorize(entry string, level log.Level, known bool, width int) string {
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width-3, "...")
	}

	color := styles.TextPrimaryColor
	if known {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.ToastBorderInfoColor
		default:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

func (m Model) filterHint() string {
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	hints := []string{styles.HintStyle.Render("[c] Clear")}
	for _, f := range []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	} {
		if f.level == m.minLevel {
			hints = append(hints, active.Render(f.label))
		} else {
			hints = append(hints, styles.HintStyle.Render(f.label))
		}
	}
	return strings.Join(hints, "  ")
}
