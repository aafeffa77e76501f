// Package toaster provides a notification toast overlay component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pokedex/internal/ui/overlay"
	"github.com/zjrosen/pokedex/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DefaultDuration is how long a toast stays up when shown with ShowFor.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message until Hide or a matching DismissMsg.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// ShowFor displays message and schedules its dismissal after d.
func (m Model) ShowFor(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m = m.Show(message, style)
	return m, scheduleDismiss(m.seq, d)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text being shown.
func (m Model) Message() string {
	return m.message
}

// Update hides the toast on the DismissMsg scheduled for it. Dismissals
// scheduled for an earlier toast are ignored.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	var border lipgloss.TerminalColor
	var icon string
	switch m.style {
	case StyleError:
		border, icon = styles.ToastBorderErrorColor, "✗ "
	case StyleInfo:
		border, icon = styles.ToastBorderInfoColor, "i "
	case StyleWarn:
		border, icon = styles.ToastBorderWarnColor, "! "
	default:
		border, icon = styles.ToastBorderSuccessColor, "✓ "
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(icon + m.message)
}

// Overlay renders the toast near the bottom of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(m.View(), bg, width, height, overlay.Bottom, 1)
}

// DismissMsg signals that a toast should be dismissed.
type DismissMsg struct {
	seq int
}

func scheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
