package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pokedex/internal/config"
	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/ui/styles"
	"github.com/zjrosen/pokedex/internal/ui/toaster"
)

// handleReload re-reads the config after the watcher saw it change and
// applies the parts that can change at runtime: theme and help style.
func (m Model) handleReload(path string) (tea.Model, tea.Cmd) {
	next := m.reloadListener.Listen()
	if m.reload == nil {
		return m, next
	}

	cfg, err := m.reload(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err == nil {
		err = styles.ApplyTheme(cfg.Theme.Styles())
	}
	if err != nil {
		log.ErrorErr(log.CatConfig, "Config reload failed", err, "path", path)
		m.toast("Config reload failed: "+err.Error(), toaster.StyleError)
		return m, tea.Batch(next, m.flush())
	}

	m.cfg.Theme = cfg.Theme
	m.cfg.UI.MarkdownStyle = cfg.UI.MarkdownStyle
	m.help = m.help.SetStyle(cfg.UI.MarkdownStyle)
	m.refreshOutput()
	log.Info(log.CatConfig, "Config reloaded", "path", path, "preset", cfg.Theme.Preset)

	m.toast("Config reloaded", toaster.StyleInfo)
	return m, tea.Batch(next, m.flush())
}

// nextPreset returns the preset after current in sorted order, wrapping.
func nextPreset(current string) string {
	names := styles.PresetNames()
	if current == "" {
		current = "default"
	}
	i := slices.Index(names, current)
	return names[(i+1)%len(names)]
}

// cycleTheme applies the next preset and saves it to the config file.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	theme := m.cfg.Theme
	theme.Preset = nextPreset(theme.Preset)

	if err := styles.ApplyTheme(theme.Styles()); err != nil {
		m.toast(err.Error(), toaster.StyleError)
		return m, m.flush()
	}
	m.cfg.Theme = theme
	m.refreshOutput()

	if m.configPath != "" {
		if err := config.SaveThemePreset(m.configPath, theme.Preset); err != nil {
			log.ErrorErr(log.CatConfig, "Saving theme preset failed", err, "path", m.configPath)
			m.toast("Theme "+theme.Preset+" not saved: "+err.Error(), toaster.StyleWarn)
			return m, m.flush()
		}
	}
	m.toast("Theme: "+theme.Preset, toaster.StyleInfo)
	return m, m.flush()
}
