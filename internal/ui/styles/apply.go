package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks that rebuild styles owned by other packages.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback run after ApplyTheme updates colors.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme starts from the default preset, layers the named preset and
// then the individual overrides, and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:        {&TextPrimaryColor},
		TokenTextSecondary:      {&TextSecondaryColor},
		TokenTextMuted:          {&TextMutedColor},
		TokenBorderDefault:      {&BorderDefaultColor},
		TokenBorderHighlight:    {&BorderHighlightFocusColor},
		TokenStatusSuccess:      {&StatusSuccessColor},
		TokenStatusWarning:      {&StatusWarningColor},
		TokenStatusError:        {&StatusErrorColor},
		TokenSelectionIndicator: {&SelectionIndicatorColor},
		TokenTitle:              {&TitleColor},
		TokenToastSuccess:       {&ToastBorderSuccessColor},
		TokenToastError:         {&ToastBorderErrorColor},
		TokenToastInfo:          {&ToastBorderInfoColor},
		TokenToastWarn:          {&ToastBorderWarnColor},
	}
	for token, hex := range colors {
		for _, target := range targets[token] {
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

// rebuildStyles recreates Style values; lipgloss captures colors at creation time.
func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	MenuKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(BorderHighlightFocusColor)
	MenuItemStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
