package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"dracula":       DraculaPreset,
	"nord":          NordPreset,
	"high-contrast": HighContrastPreset,
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// DefaultPreset matches the Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default pokedex theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#CCCCCC",
		TokenTextSecondary:      "#BBBBBB",
		TokenTextMuted:          "#696969",
		TokenBorderDefault:      "#696969",
		TokenBorderHighlight:    "#54A0FF",
		TokenStatusSuccess:      "#73F59F",
		TokenStatusWarning:      "#FECA57",
		TokenStatusError:        "#FF8787",
		TokenSelectionIndicator: "#FFFFFF",
		TokenTitle:              "#FF5555",
		TokenToastSuccess:       "#73F59F",
		TokenToastError:         "#FF8787",
		TokenToastInfo:          "#54A0FF",
		TokenToastWarn:          "#FECA57",
	},
}

// DraculaPreset uses the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#F8F8F2",
		TokenTextSecondary:      "#BFBFBF",
		TokenTextMuted:          "#6272A4",
		TokenBorderDefault:      "#6272A4",
		TokenBorderHighlight:    "#BD93F9",
		TokenStatusSuccess:      "#50FA7B",
		TokenStatusWarning:      "#F1FA8C",
		TokenStatusError:        "#FF5555",
		TokenSelectionIndicator: "#FF79C6",
		TokenTitle:              "#FF79C6",
		TokenToastSuccess:       "#50FA7B",
		TokenToastError:         "#FF5555",
		TokenToastInfo:          "#8BE9FD",
		TokenToastWarn:          "#FFB86C",
	},
}

// NordPreset uses the Nord arctic palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#ECEFF4",
		TokenTextSecondary:      "#D8DEE9",
		TokenTextMuted:          "#4C566A",
		TokenBorderDefault:      "#4C566A",
		TokenBorderHighlight:    "#88C0D0",
		TokenStatusSuccess:      "#A3BE8C",
		TokenStatusWarning:      "#EBCB8B",
		TokenStatusError:        "#BF616A",
		TokenSelectionIndicator: "#88C0D0",
		TokenTitle:              "#81A1C1",
		TokenToastSuccess:       "#A3BE8C",
		TokenToastError:         "#BF616A",
		TokenToastInfo:          "#5E81AC",
		TokenToastWarn:          "#D08770",
	},
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:        "#FFFFFF",
		TokenTextSecondary:      "#FFFFFF",
		TokenTextMuted:          "#C0C0C0",
		TokenBorderDefault:      "#FFFFFF",
		TokenBorderHighlight:    "#FFFF00",
		TokenStatusSuccess:      "#00FF00",
		TokenStatusWarning:      "#FFFF00",
		TokenStatusError:        "#FF0000",
		TokenSelectionIndicator: "#FFFF00",
		TokenTitle:              "#FFFFFF",
		TokenToastSuccess:       "#00FF00",
		TokenToastError:         "#FF0000",
		TokenToastInfo:          "#00FFFF",
		TokenToastWarn:          "#FFFF00",
	},
}
