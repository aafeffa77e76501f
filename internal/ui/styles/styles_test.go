package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pokedex/internal/catalog"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestApplyTheme_Default(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "dracula"}))
	require.Equal(t, "#FF5555", StatusErrorColor.Dark)
	require.Equal(t, "#FF79C6", TitleColor.Light)
}

func TestApplyTheme_OverrideBeatsPreset(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	err := ApplyTheme(ThemeConfig{
		Preset: "nord",
		Colors: map[string]string{"status.error": "#123"},
	})
	require.NoError(t, err)
	require.Equal(t, "#123", StatusErrorColor.Dark)
	require.Equal(t, NordPreset.Colors[TokenStatusSuccess], StatusSuccessColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	tests := map[string]ThemeConfig{
		"unknown preset": {Preset: "solarized"},
		"unknown token":  {Colors: map[string]string{"bql.keyword": "#FFFFFF"}},
		"bad hex":        {Colors: map[string]string{"title": "red"}},
		"short hex":      {Colors: map[string]string{"title": "#FF"}},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			require.Error(t, ApplyTheme(cfg))
		})
	}
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	t.Cleanup(func() { styleRebuilders = styleRebuilders[:len(styleRebuilders)-1] })

	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, 1, calls)
}

func TestPresetsCoverAllTokens(t *testing.T) {
	for name, p := range Presets {
		for _, token := range AllTokens() {
			_, ok := p.Colors[token]
			require.True(t, ok, "preset %s missing %s", name, token)
		}
	}
	require.Equal(t, []string{"default", "dracula", "high-contrast", "nord"}, PresetNames())
}

func TestTypeColorsCoverCatalog(t *testing.T) {
	for _, typ := range catalog.Types() {
		_, ok := TypeColors[typ]
		require.True(t, ok, "no color for %s", typ)
	}
}

func TestTruncateString(t *testing.T) {
	require.Equal(t, "Charmander", TruncateString("Charmander", 10))
	require.Equal(t, "Charm...", TruncateString("Charmander", 8))
	require.Equal(t, "Ch", TruncateString("Charmander", 2))
	require.Equal(t, "", TruncateString("Charmander", 0))
}
