package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pokedex/internal/ui/styles"
)

// loadConfig reads path the way cmd does: a "::" key delimiter keeps dotted
// color tokens like "text.primary" intact.
func loadConfig(t *testing.T, path string) Config {
	t.Helper()

	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg
}

func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return loadConfig(t, path)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, []string{"Bulbasaur", "Charmander", "Squirtle"}, cfg.Starters)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
	require.NoError(t, Validate(cfg))
}

func TestDefaults_StartersAreACopy(t *testing.T) {
	cfg := Defaults()
	cfg.Starters[0] = "Pikachu"
	require.Equal(t, "Bulbasaur", DefaultStarters[0])
}

func TestValidateStarters(t *testing.T) {
	tests := []struct {
		name     string
		starters []string
		wantErr  string
	}{
		{name: "empty uses defaults", starters: nil},
		{name: "valid", starters: []string{"Pikachu", "Eevee"}},
		{name: "blank name", starters: []string{"Pikachu", ""}, wantErr: "starters[1]: name is required"},
		{name: "duplicate", starters: []string{"Eevee", "Eevee"}, wantErr: "duplicate starter \"Eevee\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStarters(tt.starters)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: "light"}))
	require.ErrorContains(t, ValidateUI(UIConfig{MarkdownStyle: "sepia"}), "ui.markdown_style")
	require.ErrorContains(t, ValidateUI(UIConfig{MaxOutputLines: -1}), "ui.max_output_lines")
}

func TestValidateTheme(t *testing.T) {
	require.NoError(t, ValidateTheme(ThemeConfig{}))
	require.NoError(t, ValidateTheme(ThemeConfig{Preset: "nord"}))
	require.ErrorContains(t, ValidateTheme(ThemeConfig{Preset: "solarized"}), "theme.preset")
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TracingConfig
		wantErr string
	}{
		{name: "zero value", cfg: TracingConfig{}},
		{name: "sample rate low", cfg: TracingConfig{SampleRate: -0.1}, wantErr: "sample_rate"},
		{name: "sample rate high", cfg: TracingConfig{SampleRate: 1.5}, wantErr: "sample_rate"},
		{name: "unknown exporter", cfg: TracingConfig{Exporter: "zipkin"}, wantErr: "tracing.exporter"},
		{name: "otlp without endpoint", cfg: TracingConfig{Enabled: true, Exporter: "otlp"}, wantErr: "otlp_endpoint"},
		{name: "otlp disabled without endpoint", cfg: TracingConfig{Exporter: "otlp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := Defaults()
	cfg.Watch.Debounce = -time.Second
	require.ErrorContains(t, Validate(cfg), "watch.debounce")
}

func TestTracingConfig_Provider(t *testing.T) {
	got := TracingConfig{Enabled: true, SampleRate: 0.5}.Provider()

	require.True(t, got.Enabled)
	require.Equal(t, "file", got.Exporter)
	require.Equal(t, DefaultTracesFilePath(), got.FilePath)
	require.Equal(t, "localhost:4317", got.OTLPEndpoint)
	require.InDelta(t, 0.5, got.SampleRate, 1e-9)
	require.Equal(t, "pokedex", got.ServiceName)

	got = TracingConfig{Exporter: "otlp", OTLPEndpoint: "collector:4317", FilePath: "/tmp/t.jsonl"}.Provider()
	require.Equal(t, "otlp", got.Exporter)
	require.Equal(t, "collector:4317", got.OTLPEndpoint)
	require.Equal(t, "/tmp/t.jsonl", got.FilePath)
}

func TestFlattenedColors(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    text.primary: "#FF0000"
    status:
      error: "#00FF00"
`)
	require.Equal(t, map[string]string{
		"text.primary": "#FF0000",
		"status.error": "#00FF00",
	}, cfg.Theme.FlattenedColors())
}

func TestThemeConfig_Styles_Applies(t *testing.T) {
	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })

	cfg := loadConfigFromYAML(t, `
theme:
  preset: nord
  colors:
    status.error: "#00FF00"
`)
	require.NoError(t, styles.ApplyTheme(cfg.Theme.Styles()))
	require.Equal(t, "#00FF00", styles.StatusErrorColor.Dark)
	require.Equal(t, styles.NordPreset.Colors[styles.TokenTitle], styles.TitleColor.Dark)
}

func TestLoad_WatchDebounceDuration(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
watch:
  enabled: false
  debounce: 250ms
`)
	require.False(t, cfg.Watch.Enabled)
	require.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg := loadConfig(t, path)
	require.Equal(t, DefaultStarters, cfg.Starters)
	require.True(t, cfg.UI.ShowHelp)
	require.Equal(t, 500, cfg.UI.MaxOutputLines)
	require.True(t, cfg.Watch.Enabled)
	require.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
	require.NoError(t, Validate(cfg))
}
