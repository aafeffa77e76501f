// Package config provides configuration types and defaults for pokedex.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/tracing"
	"github.com/zjrosen/pokedex/internal/ui/styles"
)

// Config holds all configuration options for pokedex.
type Config struct {
	Catalog  CatalogConfig `mapstructure:"catalog"`
	Starters []string      `mapstructure:"starters"`
	UI       UIConfig      `mapstructure:"ui"`
	Theme    ThemeConfig   `mapstructure:"theme"`
	Tracing  TracingConfig `mapstructure:"tracing"`
	Watch    WatchConfig   `mapstructure:"watch"`
	Log      LogConfig     `mapstructure:"log"`
}

// CatalogConfig selects the record catalog.
type CatalogConfig struct {
	// Path is a YAML catalog replacing the built-in 151 entries.
	// Empty uses the embedded catalog.
	Path string `mapstructure:"path"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	AltScreen      bool   `mapstructure:"alt_screen"`
	ShowHelp       bool   `mapstructure:"show_help"`        // Key hints under the prompt
	MarkdownStyle  string `mapstructure:"markdown_style"`   // "dark" (default) or "light"
	MaxOutputLines int    `mapstructure:"max_output_lines"` // Scrollback kept in the output pane
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// Styles converts the theme to the form styles.ApplyTheme takes.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.FlattenedColors()}
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds tracing configuration for service operations.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/pokedex/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// Provider converts the section into a tracing.Config, filling the trace file
// path when the file exporter has none.
func (t TracingConfig) Provider() tracing.Config {
	cfg := tracing.DefaultConfig()
	cfg.Enabled = t.Enabled
	if t.Exporter != "" {
		cfg.Exporter = t.Exporter
	}
	cfg.FilePath = t.FilePath
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultTracesFilePath()
	}
	if t.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = t.OTLPEndpoint
	}
	cfg.SampleRate = t.SampleRate
	return cfg
}

// WatchConfig controls hot reload of the config file.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig sets the debug log threshold.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug (default), info, warn, error
}

// DefaultStarters are offered when a new Pokedex is created.
var DefaultStarters = []string{"Bulbasaur", "Charmander", "Squirtle"}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/pokedex/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pokedex", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Starters: slices.Clone(DefaultStarters),
		UI: UIConfig{
			AltScreen:      true,
			ShowHelp:       true,
			MarkdownStyle:  "dark",
			MaxOutputLines: 500,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from home dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 100 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "debug",
		},
	}
}

// Validate checks every section.
func Validate(cfg Config) error {
	if err := ValidateStarters(cfg.Starters); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := ValidateTracing(cfg.Tracing); err != nil {
		return err
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", cfg.Watch.Debounce)
	}
	return nil
}

// ValidateStarters checks starter names. Empty uses the defaults; whether the
// names exist in the catalog is checked when the service is built.
func ValidateStarters(starters []string) error {
	seen := make(map[string]bool, len(starters))
	for i, name := range starters {
		if name == "" {
			return fmt.Errorf("starters[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("starters[%d]: duplicate starter %q", i, name)
		}
		seen[name] = true
	}
	return nil
}

// ValidateUI checks user interface options.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.MaxOutputLines < 0 {
		return fmt.Errorf("ui.max_output_lines must not be negative, got %d", ui.MaxOutputLines)
	}
	return nil
}

// ValidateTheme checks the preset name. Color tokens are checked when the
// theme is applied.
func ValidateTheme(theme ThemeConfig) error {
	if theme.Preset == "" {
		return nil
	}
	if _, ok := styles.Presets[theme.Preset]; !ok {
		return fmt.Errorf("theme.preset must be one of %v, got %q", styles.PresetNames(), theme.Preset)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Pokedex Configuration

# Replace the built-in catalog with your own YAML file
# catalog:
#   path: /path/to/catalog.yaml

# Starters offered for a new Pokedex, in menu order
starters:
  - Bulbasaur
  - Charmander
  - Squirtle

# UI settings
ui:
  alt_screen: true        # Run in the alternate screen buffer
  show_help: true         # Show key hints under the prompt
  # markdown_style: dark  # Help screen style: "dark" (default) or "light"
  max_output_lines: 500   # Output lines kept for scrolling

# Theme configuration
theme:
  # preset: dracula
  #
  # Available presets:
  #   default        - Default pokedex theme
  #   dracula        - Dark theme with vibrant colors
  #   nord           - Arctic, north-bluish palette
  #   high-contrast  - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"

# Reload theme changes while running
watch:
  enabled: true
  debounce: 100ms

# Tracing of collection operations
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/pokedex/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)

# Debug log threshold (only used with --debug)
# log:
#   level: debug
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
