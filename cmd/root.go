package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/pokedex/internal/app"
	"github.com/zjrosen/pokedex/internal/catalog"
	"github.com/zjrosen/pokedex/internal/config"
	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/pokedex"
	"github.com/zjrosen/pokedex/internal/tracing"
	"github.com/zjrosen/pokedex/internal/ui/styles"
	"github.com/zjrosen/pokedex/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, otherwise
	// the OSC 11 reply can land in the prompt.
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".pokedex/config.yaml"

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	// configPath is the file read at startup, or where a default is written.
	configPath  string
	configFound bool

	debugFlag bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:     "pokedex",
	Short:   "Manage Pokedex collections in the terminal",
	Long:    `An interactive console for trainers' Pokedexes: add, release, evolve and fight records, and merge, sort or rotate through owners.`,
	Version: version,
}

func init() {
	rootCmd.RunE = runApp
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/pokedex/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "",
		"YAML catalog replacing the built-in one")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log and enable the log overlay (ctrl+g)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "debug.log",
		"debug log path")
	rootCmd.Flags().Bool("no-alt-screen", false,
		"run inline instead of in the alternate screen")
}

// newViper returns a viper instance using "::" as key delimiter so dotted
// color tokens such as "text.primary" stay single keys.
func newViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	defaults := config.Defaults()
	v.SetDefault("starters", defaults.Starters)
	v.SetDefault("ui::alt_screen", defaults.UI.AltScreen)
	v.SetDefault("ui::show_help", defaults.UI.ShowHelp)
	v.SetDefault("ui::markdown_style", defaults.UI.MarkdownStyle)
	v.SetDefault("ui::max_output_lines", defaults.UI.MaxOutputLines)
	v.SetDefault("tracing::enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing::exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing::otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing::sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("watch::enabled", defaults.Watch.Enabled)
	v.SetDefault("watch::debounce", defaults.Watch.Debounce)
	v.SetDefault("log::level", defaults.Log.Level)
	return v
}

// resolveConfigPath applies the lookup order: --config, .pokedex/config.yaml,
// ~/.config/pokedex/config.yaml. found is false when none exists; path is
// then where a default config belongs.
func resolveConfigPath(flag string) (path string, found bool) {
	if flag != "" {
		_, err := os.Stat(flag)
		return flag, err == nil
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath, true
	}
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".config", "pokedex", "config.yaml")
		if _, err := os.Stat(userPath); err == nil {
			return userPath, true
		}
	}
	return localConfigPath, false
}

// loadConfig reads path over the defaults. An empty path yields defaults
// plus any bound flags.
func loadConfig(path string) (config.Config, error) {
	v := newViper()
	_ = v.BindPFlag("catalog::path", rootCmd.PersistentFlags().Lookup("catalog"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func initConfig() {
	configPath, configFound = resolveConfigPath(cfgFile)

	readPath := ""
	if configFound {
		readPath = configPath
	}
	loaded, err := loadConfig(readPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		loaded, _ = loadConfig("")
	}
	cfg = loaded
}

// setupLogging enables the debug log when --debug or POKEDEX_DEBUG is set.
// The returned cleanup is never nil.
func setupLogging() (func(), error) {
	if !debugFlag && os.Getenv("POKEDEX_DEBUG") == "" {
		return func() {}, nil
	}
	debugFlag = true

	path := logFile
	if env := os.Getenv("POKEDEX_LOG"); env != "" {
		path = env
	}
	cleanup, err := log.Init(path)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	log.Info(log.CatConfig, "Pokedex starting", "version", version, "config", configPath, "log", path)
	return cleanup, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	log.Info(log.CatCatalog, "Loaded catalog", "path", path, "entries", cat.Len())
	return cat, nil
}

// startWatcher watches the config file for theme edits. Failures only
// disable hot reload.
func startWatcher() *watcher.Watcher {
	if !cfg.Watch.Enabled || !configFound {
		return nil
	}
	wcfg := watcher.DefaultConfig(configPath)
	if cfg.Watch.Debounce > 0 {
		wcfg.DebounceDur = cfg.Watch.Debounce
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Creating watcher failed", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatWatcher, "Starting watcher failed", err, "path", configPath)
		_ = w.Stop()
		return nil
	}
	return w
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	if !configFound {
		if err := config.WriteDefaultConfig(configPath); err == nil {
			configFound = true
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing.Provider())
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	svc, err := pokedex.New(cat,
		pokedex.WithTracer(provider.Tracer()),
		pokedex.WithStarters(cfg.Starters...),
	)
	if err != nil {
		return fmt.Errorf("creating pokedex: %w", err)
	}

	opts := []app.Option{app.WithDebug(debugFlag)}
	if configFound {
		opts = append(opts, app.WithConfigPath(configPath))
	}
	if w := startWatcher(); w != nil {
		opts = append(opts, app.WithWatcher(w, loadConfig))
	}
	model := app.New(svc, cfg, opts...)

	programOpts := []tea.ProgramOption{}
	noAltScreen, _ := cmd.Flags().GetBool("no-alt-screen")
	if cfg.UI.AltScreen && !noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(model, programOpts...).Run()

	closer := model
	if m, ok := final.(app.Model); ok {
		closer = m
	}
	if closeErr := closer.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
