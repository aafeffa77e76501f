// Package app contains the root application model: an interactive console
// that drives the pokedex service through numbered menus.
package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pokedex/internal/config"
	"github.com/zjrosen/pokedex/internal/keys"
	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/pokedex"
	"github.com/zjrosen/pokedex/internal/pubsub"
	"github.com/zjrosen/pokedex/internal/registry"
	helpoverlay "github.com/zjrosen/pokedex/internal/ui/help"
	"github.com/zjrosen/pokedex/internal/ui/logoverlay"
	"github.com/zjrosen/pokedex/internal/ui/toaster"
	"github.com/zjrosen/pokedex/internal/watcher"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ReloadFunc re-reads the config file at path.
type ReloadFunc func(path string) (config.Config, error)

// Option configures a Model.
type Option func(*Model)

// WithConfigPath sets the file theme changes are saved to.
func WithConfigPath(path string) Option {
	return func(m *Model) { m.configPath = path }
}

// WithDebug enables the log overlay (ctrl+g).
func WithDebug(debug bool) Option {
	return func(m *Model) { m.debug = debug }
}

// WithWatcher reloads config whenever w reports a change. The model stops w
// on Close.
func WithWatcher(w *watcher.Watcher, reload ReloadFunc) Option {
	return func(m *Model) {
		m.watcher = w
		m.reload = reload
	}
}

// Model is the root application state.
type Model struct {
	svc        *pokedex.Service
	cfg        config.Config
	configPath string
	keys       keys.KeyMap
	ctx        context.Context
	cancel     context.CancelFunc

	step  step
	owner *registry.Owner // open in the pokedex menu
	draft draft
	cmds  []tea.Cmd

	lines  []string
	output viewport.Model
	input  textinput.Model
	footer help.Model

	width  int
	height int

	toaster    toaster.Model
	help       helpoverlay.Model
	showHelp   bool
	debug      bool
	logOverlay logoverlay.Model
	lastChange string
	quitting   bool

	logListener    *log.LogListener
	changeListener *pubsub.ContinuousListener[pokedex.Change]
	watcher        *watcher.Watcher
	reload         ReloadFunc
	reloadListener *pubsub.ContinuousListener[string]
}

// New creates the application model and prints the main menu.
func New(svc *pokedex.Service, cfg config.Config, opts ...Option) Model {
	ctx, cancel := context.WithCancel(context.Background())

	input := textinput.New()
	input.CharLimit = 64
	input.Focus()

	m := Model{
		svc:        svc,
		cfg:        cfg,
		keys:       keys.DefaultKeyMap(),
		ctx:        ctx,
		cancel:     cancel,
		input:      input,
		footer:     help.New(),
		help:       helpoverlay.New(cfg.UI.MarkdownStyle),
		logOverlay: logoverlay.New(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.changeListener = pubsub.NewContinuousListener(ctx, svc.Events())
	if m.debug {
		m.logListener = log.NewListener(ctx)
	}
	if m.watcher != nil {
		m.reloadListener = pubsub.NewContinuousListener(ctx, m.watcher.Broker())
	}

	m.resize()
	m.showMainMenu()
	m.cmds = nil
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.changeListener.Listen(),
		m.logListener.Listen(),
		m.reloadListener.Listen(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case pokedex.ChangeEvent:
		m.lastChange = describeChange(msg.Payload)
		log.Debug(log.CatUI, "Service change", "kind", msg.Payload.Kind, "owner", msg.Payload.Owner, "trace", msg.Payload.TraceID)
		return m, m.changeListener.Listen()

	case pubsub.Event[string]:
		// Log entries and config reloads share a payload type.
		if msg.Type == pubsub.ReloadEvent {
			return m.handleReload(msg.Payload)
		}
		m.logOverlay = m.logOverlay.Append(msg.Payload)
		return m, m.logListener.Listen()

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.debug && key.Matches(msg, m.keys.ToggleLog) {
		m.logOverlay = m.logOverlay.Toggle()
		return m, nil
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help) && (msg.String() != "?" || m.input.Value() == ""):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.ScrollUp):
		m.output.ScrollUp(max(m.output.Height/2, 1))
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.output.ScrollDown(max(m.output.Height/2, 1))
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.output.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.output.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.lines = nil
		m.refreshOutput()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.cancelPrompt()
		return m, m.flush()
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, m.flush()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds the input line to the current step. A number prompt given
// anything but an integer prints "Invalid input." and asks again.
func (m *Model) submit() {
	raw := m.input.Value()
	m.input.Reset()

	st := m.step
	m.println(st.prompt + raw)

	switch {
	case st.onNumber != nil:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			m.println(errorLine("Invalid input."))
			return
		}
		st.onNumber(m, n)
	case st.onText != nil:
		st.onText(m, strings.TrimSpace(raw))
	}
}

// flush returns the commands queued by step handlers.
func (m *Model) flush() tea.Cmd {
	cmds := m.cmds
	m.cmds = nil
	return tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Close releases every owner and stops the listeners and the watcher.
func (m *Model) Close() error {
	m.cancel()
	released := m.svc.Close()
	log.Info(log.CatUI, "Released all owners", "records", released)

	if m.watcher != nil {
		if err := m.watcher.Stop(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) toast(message string, style toaster.Style) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.ShowFor(message, style, toaster.DefaultDuration)
	m.cmds = append(m.cmds, cmd)
}

// report prints a result line and flashes it as a toast.
func (m *Model) report(line string, err error) {
	if err != nil {
		m.println(errorLine(line))
		m.toast(line, toaster.StyleError)
		return
	}
	m.println(successLine(line))
	m.toast(line, toaster.StyleSuccess)
}

func describeChange(c pokedex.Change) string {
	switch c.Kind {
	case pokedex.OwnerCreated:
		return "created " + c.Owner
	case pokedex.OwnerDeleted:
		return "deleted " + c.Owner
	case pokedex.OwnersMerged:
		return "merged " + c.Other + " into " + c.Owner
	case pokedex.OwnersSorted:
		return "sorted owners"
	case pokedex.RecordAdded:
		return c.Owner + " added " + c.Record
	case pokedex.RecordReleased:
		return c.Owner + " released " + c.Record
	case pokedex.RecordEvolved:
		return c.Owner + " evolved into " + c.Record
	default:
		return string(c.Kind)
	}
}
