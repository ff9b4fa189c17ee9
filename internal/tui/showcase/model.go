// Package showcase is the page container: it owns the configuration stores,
// the theme controller and the selection aggregator, and wires them to the
// preview widgets.
package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/preview"
	"github.com/alexisbeaulieu97/showcase/internal/selection"
	"github.com/alexisbeaulieu97/showcase/internal/snippet"
	"github.com/alexisbeaulieu97/showcase/internal/theme"
	"github.com/alexisbeaulieu97/showcase/internal/widgets"
)

// Version is shown in the header badge.
const Version = "v1.0.0"

// Options configures a new page.
type Options struct {
	Config config.Config
	Logger *logger.Logger
	// Adapter receives the dark-mode flag; nil leaves the flag purely in the model.
	Adapter theme.Adapter
	// Users replaces the demo table rows when non-nil.
	Users []widgets.Row
	// Tab selects the initial tab; empty means the InputField tab.
	Tab string
	// Width overrides the initial render width.
	Width int
}

// Model is the showcase page.
type Model struct {
	// Core state
	inputStore *playground.Store
	tableStore *playground.Store
	theme      *theme.Controller
	binder     *preview.Binder
	aggregator *selection.Aggregator
	log        *logger.Logger

	// Owner-held input values, keyed by instance id
	values map[string]string

	// Derived from the stores on every commit
	frame        preview.Frame
	tableSnippet string
	table        widgets.DataTable

	// UI state
	activeTab string
	focus     Focus
	showHelp  bool

	// Components
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// Dimensions
	width  int
	height int
}

// NewModel builds the page from opts.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	inputStore := playground.NewInputFieldStore()
	if err := cfg.SeedInput(inputStore); err != nil {
		return Model{}, fmt.Errorf("seed input controls: %w", err)
	}
	tableStore := playground.NewDataTableStore()
	if err := cfg.SeedTable(tableStore); err != nil {
		return Model{}, fmt.Errorf("seed table controls: %w", err)
	}

	aggregator := selection.NewAggregator(cfg.Policy())
	aggregator.SetSelectable(tableStore.Snapshot().Flag(playground.ControlSelectable))

	inputStore.OnChange(logChanges(log, snippet.InputField))
	tableStore.OnChange(logChanges(log, snippet.DataTable))
	tableStore.OnChange(func(snap playground.Snapshot) {
		aggregator.SetSelectable(snap.Flag(playground.ControlSelectable))
	})

	users := opts.Users
	if users == nil {
		users = DemoUsers()
	}

	tab := TabInputField
	if opts.Tab == TabDataTable {
		tab = TabDataTable
	}
	width := 100
	if opts.Width > 0 {
		width = opts.Width
	}

	binder := preview.NewInputFieldBinder()
	values := make(map[string]string)
	for _, inst := range binder.Instances() {
		if inst.Editable {
			values[inst.ID] = ""
		}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		inputStore: inputStore,
		tableStore: tableStore,
		theme:      theme.NewController(cfg.Theme.Dark, opts.Adapter),
		binder:     binder,
		aggregator: aggregator,
		log:        log,
		values:     values,
		table:      widgets.NewDataTable(UserColumns(), users).WithEmptyMessage(cfg.Table.EmptyMessage),
		activeTab:  tab,
		focus:      ringFor(tab)[0],
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
		width:      width,
		height:     40,
	}

	return m.sync().applyFocus(), nil
}

// Init starts the spinner used by loading previews.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func logChanges(log *logger.Logger, component string) playground.Listener {
	return func(snap playground.Snapshot) {
		if !log.DebugEnabled() {
			return
		}
		fields := map[string]any{"component": component, "version": snap.Version()}
		for _, e := range snap.Entries() {
			fields[e.Name] = e.Value.String()
		}
		log.WithFields(fields).Debug("configuration changed")
	}
}

// sync recomputes everything derived from the stores.
func (m Model) sync() Model {
	m.frame = m.binder.Frame(m.inputStore.Snapshot(), m.values)

	tableSnap := m.tableStore.Snapshot()
	m.tableSnippet = snippet.Generate(snippet.DataTable, tableSnap)

	selectable := tableSnap.Flag(playground.ControlSelectable)
	reenabled := selectable && !m.table.Selectable()
	m.table = m.table.
		SetLoading(tableSnap.Flag(playground.ControlLoading)).
		SetSelectable(selectable)
	if reenabled {
		m.table = m.table.SetSelection(m.aggregator.Selected())
	}
	return m
}

// Frame returns the current InputField recomputation.
func (m Model) Frame() preview.Frame {
	return m.frame
}

// TableSnippet returns the current DataTable snippet.
func (m Model) TableSnippet() string {
	return m.tableSnippet
}

// Selection returns the rows the page holds as selected.
func (m Model) Selection() selection.Set {
	return m.aggregator.Selected()
}

// IsDark reports the theme flag.
func (m Model) IsDark() bool {
	return m.theme.IsDark()
}

// ActiveTab returns the visible tab id.
func (m Model) ActiveTab() string {
	return m.activeTab
}

// Focus returns the focused control.
func (m Model) Focus() Focus {
	return m.focus
}
