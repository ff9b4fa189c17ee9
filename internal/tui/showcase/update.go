package showcase

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/preview"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
	"github.com/alexisbeaulieu97/showcase/internal/widgets"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// The inputs are controlled: their edits only land here.
	case widgets.ValueChangedMsg:
		if _, ok := m.values[msg.ID]; !ok {
			return m, nil
		}
		m.values[msg.ID] = msg.Value
		m.log.WithFields(map[string]any{"input": msg.ID, "length": len([]rune(msg.Value))}).Debug("input value changed")
		return m.sync(), nil

	// Commands run asynchronously, so a notification can arrive after
	// selection was turned off or loading started. Those are stale.
	case widgets.RowSelectMsg:
		if !m.aggregator.Selectable() || m.table.Loading() {
			m.log.Debug("dropped stale selection")
			return m, nil
		}
		m.aggregator.OnSelectionChange(msg.IDs)
		m.log.WithFields(map[string]any{"rows": m.aggregator.Selected()}).Debug("selection changed")
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys: global bindings first, then the focused control.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFocus):
		m.focus = m.stepFocus(1)
		return m.applyFocus(), nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = m.stepFocus(-1)
		return m.applyFocus(), nil

	case key.Matches(msg, m.keys.NextTab):
		tabs := components.NewTabs(m.activeTab, tabItems()...)
		m.activeTab = tabs.Next()
		m.focus = ringFor(m.activeTab)[0]
		return m.applyFocus(), nil

	case key.Matches(msg, m.keys.ToggleDark):
		return m.toggleDark(), nil
	}

	if m.focus.textInput() {
		return m.handleTextKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	switch m.focus {
	case FocusDarkMode:
		if key.Matches(msg, m.keys.Toggle) {
			return m.toggleDark(), nil
		}

	case FocusVariant, FocusSize:
		return m.handleSelectKeys(msg)

	case FocusDisabled, FocusInvalid, FocusLoading:
		if key.Matches(msg, m.keys.Toggle) {
			return m.toggle(m.inputStore, switchControl(m.focus)), nil
		}

	case FocusSelectable, FocusTableLoading:
		if key.Matches(msg, m.keys.Toggle) {
			return m.toggle(m.tableStore, switchControl(m.focus)), nil
		}

	case FocusTable:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleTextKeys forwards editing keys to the focused input.
func (m Model) handleTextKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := preview.EmailID
	if m.focus == FocusPassword {
		id = preview.PasswordID
	}
	props, ok := m.frame.Input(id)
	if !ok {
		return m, nil
	}
	return m, m.keys.input.Handle(props, msg)
}

func (m Model) handleSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.selectFor(m.focus)

	var next string
	switch {
	case key.Matches(msg, m.keys.Prev):
		next = sel.Prev()
	case key.Matches(msg, m.keys.Next, m.keys.Toggle):
		next = sel.Next()
	default:
		return m, nil
	}

	name := selectControl(m.focus)
	if c, ok := m.inputStore.Control(name); ok && !c.InDomain(next) {
		m.log.Warn("select offered a value outside the control domain")
		return m, nil
	}
	if err := m.inputStore.Bind(name).SetString(next); err != nil {
		m.log.Error(err, "failed to set control")
		return m, nil
	}
	return m.sync(), nil
}

func (m Model) toggle(store *playground.Store, name string) Model {
	if err := store.Bind(name).Toggle(); err != nil {
		m.log.Error(err, "failed to toggle control")
		return m
	}
	return m.sync()
}

func (m Model) toggleDark() Model {
	m.theme.Toggle()
	m.log.WithFields(map[string]any{"dark": m.theme.IsDark()}).Debug("theme changed")
	return m
}

func (m Model) stepFocus(delta int) Focus {
	ring := ringFor(m.activeTab)
	i := slices.Index(ring, m.focus)
	if i < 0 {
		return ring[0]
	}
	return ring[(i+delta+len(ring))%len(ring)]
}

// applyFocus mirrors the focus onto widgets that render it themselves.
func (m Model) applyFocus() Model {
	m.table = m.table.WithFocused(m.focus == FocusTable)
	return m
}

func switchControl(f Focus) string {
	switch f {
	case FocusDisabled:
		return playground.ControlDisabled
	case FocusInvalid:
		return playground.ControlInvalid
	case FocusLoading, FocusTableLoading:
		return playground.ControlLoading
	case FocusSelectable:
		return playground.ControlSelectable
	default:
		return ""
	}
}

func selectControl(f Focus) string {
	if f == FocusSize {
		return playground.ControlSize
	}
	return playground.ControlVariant
}
