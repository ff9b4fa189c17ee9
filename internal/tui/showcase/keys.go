package showcase

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/showcase/internal/widgets"
)

type keyMap struct {
	NextFocus  key.Binding
	PrevFocus  key.Binding
	NextTab    key.Binding
	ToggleDark key.Binding
	Toggle     key.Binding
	Prev       key.Binding
	Next       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding

	table widgets.TableKeyMap
	input widgets.InputKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		PrevFocus:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev control")),
		NextTab:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch tab")),
		ToggleDark: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "dark mode")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev option")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		table:      widgets.DefaultTableKeyMap(),
		input:      widgets.DefaultInputKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.NextTab, k.ToggleDark, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.NextTab, k.ToggleDark},
		{k.Toggle, k.Prev, k.Next, k.input.Backspace, k.input.Clear},
		{k.table.Up, k.table.Down, k.table.Left, k.table.Right},
		{k.table.Sort, k.table.Toggle, k.table.ToggleAll, k.Help, k.Quit},
	}
}
