package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Tab is one trigger of a tab strip.
type Tab struct {
	ID    string
	Title string
}

// Tabs renders a tab strip. The active id is owned by the host.
type Tabs struct {
	BaseComponent
	items  []Tab
	active string
}

// NewTabs creates a strip with the given active tab.
func NewTabs(active string, items ...Tab) *Tabs {
	return &Tabs{BaseComponent: NewBaseComponent(), items: items, active: active}
}

// Active returns the active tab id.
func (t *Tabs) Active() string {
	return t.active
}

// Next returns the id after the active one, wrapping around.
func (t *Tabs) Next() string {
	for i, item := range t.items {
		if item.ID == t.active {
			return t.items[(i+1)%len(t.items)].ID
		}
	}
	if len(t.items) > 0 {
		return t.items[0].ID
	}
	return t.active
}

// View renders the tab strip.
func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each trigger as a button; the active one is primary.
func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	triggers := make([]string, 0, len(t.items))
	for _, item := range t.items {
		btn := NewButton(item.Title).WithVariant(ButtonVariantGhost)
		if item.ID == t.active {
			btn = btn.WithVariant(ButtonVariantPrimary).WithActive(true)
		}
		triggers = append(triggers, btn.ViewWithContext(ctx))
	}
	return t.ComputeStyle(ctx.Theme).Render(lipgloss.JoinHorizontal(lipgloss.Top, triggers...))
}
