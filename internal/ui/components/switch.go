package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Switch is a two-state toggle. It holds no state of its own: the host
// passes Checked in and flips it on input.
type Switch struct {
	BaseComponent
	label    string
	checked  bool
	disabled bool
	focused  bool
}

// NewSwitch creates a switch with a label.
func NewSwitch(label string, checked bool) *Switch {
	return &Switch{BaseComponent: NewBaseComponent(), label: label, checked: checked}
}

// WithDisabled greys the switch out.
func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

// WithFocused marks the switch as focused.
func (s *Switch) WithFocused(focused bool) *Switch {
	s.focused = focused
	return s
}

// Checked reports the rendered state.
func (s *Switch) Checked() bool {
	return s.checked
}

// View renders the switch.
func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label and track on one line.
func (s *Switch) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	track := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted).Render("●──")
	if s.checked {
		track = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Render("──●")
	}
	if s.disabled {
		track = lipgloss.NewStyle().Faint(true).Render(track)
	}

	label := NewLabel(s.label).WithFocused(s.focused).ViewWithContext(ctx)
	return s.ComputeStyle(theme).Render(spread(ctx.Width, label, track))
}

// spread places left and right on one line, pushing right to width.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
