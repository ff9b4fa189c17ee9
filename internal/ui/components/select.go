package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Option is one choice offered by a Select.
type Option struct {
	Value string
	Label string
}

// Select offers a fixed, ordered set of options. It is the surface that
// keeps enum controls within their domain: Next and Prev only ever return
// option values.
type Select struct {
	BaseComponent
	label   string
	value   string
	options []Option
	focused bool
}

// NewSelect creates a select showing value.
func NewSelect(label, value string, options ...Option) *Select {
	return &Select{BaseComponent: NewBaseComponent(), label: label, value: value, options: options}
}

// WithFocused marks the select as focused.
func (s *Select) WithFocused(focused bool) *Select {
	s.focused = focused
	return s
}

// Value returns the rendered value.
func (s *Select) Value() string {
	return s.value
}

// Next returns the option after the current value, wrapping around. An
// out-of-domain value resets to the first option.
func (s *Select) Next() string {
	return s.step(1)
}

// Prev returns the option before the current value, wrapping around.
func (s *Select) Prev() string {
	return s.step(-1)
}

func (s *Select) step(delta int) string {
	if len(s.options) == 0 {
		return s.value
	}
	i := s.indexOf(s.value)
	if i < 0 {
		return s.options[0].Value
	}
	n := len(s.options)
	return s.options[((i+delta)%n+n)%n].Value
}

func (s *Select) indexOf(value string) int {
	for i, o := range s.options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// View renders the select.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label and the current choice.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	current := s.value
	if i := s.indexOf(s.value); i >= 0 {
		current = s.options[i].Label
	}

	style := lipgloss.NewStyle().Foreground(theme.Palette.Surface.OnBase)
	if s.focused {
		style = style.Foreground(theme.Palette.Primary.Base).Bold(true)
	}
	choice := style.Render("‹ " + current + " ›")

	label := NewLabel(s.label).WithFocused(s.focused).ViewWithContext(ctx)
	return s.ComputeStyle(theme).Render(spread(ctx.Width, label, choice))
}
