package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Separator renders a horizontal rule across the available width.
type Separator struct {
	BaseComponent
	char  string
	width int
}

// NewSeparator creates a separator drawn with "─".
func NewSeparator() *Separator {
	s := &Separator{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	s.SetAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Surface.Contrast)
	})
	return s
}

// View renders the separator.
func (s *Separator) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the separator with layout context.
func (s *Separator) ViewWithContext(ctx RenderContext) string {
	width := s.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = 24
	}
	return s.ComputeStyle(ctx.Theme).Render(strings.Repeat(s.char, width))
}

// WithChar sets the character used for the rule.
func (s *Separator) WithChar(char string) *Separator {
	if char != "" {
		s.char = char
	}
	return s
}

// WithWidth sets an explicit width.
func (s *Separator) WithWidth(width int) *Separator {
	s.width = width
	return s
}
