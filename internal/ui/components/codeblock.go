package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CodeBlock displays source text verbatim inside a frame. It never
// interprets the code it is given.
type CodeBlock struct {
	BaseComponent
	code string
}

// NewCodeBlock creates a code block.
func NewCodeBlock(code string) *CodeBlock {
	c := &CodeBlock{BaseComponent: NewBaseComponent(), code: code}
	c.SetAppliers(
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Background(theme.Palette.Surface.Muted).Padding(0, 1)
		},
	)
	return c
}

// Code returns the displayed text.
func (c *CodeBlock) Code() string {
	return c.code
}

// View renders the code block.
func (c *CodeBlock) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each line with the code typography.
func (c *CodeBlock) ViewWithContext(ctx RenderContext) string {
	code := TypographyStyle(ctx.Theme, TypographyVariantCode).Background(ctx.Theme.Palette.Surface.Muted)

	lines := strings.Split(c.code, "\n")
	for i, line := range lines {
		lines[i] = code.Render(line)
	}

	style := c.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}
	return style.Render(strings.Join(lines, "\n"))
}
