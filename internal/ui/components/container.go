package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// Container is a generic box that can hold children with border, padding, and styling.
// It's the foundation for more specialized components like Card and Panel.
type Container struct {
	BaseComponent
	layout  *Stack
	padding Spacing
	width   int
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	width := c.width
	if width <= 0 {
		width = ctx.Width
	}

	childCtx := ctx
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
		childCtx = ctx.WithWidth(width - style.GetHorizontalFrameSize())
	}

	return style.Render(c.layout.ViewWithContext(childCtx))
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithWidth fixes the outer width of the container.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Prepend inserts children ahead of the existing ones.
func (c *Container) Prepend(children ...ui.Renderable) *Container {
	all := make([]ui.Renderable, 0, len(children)+len(c.layout.Children()))
	all = append(all, children...)
	all = append(all, c.layout.Children()...)
	gap := c.layout.gap
	c.layout = VStack(all...).WithGap(gap)
	return c
}
