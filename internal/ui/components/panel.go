package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// Panel frames a demo area: a title row with an optional badge, a
// description line, then the demo content.
type Panel struct {
	*Container
	title       string
	description string
	badge       *Badge
}

// NewPanel creates a panel holding children.
func NewPanel(title string, children ...ui.Renderable) *Panel {
	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithAppliers(Border(BorderVariantNormal), BorderColour(PaletteSecondary))

	return &Panel{Container: container, title: title}
}

// WithDescription sets the line under the title.
func (p *Panel) WithDescription(description string) *Panel {
	p.description = description
	return p
}

// WithBadge shows a secondary badge next to the title.
func (p *Panel) WithBadge(text string) *Panel {
	p.badge = NewBadge(text).WithVariant(BadgeVariantSecondary)
	return p
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel with the given context.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	title := TitleText(p.title).ViewWithContext(ctx)
	if p.badge != nil {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", p.badge.ViewWithContext(ctx))
	}

	header := []ui.Renderable{ui.RenderFunc(func() string { return title })}
	if p.description != "" {
		header = append(header, MutedText(p.description))
	}

	framed := *p.Container
	framed.layout = VStack(append(header, p.Container.Children()...)...).WithGap(p.Container.layout.gap)
	return framed.ViewWithContext(ctx)
}
