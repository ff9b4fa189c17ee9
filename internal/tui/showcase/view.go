package showcase

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/preview"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
	"github.com/alexisbeaulieu97/showcase/internal/widgets"
)

const sidebarMin = 28

func tabItems() []components.Tab {
	return []components.Tab{
		{ID: TabInputField, Title: "InputField"},
		{ID: TabDataTable, Title: "DataTable"},
	}
}

var (
	variantOptions = []components.Option{
		{Value: "outlined", Label: "Outlined"},
		{Value: "filled", Label: "Filled"},
		{Value: "ghost", Label: "Ghost"},
	}
	sizeOptions = []components.Option{
		{Value: "sm", Label: "Small"},
		{Value: "md", Label: "Medium"},
		{Value: "lg", Label: "Large"},
	}
)

func (m Model) selectFor(f Focus) *components.Select {
	snap := m.inputStore.Snapshot()
	if f == FocusSize {
		return components.NewSelect("Size", snap.String(playground.ControlSize), sizeOptions...).
			WithFocused(m.focus == FocusSize)
	}
	return components.NewSelect("Variant", snap.String(playground.ControlVariant), variantOptions...).
		WithFocused(m.focus == FocusVariant)
}

// View renders the whole page.
func (m Model) View() string {
	ctx := m.theme.Context().RenderContext().WithWidth(m.width)

	sections := []string{
		m.renderHeader(ctx),
		components.NewTabs(m.activeTab, tabItems()...).ViewWithContext(ctx),
	}

	if m.activeTab == TabDataTable {
		sections = append(sections, m.renderDataTableTab(ctx))
	} else {
		sections = append(sections, m.renderInputFieldTab(ctx))
	}

	sections = append(sections,
		components.MutedText("Built with Bubble Tea & Lip Gloss").ViewWithContext(ctx),
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(ctx components.RenderContext) string {
	title := components.NewHeader("Component Showcase").WithSubtitle("Standalone UI Library").ViewWithContext(ctx)

	dark := components.NewSwitch("Dark mode", m.theme.IsDark()).
		WithFocused(m.focus == FocusDarkMode).
		ViewWithContext(ctx.WithWidth(0))
	badge := components.NewBadge(Version).WithVariant(components.BadgeVariantAccent).ViewWithContext(ctx)
	right := lipgloss.JoinHorizontal(lipgloss.Center, dark, "  ", badge)

	gap := ctx.Width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), right)
}

// columns splits the width into a demo column and a customize sidebar.
func (m Model) columns(ctx components.RenderContext) (int, int) {
	sidebar := max(ctx.Width/3, sidebarMin)
	content := ctx.Width - sidebar - 2
	if content < 40 {
		content = 40
	}
	return content, sidebar
}

func (m Model) renderInputFieldTab(ctx components.RenderContext) string {
	mainWidth, sideWidth := m.columns(ctx)

	spin := m.spinner.View()
	field := func(id string, focused bool) ui.Renderable {
		props, _ := m.frame.Input(id)
		props.Focused = focused
		return widgets.NewInputField(props).WithSpinner(spin)
	}

	inputs := components.VStack(
		field(preview.EmailID, m.focus == FocusEmail),
		field(preview.PasswordID, m.focus == FocusPassword),
	).WithGap(1)
	sizes := components.VStack(
		components.TitleText("All Sizes"),
		field(preview.SmallID, false),
		field(preview.MediumID, false),
		field(preview.LargeID, false),
	).WithGap(1)

	demo := components.NewPanel("InputField Component", components.HStack(inputs, sizes).WithGap(2)).
		WithDescription("A flexible input component with validation states and multiple variants").
		WithBadge("Interactive Demo")
	code := components.NewPanel("Code Example", components.NewCodeBlock(m.frame.Snippet))

	left := components.VStack(demo, code).WithGap(1)

	snap := m.inputStore.Snapshot()
	customize := components.NewCard(
		m.selectFor(FocusVariant),
		m.selectFor(FocusSize),
		components.NewSeparator(),
		components.NewSwitch("Disabled", snap.Flag(playground.ControlDisabled)).WithFocused(m.focus == FocusDisabled),
		components.NewSwitch("Invalid State", snap.Flag(playground.ControlInvalid)).WithFocused(m.focus == FocusInvalid),
		components.NewSwitch("Loading", snap.Flag(playground.ControlLoading)).WithFocused(m.focus == FocusLoading),
	).WithTitle("Customize")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.Render(ctx.WithWidth(mainWidth), left),
		"  ",
		components.Render(ctx.WithWidth(sideWidth), customize),
	)
}

func (m Model) renderDataTableTab(ctx components.RenderContext) string {
	mainWidth, sideWidth := m.columns(ctx)

	var body []ui.Renderable
	if summary := m.aggregator.Summary(); summary != "" {
		body = append(body, components.NewAlert(summary).WithVariant(components.AlertVariantInfo))
	}
	body = append(body, m.table.WithSpinner(m.spinner.View()))

	demo := components.NewPanel("DataTable Component", body...).
		WithDescription("Advanced data table with sorting, selection, and loading states").
		WithBadge("Interactive Demo")
	code := components.NewPanel("Code Example", components.NewCodeBlock(m.tableSnippet))

	left := components.VStack(demo, code).WithGap(1)

	snap := m.tableStore.Snapshot()
	features := make([]ui.Renderable, 0, len(tableFeatures)+1)
	features = append(features, components.EmphasisText("Features"))
	for _, f := range tableFeatures {
		features = append(features, components.MutedText("• "+f))
	}

	customize := components.NewCard(
		components.NewSwitch("Row Selection", snap.Flag(playground.ControlSelectable)).WithFocused(m.focus == FocusSelectable),
		components.NewSwitch("Loading State", snap.Flag(playground.ControlLoading)).WithFocused(m.focus == FocusTableLoading),
		components.NewSeparator(),
		components.VStack(features...),
	).WithTitle("Customize")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.Render(ctx.WithWidth(mainWidth), left),
		"  ",
		components.Render(ctx.WithWidth(sideWidth), customize),
	)
}
