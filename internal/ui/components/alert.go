package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the alert colours.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantError
)

// Alert is a one-line notification banner.
type Alert struct {
	BaseComponent
	message string
	variant AlertVariant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	if a.message == "" {
		return ""
	}

	style := a.ComputeStyle(ctx.Theme).Padding(0, 1)
	if strategy := ctx.Theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(a.message)
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithStyle sets the alert style.
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}
