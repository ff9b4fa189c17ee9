package components

// Label names a form control. A focused label is drawn with a marker so the
// keyboard position is visible.
type Label struct {
	BaseComponent
	text    string
	focused bool
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{BaseComponent: NewBaseComponent(), text: text}
}

// WithFocused marks the label as belonging to the focused control.
func (l *Label) WithFocused(focused bool) *Label {
	l.focused = focused
	return l
}

// View renders the label.
func (l *Label) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label with the given theme context.
func (l *Label) ViewWithContext(ctx RenderContext) string {
	if l.focused {
		return TypographyStyle(ctx.Theme, TypographyVariantEmphasis).Render("› " + l.text)
	}
	return l.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, TypographyVariantBody)).Render("  " + l.text)
}
