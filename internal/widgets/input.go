// Package widgets contains the interactive demo widgets. They are controlled:
// a widget renders the props it is given and reports user intent as a
// tea.Cmd, leaving the owner to commit the change.
package widgets

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// InputType selects how the value is displayed.
type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
)

const (
	maskRune   = "•"
	clearGlyph = "✕"
	caretGlyph = "▏"
)

// InputProps is everything an InputField renders. The field owns no state.
type InputProps struct {
	ID           string
	Label        string
	Placeholder  string
	HelperText   string
	Type         InputType
	Value        string
	Variant      string
	Size         string
	Disabled     bool
	Invalid      bool
	ErrorMessage string
	Loading      bool
	Clearable    bool
	Focused      bool
}

// ValueChangedMsg reports the value an input wants to hold next.
type ValueChangedMsg struct {
	ID    string
	Value string
}

type sizeSpec struct {
	width int
	padX  int
	padY  int
}

var sizeSpecs = map[string]sizeSpec{
	"sm": {width: 24, padX: 0, padY: 0},
	"md": {width: 32, padX: 1, padY: 0},
	"lg": {width: 40, padX: 2, padY: 1},
}

func specFor(size string) sizeSpec {
	if s, ok := sizeSpecs[size]; ok {
		return s
	}
	return sizeSpecs["md"]
}

// InputField draws one text input from its props.
type InputField struct {
	props   InputProps
	spinner string
}

// NewInputField creates a field for props.
func NewInputField(props InputProps) *InputField {
	return &InputField{props: props}
}

// WithSpinner sets the frame shown while the field is loading.
func (f *InputField) WithSpinner(view string) *InputField {
	f.spinner = view
	return f
}

// Props returns the rendered props.
func (f *InputField) Props() InputProps {
	return f.props
}

// View renders with the default context.
func (f *InputField) View() string {
	return f.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the label, the box and the message line.
func (f *InputField) ViewWithContext(ctx components.RenderContext) string {
	p := f.props
	theme := ctx.Theme
	spec := specFor(p.Size)

	width := spec.width
	if ctx.Width > 0 && ctx.Width < width {
		width = ctx.Width
	}
	inner := width - 2 - 2*spec.padX
	if inner < 4 {
		inner = 4
	}

	var parts []string
	if p.Label != "" {
		label := components.TypographyStyle(theme, components.TypographyVariantTitle)
		if p.Disabled {
			label = label.Faint(true)
		}
		parts = append(parts, label.Render(p.Label))
	}

	parts = append(parts, f.box(theme, spec, width, inner))

	if line := f.message(theme); line != "" {
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f *InputField) box(theme components.Theme, spec sizeSpec, width, inner int) string {
	p := f.props
	palette := theme.Palette

	accent := palette.Surface.Contrast
	switch {
	case p.Invalid:
		accent = palette.Danger.Base
	case p.Focused && !p.Disabled:
		accent = palette.Primary.Base
	}

	style := lipgloss.NewStyle().
		Padding(spec.padY, spec.padX).
		Width(width - 2)

	switch p.Variant {
	case "filled":
		style = style.Border(theme.Borders.Normal).
			BorderForeground(accent).
			Background(palette.Secondary.Muted)
	case "ghost":
		style = style.Border(theme.Borders.None)
	default:
		style = style.Border(theme.Borders.Rounded).BorderForeground(accent)
	}

	trailing := f.trailing(theme)
	room := inner
	if trailing != "" {
		room -= lipgloss.Width(trailing) + 1
	}

	var left string
	caret := ""
	if p.Focused && !p.Disabled {
		caret = caretGlyph
		room--
	}

	body := components.TypographyStyle(theme, components.TypographyVariantBody)
	muted := components.TypographyStyle(theme, components.TypographyVariantMuted)

	if shown := f.displayValue(); shown != "" {
		textStyle := body
		if p.Disabled {
			textStyle = muted
		}
		left = textStyle.Render(tail(shown, room)) + caret
	} else {
		left = caret + muted.Render(head(p.Placeholder, room))
	}

	return style.Render(spread(inner, left, trailing))
}

func (f *InputField) displayValue() string {
	if f.props.Type == InputPassword {
		return strings.Repeat(maskRune, utf8.RuneCountInString(f.props.Value))
	}
	return f.props.Value
}

func (f *InputField) trailing(theme components.Theme) string {
	p := f.props
	switch {
	case p.Loading:
		if f.spinner != "" {
			return f.spinner
		}
		return "…"
	case p.Clearable && p.Value != "" && !p.Disabled:
		return components.TypographyStyle(theme, components.TypographyVariantMuted).Render(clearGlyph)
	default:
		return ""
	}
}

// message shows the owner-supplied error while invalid, else the helper text.
func (f *InputField) message(theme components.Theme) string {
	p := f.props
	if p.Invalid && p.ErrorMessage != "" {
		return lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base).Render(p.ErrorMessage)
	}
	if p.HelperText != "" {
		return components.TypographyStyle(theme, components.TypographyVariantMuted).Render(p.HelperText)
	}
	return ""
}

func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	if right == "" {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// tail keeps the last n runes so the caret end stays visible.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// InputKeyMap holds the editing keys an input reacts to besides plain text.
type InputKeyMap struct {
	Backspace key.Binding
	Clear     key.Binding
}

// DefaultInputKeyMap returns the standard editing keys.
func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	}
}

// HandleKey turns a key press into a ValueChangedMsg command using the
// default key map.
func HandleKey(props InputProps, msg tea.KeyMsg) tea.Cmd {
	return DefaultInputKeyMap().Handle(props, msg)
}

// Handle returns a command carrying the next value, or nil when the key does
// not change it. Disabled inputs never change.
func (k InputKeyMap) Handle(props InputProps, msg tea.KeyMsg) tea.Cmd {
	if props.Disabled {
		return nil
	}

	next := props.Value
	switch {
	case msg.Type == tea.KeyRunes:
		next += string(msg.Runes)
	case msg.Type == tea.KeySpace:
		next += " "
	case key.Matches(msg, k.Backspace):
		if r := []rune(next); len(r) > 0 {
			next = string(r[:len(r)-1])
		}
	case key.Matches(msg, k.Clear):
		if props.Clearable {
			next = ""
		}
	}

	if next == props.Value {
		return nil
	}

	id := props.ID
	return func() tea.Msg {
		return ValueChangedMsg{ID: id, Value: next}
	}
}
