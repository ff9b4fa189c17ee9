package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emailProps() InputProps {
	return InputProps{
		ID:          "email",
		Label:       "Email Address",
		Placeholder: "Enter your email",
		HelperText:  "We'll never share your email",
		Type:        InputText,
		Variant:     "outlined",
		Size:        "md",
		Clearable:   true,
	}
}

func TestInputFieldRendersLabelPlaceholderAndHelper(t *testing.T) {
	t.Parallel()

	view := NewInputField(emailProps()).View()

	assert.Contains(t, view, "Email Address")
	assert.Contains(t, view, "Enter your email")
	assert.Contains(t, view, "We'll never share your email")
	assert.NotContains(t, view, clearGlyph, "empty clearable input has nothing to clear")
}

func TestInputFieldMasksPassword(t *testing.T) {
	t.Parallel()

	props := emailProps()
	props.Type = InputPassword
	props.Value = "secret"

	view := NewInputField(props).View()

	assert.Contains(t, view, strings.Repeat(maskRune, 6))
	assert.NotContains(t, view, "secret")
}

func TestInputFieldErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		invalid     bool
		message     string
		wantMessage string
		wantHelper  bool
	}{
		{name: "invalid with message", invalid: true, message: "Please enter a valid email address", wantMessage: "Please enter a valid email address"},
		{name: "invalid without message", invalid: true, wantHelper: true},
		{name: "message while valid", invalid: false, message: "stale", wantHelper: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := emailProps()
			props.Invalid = tt.invalid
			props.ErrorMessage = tt.message

			view := NewInputField(props).View()

			if tt.wantMessage != "" {
				assert.Contains(t, view, tt.wantMessage)
			}
			if tt.wantHelper {
				assert.Contains(t, view, "We'll never share your email")
				assert.NotContains(t, view, "stale")
			} else {
				assert.NotContains(t, view, "We'll never share your email")
			}
		})
	}
}

func TestInputFieldTrailing(t *testing.T) {
	t.Parallel()

	props := emailProps()
	props.Value = "a@b.c"
	assert.Contains(t, NewInputField(props).View(), clearGlyph)

	props.Loading = true
	view := NewInputField(props).WithSpinner("◐").View()
	assert.Contains(t, view, "◐")
	assert.NotContains(t, view, clearGlyph)

	props.Loading = false
	props.Disabled = true
	assert.NotContains(t, NewInputField(props).View(), clearGlyph)
}

func TestInputFieldSizes(t *testing.T) {
	t.Parallel()

	for size, spec := range sizeSpecs {
		for _, variant := range []string{"outlined", "filled", "ghost"} {
			props := InputProps{Placeholder: "Small input", Size: size, Variant: variant}
			view := NewInputField(props).View()
			assert.Equal(t, spec.width, lipgloss.Width(view), "%s/%s", size, variant)
		}
	}
}

func TestHandleKey(t *testing.T) {
	t.Parallel()

	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name  string
		props InputProps
		msg   tea.KeyMsg
		want  *ValueChangedMsg
	}{
		{name: "append runes", props: InputProps{ID: "email", Value: "al"}, msg: runes("i"), want: &ValueChangedMsg{ID: "email", Value: "ali"}},
		{name: "space", props: InputProps{ID: "email", Value: "a"}, msg: tea.KeyMsg{Type: tea.KeySpace}, want: &ValueChangedMsg{ID: "email", Value: "a "}},
		{name: "backspace", props: InputProps{ID: "pw", Value: "abé"}, msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: &ValueChangedMsg{ID: "pw", Value: "ab"}},
		{name: "backspace on empty", props: InputProps{ID: "pw"}, msg: tea.KeyMsg{Type: tea.KeyBackspace}},
		{name: "clear clearable", props: InputProps{ID: "email", Value: "x", Clearable: true}, msg: tea.KeyMsg{Type: tea.KeyCtrlU}, want: &ValueChangedMsg{ID: "email"}},
		{name: "clear not clearable", props: InputProps{ID: "pw", Value: "x"}, msg: tea.KeyMsg{Type: tea.KeyCtrlU}},
		{name: "disabled", props: InputProps{ID: "email", Disabled: true}, msg: runes("a")},
		{name: "unrelated key", props: InputProps{ID: "email"}, msg: tea.KeyMsg{Type: tea.KeyTab}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := HandleKey(tt.props, tt.msg)
			if tt.want == nil {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, *tt.want, cmd())
		})
	}
}

func TestHandleKeyDoesNotMutateProps(t *testing.T) {
	t.Parallel()

	props := InputProps{ID: "email", Value: "a"}
	cmd := HandleKey(props, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	require.NotNil(t, cmd)

	assert.Equal(t, "a", props.Value)
}
