// Package snippet renders a configuration snapshot as declarative
// invocation text, e.g.
//
//	<InputField
//	  variant="filled"
//	  size="lg"
//	  loading
//	/>
package snippet

import (
	"strings"

	"github.com/alexisbeaulieu97/showcase/internal/playground"
)

// Component names used by the showcase tabs.
const (
	InputField = "InputField"
	DataTable  = "DataTable"
)

const indent = "  "

var attrEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Generate renders snap for component. Enums are always emitted as
// name="value"; booleans appear as a bare token only when true; text is
// emitted when non-empty. Output depends on nothing but its arguments.
func Generate(component string, snap playground.Snapshot) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(component)
	b.WriteString("\n")

	for _, token := range Tokens(snap) {
		b.WriteString(indent)
		b.WriteString(token)
		b.WriteString("\n")
	}

	b.WriteString("/>")
	return b.String()
}

// Tokens returns the attribute tokens for snap in snapshot order.
func Tokens(snap playground.Snapshot) []string {
	entries := snap.Entries()
	tokens := make([]string, 0, len(entries))
	for _, e := range entries {
		if token, ok := token(e); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func token(e playground.Entry) (string, bool) {
	switch e.Value.Kind() {
	case playground.KindBool:
		if !e.Value.Flag() {
			return "", false
		}
		return e.Name, true
	case playground.KindText:
		if e.Value.Str() == "" {
			return "", false
		}
		return attr(e.Name, e.Value.Str()), true
	default:
		return attr(e.Name, e.Value.Str()), true
	}
}

func attr(name, value string) string {
	return name + `="` + attrEscaper.Replace(value) + `"`
}
