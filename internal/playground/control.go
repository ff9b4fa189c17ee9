package playground

import (
	"fmt"
	"strconv"
)

// Kind identifies the shape of a control's value.
type Kind int

const (
	KindEnum Kind = iota
	KindBool
	KindText
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged control value. The zero value is an empty enum.
type Value struct {
	kind Kind
	str  string
	flag bool
}

// Enum wraps an enumerated string value.
func Enum(s string) Value {
	return Value{kind: KindEnum, str: s}
}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Text wraps a free-form string value.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Kind reports the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string payload of enum and text values.
func (v Value) Str() string {
	return v.str
}

// Flag returns the payload of boolean values.
func (v Value) Flag() bool {
	return v.flag
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String formats the value for logs.
func (v Value) String() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.flag)
	}
	return v.str
}

// Control is a named atomic setting. Domain is only meaningful for enums.
type Control struct {
	Name    string
	Kind    Kind
	Domain  []string
	Default Value
}

// EnumControl declares an enumerated control. def should be a member of domain.
func EnumControl(name string, domain []string, def string) Control {
	d := make([]string, len(domain))
	copy(d, domain)
	return Control{Name: name, Kind: KindEnum, Domain: d, Default: Enum(def)}
}

// BoolControl declares a boolean control.
func BoolControl(name string, def bool) Control {
	return Control{Name: name, Kind: KindBool, Default: Bool(def)}
}

// TextControl declares a free-form text control.
func TextControl(name, def string) Control {
	return Control{Name: name, Kind: KindText, Default: Text(def)}
}

// InDomain reports whether s is a legal value for the control. Controls
// without a domain accept anything.
func (c Control) InDomain(s string) bool {
	if len(c.Domain) == 0 {
		return true
	}
	for _, member := range c.Domain {
		if member == s {
			return true
		}
	}
	return false
}
