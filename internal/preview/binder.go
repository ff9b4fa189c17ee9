// Package preview turns a configuration snapshot into the props of every
// previewed input, together with the snippet for the same snapshot.
package preview

import (
	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/snippet"
	"github.com/alexisbeaulieu97/showcase/internal/widgets"
)

// SharedProps are the props every instance takes from the snapshot.
type SharedProps struct {
	Variant  string
	Size     string
	Disabled bool
	Invalid  bool
	Loading  bool
}

// Shared reads the shared props out of snap.
func Shared(snap playground.Snapshot) SharedProps {
	return SharedProps{
		Variant:  snap.String(playground.ControlVariant),
		Size:     snap.String(playground.ControlSize),
		Disabled: snap.Flag(playground.ControlDisabled),
		Invalid:  snap.Flag(playground.ControlInvalid),
		Loading:  snap.Flag(playground.ControlLoading),
	}
}

// Follow selects which snapshot values an instance tracks.
type Follow uint8

const (
	FollowVariant Follow = 1 << iota
	FollowSize
	FollowDisabled
	// FollowStatus tracks both invalid and loading.
	FollowStatus

	FollowShared = FollowVariant | FollowSize | FollowDisabled
	FollowAll    = FollowShared | FollowStatus
)

// Has reports whether f includes flag.
func (f Follow) Has(flag Follow) bool {
	return f&flag != 0
}

// Instance is one previewed input. Content fields are fixed; Follows decides
// which snapshot values override the instance defaults.
type Instance struct {
	ID           string
	Label        string
	Placeholder  string
	HelperText   string
	Type         widgets.InputType
	Clearable    bool
	ErrorMessage string
	// Size is used when the instance does not follow the size control.
	Size    string
	Follows Follow
	// Editable instances receive a value from the owner.
	Editable bool
}

// Frame is one recomputation: the snippet and the props both come from the
// snapshot taken at Version.
type Frame struct {
	Version uint64
	Snippet string
	Inputs  []widgets.InputProps
}

// Input returns the props for id.
func (f Frame) Input(id string) (widgets.InputProps, bool) {
	for _, p := range f.Inputs {
		if p.ID == id {
			return p, true
		}
	}
	return widgets.InputProps{}, false
}

// Binder maps snapshots onto a fixed list of instances.
type Binder struct {
	component string
	instances []Instance
}

// NewBinder creates a binder for component over instances.
func NewBinder(component string, instances ...Instance) *Binder {
	return &Binder{component: component, instances: append([]Instance(nil), instances...)}
}

// Instances returns a copy of the instance list.
func (b *Binder) Instances() []Instance {
	return append([]Instance(nil), b.instances...)
}

// Bind computes the props of every instance, in declaration order. values
// holds the owner's current input values keyed by instance id.
func (b *Binder) Bind(snap playground.Snapshot, values map[string]string) []widgets.InputProps {
	shared := Shared(snap)
	out := make([]widgets.InputProps, 0, len(b.instances))
	for _, inst := range b.instances {
		out = append(out, bindOne(inst, shared, values))
	}
	return out
}

// Frame computes snippet and props from the same snapshot.
func (b *Binder) Frame(snap playground.Snapshot, values map[string]string) Frame {
	return Frame{
		Version: snap.Version(),
		Snippet: snippet.Generate(b.component, snap),
		Inputs:  b.Bind(snap, values),
	}
}

func bindOne(inst Instance, shared SharedProps, values map[string]string) widgets.InputProps {
	p := widgets.InputProps{
		ID:          inst.ID,
		Label:       inst.Label,
		Placeholder: inst.Placeholder,
		HelperText:  inst.HelperText,
		Type:        inst.Type,
		Size:        inst.Size,
		Clearable:   inst.Clearable,
	}
	if p.Type == "" {
		p.Type = widgets.InputText
	}
	if inst.Editable {
		p.Value = values[inst.ID]
	}

	if inst.Follows.Has(FollowVariant) {
		p.Variant = shared.Variant
	}
	if inst.Follows.Has(FollowSize) {
		p.Size = shared.Size
	}
	if inst.Follows.Has(FollowDisabled) {
		p.Disabled = shared.Disabled
	}
	if inst.Follows.Has(FollowStatus) {
		p.Invalid = shared.Invalid
		p.Loading = shared.Loading
		if shared.Invalid {
			p.ErrorMessage = inst.ErrorMessage
		}
	}
	return p
}

// Instance ids of the default InputField page.
const (
	EmailID    = "email"
	PasswordID = "password"
	SmallID    = "size-sm"
	MediumID   = "size-md"
	LargeID    = "size-lg"
)

// DefaultInstances is the InputField page: two editable inputs and the
// all-sizes strip.
func DefaultInstances() []Instance {
	return []Instance{
		{
			ID:           EmailID,
			Label:        "Email Address",
			Placeholder:  "Enter your email",
			HelperText:   "We'll never share your email",
			Clearable:    true,
			ErrorMessage: "Please enter a valid email address",
			Follows:      FollowAll,
			Editable:     true,
		},
		{
			ID:          PasswordID,
			Label:       "Password",
			Placeholder: "Enter your password",
			HelperText:  "Must be at least 8 characters",
			Type:        widgets.InputPassword,
			Follows:     FollowShared,
			Editable:    true,
		},
		{ID: SmallID, Placeholder: "Small input", Size: "sm", Follows: FollowVariant},
		{ID: MediumID, Placeholder: "Medium input", Size: "md", Follows: FollowVariant},
		{ID: LargeID, Placeholder: "Large input", Size: "lg", Follows: FollowVariant},
	}
}

// NewInputFieldBinder returns the binder for the InputField page.
func NewInputFieldBinder() *Binder {
	return NewBinder(snippet.InputField, DefaultInstances()...)
}
