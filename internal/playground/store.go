// Package playground holds the configuration store behind the showcase
// customize panels: named controls, their setters and atomic snapshots.
package playground

import (
	"errors"
	"fmt"
)

// ErrUnknownControl is returned when a name was never declared on the store.
var ErrUnknownControl = errors.New("unknown control")

// ErrOutOfDomain is returned by surfaces that offer a value the control
// does not list. The store itself never returns it.
var ErrOutOfDomain = errors.New("value outside control domain")

// Listener observes every committed change with the snapshot it produced.
type Listener func(Snapshot)

// Store is a bag of named, independently settable control values.
//
// The store does not enforce enum domains: whichever surface offers the
// choices is responsible for only offering legal ones.
type Store struct {
	controls  []Control
	index     map[string]int
	values    []Value
	version   uint64
	listeners []Listener
}

// NewStore creates a store seeded with each control's default value.
// Duplicate control names panic.
func NewStore(controls ...Control) *Store {
	s := &Store{
		controls: make([]Control, len(controls)),
		index:    make(map[string]int, len(controls)),
		values:   make([]Value, len(controls)),
	}
	copy(s.controls, controls)

	for i, c := range s.controls {
		if _, dup := s.index[c.Name]; dup {
			panic(fmt.Sprintf("playground: duplicate control %q", c.Name))
		}
		s.index[c.Name] = i
		s.values[i] = c.Default
	}

	return s
}

// Controls returns the declared controls in declaration order.
func (s *Store) Controls() []Control {
	out := make([]Control, len(s.controls))
	copy(out, s.controls)
	return out
}

// Control returns the declaration for name.
func (s *Store) Control(name string) (Control, bool) {
	i, ok := s.index[name]
	if !ok {
		return Control{}, false
	}
	return s.controls[i], true
}

// Get returns the current value of name.
func (s *Store) Get(name string) (Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return Value{}, false
	}
	return s.values[i], true
}

// Set commits value for name and notifies listeners synchronously.
// Setting an equal value is a no-op.
func (s *Store) Set(name string, value Value) error {
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("set %q: %w", name, ErrUnknownControl)
	}

	if s.values[i].Equal(value) {
		return nil
	}

	s.values[i] = value
	s.version++

	snap := s.Snapshot()
	for _, l := range s.listeners {
		l(snap)
	}
	return nil
}

// OnChange registers a listener. Listeners run in registration order.
func (s *Store) OnChange(l Listener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// Version counts committed changes since the store was created.
func (s *Store) Version() uint64 {
	return s.version
}

// Snapshot returns an immutable copy of every current value.
func (s *Store) Snapshot() Snapshot {
	entries := make([]Entry, len(s.controls))
	for i, c := range s.controls {
		entries[i] = Entry{Name: c.Name, Value: s.values[i]}
	}
	return Snapshot{entries: entries, version: s.version}
}

// Bind returns the (value, setter) pair for name.
func (s *Store) Bind(name string) Binding {
	return Binding{store: s, name: name}
}

// Binding is a (value, setter) pair for a single control.
type Binding struct {
	store *Store
	name  string
}

// Name returns the bound control name.
func (b Binding) Name() string {
	return b.name
}

// Value returns the current value.
func (b Binding) Value() Value {
	v, _ := b.store.Get(b.name)
	return v
}

// Set commits a new value through the store.
func (b Binding) Set(v Value) error {
	return b.store.Set(b.name, v)
}

// String returns the current enum or text payload.
func (b Binding) String() string {
	return b.Value().Str()
}

// Enabled returns the current boolean payload.
func (b Binding) Enabled() bool {
	return b.Value().Flag()
}

// SetString commits v keeping the control's declared kind.
func (b Binding) SetString(v string) error {
	c, ok := b.store.Control(b.name)
	if !ok {
		return fmt.Errorf("set %q: %w", b.name, ErrUnknownControl)
	}
	if c.Kind == KindText {
		return b.Set(Text(v))
	}
	return b.Set(Enum(v))
}

// SetBool commits a boolean.
func (b Binding) SetBool(v bool) error {
	return b.Set(Bool(v))
}

// Toggle flips a boolean control.
func (b Binding) Toggle() error {
	return b.Set(Bool(!b.Enabled()))
}
