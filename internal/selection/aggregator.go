// Package selection holds the host-side row selection for the DataTable demo.
package selection

import (
	"fmt"
	"sort"
)

// Set is a sorted, duplicate-free list of row ids.
type Set []int

// NewSet copies ids into a normalized Set.
func NewSet(ids ...int) Set {
	seen := make(map[int]struct{}, len(ids))
	out := make(Set, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether id is in the set.
func (s Set) Contains(id int) bool {
	i := sort.SearchInts(s, id)
	return i < len(s) && s[i] == id
}

// DisablePolicy decides what happens to the held set when the table stops
// being selectable.
type DisablePolicy int

const (
	// ClearOnDisable drops the held set when selection is turned off.
	ClearOnDisable DisablePolicy = iota
	// RetainOnDisable keeps the held set untouched.
	RetainOnDisable
)

// Aggregator owns the currently selected row ids. Every change notification
// replaces the held set wholesale.
type Aggregator struct {
	policy     DisablePolicy
	held       Set
	selectable bool
}

// NewAggregator creates an empty, selectable aggregator.
func NewAggregator(policy DisablePolicy) *Aggregator {
	return &Aggregator{policy: policy, held: Set{}, selectable: true}
}

// OnSelectionChange replaces the held set with ids.
func (a *Aggregator) OnSelectionChange(ids []int) {
	a.held = NewSet(ids...)
}

// SetSelectable records the table's selectable flag and applies the policy.
func (a *Aggregator) SetSelectable(selectable bool) {
	if a.selectable && !selectable && a.policy == ClearOnDisable {
		a.held = Set{}
	}
	a.selectable = selectable
}

// Selectable returns the last recorded selectable flag.
func (a *Aggregator) Selectable() bool {
	return a.selectable
}

// Policy returns the configured disable policy.
func (a *Aggregator) Policy() DisablePolicy {
	return a.policy
}

// Selected returns a copy of the held set.
func (a *Aggregator) Selected() Set {
	out := make(Set, len(a.held))
	copy(out, a.held)
	return out
}

// Len returns the number of held ids.
func (a *Aggregator) Len() int {
	return len(a.held)
}

// Contains reports whether id is held.
func (a *Aggregator) Contains(id int) bool {
	return a.held.Contains(id)
}

// Summary renders "N row(s) selected", or "" when nothing is held.
func (a *Aggregator) Summary() string {
	switch n := len(a.held); n {
	case 0:
		return ""
	case 1:
		return "1 row selected"
	default:
		return fmt.Sprintf("%d rows selected", n)
	}
}
