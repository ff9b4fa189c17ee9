package playground

// Entry is one (name, value) pair of a snapshot.
type Entry struct {
	Name  string
	Value Value
}

// Snapshot is the full set of control values read atomically for one
// recomputation. Entries keep the store's declaration order.
type Snapshot struct {
	entries []Entry
	version uint64
}

// Entries returns a copy of the ordered entries.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Version is the store version the snapshot was taken at.
func (s Snapshot) Version() uint64 {
	return s.version
}

// Get looks up a value by control name.
func (s Snapshot) Get(name string) (Value, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// String returns the enum or text payload for name, or "".
func (s Snapshot) String(name string) string {
	v, _ := s.Get(name)
	return v.Str()
}

// Flag returns the boolean payload for name, or false.
func (s Snapshot) Flag(name string) bool {
	v, _ := s.Get(name)
	return v.Flag()
}

// Equal reports whether both snapshots hold the same values in the same order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i].Name != other.entries[i].Name || !s.entries[i].Value.Equal(other.entries[i].Value) {
			return false
		}
	}
	return true
}
