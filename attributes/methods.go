// File: methods.go
// Role: Map queries and mutations.
//
// Determinism:
//   - Keys/Range/ToMap/Clone observe first-insertion order.
//   - Equal/EqualMap ignore order.
//
// AI-Hints (file):
//   - Extend is exactly a sequence of Set calls; duplicates resolve last-write-wins.
//   - Get never fails: absence is ("", false).

package attributes

import (
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Get returns the value stored under name and whether it was present.
//
// Complexity: O(1).
func (m Map) Get(name Name) (Value, bool) {
	if m.om == nil {
		return "", false
	}

	return m.om.Get(name)
}

// Set inserts name=value, overwriting any previous value.
// Overwriting does not change Len or the key's position in Keys.
//
// Complexity: O(1) amortized.
func (m *Map) Set(name Name, value Value) {
	if m.om == nil {
		m.om = orderedmap.New[Name, Value]()
	}
	m.om.Set(name, value)
}

// Extend applies Set for every pair in order. When a name repeats, the later
// pair wins; every pair wins over a value stored before the call.
//
// The pairs are only read, never retained. Pass a fixed-size array with
// arr[:] and a slice with s...
//
// Complexity: O(len(pairs)).
func (m *Map) Extend(pairs ...Pair) {
	for _, p := range pairs {
		m.Set(p.Name, p.Value)
	}
}

// Len returns the number of distinct names.
func (m Map) Len() int {
	if m.om == nil {
		return 0
	}

	return m.om.Len()
}

// IsEmpty reports whether the map holds no attributes.
func (m Map) IsEmpty() bool { return m.Len() == 0 }

// Keys returns attribute names in first-insertion order.
func (m Map) Keys() []Name {
	keys := make([]Name, 0, m.Len())
	m.Range(func(name Name, _ Value) bool {
		keys = append(keys, name)
		return true
	})

	return keys
}

// Range calls fn for each attribute in first-insertion order until fn returns false.
// fn must not mutate m.
func (m Map) Range(fn func(name Name, value Value) bool) {
	if m.om == nil {
		return
	}
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// ToMap returns a detached plain-map copy of the attributes.
func (m Map) ToMap() map[Name]Value {
	out := make(map[Name]Value, m.Len())
	m.Range(func(name Name, value Value) bool {
		out[name] = value
		return true
	})

	return out
}

// Clone returns an independent deep copy that preserves iteration order.
func (m Map) Clone() Map {
	out := New()
	m.Range(func(name Name, value Value) bool {
		out.Set(name, value)
		return true
	})

	return out
}

// Equal reports whether m and other hold exactly the same name/value pairs.
// Insertion order is ignored.
//
// Complexity: O(n).
func (m Map) Equal(other Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(name Name, value Value) bool {
		v, ok := other.Get(name)
		equal = ok && v == value
		return equal
	})

	return equal
}

// EqualMap reports whether m holds exactly the entries of the plain map other.
// A nil other equals an empty m.
func (m Map) EqualMap(other map[Name]Value) bool {
	if m.Len() != len(other) {
		return false
	}
	for name, value := range other {
		if v, ok := m.Get(name); !ok || v != value {
			return false
		}
	}

	return true
}

// sortedKeys returns the keys of src in ascending order.
func sortedKeys(src map[string]string) []string {
	return slices.Sorted(maps.Keys(src))
}
