// File: types.go
// Role: Attribute store types and string-like pair construction.
//
// Determinism:
//   - Iteration follows first-insertion order; overwriting a key keeps its slot.
//
// Concurrency:
//   - None. Single writer; callers synchronize externally if they share a Map.

package attributes

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Name is an attribute name.
type Name = string

// Value is an attribute value.
type Value = string

// Pair is a single name/value entry passed to Extend and WithAttrs.
type Pair struct {
	Name  Name
	Value Value
}

// Of builds a Pair from any string-like name and value, so named string
// types can be passed without converting them first.
func Of[K, V ~string](name K, value V) Pair {
	return Pair{Name: string(name), Value: string(value)}
}

// Map is a set of uniquely named string attributes.
//
// Maps returned by New, FromMap and Clone have their storage allocated, so a
// copy made by assignment shares it with the original: a Set through either
// is seen by both. The zero value is also an empty map ready for use, but it
// allocates on its first Set, so copies of a zero Map taken before that write
// stay independent. Use Clone for an independent copy in either case.
type Map struct {
	om *orderedmap.OrderedMap[Name, Value]
}

// New returns an empty Map with allocated storage.
func New() Map {
	return Map{om: orderedmap.New[Name, Value]()}
}

// FromMap returns a Map holding every entry of src.
// Entries are inserted in ascending name order so iteration is deterministic.
func FromMap(src map[string]string) Map {
	m := New()
	for _, name := range sortedKeys(src) {
		m.Set(name, src[name])
	}

	return m
}
