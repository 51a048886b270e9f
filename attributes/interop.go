// File: interop.go
// Role: Read adapters for external graph encoders.

package attributes

import "gonum.org/v1/gonum/graph/encoding"

var _ encoding.Attributer = Map{}

// Attributes returns the attributes as gonum encoding attributes in
// first-insertion order, so a Map can be handed to gonum's DOT encoder.
func (m Map) Attributes() []encoding.Attribute {
	out := make([]encoding.Attribute, 0, m.Len())
	m.Range(func(name Name, value Value) bool {
		out = append(out, encoding.Attribute{Key: name, Value: value})
		return true
	})

	return out
}
