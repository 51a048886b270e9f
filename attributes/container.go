// File: container.go
// Role: The "has attributes" capability and its generic derivation.
//
// Policy:
//   - An entity designates its store by implementing Holder on its pointer.
//   - Get and With are the only method bodies; entities forward to them.
//   - Missing designation is a compile-time error, never a runtime one.
//
// AI-Hints (file):
//   - Add `var _ attributes.Container[T] = T{}` next to every entity type;
//     it fails to compile when the forwarding methods are missing or wrong.

package attributes

// Holder designates the field that stores an entity's attributes.
//
// Implement it on the pointer receiver and return the address of the field:
//
//	func (e *Edge) AttributeMap() *attributes.Map { return &e.Attrs }
type Holder interface {
	AttributeMap() *Map
}

// Container is the capability shared by every attribute-carrying entity T.
//
// GetAttr is the read projection of Map.Get on the entity's store.
// WithAttrs is the builder form of Map.Extend: it returns a copy of the
// entity whose store has been extended with pairs, leaving the receiver
// unchanged.
type Container[T any] interface {
	GetAttr(name Name) (Value, bool)
	WithAttrs(pairs ...Pair) T
}

// Get reads name from the store designated by h.
//
// Complexity: O(1).
func Get[H Holder](h H, name Name) (Value, bool) {
	return h.AttributeMap().Get(name)
}

// With returns v with pairs merged into its designated store.
//
// Implementation:
//   - Stage 1: Take the address of the local copy v to reach the designated field.
//   - Stage 2: Replace the store by a clone so the caller's value is not mutated.
//   - Stage 3: Extend the clone and return v by value.
//
// Behavior highlights:
//   - Observationally identical to Clone followed by Extend on the entity's store.
//   - Chaining composes left to right: e.WithAttrs(a...).WithAttrs(b...).
//
// Complexity:
//   - Time O(n + len(pairs)) where n is the current store size.
func With[T any, PT interface {
	*T
	Holder
}](v T, pairs ...Pair) T {
	store := PT(&v).AttributeMap()
	*store = store.Clone()
	store.Extend(pairs...)

	return v
}
