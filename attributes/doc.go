// Package attributes provides the string-keyed attribute store shared by every
// graph entity, and the capability contract through which entities expose it.
//
// Map is the store itself:
//
//	var m attributes.Map          // zero value is empty and ready to use
//	m.Set("color", "red")         // insert or overwrite
//	m.Extend(                     // sequential Set; later pairs win
//		attributes.Of("shape", "box"),
//		attributes.Of("color", "blue"),
//	)
//	v, ok := m.Get("color")       // "blue", true
//	_, ok = m.Get("missing")      // "", false (absence is not an error)
//
// Keys are unique. Iteration (Keys, Range, Attributes) follows first-insertion
// order so that collaborators such as DOT writers produce stable output, while
// equality (Equal, EqualMap) ignores order entirely.
//
// Container capability:
//
// An entity becomes an attribute container by designating exactly one field
// as its store. The designation is the Holder interface, implemented on the
// entity's pointer:
//
//	func (n *Node) AttributeMap() *attributes.Map { return &n.Attrs }
//
// The generic helpers Get and With derive the container behavior from that
// designation, so each entity forwards in one line:
//
//	func (n Node) GetAttr(name string) (string, bool)       { return attributes.Get(&n, name) }
//	func (n Node) WithAttrs(pairs ...attributes.Pair) Node  { return attributes.With(n, pairs...) }
//
// A type without a designated store does not satisfy Holder; passing it to
// Get/With, or asserting it as a Container, is rejected by the compiler.
//
// Value semantics:
//
// Map holds a reference to its backing store, so a plain struct copy of an
// allocated Map (from New, FromMap or Clone) shares it. A zero Map allocates
// on its first Set. Builders (With, and every WithAttrs built on it) clone before writing,
// which keeps chained construction free of aliasing. Use Clone when you need
// an independent copy for direct Set/Extend calls.
//
// Map is not safe for concurrent mutation.
package attributes
