// Package attributes_test contains shared fixtures for attributes tests.

package attributes_test

import "github.com/katalvlaran/attrgraph/attributes"

// Common attribute names used across tests.
const (
	Attr1   = "attr1"
	Attr2   = "attr2"
	Attr3   = "attr3"
	Hello   = "Hello"
	Goodbye = "goodbye"
	Missing = "missing"
)

// Common attribute values used across tests.
const (
	Val1  = "val1"
	Val2  = "val2"
	Val3  = "val3"
	World = "World"
	Me    = "me"
)

// labeled is a named string type; it exercises Of with string-like inputs.
type labeled string

// box is a minimal attribute container used to test the generic derivation
// independently of the graph entities.
type box struct {
	ID    int
	Attrs attributes.Map
}

var _ attributes.Container[box] = box{}

func (b *box) AttributeMap() *attributes.Map { return &b.Attrs }

func (b box) GetAttr(name string) (string, bool) { return attributes.Get(&b, name) }

func (b box) WithAttrs(pairs ...attributes.Pair) box { return attributes.With(b, pairs...) }

// pairs12 RETURNS the two-entry batch {attr1: val1, attr2: val2}.
func pairs12() []attributes.Pair {
	return []attributes.Pair{
		attributes.Of(Attr1, Val1),
		attributes.Of(Attr2, Val2),
	}
}
