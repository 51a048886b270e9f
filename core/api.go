// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public constructors and the attribute-container surface of every entity.
// Policy:
//   - Constructors are infallible and return empty attribute stores.
//   - GetAttr/WithAttrs only forward to the attributes package; no per-entity logic.
// AI-HINT (file):
//   - Each entity designates Attrs through AttributeMap(); the forwarding methods
//     are one-liners over attributes.Get and attributes.With.

package core

import "github.com/katalvlaran/attrgraph/attributes"

// NewNode returns a Node with the given name and no attributes.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewNode(name string) Node {
	return Node{Name: name, Attrs: attributes.New()}
}

// NewEdge returns an Edge between a and b with no attributes.
//
// Implementation:
//   - Stage 1: Convert the string-like endpoints to string.
//   - Stage 2: Store them positionally as A and B.
//
// Behavior highlights:
//   - Accepts any types with an underlying string, so callers holding named
//     identifier types need no conversion.
//   - Performs no existence check on either endpoint.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewEdge[A, B ~string](a A, b B) Edge {
	return Edge{A: string(a), B: string(b), Attrs: attributes.New()}
}

// NewGraph returns an empty Graph: no nodes, no edges, no attributes.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewGraph() Graph {
	return Graph{Attrs: attributes.New()}
}

// AttributeMap designates Attrs as the node's attribute store.
func (n *Node) AttributeMap() *attributes.Map { return &n.Attrs }

// GetAttr returns the node attribute name, if present.
func (n Node) GetAttr(name string) (string, bool) { return attributes.Get(&n, name) }

// WithAttrs returns a copy of n with pairs merged into its attributes.
func (n Node) WithAttrs(pairs ...attributes.Pair) Node { return attributes.With(n, pairs...) }

// AttributeMap designates Attrs as the edge's attribute store.
func (e *Edge) AttributeMap() *attributes.Map { return &e.Attrs }

// GetAttr returns the edge attribute name, if present.
func (e Edge) GetAttr(name string) (string, bool) { return attributes.Get(&e, name) }

// WithAttrs returns a copy of e with pairs merged into its attributes.
func (e Edge) WithAttrs(pairs ...attributes.Pair) Edge { return attributes.With(e, pairs...) }

// AttributeMap designates Attrs as the graph's attribute store.
func (g *Graph) AttributeMap() *attributes.Map { return &g.Attrs }

// GetAttr returns the graph-level attribute name, if present.
func (g Graph) GetAttr(name string) (string, bool) { return attributes.Get(&g, name) }

// WithAttrs returns a copy of g with pairs merged into its graph-level attributes.
// Nodes and edges are carried over as clones, so the result shares nothing with g.
func (g Graph) WithAttrs(pairs ...attributes.Pair) Graph { return attributes.With(g.Clone(), pairs...) }
