// File: methods_clone.go
// Role: Deep copies and structural equality for every entity.
// Determinism:
//   - Clone preserves node/edge order and attribute iteration order.
//   - Equal compares nodes/edges positionally, attributes order-insensitively.
// AI-HINT (file):
//   - Equal methods are picked up by github.com/google/go-cmp, so cmp.Diff
//     works on entities without options.

package core

// Clone returns a Node with an independent attribute store.
func (n Node) Clone() Node {
	n.Attrs = n.Attrs.Clone()
	return n
}

// Equal reports whether n and o have the same name and attributes.
func (n Node) Equal(o Node) bool {
	return n.Name == o.Name && n.Attrs.Equal(o.Attrs)
}

// Clone returns an Edge with an independent attribute store.
func (e Edge) Clone() Edge {
	e.Attrs = e.Attrs.Clone()
	return e
}

// Equal reports whether e and o have the same endpoints in the same positions
// and the same attributes.
func (e Edge) Equal(o Edge) bool {
	return e.A == o.A && e.B == o.B && e.Attrs.Equal(o.Attrs)
}

// Clone returns a deep copy of g: fresh node and edge slices, each entry and
// the graph attributes cloned.
//
// Complexity: O(N + E + total attributes).
func (g Graph) Clone() Graph {
	out := Graph{Attrs: g.Attrs.Clone()}
	if g.Nodes != nil {
		out.Nodes = make([]Node, len(g.Nodes))
		for i, n := range g.Nodes {
			out.Nodes[i] = n.Clone()
		}
	}
	if g.Edges != nil {
		out.Edges = make([]Edge, len(g.Edges))
		for i, e := range g.Edges {
			out.Edges[i] = e.Clone()
		}
	}

	return out
}

// Equal reports whether g and o hold equal nodes and edges in the same order
// and equal graph attributes. A nil and an empty sequence are equal.
func (g Graph) Equal(o Graph) bool {
	if len(g.Nodes) != len(o.Nodes) || len(g.Edges) != len(o.Edges) {
		return false
	}
	for i := range g.Nodes {
		if !g.Nodes[i].Equal(o.Nodes[i]) {
			return false
		}
	}
	for i := range g.Edges {
		if !g.Edges[i].Equal(o.Edges[i]) {
			return false
		}
	}

	return g.Attrs.Equal(o.Attrs)
}
