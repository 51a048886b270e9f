// File: methods_edges.go
// Role: Edge builder and lookup on Graph.
//
// Determinism:
//   - Edges keep insertion order; GetEdge returns the first positional match.
//
// AI-Hints (file):
//   - Endpoints are not checked against Nodes here. Validate does that on request.

package core

import "slices"

// WithEdges returns a copy of g with clones of edges appended after its existing edges.
// The receiver and the input slice are never modified or retained. The result
// is built on g.Clone(), so it owns every node, edge and attribute it holds.
//
// Complexity: O((N+E+k)·a) where k=len(edges), a=attributes per entity.
func (g Graph) WithEdges(edges ...Edge) Graph {
	out := g.Clone()
	out.Edges = slices.Grow(out.Edges, len(edges))
	for _, e := range edges {
		out.Edges = append(out.Edges, e.Clone())
	}

	return out
}

// GetEdge returns the first edge with A==a and B==b.
// Matching is positional; GetEdge(b, a) does not find Edge{A:a, B:b}.
// The result shares its attribute store with g.
//
// Complexity: O(E) linear scan.
func (g Graph) GetEdge(a, b string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.A == a && e.B == b {
			return e, true
		}
	}

	return Edge{}, false
}
