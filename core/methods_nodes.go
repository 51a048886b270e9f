// File: methods_nodes.go
// Role: Node builder and lookup on Graph.
//
// Determinism:
//   - Nodes keep insertion order; GetNode returns the first match.
//
// AI-Hints (file):
//   - WithNodes never deduplicates. Use Validate to detect repeated names.

package core

import "slices"

// WithNodes returns a copy of g with clones of nodes appended after its existing nodes.
//
// Implementation:
//   - Stage 1: Clone g, so existing nodes, edges and attributes are owned by the result.
//   - Stage 2: Grow the node slice once, then append a Clone of each input node.
//
// Behavior highlights:
//   - The receiver and the input slice are never modified or retained.
//   - The result owns every node: writes through it never reach g.
//   - Repeated calls are additive: the first batch precedes the second.
//
// Complexity:
//   - Time O((N+E+k)·a) where k=len(nodes), a=attributes per entity.
func (g Graph) WithNodes(nodes ...Node) Graph {
	out := g.Clone()
	out.Nodes = slices.Grow(out.Nodes, len(nodes))
	for _, n := range nodes {
		out.Nodes = append(out.Nodes, n.Clone())
	}

	return out
}

// GetNode returns the first node whose Name equals name.
// The result shares its attribute store with g; Clone it before calling Set.
//
// Complexity: O(N) linear scan.
func (g Graph) GetNode(name string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n, true
		}
	}

	return Node{}, false
}

// LookupNode is GetNode for any string-like name type.
// Go methods cannot take type parameters, so this lives as a function.
func LookupNode[N ~string](g Graph, name N) (Node, bool) {
	return g.GetNode(string(name))
}

// NodeNames returns node names in insertion order, duplicates included.
func (g Graph) NodeNames() []string {
	names := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}

	return names
}
