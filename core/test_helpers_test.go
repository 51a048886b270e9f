// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for attrgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for Node/Edge/Graph contracts.
//   - Keep assertion style uniform (testify require).

package core_test

import (
	"github.com/katalvlaran/attrgraph/attributes"
	"github.com/katalvlaran/attrgraph/core"
)

// Common node names used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeX = "x"
)

// Common attribute names and values used across core tests.
const (
	AttrColor = "color"
	AttrShape = "shape"
	AttrLabel = "label"

	Red  = "red"
	Blue = "blue"
	Box  = "box"
)

// nodeID is a named identifier type; NewEdge must accept it directly.
type nodeID string

// NewGraphAB RETURNS the graph {a, b} with a single edge a-b.
//
// Notes:
//   - Mirrors the canonical construction example; reuse it when a test needs
//     a small well-formed graph and does not care about attributes.
func NewGraphAB() core.Graph {
	return core.NewGraph().
		WithNodes(core.NewNode(NodeA), core.NewNode(NodeB)).
		WithEdges(core.NewEdge(NodeA, NodeB))
}

// ColorShape RETURNS the batch {color: red, shape: box}.
func ColorShape() []attributes.Pair {
	return []attributes.Pair{
		attributes.Of(AttrColor, Red),
		attributes.Of(AttrShape, Box),
	}
}
