// SPDX-License-Identifier: MIT
// Package core_test verifies constructors, attribute containers and equality.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attrgraph/attributes"
	"github.com/katalvlaran/attrgraph/core"
)

// TestNewNode ASSERTS a fresh node carries its name and no attributes.
func TestNewNode(t *testing.T) {
	n := core.NewNode(NodeA)

	require.Equal(t, NodeA, n.Name)
	require.True(t, n.Attrs.IsEmpty())
	_, ok := n.GetAttr(AttrColor)
	require.False(t, ok)
}

// TestNewEdge ASSERTS endpoints are stored positionally from string-like inputs.
func TestNewEdge(t *testing.T) {
	e := core.NewEdge(nodeID(NodeA), NodeB)

	require.Equal(t, NodeA, e.A)
	require.Equal(t, NodeB, e.B)
	require.True(t, e.Attrs.IsEmpty())
}

// TestNewGraph ASSERTS an empty graph.
func TestNewGraph(t *testing.T) {
	g := core.NewGraph()

	require.Empty(t, g.Nodes)
	require.Empty(t, g.Edges)
	require.True(t, g.Attrs.IsEmpty())
}

// TestWithAttrs_AllEntities ASSERTS every entity's WithAttrs/GetAttr behaves
// like Extend/Get on its own store.
func TestWithAttrs_AllEntities(t *testing.T) {
	batch := append(ColorShape(), attributes.Of(AttrColor, Blue))
	var want attributes.Map
	want.Extend(batch...)

	n := core.NewNode(NodeA).WithAttrs(batch...)
	e := core.NewEdge(NodeA, NodeB).WithAttrs(batch...)
	g := core.NewGraph().WithAttrs(batch...)

	for label, c := range map[string]struct {
		store attributes.Map
		get   func(string) (string, bool)
	}{
		"node":  {n.Attrs, n.GetAttr},
		"edge":  {e.Attrs, e.GetAttr},
		"graph": {g.Attrs, g.GetAttr},
	} {
		require.True(t, c.store.Equal(want), label)
		for _, name := range []string{AttrColor, AttrShape, AttrLabel} {
			wantV, wantOK := want.Get(name)
			gotV, gotOK := c.get(name)
			require.Equal(t, wantOK, gotOK, "%s.%s", label, name)
			require.Equal(t, wantV, gotV, "%s.%s", label, name)
		}
	}
	v, _ := n.GetAttr(AttrColor)
	require.Equal(t, Blue, v, "later pair wins")
}

// TestWithAttrs_KeepsIdentity ASSERTS builders never touch identity fields.
func TestWithAttrs_KeepsIdentity(t *testing.T) {
	n := core.NewNode(NodeA).WithAttrs(ColorShape()...)
	e := core.NewEdge(NodeA, NodeB).WithAttrs(ColorShape()...)
	g := NewGraphAB().WithAttrs(ColorShape()...)

	require.Equal(t, NodeA, n.Name)
	require.Equal(t, NodeA, e.A)
	require.Equal(t, NodeB, e.B)
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
}

// TestWithAttrs_NoAliasing ASSERTS the receiver of a builder stays unchanged.
func TestWithAttrs_NoAliasing(t *testing.T) {
	base := core.NewNode(NodeA).WithAttrs(attributes.Of(AttrColor, Red))
	derived := base.WithAttrs(attributes.Of(AttrColor, Blue))

	v, _ := base.GetAttr(AttrColor)
	require.Equal(t, Red, v)
	v, _ = derived.GetAttr(AttrColor)
	require.Equal(t, Blue, v)
}

// TestEqual_Node ASSERTS structural equality regardless of attribute order.
func TestEqual_Node(t *testing.T) {
	n1 := core.NewNode(NodeA).WithAttrs(attributes.Of(AttrColor, Red), attributes.Of(AttrShape, Box))
	n2 := core.NewNode(NodeA).WithAttrs(attributes.Of(AttrShape, Box), attributes.Of(AttrColor, Red))

	require.True(t, n1.Equal(n2))
	require.Empty(t, cmp.Diff(n1, n2))
	require.False(t, n1.Equal(core.NewNode(NodeB).WithAttrs(ColorShape()...)))
	require.False(t, n1.Equal(core.NewNode(NodeA)))
}

// TestEqual_EdgeIsPositional ASSERTS (a,b) differs from (b,a).
func TestEqual_EdgeIsPositional(t *testing.T) {
	ab := core.NewEdge(NodeA, NodeB)

	require.True(t, ab.Equal(core.NewEdge(NodeA, NodeB)))
	require.False(t, ab.Equal(core.NewEdge(NodeB, NodeA)))
	require.False(t, ab.Equal(ab.WithAttrs(attributes.Of(AttrLabel, NodeX))))
}

// TestEqual_Graph ASSERTS order-sensitive sequences and order-insensitive attributes.
func TestEqual_Graph(t *testing.T) {
	g1 := NewGraphAB().WithAttrs(attributes.Of(AttrColor, Red), attributes.Of(AttrShape, Box))
	g2 := NewGraphAB().WithAttrs(attributes.Of(AttrShape, Box), attributes.Of(AttrColor, Red))
	require.True(t, g1.Equal(g2))
	require.Empty(t, cmp.Diff(g1, g2))

	swapped := core.NewGraph().
		WithNodes(core.NewNode(NodeB), core.NewNode(NodeA)).
		WithEdges(core.NewEdge(NodeA, NodeB))
	require.False(t, NewGraphAB().Equal(swapped), "node order matters")
	require.True(t, core.NewGraph().Equal(core.Graph{}), "nil and empty sequences are equal")
}

// TestClone_Independent ASSERTS a cloned graph shares no state with its source.
func TestClone_Independent(t *testing.T) {
	g := NewGraphAB().WithAttrs(ColorShape()...)
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Nodes[0].Attrs.Set(AttrLabel, NodeX)
	c.Edges[0].Attrs.Set(AttrLabel, NodeX)
	c.Attrs.Set(AttrColor, Blue)
	c.Nodes[1].Name = NodeC

	_, ok := g.Nodes[0].GetAttr(AttrLabel)
	require.False(t, ok)
	_, ok = g.Edges[0].GetAttr(AttrLabel)
	require.False(t, ok)
	v, _ := g.GetAttr(AttrColor)
	require.Equal(t, Red, v)
	require.Equal(t, NodeB, g.Nodes[1].Name)
}
