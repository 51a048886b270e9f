// Package attrgraph is a small in-memory graph data model in which every
// entity (node, edge, graph) carries an open set of string attributes.
//
// What is in the box?
//
//	attributes/ — Map, the ordered string→string store, and the Container
//	              capability with its generic Get/With derivation
//	core/       — Node, Edge and Graph value types, builder-style
//	              construction, first-match lookups and opt-in Validate
//	examples/   — a runnable network built and rendered through read accessors
//
// Quick example:
//
//	g := core.NewGraph().
//		WithNodes(core.NewNode("a"), core.NewNode("b")).
//		WithEdges(core.NewEdge("a", "b").WithAttrs(attributes.Of("color", "red")))
//
//	    a───b   (color=red)
//
// What is deliberately not here: traversal or search algorithms, cycle
// detection, persistence formats and concurrency control. Serializers such
// as DOT writers are collaborators; attributes.Map implements gonum's
// encoding.Attributer so they can consume attributes directly.
//
//	go get github.com/katalvlaran/attrgraph
package attrgraph
