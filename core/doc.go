// Package core provides the three attribute-carrying graph entities: Node,
// Edge and Graph.
//
// Every entity is a plain value with exported fields and an attributes.Map
// designated as its attribute store, so all three satisfy
// attributes.Container and share one implementation of GetAttr/WithAttrs.
//
// Construction is builder style. Each With* method takes the entity by value
// and returns the updated copy, so calls chain left to right and never mutate
// a value already held elsewhere:
//
//	g := core.NewGraph().
//		WithNodes(
//			core.NewNode("a").WithAttrs(attributes.Of("shape", "box")),
//			core.NewNode("b"),
//		).
//		WithEdges(core.NewEdge("a", "b").WithAttrs(attributes.Of("color", "red"))).
//		WithAttrs(attributes.Of("rankdir", "LR"))
//
// Core Methods:
//
//	// Construct
//	NewNode(name string) Node                 // O(1)
//	NewEdge(a, b ~string) Edge                // O(1)
//	NewGraph() Graph                          // O(1)
//
//	// Configure (all return the updated copy)
//	WithAttrs(pairs ...attributes.Pair)       // Node, Edge, Graph
//	WithNodes(nodes ...Node) Graph            // O(N+k), clones inputs
//	WithEdges(edges ...Edge) Graph            // O(E+k), clones inputs
//
//	// Read
//	GetAttr(name string) (string, bool)       // Node, Edge, Graph
//	GetNode(name string) (Node, bool)         // first match, O(N)
//	LookupNode(g, name ~string) (Node, bool)  // GetNode for named string types
//	GetEdge(a, b string) (Edge, bool)         // first positional match, O(E)
//	NodeNames() []string                      // insertion order
//
//	// Compare & copy
//	Equal / Clone                             // Node, Edge, Graph
//
//	// Opt-in integrity check
//	Validate() error                          // ErrDuplicateNode, ErrDanglingEndpoint
//
// String-like inputs:
//
// NewEdge and attributes.Of are generic over ~string. Methods cannot be
// generic in Go, so GetNode and GetEdge take plain string; LookupNode is the
// generic form of GetNode.
//
// Identity rules:
//
//   - A Node is identified by Name. The Graph permits repeated names; GetNode
//     returns the first.
//   - An Edge is an ordered pair (A, B). Edge(a,b) does not equal Edge(b,a).
//   - Edges may reference names that are not in Graph.Nodes. Builders do not
//     reject that; call Validate when a collaborator needs a well-formed graph.
//
// Entities are not safe for concurrent mutation. Share a Graph across
// goroutines only behind external synchronization.
package core
