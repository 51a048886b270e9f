// File: types.go
// Role: Entity types, sentinel errors, and EndpointError.
//
// Errors:
//
//	ErrDanglingEndpoint - an edge endpoint names no node of the graph.
//	ErrDuplicateNode    - two nodes of the graph share a name.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/attrgraph/attributes"
)

// Sentinel errors for opt-in graph validation.
var (
	// ErrDanglingEndpoint indicates an edge references a node name absent from Graph.Nodes.
	ErrDanglingEndpoint = errors.New("core: edge endpoint not found")

	// ErrDuplicateNode indicates a node name occurs more than once in Graph.Nodes.
	ErrDuplicateNode = errors.New("core: duplicate node name")
)

// Node is a named vertex carrying attributes.
//
// Name identifies the node within a Graph. Uniqueness is an expectation of
// the Graph, not something NewNode or WithNodes enforce.
type Node struct {
	// Name is the node identity. No method renames a node.
	Name string

	// Attrs is the designated attribute store.
	Attrs attributes.Map
}

// Edge connects two node names.
//
// Endpoints are stored positionally: Edge{A:"x",B:"y"} and Edge{A:"y",B:"x"}
// are different values. Endpoints are not checked against any graph.
type Edge struct {
	// A is the first endpoint name.
	A string

	// B is the second endpoint name.
	B string

	// Attrs is the designated attribute store.
	Attrs attributes.Map
}

// Graph aggregates nodes and edges in insertion order, plus graph-level attributes.
//
// Nodes and Edges are append-only through the builders. Duplicate node names
// and edges to unknown nodes are permitted; see Validate for an opt-in check.
type Graph struct {
	// Nodes in insertion order.
	Nodes []Node

	// Edges in insertion order.
	Edges []Edge

	// Attrs is the designated attribute store.
	Attrs attributes.Map
}

// Entities are attribute containers; these fail to compile if a designation
// or a forwarding method goes missing.
var (
	_ attributes.Container[Node]  = Node{}
	_ attributes.Container[Edge]  = Edge{}
	_ attributes.Container[Graph] = Graph{}

	_ attributes.Holder = (*Node)(nil)
	_ attributes.Holder = (*Edge)(nil)
	_ attributes.Holder = (*Graph)(nil)
)

// EndpointError reports an edge whose endpoint is missing from the graph.
// It wraps ErrDanglingEndpoint.
type EndpointError struct {
	// Index is the position of the edge in Graph.Edges.
	Index int

	// A, B are the edge endpoints.
	A, B string

	// Missing is the endpoint name that matched no node.
	Missing string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("core: edge #%d %q-%q: endpoint %q not found", e.Index, e.A, e.B, e.Missing)
}

// Unwrap lets errors.Is match ErrDanglingEndpoint.
func (e *EndpointError) Unwrap() error { return ErrDanglingEndpoint }
