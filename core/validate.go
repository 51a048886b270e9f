// File: validate.go
// Role: Opt-in well-formedness check for collaborators.
// Policy:
//   - Builders never call Validate; a Graph with dangling edges or repeated
//     node names is a legal value.
// AI-HINT (file):
//   - Match with errors.Is(err, ErrDanglingEndpoint) / ErrDuplicateNode, or
//     errors.As(err, &*EndpointError) for the offending edge.

package core

import (
	"errors"
	"fmt"
)

// Validate reports every repeated node name and every edge endpoint that
// names no node, joined with errors.Join. It returns nil for a well-formed graph.
//
// Implementation:
//   - Stage 1: Index node names; report each name the second time it appears.
//   - Stage 2: Check A then B of every edge against the index; a self-loop
//     on a missing name is reported once.
//
// Determinism:
//   - Problems are reported in node order, then edge order.
//
// Complexity:
//   - Time O(N + E), Space O(N).
func (g Graph) Validate() error {
	var errs []error
	seen := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		seen[n.Name]++
		if seen[n.Name] == 2 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name))
		}
	}
	for i, e := range g.Edges {
		if _, ok := seen[e.A]; !ok {
			errs = append(errs, &EndpointError{Index: i, A: e.A, B: e.B, Missing: e.A})
		}
		if _, ok := seen[e.B]; !ok && e.B != e.A {
			errs = append(errs, &EndpointError{Index: i, A: e.A, B: e.B, Missing: e.B})
		}
	}

	return errors.Join(errs...)
}
