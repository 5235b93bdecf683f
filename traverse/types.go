// Package traverse defines the node shape, predicate and visit types used by
// the traversal engine, together with its sentinel errors.
package traverse

import "errors"

// ErrNodeNotFound is returned when a predicate matches no node of the tree.
var ErrNodeNotFound = errors.New("traverse: node not found")

// Walkable is the shape every traversable node exposes: an ordered list of
// children addressed by index. Child(i) is only called for 0 ≤ i < ChildCount().
type Walkable[N any] interface {
	ChildCount() int
	Child(i int) N
}

// Predicate selects nodes during a search. Predicates must be pure: FindAll
// evaluates every predicate against every visited node in a single pass.
type Predicate[N any] func(N) bool

// Visit pairs a node with the payload carried to it by DepthFirstPayload.
type Visit[N any, P any] struct {
	// Node is the node being visited.
	Node N

	// Payload is the value computed for Node from its parent's Visit
	// (or the root payload for the root).
	Payload P
}
