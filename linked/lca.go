package linked

import "fmt"

// LowestCommonAncestor locates the first nodes matching predA and predB in a
// single depth-first pass over n and returns their lowest common ancestor.
//
// Errors:
//   - ErrNodeNotFound naming "first" or "second" when a predicate matches nothing.
//   - ErrAncestorNotFound never, for nodes found in the same tree.
func (n *Node[T]) LowestCommonAncestor(predA, predB func(*Node[T]) bool) (*Node[T], error) {
	found := n.FindNodes(predA, predB)
	if found[0] == nil {
		return nil, fmt.Errorf("linked: first provided node is not part of the tree: %w", ErrNodeNotFound)
	}
	if found[1] == nil {
		return nil, fmt.Errorf("linked: second provided node is not part of the tree: %w", ErrNodeNotFound)
	}

	return LowestCommonAncestorOf(found[0], found[1])
}

// LowestCommonAncestorOf returns the deepest node that is an ancestor of both
// a and b (a node is its own ancestor).
//
// Algorithm:
//  1. Replace the deeper cursor by its parent until both generations match.
//  2. While the cursors differ by value, replace both by their parents.
//
// Running out of parents before the cursors meet means a and b are not in the
// same tree; that is reported as ErrAncestorNotFound.
// Complexity: O(depth) time, O(1) memory.
func LowestCommonAncestorOf[T comparable](a, b *Node[T]) (*Node[T], error) {
	if a == nil {
		return nil, fmt.Errorf("linked: first node is nil: %w", ErrNodeNotFound)
	}
	if b == nil {
		return nil, fmt.Errorf("linked: second node is nil: %w", ErrNodeNotFound)
	}
	notFound := func() error {
		return fmt.Errorf("linked: nodes %v and %v: %w", a.value, b.value, ErrAncestorNotFound)
	}

	x, y := a, b
	// 1. Level-align
	for x.generation > y.generation {
		if x = x.parent; x == nil {
			return nil, notFound()
		}
	}
	for y.generation > x.generation {
		if y = y.parent; y == nil {
			return nil, notFound()
		}
	}

	// 2. Lockstep climb
	for !x.Equal(y) {
		if x.parent == nil || y.parent == nil {
			return nil, notFound()
		}
		x, y = x.parent, y.parent
	}

	return x, nil
}
