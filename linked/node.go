package linked

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvtree/render"
	"github.com/katalvlaran/lvtree/traverse"
)

// Sentinel errors for linked trees.
var (
	// ErrNodeNotFound is returned when a search predicate matches no node.
	ErrNodeNotFound = traverse.ErrNodeNotFound

	// ErrAncestorNotFound is returned when an ancestor climb runs out of
	// parents before the two cursors meet.
	ErrAncestorNotFound = errors.New("linked: no common ancestor found")

	// ErrParentAlreadySet is returned when a node that already has a parent
	// is offered as a child again.
	ErrParentAlreadySet = errors.New("linked: node already has a parent")

	// ErrGenerationMismatch is returned when a child's generation is not its
	// parent's generation plus one, or a generation is negative.
	ErrGenerationMismatch = errors.New("linked: generation mismatch")
)

// Node is a tree node that knows its parent and its generation.
type Node[T comparable] struct {
	value      T
	generation int
	children   []*Node[T]
	parent     *Node[T] // non-owning; nil for the root, set once by New
}

// New builds a node at the given generation and links every child back to it.
// Nil children are dropped. Validation runs before any link is written, so a
// failed call leaves the children untouched.
//
// Errors:
//   - ErrGenerationMismatch if generation < 0 or a child's generation is not
//     generation+1.
//   - ErrParentAlreadySet if a child already has a parent or appears twice.
func New[T comparable](value T, generation int, children ...*Node[T]) (*Node[T], error) {
	// 1. Validate generation and children
	if generation < 0 {
		return nil, fmt.Errorf("linked: node %v has generation %d: %w", value, generation, ErrGenerationMismatch)
	}
	kept := make([]*Node[T], 0, len(children))
	seen := make(map[*Node[T]]struct{}, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.generation != generation+1 {
			return nil, fmt.Errorf("linked: child %v of %v has generation %d, want %d: %w",
				c.value, value, c.generation, generation+1, ErrGenerationMismatch)
		}
		if _, dup := seen[c]; dup || c.parent != nil {
			return nil, fmt.Errorf("linked: child %v of %v: %w", c.value, value, ErrParentAlreadySet)
		}
		seen[c] = struct{}{}
		kept = append(kept, c)
	}

	// 2. Build the parent, then point the children at it
	n := &Node[T]{value: value, generation: generation, children: kept}
	for _, c := range kept {
		c.parent = n
	}

	return n, nil
}

// HasValue returns a predicate matching nodes whose value equals v.
func HasValue[T comparable](v T) func(*Node[T]) bool {
	return func(n *Node[T]) bool { return n.value == v }
}

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// Generation returns n's distance from the root (root = 0).
func (n *Node[T]) Generation() int { return n.generation }

// Parent returns n's parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node[T]) IsRoot() bool { return n.parent == nil }

// Root climbs to the top of n's tree.
func (n *Node[T]) Root() *Node[T] {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// Ancestors yields n's parent, grandparent, ... up to the root.
func (n *Node[T]) Ancestors() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := n.parent; cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// Path returns the nodes from the root down to n, both included.
func (n *Node[T]) Path() []*Node[T] {
	path := []*Node[T]{n}
	for a := range n.Ancestors() {
		path = append(path, a)
	}
	slices.Reverse(path)

	return path
}

// Children returns a copy of n's children in insertion order.
func (n *Node[T]) Children() []*Node[T] { return slices.Clone(n.children) }

// ChildCount returns the number of children of n.
func (n *Node[T]) ChildCount() int { return len(n.children) }

// Child returns the i-th child of n. It panics if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] { return n.children[i] }

// Equal reports whether n and other hold equal values. Structure, generation
// and parent are ignored.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.value == other.value
}

// String returns "LinkedNode(<value>)".
func (n *Node[T]) String() string { return fmt.Sprintf("LinkedNode(%v)", n.value) }

// StringTree renders the subtree rooted at n in the box-drawing display format.
func (n *Node[T]) StringTree() string {
	return render.Text(n, func(x *Node[T]) string { return fmt.Sprint(x.value) })
}

// DepthFirst visits the subtree in depth-first pre-order.
func (n *Node[T]) DepthFirst(visit func(*Node[T])) { traverse.DepthFirst(n, visit) }

// DepthFirstUntil is DepthFirst with early termination.
func (n *Node[T]) DepthFirstUntil(visit func(*Node[T]) bool) bool {
	return traverse.DepthFirstUntil(n, visit)
}

// BreadthFirst visits the subtree level by level.
func (n *Node[T]) BreadthFirst(visit func(*Node[T])) { traverse.BreadthFirst(n, visit) }

// BreadthFirstUntil is BreadthFirst with early termination.
func (n *Node[T]) BreadthFirstUntil(visit func(*Node[T]) bool) bool {
	return traverse.BreadthFirstUntil(n, visit)
}

// All returns the depth-first walk as a sequence.
func (n *Node[T]) All() iter.Seq[*Node[T]] { return traverse.All(n) }
