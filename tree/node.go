package tree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvtree/render"
	"github.com/katalvlaran/lvtree/traverse"
)

// ErrNodeNotFound is returned when a search predicate matches no node.
var ErrNodeNotFound = traverse.ErrNodeNotFound

// Node is an immutable multi-child tree node.
type Node[T comparable] struct {
	value    T
	children []*Node[T]
}

// New returns a node holding value with the given children, in order.
// Nil children are dropped. The children slice is copied.
func New[T comparable](value T, children ...*Node[T]) *Node[T] {
	kept := make([]*Node[T], 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}

	return &Node[T]{value: value, children: kept}
}

// HasValue returns a predicate matching nodes whose value equals v.
func HasValue[T comparable](v T) func(*Node[T]) bool {
	return func(n *Node[T]) bool { return n.value == v }
}

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// Children returns a copy of n's children in insertion order.
func (n *Node[T]) Children() []*Node[T] { return slices.Clone(n.children) }

// ChildCount returns the number of children of n.
func (n *Node[T]) ChildCount() int { return len(n.children) }

// Child returns the i-th child of n. It panics if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] { return n.children[i] }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

// Equal reports whether n and other hold equal values. Children are not
// compared. Two nil nodes are equal; a nil and a non-nil node are not.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.value == other.value
}

// String returns "TreeNode(<value>)".
func (n *Node[T]) String() string { return fmt.Sprintf("TreeNode(%v)", n.value) }

// StringTree renders the subtree rooted at n in the box-drawing display format.
func (n *Node[T]) StringTree() string {
	return render.Text(n, func(x *Node[T]) string { return fmt.Sprint(x.value) })
}

// DepthFirst visits the subtree in depth-first pre-order.
func (n *Node[T]) DepthFirst(visit func(*Node[T])) { traverse.DepthFirst(n, visit) }

// DepthFirstUntil visits in depth-first pre-order until visit returns true,
// reporting whether it did.
func (n *Node[T]) DepthFirstUntil(visit func(*Node[T]) bool) bool {
	return traverse.DepthFirstUntil(n, visit)
}

// BreadthFirst visits the subtree level by level.
func (n *Node[T]) BreadthFirst(visit func(*Node[T])) { traverse.BreadthFirst(n, visit) }

// BreadthFirstUntil visits level by level until visit returns true,
// reporting whether it did.
func (n *Node[T]) BreadthFirstUntil(visit func(*Node[T]) bool) bool {
	return traverse.BreadthFirstUntil(n, visit)
}

// All returns the depth-first walk of the subtree as a sequence.
func (n *Node[T]) All() iter.Seq[*Node[T]] { return traverse.All(n) }

// Values returns the values of the subtree in depth-first order.
func (n *Node[T]) Values() []T {
	var out []T
	n.DepthFirst(func(x *Node[T]) { out = append(out, x.value) })

	return out
}
