package binary

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvtree/render"
	"github.com/katalvlaran/lvtree/traverse"
)

// Node is an immutable binary tree node. Either child may be nil.
type Node[T comparable] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// New returns a node holding value with the given children (nil = absent).
func New[T comparable](value T, left, right *Node[T]) *Node[T] {
	return &Node[T]{value: value, left: left, right: right}
}

// Leaf returns a node without children.
func Leaf[T comparable](value T) *Node[T] { return &Node[T]{value: value} }

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// ChildCount returns the number of present children (0, 1 or 2).
func (n *Node[T]) ChildCount() int {
	count := 0
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}

	return count
}

// Child returns the i-th present child: left before right, absent children
// skipped. It panics if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	switch {
	case i == 0 && n.left != nil:
		return n.left
	case i == 0 && n.right != nil, i == 1 && n.left != nil && n.right != nil:
		return n.right
	}
	panic(fmt.Sprintf("binary: child index %d out of range [0,%d)", i, n.ChildCount()))
}

// Equal reports whether n and other hold equal values; children are ignored.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.value == other.value
}

// String returns "BinaryNode(<value>)".
func (n *Node[T]) String() string { return fmt.Sprintf("BinaryNode(%v)", n.value) }

// StringTree renders the subtree rooted at n in the box-drawing display format.
// A lone child is drawn as the last child whichever side it is on.
func (n *Node[T]) StringTree() string {
	return render.Text(n, func(x *Node[T]) string { return fmt.Sprint(x.value) })
}

// PreOrderUntil visits self, left subtree, right subtree, stopping on the
// first true from visit. It reports whether it stopped.
func (n *Node[T]) PreOrderUntil(visit func(*Node[T]) bool) bool {
	if visit(n) {
		return true
	}
	if n.left != nil && n.left.PreOrderUntil(visit) {
		return true
	}

	return n.right != nil && n.right.PreOrderUntil(visit)
}

// PreOrder visits every node self, left, right.
func (n *Node[T]) PreOrder(visit func(*Node[T])) {
	n.PreOrderUntil(func(x *Node[T]) bool {
		visit(x)
		return false
	})
}

// InOrderUntil visits left subtree, self, right subtree, stopping on the
// first true from visit. It reports whether it stopped.
func (n *Node[T]) InOrderUntil(visit func(*Node[T]) bool) bool {
	if n.left != nil && n.left.InOrderUntil(visit) {
		return true
	}
	if visit(n) {
		return true
	}

	return n.right != nil && n.right.InOrderUntil(visit)
}

// InOrder visits every node left, self, right.
func (n *Node[T]) InOrder(visit func(*Node[T])) {
	n.InOrderUntil(func(x *Node[T]) bool {
		visit(x)
		return false
	})
}

// PostOrderUntil visits left subtree, right subtree, self, stopping on the
// first true from visit. It reports whether it stopped.
func (n *Node[T]) PostOrderUntil(visit func(*Node[T]) bool) bool {
	if n.left != nil && n.left.PostOrderUntil(visit) {
		return true
	}
	if n.right != nil && n.right.PostOrderUntil(visit) {
		return true
	}

	return visit(n)
}

// PostOrder visits every node left, right, self.
func (n *Node[T]) PostOrder(visit func(*Node[T])) {
	n.PostOrderUntil(func(x *Node[T]) bool {
		visit(x)
		return false
	})
}

// DepthFirst visits the subtree depth-first with an explicit stack.
func (n *Node[T]) DepthFirst(visit func(*Node[T])) { traverse.DepthFirst(n, visit) }

// DepthFirstUntil is DepthFirst with early termination.
func (n *Node[T]) DepthFirstUntil(visit func(*Node[T]) bool) bool {
	return traverse.DepthFirstUntil(n, visit)
}

// BreadthFirst visits the subtree level by level, left before right.
func (n *Node[T]) BreadthFirst(visit func(*Node[T])) { traverse.BreadthFirst(n, visit) }

// BreadthFirstUntil is BreadthFirst with early termination.
func (n *Node[T]) BreadthFirstUntil(visit func(*Node[T]) bool) bool {
	return traverse.BreadthFirstUntil(n, visit)
}

// All returns the depth-first walk as a sequence.
func (n *Node[T]) All() iter.Seq[*Node[T]] { return traverse.All(n) }
