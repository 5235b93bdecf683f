package tree

import (
	"fmt"

	"github.com/katalvlaran/lvtree/traverse"
)

// FindNode returns the first node, in depth-first order, matching pred.
// Returns ErrNodeNotFound when nothing matches.
func (n *Node[T]) FindNode(pred func(*Node[T]) bool) (*Node[T], error) {
	found, err := traverse.Find(n, pred)
	if err != nil {
		return nil, fmt.Errorf("tree: FindNode: %w", err)
	}

	return found, nil
}

// FindNodes returns, for each predicate, the first node it matches, using a
// single depth-first pass. Unmatched slots are nil; that is not an error.
func (n *Node[T]) FindNodes(preds ...func(*Node[T]) bool) []*Node[T] {
	return traverse.FindAll(n, asPredicates(preds)...)
}

// GenerationOf returns the distance from n of the first node matching pred
// (n itself is generation 0). Returns ErrNodeNotFound when nothing matches.
func (n *Node[T]) GenerationOf(pred func(*Node[T]) bool) (int, error) {
	gen, err := traverse.Generation(n, pred)
	if err != nil {
		return 0, fmt.Errorf("tree: GenerationOf: %w", err)
	}

	return gen, nil
}

// LookupGeneration is GenerationOf without the error: ok is false when
// nothing matches.
func (n *Node[T]) LookupGeneration(pred func(*Node[T]) bool) (gen int, ok bool) {
	return traverse.LookupGeneration(n, pred)
}

// ParentOf returns the parent of the first node matching pred. It returns
// (nil, nil) when pred matches n itself, and ErrNodeNotFound when pred
// matches nothing.
func (n *Node[T]) ParentOf(pred func(*Node[T]) bool) (*Node[T], error) {
	parent, _, err := traverse.ParentOf(n, pred)
	if err != nil {
		return nil, fmt.Errorf("tree: ParentOf: %w", err)
	}

	return parent, nil
}

func asPredicates[N any](fns []func(N) bool) []traverse.Predicate[N] {
	out := make([]traverse.Predicate[N], len(fns))
	for i, fn := range fns {
		out[i] = fn
	}

	return out
}
