package linked

import (
	"fmt"

	"github.com/katalvlaran/lvtree/traverse"
)

// FindNode returns the first node, in depth-first order, matching pred.
func (n *Node[T]) FindNode(pred func(*Node[T]) bool) (*Node[T], error) {
	found, err := traverse.Find(n, pred)
	if err != nil {
		return nil, fmt.Errorf("linked: FindNode: %w", err)
	}

	return found, nil
}

// FindNodes returns the first match of every predicate from one depth-first
// pass; unmatched slots are nil.
func (n *Node[T]) FindNodes(preds ...func(*Node[T]) bool) []*Node[T] {
	ps := make([]traverse.Predicate[*Node[T]], len(preds))
	for i, p := range preds {
		ps[i] = p
	}

	return traverse.FindAll(n, ps...)
}

// GenerationOf returns the distance from n of the first node matching pred.
// On the root this equals the matched node's Generation.
func (n *Node[T]) GenerationOf(pred func(*Node[T]) bool) (int, error) {
	gen, err := traverse.Generation(n, pred)
	if err != nil {
		return 0, fmt.Errorf("linked: GenerationOf: %w", err)
	}

	return gen, nil
}

// LookupGeneration is GenerationOf reporting a miss through ok.
func (n *Node[T]) LookupGeneration(pred func(*Node[T]) bool) (gen int, ok bool) {
	return traverse.LookupGeneration(n, pred)
}

// ParentOf returns the parent of the first node matching pred, or nil when
// pred matches n itself. Returns ErrNodeNotFound when nothing matches.
func (n *Node[T]) ParentOf(pred func(*Node[T]) bool) (*Node[T], error) {
	parent, _, err := traverse.ParentOf(n, pred)
	if err != nil {
		return nil, fmt.Errorf("linked: ParentOf: %w", err)
	}

	return parent, nil
}
