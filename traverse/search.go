package traverse

// parentLink is the payload ParentOf threads through the walk.
type parentLink[N any] struct {
	parent N   // node the current node was reached from
	depth  int // 0 for the root, which has no parent
}

// Find returns the first node, in depth-first order, for which pred holds.
// Returns ErrNodeNotFound if the walk completes without a match.
// Complexity: O(V).
func Find[N Walkable[N]](root N, pred Predicate[N]) (N, error) {
	var match N
	found := DepthFirstUntil(root, func(n N) bool {
		if pred(n) {
			match = n
			return true
		}
		return false
	})
	if !found {
		return match, ErrNodeNotFound
	}

	return match, nil
}

// FindAll evaluates every predicate against every node in a single
// depth-first pass and returns, per predicate, the first node it matched.
// The result has len(preds) slots; a slot stays the zero value of N when its
// predicate matched nothing. The walk stops as soon as every slot is filled.
//
// Complexity: O(V·k) for k predicates, one walk.
func FindAll[N Walkable[N]](root N, preds ...Predicate[N]) []N {
	out := make([]N, len(preds))
	if len(preds) == 0 {
		return out
	}

	filled := make([]bool, len(preds))
	remaining := len(preds)
	DepthFirstUntil(root, func(n N) bool {
		for i, pred := range preds {
			if filled[i] || !pred(n) {
				continue
			}
			out[i] = n
			filled[i] = true
			remaining--
		}
		return remaining == 0
	})

	return out
}

// Generation returns the distance from root (root = 0) of the first node, in
// depth-first order, matching pred. Returns ErrNodeNotFound when none does.
func Generation[N Walkable[N]](root N, pred Predicate[N]) (int, error) {
	gen, ok := LookupGeneration(root, pred)
	if !ok {
		return 0, ErrNodeNotFound
	}

	return gen, nil
}

// LookupGeneration is the permissive form of Generation: it reports a miss
// through ok instead of an error.
func LookupGeneration[N Walkable[N]](root N, pred Predicate[N]) (gen int, ok bool) {
	ok = DepthFirstPayload(root, 0,
		func(_ N, parent Visit[N, int]) int { return parent.Payload + 1 },
		func(v Visit[N, int]) bool {
			if pred(v.Node) {
				gen = v.Payload
				return true
			}
			return false
		},
	)

	return gen, ok
}

// ParentOf returns the immediate parent of the first node, in depth-first
// order, matching pred.
//
//   - pred matches the root: zero N, hasParent=false, nil error.
//   - pred matches a descendant: its parent, hasParent=true, nil error.
//   - pred matches nothing: ErrNodeNotFound.
func ParentOf[N Walkable[N]](root N, pred Predicate[N]) (parent N, hasParent bool, err error) {
	if pred(root) {
		return parent, false, nil
	}

	found := DepthFirstPayload(root, parentLink[N]{},
		func(_ N, p Visit[N, parentLink[N]]) parentLink[N] {
			return parentLink[N]{parent: p.Node, depth: p.Payload.depth + 1}
		},
		func(v Visit[N, parentLink[N]]) bool {
			// the root was already tested above
			if v.Payload.depth == 0 || !pred(v.Node) {
				return false
			}
			parent = v.Payload.parent
			return true
		},
	)
	if !found {
		return parent, false, ErrNodeNotFound
	}

	return parent, true, nil
}

// Count returns the number of nodes reachable from root.
func Count[N Walkable[N]](root N) int {
	n := 0
	DepthFirst(root, func(N) { n++ })

	return n
}

// Height returns the largest generation in the tree (a single node has height 0).
func Height[N Walkable[N]](root N) int {
	height := 0
	DepthFirstPayload(root, 0,
		func(_ N, parent Visit[N, int]) int { return parent.Payload + 1 },
		func(v Visit[N, int]) bool {
			height = max(height, v.Payload)
			return false
		},
	)

	return height
}

// Leaves returns the number of nodes without children.
func Leaves[N Walkable[N]](root N) int {
	n := 0
	DepthFirst(root, func(node N) {
		if node.ChildCount() == 0 {
			n++
		}
	})

	return n
}
