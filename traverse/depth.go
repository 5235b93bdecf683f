package traverse

import "iter"

// DepthFirst visits every node reachable from root in depth-first pre-order.
func DepthFirst[N Walkable[N]](root N, visit func(N)) {
	DepthFirstUntil(root, func(n N) bool {
		visit(n)
		return false
	})
}

// DepthFirstUntil visits nodes in depth-first pre-order until visit returns
// true. It reports whether the walk was stopped early.
//
// The frontier is an explicit stack; children are pushed last-to-first so the
// leftmost child is popped next.
func DepthFirstUntil[N Walkable[N]](root N, visit func(N) bool) bool {
	stack := []N{root}
	for len(stack) > 0 {
		// 1. Pop the most recently pushed node
		last := len(stack) - 1
		current := stack[last]
		stack = stack[:last]

		// 2. Visit; a true signal aborts the whole walk
		if visit(current) {
			return true
		}

		// 3. Push children in reverse so child 0 is on top
		for i := current.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, current.Child(i))
		}
	}

	return false
}

// DepthFirstPayload walks the tree depth-first, carrying a payload with each
// node. The root carries rootPayload; every other node carries
// next(child, parentVisit). It stops as soon as visit returns true and
// reports whether it did.
//
// Example: distance from the root is rootPayload 0 and
// next = func(_ N, p Visit[N, int]) int { return p.Payload + 1 }.
func DepthFirstPayload[N Walkable[N], P any](
	root N,
	rootPayload P,
	next func(child N, parent Visit[N, P]) P,
	visit func(Visit[N, P]) bool,
) bool {
	stack := []Visit[N, P]{{Node: root, Payload: rootPayload}}
	for len(stack) > 0 {
		last := len(stack) - 1
		current := stack[last]
		stack = stack[:last]

		if visit(current) {
			return true
		}

		for i := current.Node.ChildCount() - 1; i >= 0; i-- {
			child := current.Node.Child(i)
			stack = append(stack, Visit[N, P]{Node: child, Payload: next(child, current)})
		}
	}

	return false
}

// All returns the depth-first pre-order walk of root as a sequence.
// Breaking out of the range loop stops the walk.
func All[N Walkable[N]](root N) iter.Seq[N] {
	return func(yield func(N) bool) {
		DepthFirstUntil(root, func(n N) bool {
			return !yield(n)
		})
	}
}
