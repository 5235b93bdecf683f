package traverse

import "iter"

// BreadthFirst visits every node reachable from root level by level.
func BreadthFirst[N Walkable[N]](root N, visit func(N)) {
	BreadthFirstUntil(root, func(n N) bool {
		visit(n)
		return false
	})
}

// BreadthFirstUntil visits nodes level by level until visit returns true.
// It reports whether the walk was stopped early.
func BreadthFirstUntil[N Walkable[N]](root N, visit func(N) bool) bool {
	queue := []N{root}
	for len(queue) > 0 {
		// dequeue
		current := queue[0]
		queue = queue[1:]

		if visit(current) {
			return true
		}

		// enqueue children in order
		for i := 0; i < current.ChildCount(); i++ {
			queue = append(queue, current.Child(i))
		}
	}

	return false
}

// Levels returns the breadth-first walk of root as a sequence.
func Levels[N Walkable[N]](root N) iter.Seq[N] {
	return func(yield func(N) bool) {
		BreadthFirstUntil(root, func(n N) bool {
			return !yield(n)
		})
	}
}
