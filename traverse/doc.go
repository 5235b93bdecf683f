// Package traverse implements the traversal engine shared by every node
// variant in lvtree (tree, binary, linked): depth-first and breadth-first
// walks with early termination, payload-carrying walks, and the predicate
// searches built on top of them.
//
// What:
//
//   - DepthFirst / DepthFirstUntil: explicit LIFO stack. Children are pushed
//     in reverse so siblings are visited leftmost first; the resulting order
//     is a pre-order walk (parent, child₁ and its subtree, child₂ …).
//   - BreadthFirst / BreadthFirstUntil: explicit FIFO queue; siblings are
//     visited before any of their children.
//   - DepthFirstPayload: depth-first walk threading a per-node payload
//     computed from the parent's visit (distance from root, parent link…).
//   - All / Levels: range-over-func forms of the two walks.
//   - Find, FindAll, Generation, LookupGeneration, ParentOf: predicate
//     searches over a depth-first walk.
//
// Any type whose values expose their ordered children through Walkable can
// be traversed. Node types implement it on their pointer receiver:
//
//	type Walkable[N any] interface {
//		ChildCount() int
//		Child(i int) N
//	}
//
// Reference tree used throughout the tests and docs:
//
//	A
//	├── B
//	│   ├── C
//	│   │   ├── D
//	│   │   ├── E
//	│   │   └── F
//	│   └── G
//	│       └── H
//	│           ├── I
//	│           └── J
//	├── K
//	└── L
//	    ├── M
//	    └── N
//
// Depth-first visits A B C D E F G H I J K L M N;
// breadth-first visits A B K L C G M N D E F H I J.
//
// Complexity:
//
//   - every walk: Time O(V), Memory O(V) worst case for the frontier.
//   - FindAll with k predicates: Time O(V·k), single pass.
//
// Concurrency:
//
//   - Walks are read-only and allocate only local state, so a built tree can
//     be traversed from many goroutines at once.
//
// Errors:
//
//   - ErrNodeNotFound  a predicate matched no node.
package traverse
