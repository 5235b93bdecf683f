// Package binary provides the binary tree node of lvtree: at most two
// children, distinguished as Left and Right.
//
// On top of the shared depth-first and breadth-first walks, a binary Node
// supports the three recursive orders:
//
//   - PreOrder:  self, left, right
//   - InOrder:   left, self, right
//   - PostOrder: left, right, self
//
// Each has an Until form that stops on the first visitor signal of true.
// An absent child is skipped.
//
// For the tree
//
//	A
//	├── B
//	│   ├── C
//	│   │   ├── D
//	│   │   └── E
//	│   └── F
//	│       └── G
//	│           ├── H
//	│           └── I
//	└── J
//
// pre-order is A B C D E F G H I J, in-order is D C E B H G I F A J and
// post-order is D E C H I G F B J A. Pre-order and depth-first agree.
package binary
