// Package linked provides the parent-linked tree node of lvtree and the
// lowest-common-ancestor (LCA) query built on it.
//
// A linked Node carries, in addition to its value and ordered children, its
// generation (distance from the root, root = 0) and a back link to its parent.
// Trees are assembled bottom-up: children are built first, then New builds
// the parent and points each child back at it. The parent link is written
// exactly once; offering an already-parented child to New again fails with
// ErrParentAlreadySet.
//
// LCA:
//
//  1. Locate both nodes with one FindNodes pass.
//  2. Climb the deeper node until both sit at the same generation.
//  3. Climb both in lockstep until they are Equal.
//
// The climb costs O(depth) pointer hops and no extra memory.
//
// Errors:
//
//   - ErrNodeNotFound        a query predicate matched no node.
//   - ErrAncestorNotFound    the two nodes share no ancestor (different trees).
//   - ErrParentAlreadySet    New was handed a child that already has a parent.
//   - ErrGenerationMismatch  a child's generation is not parent's + 1.
package linked
