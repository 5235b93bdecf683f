// Package tree provides the ordered multi-child tree node of lvtree.
//
// A Node holds a comparable value and an ordered, immutable list of children.
// Two nodes are Equal when their values are equal; substructure is ignored.
// Nodes are usually produced by builder.BuildMultiChildren, but New assembles
// one directly:
//
//	root := tree.New("A",
//		tree.New("B"),
//		tree.New("C", tree.New("D")),
//	)
//
// Traversal and search delegate to package traverse, so a Node can also be
// handed to any traverse function directly.
//
// Errors:
//
//   - ErrNodeNotFound  (alias of traverse.ErrNodeNotFound) a predicate
//     matched no node.
package tree
