// Package builder assembles validated, immutable lvtree trees from an
// unordered list of parent→child edges.
//
// Edges are accumulated first (mutable phase) and turned into a tree by one of
// the terminal Build calls:
//
//   - BuildMultiChildren: *tree.Node, any number of children per node.
//   - BuildBinary:        *binary.Node, left = first child, right = second.
//   - BuildParentLinked:  *linked.Node, with generations and parent links.
//
// Edges come from AddEdge, or from text: one edge per line, exactly two
// tokens separated by a delimiter ("parent child"), tokens converted to T
// by a caller-supplied ParseFunc.
//
//	b := builder.New[string]()
//	if err := b.AddEdgesFromText("A B\nA C\nC D", " ", builder.ParseString); err != nil {
//		return err
//	}
//	root, err := b.BuildMultiChildren()
//
// Guarantees:
//
//   - Child order is edge-insertion order, never sorted.
//   - A child value is declared at most once; the second declaration fails
//     immediately with ErrDuplicateParent and leaves the builder unchanged.
//   - Build either returns a complete tree or an error, never a partial one.
//   - Construction uses explicit stacks; deep trees do not grow the call stack.
//
// Errors:
//
//   - ErrMalformedEdge     blank line, token count ≠ 2, token parse failure
//   - ErrDuplicateParent   a child value declared under a second parent
//   - ErrNoRoot            no parentless value
//   - ErrMultipleRoots     more than one parentless value
//   - ErrTooManyChildren   BuildBinary met a node with more than 2 children
//   - ErrCycle             self edge, or values unreachable from the root
//
// Concurrency: a Builder is not safe for concurrent use. The trees it returns
// are immutable and safe for concurrent reads.
package builder
