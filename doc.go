// Package lvtree is a small toolkit for rooted trees: build them from an
// unordered list of parent→child edges, validate them, walk them and query
// them.
//
// 🚀 What is lvtree?
//
//	A generic, allocation-light library that brings together:
//		• Node variants: ordered multi-child, binary (left/right), parent-linked
//		• Builder: edge accumulation, text parsing, structural validation
//		• Traversals: depth-first, breadth-first, pre/in/post order, early stop
//		• Queries: find, multi-find in one pass, generation, parent, LCA
//		• Output: box-drawing text display, Graphviz DOT and SVG
//
// ✨ Why choose lvtree?
//
//   - Typed – every variant is Node[T comparable], no interface{} values
//   - Safe – a built tree is immutable; Build never returns a partial tree
//   - Deep-tree ready – all walks and builds use explicit stacks
//   - Checked – one root, one parent per child, no cycles, reported with errors.Is
//
// Packages:
//
//	traverse/ — generic walk and search engine over any node variant
//	tree/     — multi-child Node
//	binary/   — binary Node with pre/in/post order
//	linked/   — parent-linked Node, generations, lowest common ancestor
//	builder/  — edges → validated tree (any variant)
//	render/   — box-drawing display format
//	nodelink/ — Graphviz export
//	cmd/lvtree — command-line front end
//
// Quick example:
//
//	A
//	├── B
//	│   └── C
//	└── D
//
//	is built from the edges "A B", "B C", "A D", in any order.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
