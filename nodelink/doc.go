// Package nodelink exports lvtree trees as node-link diagrams.
//
// # Overview
//
// [ToDOT] writes Graphviz DOT source for any node variant (tree, binary,
// linked): one box per node, one arrow per parent→child link, emitted in
// depth-first order. Nodes get positional identifiers, so trees with repeated
// values still draw one box per node.
//
//	dot := nodelink.ToDOT(root, (*tree.Node[string]).Value, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Highlight: labels drawn with a colored fill (for example an LCA and the
//     two nodes it was computed from).
//   - RankDir: Graphviz rankdir, "TB" when empty.
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process; no dot binary is needed.
package nodelink
