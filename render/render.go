// Package render draws any lvtree node variant in the box-drawing display
// format:
//
//	A
//	├── B
//	│   └── C
//	└── D
//
// Each node is printed as its label; every child goes on its own line,
// prefixed by the continuation columns of its ancestors ("│   " below a
// non-last child, "    " below a last child) followed by "├── " for a
// non-last child or "└── " for the last one. Output has no trailing newline.
//
// Text renders with an explicit stack and works for trees of any depth.
// Lipgloss converts a tree into a lipgloss tree for styled terminal output;
// lipgloss renders recursively, so very deep trees belong in Text.
package render

import (
	"io"
	"strings"

	lgtree "github.com/charmbracelet/lipgloss/tree"

	"github.com/katalvlaran/lvtree/traverse"
)

// Connectors of the display format.
const (
	ConnectorChild     = "├──"
	ConnectorLastChild = "└──"
	ContinueChild      = "│   "
	ContinueLastChild  = "    "
)

// frame is one pending line of output.
type frame[N any] struct {
	node        N
	linePrefix  string // printed before the label
	childPrefix string // continuation handed to this node's children
}

// Text renders root in the display format using label for node text.
func Text[N traverse.Walkable[N]](root N, label func(N) string) string {
	var sb strings.Builder
	stack := []frame[N]{{node: root}}
	first := true
	for len(stack) > 0 {
		// 1. Pop next line in pre-order
		last := len(stack) - 1
		f := stack[last]
		stack = stack[:last]

		// 2. Emit "\n<prefix><connector> <label>" (root: label only)
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(f.linePrefix)
		sb.WriteString(label(f.node))

		// 3. Queue children right-to-left so the first child prints next
		count := f.node.ChildCount()
		for i := count - 1; i >= 0; i-- {
			connector, cont := ConnectorChild, ContinueChild
			if i == count-1 {
				connector, cont = ConnectorLastChild, ContinueLastChild
			}
			stack = append(stack, frame[N]{
				node:        f.node.Child(i),
				linePrefix:  f.childPrefix + connector + " ",
				childPrefix: f.childPrefix + cont,
			})
		}
	}

	return sb.String()
}

// Fprint writes the Text rendering of root to w.
func Fprint[N traverse.Walkable[N]](w io.Writer, root N, label func(N) string) error {
	_, err := io.WriteString(w, Text(root, label))
	return err
}

// Lipgloss converts the tree under root into a lipgloss tree with the same
// shape. Unstyled, its String() equals Text; callers style it with
// EnumeratorStyle and ItemStyle. Conversion is iterative.
func Lipgloss[N traverse.Walkable[N]](root N, label func(N) string) *lgtree.Tree {
	// 1. Index nodes so every child has a larger index than its parent
	nodes := []N{root}
	kids := [][]int{nil}
	for i := 0; i < len(nodes); i++ {
		for c := 0; c < nodes[i].ChildCount(); c++ {
			kids[i] = append(kids[i], len(nodes))
			nodes = append(nodes, nodes[i].Child(c))
			kids = append(kids, nil)
		}
	}

	// 2. Assemble bottom-up: leaves are plain labels, inner nodes subtrees
	items := make([]any, len(nodes))
	for i := len(nodes) - 1; i > 0; i-- {
		if len(kids[i]) == 0 {
			items[i] = label(nodes[i])
			continue
		}
		items[i] = subtree(label(nodes[i]), kids[i], items)
	}

	return subtree(label(root), kids[0], items)
}

func subtree(label string, kids []int, items []any) *lgtree.Tree {
	t := lgtree.Root(label)
	for _, k := range kids {
		t.Child(items[k])
	}
	return t
}
