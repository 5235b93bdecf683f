package binary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/binary"
)

type order func(*binary.Node[string], func(*binary.Node[string]))

// referenceTree builds A→[B→[C→[D,E], F→[G→[H,I]]], J].
func referenceTree() *binary.Node[string] {
	n, l := binary.New[string], binary.Leaf[string]
	return n("A",
		n("B",
			n("C", l("D"), l("E")),
			n("F", n("G", l("H"), l("I")), nil),
		),
		l("J"),
	)
}

func collect(root *binary.Node[string], walk order) string {
	out := ""
	walk(root, func(n *binary.Node[string]) { out += n.Value() })
	return out
}

func TestOrders(t *testing.T) {
	root := referenceTree()
	cases := []struct {
		name string
		walk order
		want string
	}{
		{"pre", (*binary.Node[string]).PreOrder, "ABCDEFGHIJ"},
		{"in", (*binary.Node[string]).InOrder, "DCEBHGIFAJ"},
		{"post", (*binary.Node[string]).PostOrder, "DECHIGFBJA"},
		{"depth", (*binary.Node[string]).DepthFirst, "ABCDEFGHIJ"},
		{"breadth", (*binary.Node[string]).BreadthFirst, "ABJCFDEGHI"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collect(root, tc.walk))
		})
	}
}

func TestUntil_StopsEarly(t *testing.T) {
	root := referenceTree()
	stopAt := func(target string, seen *string) func(*binary.Node[string]) bool {
		return func(n *binary.Node[string]) bool {
			*seen += n.Value()
			return n.Value() == target
		}
	}

	var pre, in, post, depth, breadth string
	assert.True(t, root.PreOrderUntil(stopAt("E", &pre)))
	assert.True(t, root.InOrderUntil(stopAt("B", &in)))
	assert.True(t, root.PostOrderUntil(stopAt("C", &post)))
	assert.True(t, root.DepthFirstUntil(stopAt("D", &depth)))
	assert.True(t, root.BreadthFirstUntil(stopAt("F", &breadth)))
	assert.Equal(t, "ABCDE", pre)
	assert.Equal(t, "DCEB", in)
	assert.Equal(t, "DEC", post)
	assert.Equal(t, "ABCD", depth)
	assert.Equal(t, "ABJCF", breadth)

	assert.False(t, root.InOrderUntil(func(*binary.Node[string]) bool { return false }))
}

func TestChild_SkipsAbsentSide(t *testing.T) {
	onlyRight := binary.New("P", nil, binary.Leaf("R"))
	require.Equal(t, 1, onlyRight.ChildCount())
	assert.Equal(t, "R", onlyRight.Child(0).Value())
	assert.Nil(t, onlyRight.Left())
	assert.Panics(t, func() { onlyRight.Child(1) })

	both := binary.New("P", binary.Leaf("L"), binary.Leaf("R"))
	assert.Equal(t, "L", both.Child(0).Value())
	assert.Equal(t, "R", both.Child(1).Value())
}

func TestStringTree(t *testing.T) {
	want := `A
├── B
│   ├── C
│   │   ├── D
│   │   └── E
│   └── F
│       └── G
│           ├── H
│           └── I
└── J`
	assert.Equal(t, want, referenceTree().StringTree())
	assert.Equal(t, "P\n└── R", binary.New("P", nil, binary.Leaf("R")).StringTree())
}

func TestEqualAndString(t *testing.T) {
	assert.True(t, binary.Leaf(1).Equal(binary.New(1, binary.Leaf(2), nil)))
	assert.False(t, binary.Leaf(1).Equal(binary.Leaf(2)))
	assert.Equal(t, "BinaryNode(1)", binary.Leaf(1).String())
}
