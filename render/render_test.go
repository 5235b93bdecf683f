package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/render"
)

type node struct {
	id   string
	kids []*node
}

func (n *node) ChildCount() int { return len(n.kids) }
func (n *node) Child(i int) *node { return n.kids[i] }

func mk(id string, kids ...*node) *node { return &node{id: id, kids: kids} }

func label(n *node) string { return n.id }

const referenceDisplay = `A
├── B
│   ├── C
│   │   ├── D
│   │   ├── E
│   │   └── F
│   └── G
│       └── H
│           ├── I
│           └── J
├── K
└── L
    ├── M
    └── N`

func referenceTree() *node {
	return mk("A",
		mk("B",
			mk("C", mk("D"), mk("E"), mk("F")),
			mk("G", mk("H", mk("I"), mk("J"))),
		),
		mk("K"),
		mk("L", mk("M"), mk("N")),
	)
}

func TestText_Reference(t *testing.T) {
	assert.Equal(t, referenceDisplay, render.Text(referenceTree(), label))
}

func TestText_SingleNode(t *testing.T) {
	assert.Equal(t, "X", render.Text(mk("X"), label))
}

func TestLipgloss_MatchesText(t *testing.T) {
	root := referenceTree()
	assert.Equal(t, referenceDisplay, render.Lipgloss(root, label).String())

	small := mk("R", mk("S", mk("T")), mk("U"))
	assert.Equal(t, render.Text(small, label), render.Lipgloss(small, label).String())
}

func TestLipgloss_Styled(t *testing.T) {
	upper := lipgloss.NewStyle().Transform(strings.ToUpper)
	lt := render.Lipgloss(mk("a", mk("b"), mk("c", mk("d"))), label).
		EnumeratorStyle(lipgloss.NewStyle().PaddingRight(1)).
		ItemStyle(upper)

	lines := strings.Split(lt.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "├── B", lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "    └── "), lines[3])
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Fprint(&buf, mk("A", mk("B")), label))
	assert.Equal(t, "A\n└── B", buf.String())
}
