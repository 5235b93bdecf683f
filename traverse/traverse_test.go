package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/traverse"
)

func TestDepthFirst_ReferenceOrder(t *testing.T) {
	var got []*node
	traverse.DepthFirst(referenceTree(), func(n *node) { got = append(got, n) })
	assert.Equal(t, "ABCDEFGHIJKLMN", ids(got))
}

func TestBreadthFirst_ReferenceOrder(t *testing.T) {
	var got []*node
	traverse.BreadthFirst(referenceTree(), func(n *node) { got = append(got, n) })
	assert.Equal(t, "ABKLCGMNDEFHIJ", ids(got))
}

func TestDepthFirstUntil_StopsAtD(t *testing.T) {
	var got []*node
	stopped := traverse.DepthFirstUntil(referenceTree(), func(n *node) bool {
		got = append(got, n)
		return n.id == "D"
	})
	assert.True(t, stopped)
	assert.Equal(t, "ABCD", ids(got), "no node after D may be visited")
}

func TestDepthFirstUntil_NoSignalVisitsAll(t *testing.T) {
	count := 0
	stopped := traverse.DepthFirstUntil(referenceTree(), func(*node) bool {
		count++
		return false
	})
	assert.False(t, stopped)
	assert.Equal(t, 14, count)
}

func TestBreadthFirstUntil_StopsAtC(t *testing.T) {
	var got []*node
	stopped := traverse.BreadthFirstUntil(referenceTree(), func(n *node) bool {
		got = append(got, n)
		return n.id == "C"
	})
	assert.True(t, stopped)
	assert.Equal(t, "ABKLC", ids(got))
}

func TestAllAndLevels_BreakEarly(t *testing.T) {
	var depth, breadth []*node
	for n := range traverse.All(referenceTree()) {
		depth = append(depth, n)
		if n.id == "G" {
			break
		}
	}
	for n := range traverse.Levels(referenceTree()) {
		breadth = append(breadth, n)
		if n.id == "G" {
			break
		}
	}
	assert.Equal(t, "ABCDEFG", ids(depth))
	assert.Equal(t, "ABKLCG", ids(breadth))
}

func TestDepthFirstPayload_Depths(t *testing.T) {
	depths := map[string]int{}
	traverse.DepthFirstPayload(referenceTree(), 0,
		func(_ *node, p traverse.Visit[*node, int]) int { return p.Payload + 1 },
		func(v traverse.Visit[*node, int]) bool {
			depths[v.Node.id] = v.Payload
			return false
		},
	)
	assert.Equal(t, 0, depths["A"])
	assert.Equal(t, 1, depths["K"])
	assert.Equal(t, 3, depths["D"])
	assert.Equal(t, 4, depths["J"])
}

func TestSingleNode(t *testing.T) {
	root := mk("X")
	var got []*node
	traverse.DepthFirst(root, func(n *node) { got = append(got, n) })
	traverse.BreadthFirst(root, func(n *node) { got = append(got, n) })
	assert.Equal(t, "XX", ids(got))
	assert.Equal(t, 1, traverse.Count(root))
	assert.Equal(t, 0, traverse.Height(root))
	assert.Equal(t, 1, traverse.Leaves(root))
}

func TestDeepChain_NoRecursion(t *testing.T) {
	// a single chain keeps the frontier at one node per level
	const depth = 200_000
	root := mk("0")
	cur := root
	for i := 1; i < depth; i++ {
		next := mk("n")
		cur.kids = []*node{next}
		cur = next
	}
	require.Equal(t, depth, traverse.Count(root))
	assert.Equal(t, depth-1, traverse.Height(root))
}
