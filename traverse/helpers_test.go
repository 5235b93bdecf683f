package traverse_test

import "strings"

// node is a minimal Walkable used to exercise the engine without any of the
// concrete node packages.
type node struct {
	id   string
	kids []*node
}

func (n *node) ChildCount() int { return len(n.kids) }
func (n *node) Child(i int) *node { return n.kids[i] }
func mk(id string, kids ...*node) *node { return &node{id: id, kids: kids} }

// referenceTree builds A→[B→[C→[D,E,F], G→[H→[I,J]]], K, L→[M,N]].
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

// is returns a predicate matching the node with the given id.
func is(id string) func(*node) bool {
	return func(n *node) bool { return n.id == id }
}

// ids joins visited node IDs into a compact string.
func ids(nodes []*node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.id)
	}
	return sb.String()
}
