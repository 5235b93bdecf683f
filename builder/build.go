// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// build.go - validation and the three Build* conversions.
//
// Every Build* call runs the same plan:
//  1. exactly one root must exist (ErrNoRoot / ErrMultipleRoots);
//  2. a pre-order of values is computed from the root with an explicit stack;
//  3. every value must appear in that order (ErrCycle otherwise).
//
// Nodes are then created in reverse pre-order, so each node's children exist
// before the node itself. No recursion: depth is bounded only by memory.
// The builder is not modified; Build* may be called repeatedly.

package builder

import (
	"slices"

	"github.com/katalvlaran/lvtree/binary"
	"github.com/katalvlaran/lvtree/linked"
	"github.com/katalvlaran/lvtree/tree"
)

// plan validates the accumulated edges and returns the root and the
// depth-first pre-order of all values.
func (b *Builder[T]) plan(method string) (root T, order []T, err error) {
	// 1. Resolve the single root
	roots := b.Roots()
	switch {
	case len(roots) == 0:
		return root, nil, builderErrorf(method, "%w", ErrNoRoot)
	case len(roots) > 1:
		return root, nil, builderErrorf(method, "the candidates are %s: %w", formatValues(roots), ErrMultipleRoots)
	}
	root = roots[0]

	// 2. Pre-order with an explicit stack, children pushed in reverse
	order = make([]T, 0, len(b.order))
	stack := []T{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		children := b.entries[v].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	// 3. Anything left over hangs off a parent cycle
	if len(order) != len(b.order) {
		reached := make(map[T]struct{}, len(order))
		for _, v := range order {
			reached[v] = struct{}{}
		}
		var lost []T
		for _, v := range b.order {
			if _, ok := reached[v]; !ok {
				lost = append(lost, v)
			}
		}

		return root, nil, builderErrorf(method,
			"the nodes %s cannot be reached from the root %v: %w", formatValues(lost), root, ErrCycle)
	}

	return root, order, nil
}

// BuildMultiChildren builds an ordered multi-child tree. Children keep their
// edge-insertion order.
//
// Errors: ErrNoRoot, ErrMultipleRoots, ErrCycle.
//
// Complexity: O(V + E).
func (b *Builder[T]) BuildMultiChildren() (*tree.Node[T], error) {
	root, order, err := b.plan("BuildMultiChildren")
	if err != nil {
		return nil, err
	}

	built := make(map[T]*tree.Node[T], len(order))
	for _, v := range slices.Backward(order) {
		children := b.entries[v].children
		kids := make([]*tree.Node[T], len(children))
		for i, c := range children {
			kids[i] = built[c]
		}
		built[v] = tree.New(v, kids...)
	}
	b.cfg.logger.Debug("tree built", "kind", "multi-children", "root", root, "nodes", len(order))

	return built[root], nil
}

// BuildBinary builds a binary tree: the first declared child becomes Left,
// the second Right.
//
// Errors: ErrNoRoot, ErrMultipleRoots, ErrCycle, and ErrTooManyChildren for
// the first node in depth-first order that has more than two children.
//
// Complexity: O(V + E).
func (b *Builder[T]) BuildBinary() (*binary.Node[T], error) {
	root, order, err := b.plan("BuildBinary")
	if err != nil {
		return nil, err
	}

	// 1. Reject wide nodes before allocating anything
	for _, v := range order {
		if children := b.entries[v].children; len(children) > 2 {
			return nil, builderErrorf("BuildBinary",
				"Node %v has more than 2 children %s: %w", v, formatValues(children), ErrTooManyChildren)
		}
	}

	// 2. Assemble bottom-up
	built := make(map[T]*binary.Node[T], len(order))
	for _, v := range slices.Backward(order) {
		var left, right *binary.Node[T]
		children := b.entries[v].children
		if len(children) > 0 {
			left = built[children[0]]
		}
		if len(children) > 1 {
			right = built[children[1]]
		}
		built[v] = binary.New(v, left, right)
	}
	b.cfg.logger.Debug("tree built", "kind", "binary", "root", root, "nodes", len(order))

	return built[root], nil
}

// BuildParentLinked builds a tree whose nodes know their parent and their
// generation (root 0).
//
// Errors: ErrNoRoot, ErrMultipleRoots, ErrCycle.
//
// Complexity: O(V + E).
func (b *Builder[T]) BuildParentLinked() (*linked.Node[T], error) {
	root, order, err := b.plan("BuildParentLinked")
	if err != nil {
		return nil, err
	}

	// 1. Generations follow the pre-order: a parent is always seen first
	generation := make(map[T]int, len(order))
	for _, v := range order[1:] {
		generation[v] = generation[b.entries[v].parent] + 1
	}

	// 2. Assemble bottom-up; linked.New sets the parent links
	built := make(map[T]*linked.Node[T], len(order))
	for _, v := range slices.Backward(order) {
		children := b.entries[v].children
		kids := make([]*linked.Node[T], len(children))
		for i, c := range children {
			kids[i] = built[c]
		}
		n, err := linked.New(v, generation[v], kids...)
		if err != nil {
			return nil, builderErrorf("BuildParentLinked", "node %v: %w", v, err)
		}
		built[v] = n
	}
	b.cfg.logger.Debug("tree built", "kind", "parent-linked", "root", root, "nodes", len(order))

	return built[root], nil
}
