// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// builder.go - edge accumulation (the mutable phase).
//
// Invariants kept after every successful call:
//   • every value seen so far has exactly one entry, in first-seen order;
//   • every entry has at most one parent;
//   • a failed call leaves entries unchanged.

package builder

// entry is the accumulated edge data of one value.
type entry[T comparable] struct {
	value     T
	parent    T
	hasParent bool
	children  []T // edge-insertion order
}

// Builder accumulates parent→child edges and builds trees from them.
// The zero value is not usable; call New.
type Builder[T comparable] struct {
	entries map[T]*entry[T]
	order   []T // first-seen order of values
	cfg     config
}

// New returns an empty Builder configured by opts.
func New[T comparable](opts ...Option) *Builder[T] {
	return &Builder[T]{
		entries: make(map[T]*entry[T]),
		cfg:     newConfig(opts...),
	}
}

// AddEdge records that child is a child of parent. Values not seen before
// get entries.
//
// Errors:
//   - ErrDuplicateParent if child was already declared as a child, even of
//     the same parent. The message names the prior parent.
//   - ErrCycle if parent == child.
//   - ErrMalformedEdge if either value is not equal to itself (NaN).
//
// Complexity: O(1) amortized.
func (b *Builder[T]) AddEdge(parent, child T) error {
	// 1. Validate before touching any state
	if parent != parent || child != child {
		// NaN and the like cannot be looked up again once stored.
		return builderErrorf("AddEdge", "the edge (%v, %v) holds a value that is not equal to itself: %w",
			parent, child, ErrMalformedEdge)
	}
	if parent == child {
		return builderErrorf("AddEdge", "the edge (%v, %v) links a node to itself: %w", parent, child, ErrCycle)
	}
	if e, ok := b.entries[child]; ok && e.hasParent {
		return builderErrorf("AddEdge",
			"the edge (%v, %v) declares a child node %v that is already child of %v: %w",
			parent, child, child, e.parent, ErrDuplicateParent)
	}

	// 2. Record parent → child, then child → parent
	p := b.lookup(parent)
	p.children = append(p.children, child)
	c := b.lookup(child)
	c.parent, c.hasParent = parent, true

	b.cfg.logger.Debug("edge added", "parent", parent, "child", child)

	return nil
}

// Len returns the number of distinct values seen so far.
func (b *Builder[T]) Len() int { return len(b.order) }

// Roots returns the values without a parent, in first-seen order. A
// buildable edge set has exactly one.
func (b *Builder[T]) Roots() []T {
	var roots []T
	for _, v := range b.order {
		if !b.entries[v].hasParent {
			roots = append(roots, v)
		}
	}

	return roots
}

// lookup returns the entry for v, creating it on first sight.
func (b *Builder[T]) lookup(v T) *entry[T] {
	if e, ok := b.entries[v]; ok {
		return e
	}
	e := &entry[T]{value: v}
	b.entries[v] = e
	b.order = append(b.order, v)

	return e
}
