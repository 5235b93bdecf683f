// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (edge, line, values) is attached with %w at the failure site.
//   • Parse failures keep the caller's error in the chain as well.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedEdge indicates an edge line that is blank, does not split into
// exactly two tokens, or holds a token the ParseFunc rejected.
var ErrMalformedEdge = errors.New("builder: malformed edge")

// ErrDuplicateParent indicates a child value that was already declared as
// the child of some parent (the same parent included).
var ErrDuplicateParent = errors.New("builder: duplicate parent")

// ErrNoRoot indicates that every value has a parent.
var ErrNoRoot = errors.New("builder: there is no root node")

// ErrMultipleRoots indicates more than one value without a parent.
var ErrMultipleRoots = errors.New("builder: there are more than one root node")

// ErrTooManyChildren indicates a node with more than two children met while
// building a binary tree.
var ErrTooManyChildren = errors.New("builder: too many children for a binary node")

// ErrCycle indicates a self edge, or values that cannot be reached from the
// root (they necessarily lie on a parent cycle).
var ErrCycle = errors.New("builder: cycle detected")

// builderErrorf prefixes a formatted message with the method name, keeping
// any %w operands in the chain.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}

// formatValues renders values as "[a, b, c]".
func formatValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
