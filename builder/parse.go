// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// parse.go - text encoding of edges.
//
// Format: one edge per line, "parent<delim>child". The line is trimmed, then
// split on the delimiter; exactly two tokens are required. Blank lines are
// rejected, not skipped. There is no quoting or escaping.

package builder

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineSize lifts bufio.Scanner's 64 KiB token limit so ReadEdges accepts
// the same lines AddEdgesFromText does.
const maxLineSize = math.MaxInt

// ParseFunc converts one token of an edge line into a value.
type ParseFunc[T any] func(token string) (T, error)

// ParseString is the identity ParseFunc.
func ParseString(token string) (string, error) { return token, nil }

// ParseInt parses a base-10 integer token.
func ParseInt(token string) (int, error) { return strconv.Atoi(token) }

// AddEdgeFromText parses one edge line and adds it. An empty delimiter means
// the builder's default (see WithDelimiter).
//
// Errors:
//   - ErrMalformedEdge for a blank line, a token count other than 2, or a
//     token rejected by parse (which token, the line, and parse's error,
//     which stays in the chain).
//   - anything AddEdge returns.
func (b *Builder[T]) AddEdgeFromText(line, delimiter string, parse ParseFunc[T]) error {
	if delimiter == "" {
		delimiter = b.cfg.delimiter
	}

	// 1. Trim and split
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return builderErrorf("AddEdgeFromText", "the edge string is empty: %w", ErrMalformedEdge)
	}
	tokens := strings.Split(trimmed, delimiter)
	if len(tokens) != 2 {
		return builderErrorf("AddEdgeFromText",
			"the edge string (%q) contains %d elements but should contain exactly 2 elements: %w",
			line, len(tokens), ErrMalformedEdge)
	}

	// 2. Convert tokens, naming the one that failed
	parent, err := parse(tokens[0])
	if err != nil {
		return builderErrorf("AddEdgeFromText",
			"the first element (%q) on the edge string (%q) could not be transformed: %w: %w",
			tokens[0], line, ErrMalformedEdge, err)
	}
	child, err := parse(tokens[1])
	if err != nil {
		return builderErrorf("AddEdgeFromText",
			"the second element (%q) on the edge string (%q) could not be transformed: %w: %w",
			tokens[1], line, ErrMalformedEdge, err)
	}

	return b.AddEdge(parent, child)
}

// AddEdgesFromText adds one edge per line of input. Every line counts,
// including a trailing empty one after a final newline, and a blank line is
// an error. Errors carry the 1-based line number; lines before the failing
// one stay added.
func (b *Builder[T]) AddEdgesFromText(input, delimiter string, parse ParseFunc[T]) error {
	for i, line := range strings.Split(input, "\n") {
		if err := b.AddEdgeFromText(strings.TrimSuffix(line, "\r"), delimiter, parse); err != nil {
			return builderErrorf("AddEdgesFromText", "line %d: %w", i+1, err)
		}
	}

	return nil
}

// ReadEdges adds one edge per line read from r until EOF. Unlike
// AddEdgesFromText, a final newline does not produce an empty line; blank
// lines inside the input are still errors.
func (b *Builder[T]) ReadEdges(r io.Reader, delimiter string, parse ParseFunc[T]) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := b.AddEdgeFromText(sc.Text(), delimiter, parse); err != nil {
			return builderErrorf("ReadEdges", "line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return builderErrorf("ReadEdges", "read: %w", err)
	}
	b.cfg.logger.Debug("edges read", "lines", lineNo, "values", b.Len())

	return nil
}
