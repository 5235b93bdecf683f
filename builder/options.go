// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// options.go - functional options for Builder.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Builder methods themselves never panic.

package builder

import "github.com/charmbracelet/log"

// Option customizes a Builder at construction time.
type Option func(*config)

// WithLogger routes the builder's debug events (edges added, trees built)
// to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithDelimiter sets the token delimiter used by the text methods when they
// are called with an empty delimiter. Panics on "".
func WithDelimiter(delim string) Option {
	if delim == "" {
		panic("builder: WithDelimiter(\"\")")
	}
	return func(c *config) {
		c.delimiter = delim
	}
}
