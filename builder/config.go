// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go - resolved Builder configuration and its defaults.
//
// Defaults:
//   • logger    = discard (no output)
//   • delimiter = " "

package builder

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultDelimiter separates parent and child tokens unless overridden.
const DefaultDelimiter = " "

// config aggregates the knobs a Builder reads.
type config struct {
	logger    *log.Logger // debug event sink
	delimiter string      // fallback for empty delimiter arguments
}

// newConfig applies opts in order on top of the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:    log.New(io.Discard),
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
