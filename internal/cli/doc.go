// Package cli implements the lvtree command-line interface.
//
// Every command reads a file of parent→child edges (one "parent child" pair
// per line, "-" for stdin), builds the tree with the builder package and runs
// one library operation on it.
//
// # Commands
//
//   - render: draw the tree in box-drawing format
//   - traverse: list values in dfs, bfs, pre, in or post order
//   - lca: lowest common ancestor of two values
//   - generation, parent, path: per-value queries
//   - stats: node count, height, leaves
//   - dot: Graphviz DOT source, or SVG with --svg
//   - browse: interactive tree browser
//
// # Configuration
//
// Defaults come from the TOML file resolved by internal/config; --delimiter
// and --plain override it for one run.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on the builder's edge and build events. Loggers are passed through
// context.Context.
package cli
