package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/builder"
)

// readEdges loads the edge file at path ("-" for stdin) into a new builder.
func (c *CLI) readEdges(cmd *cobra.Command, path string) (*builder.Builder[string], error) {
	logger := loggerFromContext(cmd.Context())
	sw := startStopwatch(logger)

	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open edges: %w", err)
		}
		defer f.Close()
		r = f
	}

	b := builder.New[string](builder.WithLogger(logger), builder.WithDelimiter(c.cfg.Delimiter))
	if err := b.ReadEdges(r, "", builder.ParseString); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sw.stop("edges loaded", "file", path, "values", b.Len())

	return b, nil
}
