package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/internal/config"
	"github.com/katalvlaran/lvtree/nodelink"
	"github.com/katalvlaran/lvtree/tree"
)

// dotOpts holds the flags of the dot command.
type dotOpts struct {
	svg       string   // output SVG path; empty prints DOT
	rankdir   string   // overrides graphviz.rankdir from config
	highlight []string // values to fill
}

func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Export the tree as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rankdir := c.cfg.Graphviz.RankDir
			if opts.rankdir != "" {
				if err := config.ValidateRankDir(opts.rankdir); err != nil {
					return fmt.Errorf("--rankdir %w", err)
				}
				rankdir = opts.rankdir
			}

			b, err := c.readEdges(cmd, args[0])
			if err != nil {
				return err
			}
			root, err := b.BuildMultiChildren()
			if err != nil {
				return err
			}

			dot := nodelink.ToDOT(root, (*tree.Node[string]).Value, nodelink.Options{
				Highlight: opts.highlight,
				RankDir:   rankdir,
			})

			u := c.ui(cmd)
			if opts.svg == "" {
				fmt.Fprint(u.w, dot)
				return nil
			}

			sw := startStopwatch(loggerFromContext(cmd.Context()))
			svg, err := nodelink.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return err
			}
			if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}
			sw.stop("svg rendered", "bytes", len(svg))
			u.printSuccess("wrote %s", opts.svg)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.svg, "svg", "", "render SVG to this file instead of printing DOT")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "layout direction: TB, LR, BT, RL")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "values to highlight (comma-separated)")
	return cmd
}
