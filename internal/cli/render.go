package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/render"
	"github.com/katalvlaran/lvtree/tree"
)

// renderCommand prints the tree in box-drawing format.
func (c *CLI) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.readEdges(cmd, args[0])
			if err != nil {
				return err
			}
			root, err := b.BuildMultiChildren()
			if err != nil {
				return err
			}

			u := c.ui(cmd)
			u.println(u.styleTree(render.Lipgloss(root, (*tree.Node[string]).Value)).String())
			return nil
		},
	}
}
