package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/traverse"
)

func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print size and shape of the tree",
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
			nodes := traverse.Count(root)
			u.printKeyValue("root", root.Value())
			u.printKeyValue("nodes", strconv.Itoa(nodes))
			u.printKeyValue("edges", strconv.Itoa(nodes-1))
			u.printKeyValue("height", strconv.Itoa(traverse.Height(root)))
			u.printKeyValue("leaves", strconv.Itoa(traverse.Leaves(root)))
			return nil
		},
	}
}
