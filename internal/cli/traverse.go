package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/binary"
	"github.com/katalvlaran/lvtree/tree"
)

// Traversal orders accepted by --order.
const (
	orderDFS  = "dfs"
	orderBFS  = "bfs"
	orderPre  = "pre"
	orderIn   = "in"
	orderPost = "post"
)

var traverseOrders = []string{orderDFS, orderBFS, orderPre, orderIn, orderPost}

// traverseCommand lists values in the requested order on one line.
// pre, in and post need a binary tree.
func (c *CLI) traverseCommand() *cobra.Command {
	order := orderDFS

	cmd := &cobra.Command{
		Use:   "traverse FILE",
		Short: "List values in traversal order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.readEdges(cmd, args[0])
			if err != nil {
				return err
			}

			var values []string
			switch order {
			case orderDFS, orderBFS:
				root, err := b.BuildMultiChildren()
				if err != nil {
					return err
				}
				collect := func(n *tree.Node[string]) { values = append(values, n.Value()) }
				if order == orderDFS {
					root.DepthFirst(collect)
				} else {
					root.BreadthFirst(collect)
				}
			case orderPre, orderIn, orderPost:
				root, err := b.BuildBinary()
				if err != nil {
					return err
				}
				collect := func(n *binary.Node[string]) { values = append(values, n.Value()) }
				switch order {
				case orderPre:
					root.PreOrder(collect)
				case orderIn:
					root.InOrder(collect)
				default:
					root.PostOrder(collect)
				}
			default:
				return fmt.Errorf("unknown order %q: want one of %s", order, strings.Join(traverseOrders, ", "))
			}

			c.ui(cmd).println(strings.Join(values, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", order, "traversal order: "+strings.Join(traverseOrders, ", "))
	return cmd
}
