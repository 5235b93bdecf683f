package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/linked"
)

// buildLinked reads the edge file and builds the parent-linked tree every
// query command works on.
func (c *CLI) buildLinked(cmd *cobra.Command, path string) (*linked.Node[string], error) {
	b, err := c.readEdges(cmd, path)
	if err != nil {
		return nil, err
	}
	return b.BuildParentLinked()
}

func (c *CLI) lcaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lca FILE A B",
		Short: "Print the lowest common ancestor of two values",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.buildLinked(cmd, args[0])
			if err != nil {
				return err
			}
			lca, err := root.LowestCommonAncestor(linked.HasValue(args[1]), linked.HasValue(args[2]))
			if err != nil {
				return err
			}
			c.ui(cmd).printValue(lca.Value())
			return nil
		},
	}
}

func (c *CLI) generationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generation FILE VALUE",
		Short: "Print the depth of a value (root is 0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.buildLinked(cmd, args[0])
			if err != nil {
				return err
			}
			gen, err := root.GenerationOf(linked.HasValue(args[1]))
			if err != nil {
				return err
			}
			c.ui(cmd).printNumber(gen)
			return nil
		},
	}
}

// parentCommand prints the parent of a value; the root has none and prints
// an empty line.
func (c *CLI) parentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parent FILE VALUE",
		Short: "Print the parent of a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.buildLinked(cmd, args[0])
			if err != nil {
				return err
			}
			parent, err := root.ParentOf(linked.HasValue(args[1]))
			if err != nil {
				return err
			}
			if parent == nil {
				loggerFromContext(cmd.Context()).Info("value is the root", "value", args[1])
				c.ui(cmd).println("")
				return nil
			}
			c.ui(cmd).printValue(parent.Value())
			return nil
		},
	}
}

func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE VALUE",
		Short: "Print the path from the root to a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.buildLinked(cmd, args[0])
			if err != nil {
				return err
			}
			node, err := root.FindNode(linked.HasValue(args[1]))
			if err != nil {
				return err
			}

			u := c.ui(cmd)
			path := node.Path()
			parts := make([]string, len(path))
			for i, n := range path {
				parts[i] = u.style(StyleValue, n.Value())
			}
			u.println(strings.Join(parts, " "+u.style(StyleDim, iconArrow)+" "))
			return nil
		},
	}
}
