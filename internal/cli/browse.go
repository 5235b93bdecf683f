package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/linked"
	"github.com/katalvlaran/lvtree/render"
)

var (
	browseCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

const defaultBrowseHeight = 20

func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse the tree interactively and compute LCAs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.buildLinked(cmd, args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewBrowseModel(root),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - interactive tree browser
// =============================================================================

// BrowseModel lists the tree one node per row in display format. Two nodes
// can be marked (a, b); their lowest common ancestor is shown once both are.
type BrowseModel struct {
	Nodes  []*linked.Node[string] // depth-first order, one per row
	Lines  []string               // display format, aligned with Nodes
	Cursor int
	Offset int
	Height int

	MarkA *linked.Node[string]
	MarkB *linked.Node[string]
	LCA   *linked.Node[string]
}

// NewBrowseModel creates a browser over root.
func NewBrowseModel(root *linked.Node[string]) BrowseModel {
	var nodes []*linked.Node[string]
	root.DepthFirst(func(n *linked.Node[string]) { nodes = append(nodes, n) })

	return BrowseModel{
		Nodes:  nodes,
		Lines:  strings.Split(render.Text(root, (*linked.Node[string]).Value), "\n"),
		Height: defaultBrowseHeight,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "a":
			m.MarkA = m.Nodes[m.Cursor]
			m.updateLCA()
		case "b":
			m.MarkB = m.Nodes[m.Cursor]
			m.updateLCA()
		case "c":
			m.MarkA, m.MarkB, m.LCA = nil, nil, nil
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

// updateLCA recomputes the LCA once both marks are set.
func (m *BrowseModel) updateLCA() {
	m.LCA = nil
	if m.MarkA == nil || m.MarkB == nil {
		return
	}
	// Both marks come from the same tree, so this cannot fail.
	if lca, err := linked.LowestCommonAncestorOf(m.MarkA, m.MarkB); err == nil {
		m.LCA = lca
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("lvtree"))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("↑/↓ navigate  a/b mark  c clear  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Nodes))
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		line := m.Lines[i]
		switch {
		case n == m.LCA:
			line = StyleMark.Render(line + "  ← lca")
		case n == m.MarkA || n == m.MarkB:
			line = StyleMark.Render(line)
		}
		if i == m.Cursor {
			b.WriteString(browseCursorStyle.Render("▸ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render(m.status()))
	return b.String()
}

// status summarizes the marks and the LCA.
func (m BrowseModel) status() string {
	value := func(n *linked.Node[string]) string {
		if n == nil {
			return "-"
		}
		return n.Value()
	}
	return fmt.Sprintf("a: %s  b: %s  lca: %s  [%d/%d]",
		value(m.MarkA), value(m.MarkB), value(m.LCA), m.Cursor+1, len(m.Nodes))
}
