package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/builder"
)

func browseModel(t *testing.T) BrowseModel {
	t.Helper()
	b := builder.New[string]()
	require.NoError(t, b.AddEdgesFromText("A B\nB C\nB D\nA E", " ", builder.ParseString))
	root, err := b.BuildParentLinked()
	require.NoError(t, err)
	return NewBrowseModel(root)
}

func press(t *testing.T, m BrowseModel, keys ...tea.KeyMsg) BrowseModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BrowseModel)
	}
	return m
}

var (
	keyDown = tea.KeyMsg{Type: tea.KeyDown}
	keyUp   = tea.KeyMsg{Type: tea.KeyUp}
)

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestBrowseModel_Rows(t *testing.T) {
	m := browseModel(t)
	require.Len(t, m.Nodes, 5)
	assert.Equal(t, []string{"A", "├── B", "│   ├── C", "│   └── D", "└── E"}, m.Lines)
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := browseModel(t)

	m = press(t, m, keyUp)
	assert.Equal(t, 0, m.Cursor)

	m = press(t, m, keyDown, keyDown, keyRune('j'))
	assert.Equal(t, 3, m.Cursor)

	m = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 4, m.Cursor)

	m = press(t, m, keyRune('k'))
	assert.Equal(t, 3, m.Cursor)
}

func TestBrowseModel_Scroll(t *testing.T) {
	m := browseModel(t)
	m.Height = 2

	m = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.Offset)

	m = press(t, m, keyUp, keyUp, keyUp)
	assert.Equal(t, 0, m.Offset)
}

func TestBrowseModel_MarksAndLCA(t *testing.T) {
	m := browseModel(t)

	// C and D share B.
	m = press(t, m, keyDown, keyDown, keyRune('a'), keyDown, keyRune('b'))
	require.NotNil(t, m.LCA)
	assert.Equal(t, "B", m.LCA.Value())
	assert.Contains(t, m.View(), "a: C  b: D  lca: B")

	// Re-marking b on E moves the LCA to the root.
	m = press(t, m, keyDown, keyRune('b'))
	assert.Equal(t, "A", m.LCA.Value())

	m = press(t, m, keyRune('c'))
	assert.Nil(t, m.MarkA)
	assert.Nil(t, m.LCA)
	assert.Contains(t, m.View(), "a: -  b: -  lca: -")
}

func TestBrowseModel_Quit(t *testing.T) {
	m := browseModel(t)
	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowseModel_WindowSize(t *testing.T) {
	m := browseModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	assert.Equal(t, 5, next.(BrowseModel).Height)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Equal(t, 24, next.(BrowseModel).Height)
}
