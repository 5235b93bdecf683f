package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/linked"
)

const referenceDisplay = `A
├── B
│   ├── C
│   │   ├── D
│   │   ├── E
│   │   └── F
│   └── G
│       └── H
│           ├── I
│           └── J
├── K
└── L
    ├── M
    └── N
`

type result struct {
	out  string
	logs string
	err  error
}

// execute runs the CLI with args and stdin, isolated from any user config.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return result{out: out.String(), logs: logs.String(), err: err}
}

func fixture(name string) string { return filepath.Join("testdata", name) }

func TestRender(t *testing.T) {
	r := execute(t, "", "render", "--plain", fixture("reference.edges"))
	require.NoError(t, r.err)
	assert.Equal(t, referenceDisplay, r.out)
}

func TestRender_Styled(t *testing.T) {
	// Styling must not change the line structure.
	r := execute(t, "", "render", fixture("reference.edges"))
	require.NoError(t, r.err)
	assert.Equal(t, referenceDisplay, r.out)
}

func TestTraverse(t *testing.T) {
	tests := []struct {
		order string
		file  string
		want  string
	}{
		{"dfs", "reference.edges", "A B C D E F G H I J K L M N\n"},
		{"bfs", "reference.edges", "A B K L C G M N D E F H I J\n"},
		{"pre", "binary.edges", "A B C D E F G H I J\n"},
		{"in", "binary.edges", "D C E B H G I F A J\n"},
		{"post", "binary.edges", "D E C H I G F B J A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			r := execute(t, "", "traverse", "--order", tt.order, fixture(tt.file))
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.out)
		})
	}
}

func TestTraverse_Errors(t *testing.T) {
	r := execute(t, "", "traverse", "--order", "pre", fixture("reference.edges"))
	require.ErrorIs(t, r.err, builder.ErrTooManyChildren)

	r = execute(t, "", "traverse", "--order", "sideways", fixture("reference.edges"))
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), `unknown order "sideways"`)
}

func TestQueries(t *testing.T) {
	file := fixture("reference.edges")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"lca leaves", []string{"lca", file, "I", "J"}, "H\n"},
		{"lca across", []string{"lca", file, "D", "H"}, "B\n"},
		{"lca child of other", []string{"lca", file, "M", "L"}, "L\n"},
		{"lca same", []string{"lca", file, "A", "A"}, "A\n"},
		{"generation", []string{"generation", file, "J"}, "4\n"},
		{"generation root", []string{"generation", file, "A"}, "0\n"},
		{"parent", []string{"parent", file, "G"}, "B\n"},
		{"parent of root", []string{"parent", file, "A"}, "\n"},
		{"path", []string{"path", "--plain", file, "I"}, "A → B → G → H → I\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, "", tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.out)
		})
	}
}

func TestQueries_NotFound(t *testing.T) {
	file := fixture("reference.edges")

	r := execute(t, "", "lca", file, "_NONE_", "A")
	require.ErrorIs(t, r.err, linked.ErrNodeNotFound)
	assert.Contains(t, r.err.Error(), "first")

	r = execute(t, "", "lca", file, "A", "_NONE_")
	require.ErrorIs(t, r.err, linked.ErrNodeNotFound)
	assert.Contains(t, r.err.Error(), "second")

	for _, cmd := range []string{"generation", "parent", "path"} {
		r = execute(t, "", cmd, file, "_NONE_")
		require.ErrorIs(t, r.err, linked.ErrNodeNotFound, cmd)
	}
}

func TestStats(t *testing.T) {
	r := execute(t, "", "stats", "--plain", fixture("reference.edges"))
	require.NoError(t, r.err)
	assert.Equal(t, ""+
		"root     A\n"+
		"nodes    14\n"+
		"edges    13\n"+
		"height   4\n"+
		"leaves   8\n", r.out)
}

func TestDot(t *testing.T) {
	r := execute(t, "", "dot", "--highlight", "B,K", fixture("reference.edges"))
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.out, "digraph G {\n  rankdir=TB;\n"))
	assert.Contains(t, r.out, `"n0" [label="A"];`)
	assert.Contains(t, r.out, `"n1" [label="B", fillcolor=gold];`)
	assert.Contains(t, r.out, `"n0" -> "n1";`)
	assert.Equal(t, 13, strings.Count(r.out, "->"))

	r = execute(t, "", "dot", "--rankdir", "LR", fixture("reference.edges"))
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "rankdir=LR;")
}

func TestDot_InvalidRankDir(t *testing.T) {
	r := execute(t, "", "dot", "--rankdir", "UP", fixture("reference.edges"))
	require.Error(t, r.err)
	assert.Equal(t, `--rankdir "UP": want one of TB, LR, BT, RL`, r.err.Error())
	assert.Empty(t, r.out)
}

func TestDot_SVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.svg")
	r := execute(t, "", "dot", "--plain", "--svg", out, fixture("binary.edges"))
	require.NoError(t, r.err)
	assert.Equal(t, "✓ wrote "+out+"\n", r.out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestStdinAndDelimiter(t *testing.T) {
	r := execute(t, "X Y\nX Z\n", "traverse", "-")
	require.NoError(t, r.err)
	assert.Equal(t, "X Y Z\n", r.out)

	r = execute(t, "1,2\n2,3\n", "traverse", "-d", ",", "-")
	require.NoError(t, r.err)
	assert.Equal(t, "1 2 3\n", r.out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("delimiter = \"->\"\ncolor = false\n"), 0o600))

	r := execute(t, "P->Q\nQ->R\n", "--config", path, "path", "-", "R")
	require.NoError(t, r.err)
	assert.Equal(t, "P → Q → R\n", r.out)

	r = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "stats", fixture("reference.edges"))
	require.Error(t, r.err)
}

func TestBuildErrors(t *testing.T) {
	r := execute(t, "", "render", fixture("duplicate.edges"))
	require.ErrorIs(t, r.err, builder.ErrDuplicateParent)
	assert.Contains(t, r.err.Error(), "line 2")
	// main prints the error once; cobra stays quiet.
	assert.NotContains(t, r.logs, "Error:")

	r = execute(t, "A B\nC D\n", "render", "-")
	require.ErrorIs(t, r.err, builder.ErrMultipleRoots)

	r = execute(t, "", "render", fixture("does-not-exist.edges"))
	require.ErrorIs(t, r.err, os.ErrNotExist)
}

func TestVerboseLogsBuilderEvents(t *testing.T) {
	r := execute(t, "", "-v", "stats", fixture("binary.edges"))
	require.NoError(t, r.err)
	assert.Contains(t, r.logs, "edge added")
	assert.Contains(t, r.logs, "tree built")
	assert.Contains(t, r.logs, "edges loaded")

	r = execute(t, "", "stats", fixture("binary.edges"))
	require.NoError(t, r.err)
	assert.NotContains(t, r.logs, "edge added")
}
