package tree_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// ExampleNode_StringTree renders a small hand-assembled tree.
func ExampleNode_StringTree() {
	root := tree.New("root",
		tree.New("etc", tree.New("hosts")),
		tree.New("usr", tree.New("bin"), tree.New("lib")),
	)
	fmt.Println(root.StringTree())
	// Output:
	// root
	// ├── etc
	// │   └── hosts
	// └── usr
	//     ├── bin
	//     └── lib
}
