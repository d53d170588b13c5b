package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lineage/core"
	"github.com/katalvlaran/lineage/dfs"
)

// ExamplePaths lists both lineages in a diamond pedigree.
func ExamplePaths() {
	p := core.New[string]()
	a := p.Add("A", core.None, core.None)
	b := p.Add("B", a, core.None)
	c := p.Add("C", a, core.None)
	d := p.Add("D", b, c)

	for _, path := range dfs.Paths(p, a, d) {
		fmt.Println(path)
	}
	fmt.Println(dfs.IsDescendantOf(p, d, a))
	// Output:
	// [3 1 0]
	// [3 2 0]
	// false
}
