package relationship_test

import (
	"fmt"

	"github.com/katalvlaran/lineage/core"
	"github.com/katalvlaran/lineage/relationship"
)

// ExampleCoefficient relates two first cousins.
func ExampleCoefficient() {
	p := core.New[string]()
	a := p.Add("A", core.None, core.None)
	b := p.Add("B", core.None, core.None)
	d := p.Add("D", a, b)
	e := p.Add("E", a, b)
	g := p.Add("G", d, core.None)
	h := p.Add("H", e, core.None)

	r, err := relationship.Coefficient(p, g, h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	// Output:
	// 0.125
}

// ExampleContributions breaks the diamond's coefficient into its two routes.
func ExampleContributions() {
	p := core.New[string]()
	a := p.Add("A", core.None, core.None)
	b := p.Add("B", a, core.None)
	c := p.Add("C", a, core.None)
	d := p.Add("D", b, c)

	terms, _ := relationship.Contributions(p, a, d)
	for _, t := range terms {
		fmt.Println(t.Ancestor, t.Path2, t.Value)
	}
	// Output:
	// 0 [3 1 0] 0.25
	// 0 [3 2 0] 0.25
}
