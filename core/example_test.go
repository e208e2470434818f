package core_test

import (
	"fmt"

	"github.com/lvlath-go/typeflow/core"
)

// ExampleGraph_AddEdge shows the two-index edge store in isolation, with
// no search or registry involved: one edge from type slot 1 to slot 2.
func ExampleGraph_AddEdge() {
	g := core.NewGraph[int, string, string]()

	g.AddEdge(1, 1, core.NewVariationSet("path"), 2, nil, "loadFile")

	for _, e := range g.ByIn(1) {
		fmt.Println(e.Payload, e.VarsIn)
	}
	// Output: loadFile [path]
}
