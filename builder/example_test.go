package builder_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/builder"
)

// ExampleGrid builds a small directed grid and reports its shape.
func ExampleGrid() {
	g, err := builder.Grid(2, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 6 7
}

// ExampleRandomSparse shows deterministic generation: a fixed seed
// always yields the same graph.
func ExampleRandomSparse() {
	a, _ := builder.RandomSparse(50, 200, builder.WithSeed(1))
	b, _ := builder.RandomSparse(50, 200, builder.WithSeed(1))
	fmt.Println(a.VertexCount() == b.VertexCount(), a.EdgeCount() == b.EdgeCount())
	// Output: true true
}
