package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexRange indicates an edge endpoint outside [0, |V|).
	ErrVertexRange = errors.New("core: edge endpoint out of range")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge is a single directed arc From→To with a non-negative finite weight.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is an immutable directed graph in CSR form.
//
// offsets has length |V|+1; the adjacency of vertex u occupies
// targets[offsets[u]:offsets[u+1]] and weights[offsets[u]:offsets[u+1]].
// Edges of a vertex keep the relative order in which they were supplied
// to NewGraph.
type Graph struct {
	offsets   []int
	targets   []int
	weights   []float64
	maxWeight float64
}

// NewGraph builds a CSR graph over n vertices from the given edge list.
// Every endpoint must lie in [0, n) and every weight must be finite and
// non-negative; the first offending edge is reported and no graph is
// returned.
//
// Complexity: O(|V| + |E|) time and space (two passes: count, fill).
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	// Validate every edge before allocating adjacency storage.
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d→%d with |V|=%d", ErrVertexRange, e.From, e.To, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edge %d→%d", ErrBadWeight, e.From, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	g := &Graph{
		offsets: make([]int, n+1),
		targets: make([]int, len(edges)),
		weights: make([]float64, len(edges)),
	}

	// Pass 1: out-degrees into offsets[1..n].
	for _, e := range edges {
		g.offsets[e.From+1]++
	}
	for u := 0; u < n; u++ {
		g.offsets[u+1] += g.offsets[u]
	}

	// Pass 2: stable fill using a per-vertex cursor, so adjacency order
	// matches input order for each source vertex.
	cursor := make([]int, n)
	copy(cursor, g.offsets[:n])
	for _, e := range edges {
		at := cursor[e.From]
		cursor[e.From]++
		g.targets[at] = e.To
		g.weights[at] = e.Weight
		if e.Weight > g.maxWeight {
			g.maxWeight = e.Weight
		}
	}

	return g, nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.offsets) - 1 }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.targets) }

// Degree returns the out-degree of u in O(1).
func (g *Graph) Degree(u int) int { return g.offsets[u+1] - g.offsets[u] }

// Neighbors returns the ordered adjacency of u as two parallel slices
// (targets, weights). Both slices alias the graph's internal storage and
// must be treated as read-only.
func (g *Graph) Neighbors(u int) ([]int, []float64) {
	lo, hi := g.offsets[u], g.offsets[u+1]

	return g.targets[lo:hi], g.weights[lo:hi]
}

// MaxEdgeWeight returns the largest edge weight in the graph, or 0 for
// an edgeless graph.
func (g *Graph) MaxEdgeWeight() float64 { return g.maxWeight }

// Edges reconstructs the full edge list in CSR order. Intended for
// serialization and tests; costs O(|E|) allocations.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for u := 0; u < g.VertexCount(); u++ {
		targets, weights := g.Neighbors(u)
		for k, v := range targets {
			out = append(out, Edge{From: u, To: v, Weight: weights[k]})
		}
	}

	return out
}
