// Package core defines the immutable weighted digraph shared by every
// solver in this module.
//
// Overview:
//
//   - Graph stores a directed graph in compressed sparse row (CSR) form:
//     one offsets array of length |V|+1 and two parallel arrays of edge
//     targets and weights, both of length |E|.
//   - Vertices are dense integers in [0, |V|); weights are non-negative
//     finite float64 values.
//   - Construction validates every edge once and then freezes the graph;
//     no mutation is possible afterwards, so all accessors are safe for
//     unsynchronized concurrent use.
//
// Key accessors:
//
//   - VertexCount / EdgeCount: sizes, O(1).
//   - Degree(u): out-degree, O(1).
//   - Neighbors(u): the ordered (targets, weights) adjacency slices, O(1);
//     both alias internal storage and must not be written.
//   - MaxEdgeWeight: the largest weight observed at construction, O(1).
//
// Errors (sentinel):
//
//   - ErrBadVertexCount if the requested vertex count is negative.
//   - ErrVertexRange    if an edge endpoint falls outside [0, |V|).
//   - ErrNegativeWeight if an edge weight is negative.
//   - ErrBadWeight      if an edge weight is NaN or infinite.
//
// Example:
//
//	g, err := core.NewGraph(3, []core.Edge{
//	    {From: 0, To: 1, Weight: 0.5},
//	    {From: 1, To: 2, Weight: 0.2},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	targets, weights := g.Neighbors(0)
package core
