// Package sssp is a parallel single-source shortest-path toolkit for
// directed graphs with non-negative real-valued weights.
//
// The centerpiece is a multi-threaded Δ-stepping engine: vertices are
// grouped into distance buckets of width Δ, edges split into light
// (w < Δ) and heavy (w ≥ Δ) classes, and a fixed worker pool settles
// one bucket at a time through barrier-delimited phases. A lock-free
// request map coalesces concurrent relaxation proposals, and work
// inside a bucket is partitioned by edges, not vertices, so skewed
// degree distributions stay balanced.
//
// Subpackages:
//
//	core/      — immutable CSR graph: dense integer vertices, float64 weights
//	deltastep/ — the parallel engine plus the sequential Δ-stepping reference
//	dijkstra/  — sequential Dijkstra, the correctness oracle
//	builder/   — synthetic graph families (random, complete, grid, path,
//	             star, RMAT, scale-free) with uniform or power-law weights
//	graphio/   — edge-list and distance-vector text formats
//	bench/     — benchmark sweeps: deltas × thread counts × graph files,
//	             oracle-verified, CSV-reported
//	cmd/       — dsgen (generator), dssolve (one-shot solver), dsbench
//	             (sweep driver)
//
// Quick start:
//
//	g, err := graphio.LoadFile("graph.txt")
//	if err != nil { ... }
//	solver, err := deltastep.New(0.1, runtime.GOMAXPROCS(0))
//	if err != nil { ... }
//	dist, err := solver.Compute(g, 0)
//
// Every solver returns the full distance vector: result[source] == 0,
// unreachable vertices hold +Inf. Distances only; path reconstruction,
// negative weights and dynamic updates are out of scope.
package sssp
