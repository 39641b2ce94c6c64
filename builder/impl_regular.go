// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_regular.go - Complete, Grid, Path and Star constructors: the
// deterministic topologies. Only the weights are stochastic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Complete builds the complete digraph K_n: one arc for every ordered
// pair u ≠ v. The undirected option is a no-op here (both directions
// exist already, each with its own weight).
//
// Complexity: O(n²) edges.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	weight := cfg.weightFn()
	edges := make([]core.Edge, 0, n*(n-1))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				edges = append(edges, core.Edge{From: u, To: v, Weight: weight()})
			}
		}
	}

	return core.NewGraph(n, edges)
}

// Grid builds a rows×cols orthogonal grid with 4-neighborhood; cell
// (r,c) is vertex r*cols+c, and arcs run to the right and bottom
// neighbors. WithUndirected adds the reverse arcs with shared weights.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrBadDimensions)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}

	weight := cfg.weightFn()
	n := rows * cols
	edges := make([]core.Edge, 0, 2*n)
	add := func(u, v int) {
		w := weight()
		edges = append(edges, core.Edge{From: u, To: v, Weight: w})
		if cfg.undirected {
			edges = append(edges, core.Edge{From: v, To: u, Weight: w})
		}
	}
	// Row-major emission: right neighbor first, then bottom.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				add(u, u+1)
			}
			if r+1 < rows {
				add(u, u+cols)
			}
		}
	}

	return core.NewGraph(n, edges)
}

// Path builds a linear chain 0→1→…→n-1.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	weight := cfg.weightFn()
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		w := weight()
		edges = append(edges, core.Edge{From: i, To: i + 1, Weight: w})
		if cfg.undirected {
			edges = append(edges, core.Edge{From: i + 1, To: i, Weight: w})
		}
	}

	return core.NewGraph(n, edges)
}

// Star builds a hub-and-spoke graph: vertex 0 is the center with one
// arc to each of the n-1 leaves.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}

	weight := cfg.weightFn()
	edges := make([]core.Edge, 0, n-1)
	for leaf := 1; leaf < n; leaf++ {
		w := weight()
		edges = append(edges, core.Edge{From: 0, To: leaf, Weight: w})
		if cfg.undirected {
			edges = append(edges, core.Edge{From: leaf, To: 0, Weight: w})
		}
	}

	return core.NewGraph(n, edges)
}
