// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_rmat.go - recursive-matrix (R-MAT) constructor.
//
// The adjacency matrix is split recursively into quadrants with
// probabilities (a, b, c, d); skew toward quadrant a yields the heavy
// power-law degree tail that makes vertex-balanced work partitioning
// pathological, which is exactly what the engine benchmarks need.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Graph500 reference quadrant probabilities.
const (
	rmatA = 0.57
	rmatB = 0.19
	rmatC = 0.19
	// d = 1 - a - b - c = 0.05

	maxRMATScale      = 30
	rmatAttemptFactor = 100
)

// RMAT builds an R-MAT digraph over 2^scale vertices with up to m
// distinct arcs (self-loops and duplicates are re-sampled, capped at
// m*100 attempts). Scale is limited to 30.
func RMAT(scale, m int, opts ...Option) (*core.Graph, error) {
	if scale < 0 || scale > maxRMATScale {
		return nil, fmt.Errorf("RMAT: scale=%d: %w", scale, ErrBadScale)
	}
	if m < 0 {
		return nil, fmt.Errorf("RMAT: m=%d: %w", m, ErrBadEdgeCount)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("RMAT: %w", err)
	}

	rng := cfg.topologyRNG()
	weight := cfg.weightFn()
	n := 1 << uint(scale)

	type pair struct{ u, v int }
	seen := make(map[pair]bool, m)
	edges := make([]core.Edge, 0, m)

	for attempts := 0; len(edges) < m && attempts < m*rmatAttemptFactor; attempts++ {
		// Descend scale levels, picking a quadrant per level.
		u, v := 0, 0
		for bit := n >> 1; bit > 0; bit >>= 1 {
			switch p := rng.Float64(); {
			case p < rmatA:
				// upper-left: nothing to add
			case p < rmatA+rmatB:
				v += bit
			case p < rmatA+rmatB+rmatC:
				u += bit
			default:
				u += bit
				v += bit
			}
		}
		if u == v || seen[pair{u, v}] {
			continue
		}
		w := weight()
		edges = append(edges, core.Edge{From: u, To: v, Weight: w})
		seen[pair{u, v}] = true
		if cfg.undirected && !seen[pair{v, u}] {
			edges = append(edges, core.Edge{From: v, To: u, Weight: w})
			seen[pair{v, u}] = true
		}
	}

	size, component := largestComponent(n, edges)

	return core.NewGraph(size, component)
}
