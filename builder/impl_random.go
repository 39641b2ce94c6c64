// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random.go - RandomSparse and RandomDense constructors.
//
// Contract:
//   - n ≥ 1, m ≥ 0; self-loops and duplicate arcs are rejected by the
//     sampler, so the effective edge count can fall short of m on tiny
//     or saturated vertex sets (the attempt cap prevents livelock).
//   - Returns the largest weakly-connected component, densely remapped.
//   - WithUndirected emits the reverse arc with the same weight.
//
// Determinism: fixed (n, m, options) ⇒ identical output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Attempt caps per family, as multiples of m: dense sampling gets the
// smaller multiplier, since its m is already large.
const (
	sparseAttemptFactor = 100
	denseAttemptFactor  = 50
)

// RandomSparse builds a uniform random digraph with up to m edges over
// n vertices and returns its largest weakly-connected component.
func RandomSparse(n, m int, opts ...Option) (*core.Graph, error) {
	return randomGraph("RandomSparse", n, m, sparseAttemptFactor, opts)
}

// RandomDense builds a dense uniform random digraph with up to m edges
// over n vertices; identical sampling with a tighter attempt budget,
// intended for m within a factor of the complete-graph bound.
func RandomDense(n, m int, opts ...Option) (*core.Graph, error) {
	return randomGraph("RandomDense", n, m, denseAttemptFactor, opts)
}

func randomGraph(method string, n, m, attemptFactor int, opts []Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewVertices)
	}
	if m < 0 {
		return nil, fmt.Errorf("%s: m=%d: %w", method, m, ErrBadEdgeCount)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	rng := cfg.topologyRNG()
	weight := cfg.weightFn()

	type pair struct{ u, v int }
	seen := make(map[pair]bool, m)
	edges := make([]core.Edge, 0, m)

	// Rejection sampling with a hard attempt cap.
	for attempts := 0; len(edges) < m && attempts < m*attemptFactor; attempts++ {
		u, v := rng.Intn(n), rng.Intn(n)
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
