// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_scalefree.go - preferential-attachment (Barabási–Albert style)
// constructor.
//
// Contract:
//   - Seeds a small complete clique, then attaches each new vertex to
//     one uniformly random predecessor (connectivity) plus up to
//     edgesPer-1 more chosen proportionally to current degree.
//   - Returns the largest weakly-connected component, densely remapped.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	scaleFreeSeedClique   = 3
	scaleFreePassesPerAdd = 3
)

// ScaleFree builds a power-law-degree digraph over n vertices with
// about edgesPer arcs per attached vertex; edgesPer ≥ 1.
func ScaleFree(n, edgesPer int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("ScaleFree: n=%d: %w", n, ErrTooFewVertices)
	}
	if edgesPer < 1 {
		return nil, fmt.Errorf("ScaleFree: edgesPer=%d: %w", edgesPer, ErrBadEdgeCount)
	}
	cfg := resolve(opts)
	if err := cfg.validateWeights(); err != nil {
		return nil, fmt.Errorf("ScaleFree: %w", err)
	}

	rng := cfg.topologyRNG()
	weight := cfg.weightFn()

	edges := make([]core.Edge, 0, n*edgesPer)
	degree := make([]int, n)
	add := func(u, v int) {
		w := weight()
		edges = append(edges, core.Edge{From: u, To: v, Weight: w})
		degree[u]++
		degree[v]++
		if cfg.undirected {
			edges = append(edges, core.Edge{From: v, To: u, Weight: w})
		}
	}

	// Seed clique keeps the early attachment pool connected.
	clique := min(scaleFreeSeedClique, n)
	for i := 0; i < clique; i++ {
		for j := i + 1; j < clique; j++ {
			add(i, j)
		}
	}

	for fresh := clique; fresh < n; fresh++ {
		totalDegree := 0
		for i := 0; i < fresh; i++ {
			totalDegree += degree[i]
		}

		// Guaranteed link to one uniformly random predecessor.
		first := rng.Intn(fresh)
		add(fresh, first)
		connected := map[int]bool{first: true}

		// Remaining links by preferential attachment.
		want := min(edgesPer, fresh)
		for pass := 0; pass < want*scaleFreePassesPerAdd && len(connected) < want; pass++ {
			for i := 0; i < fresh && len(connected) < want; i++ {
				if connected[i] {
					continue
				}
				p := float64(degree[i]+1) / float64(totalDegree+fresh)
				if rng.Float64() < p {
					add(fresh, i)
					connected[i] = true
				}
			}
		}
	}

	size, component := largestComponent(n, edges)

	return core.NewGraph(size, component)
}
