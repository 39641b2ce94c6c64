// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// components.go - largest weakly-connected component extraction used by
// the stochastic families.

package builder

import "github.com/katalvlaran/sssp/core"

// largestComponent keeps only the largest weakly-connected component of
// the edge set and remaps its vertices to a dense [0, n') range in
// ascending order of their original IDs. Directions are ignored for connectivity, matching
// how benchmark inputs are prepared.
//
// Complexity: O(n + len(edges)).
func largestComponent(n int, edges []core.Edge) (int, []core.Edge) {
	if len(edges) == 0 {
		return minComponentSize, nil
	}

	// Undirected adjacency for reachability only.
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	comp := make([]int, n)
	for v := range comp {
		comp[v] = -1
	}

	// BFS label pass; track the largest component on the fly.
	var queue []int
	best, bestSize, components := 0, 0, 0
	for start := 0; start < n; start++ {
		if comp[start] != -1 {
			continue
		}
		id := components
		components++
		size := 1
		comp[start] = id
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if comp[v] == -1 {
					comp[v] = id
					size++
					queue = append(queue, v)
				}
			}
		}
		if size > bestSize {
			best, bestSize = id, size
		}
	}

	// Dense remap in first-appearance order over the original IDs.
	remap := make([]int, n)
	for v := range remap {
		remap[v] = -1
	}
	next := 0
	for v := 0; v < n; v++ {
		if comp[v] == best {
			remap[v] = next
			next++
		}
	}

	kept := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if comp[e.From] == best && comp[e.To] == best {
			kept = append(kept, core.Edge{From: remap[e.From], To: remap[e.To], Weight: e.Weight})
		}
	}

	return bestSize, kept
}

// minComponentSize is the fallback vertex count when an edge-free input
// collapses to a single isolated vertex.
const minComponentSize = 1
