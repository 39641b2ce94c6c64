package deltastep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Sequential computes single-source shortest paths with the classic
// sequential Δ-stepping algorithm: set-based buckets that grow on
// demand, direct relaxation, no concurrency. It shares the parallel
// engine's outer structure (light edges until the bucket is stable,
// then one heavy pass over everything the bucket settled) and serves
// as the second oracle besides Dijkstra; it also wins outright on
// small inputs where pool overhead dominates.
//
// Complexity: O(|V| + |E| + W_max/Δ) expected for graphs with random
// weights; worst case degrades with the number of re-relaxations per
// bucket.
func Sequential(g *core.Graph, source int, delta float64) ([]float64, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDelta, delta)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, |V|=%d", ErrSourceRange, source, n)
	}

	dist := make([]float64, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}

	// Growable buckets: index i holds the vertices with tentative
	// distance in [iΔ, (i+1)Δ). Sets, because a vertex migrates freely
	// while its bucket is re-relaxed.
	buckets := []map[int]struct{}{{source: {}}}
	dist[source] = 0

	bucketOf := func(v int) int {
		if math.IsInf(dist[v], 1) {
			return noBucket
		}

		return int(dist[v] / delta)
	}

	relax := func(u, v int, w float64) {
		nd := dist[u] + w
		if nd >= dist[v] {
			return
		}
		old := bucketOf(v)
		dist[v] = nd
		next := bucketOf(v)
		if old != noBucket {
			delete(buckets[old], v)
		}
		for next >= len(buckets) {
			buckets = append(buckets, map[int]struct{}{})
		}
		buckets[next][v] = struct{}{}
	}

	for i := 0; i < len(buckets); i++ {
		// settled collects every vertex the bucket ever held this
		// epoch; their heavy edges are relaxed exactly once below.
		settled := make(map[int]struct{})
		for len(buckets[i]) > 0 {
			snapshot := make([]int, 0, len(buckets[i]))
			for u := range buckets[i] {
				snapshot = append(snapshot, u)
			}
			buckets[i] = map[int]struct{}{}
			for _, u := range snapshot {
				targets, weights := g.Neighbors(u)
				for k, v := range targets {
					if weights[k] < delta {
						relax(u, v, weights[k])
					}
				}
				settled[u] = struct{}{}
			}
		}
		for u := range settled {
			targets, weights := g.Neighbors(u)
			for k, v := range targets {
				if weights[k] >= delta {
					relax(u, v, weights[k])
				}
			}
		}
	}

	return dist, nil
}
