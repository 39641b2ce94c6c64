package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceRange indicates a source vertex outside [0, |V|).
	ErrSourceRange = errors.New("dijkstra: source vertex out of range")
)

// Compute returns the exact shortest-path distances from source to all
// vertices of g: result[source] == 0, unreachable vertices hold +Inf.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Compute(g *core.Graph, source int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, |V|=%d", ErrSourceRange, source, n)
	}

	r := &runner{
		g:       g,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
	r.process()

	return r.dist, nil
}

// runner holds the mutable state of a single Compute execution.
type runner struct {
	g       *core.Graph
	dist    []float64
	visited []bool
	pq      nodePQ
}

// process pops the closest unvisited vertex and relaxes its outgoing
// edges until the heap drains. Stale heap entries (vertex already
// finalized) are skipped on pop; this is the lazy decrease-key.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		targets, weights := r.g.Neighbors(u)
		du := r.dist[u]
		for k, v := range targets {
			if nd := du + weights[k]; nd < r.dist[v] {
				r.dist[v] = nd
				heap.Push(&r.pq, nodeItem{id: v, dist: nd})
			}
		}
	}
}

// nodeItem pairs a vertex with the tentative distance it was pushed at.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
