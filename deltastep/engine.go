package deltastep

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/sssp/core"
)

// Solver is a reusable parallel Δ-stepping engine configuration. It
// holds no per-run state: every Compute call is self-contained, so one
// Solver may serve concurrent computations on different graphs.
type Solver struct {
	delta     float64
	workers   int
	ringSlack int
}

// New validates the configuration and returns a Solver.
//
// Constraints: delta must be a finite value > 0, workers ≥ 1, and the
// ring slack (see WithRingSlack) ≥ 1.
func New(delta float64, workers int, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDelta, delta)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, workers)
	}
	if cfg.RingSlack < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRingSlack, cfg.RingSlack)
	}

	return &Solver{delta: delta, workers: workers, ringSlack: cfg.RingSlack}, nil
}

// Delta returns the configured bucket width.
func (s *Solver) Delta() float64 { return s.delta }

// Workers returns the configured worker count.
func (s *Solver) Workers() int { return s.workers }

// Compute returns the exact shortest-path distances from source to
// every vertex of g: result[source] == 0 and unreachable vertices hold
// +Inf. The graph is only read; all mutable state is private to the
// call. The worker pool lives exactly as long as the call.
func (s *Solver) Compute(g *core.Graph, source int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, |V|=%d", ErrSourceRange, source, n)
	}

	// Ring size: at most ⌈W_max/Δ⌉ distinct absolute bucket indices can
	// be live at any instant, plus the configured slack against
	// aliasing a stale index onto a fresh one.
	ringSize := int(math.Ceil(g.MaxEdgeWeight()/s.delta)) + s.ringSlack

	r := &run{
		g:           g,
		delta:       s.delta,
		workers:     s.workers,
		ringSize:    ringSize,
		dist:        make([]float64, n),
		pos:         make([]int, n),
		buckets:     make([]*bucket, ringSize),
		light:       newRequestMap(n),
		heavy:       newRequestMap(n),
		prefix:      make([]int, n),
		workerTotal: make([]int, s.workers),
		workerPref:  make([]int, s.workers),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.pos[v] = noPosition
	}
	for i := range r.buckets {
		r.buckets[i] = newBucket(n)
	}

	r.dist[source] = 0
	r.pos[source] = r.buckets[0].push(source)

	r.pool = newWorkerPool(s.workers)
	defer r.pool.stop()

	// Outer epochs walk the ring; termination after ringSize
	// consecutive empty epochs proves no live bucket remains.
	for gen, idle := 0, 0; idle < ringSize; gen, idle = gen+1, idle+1 {
		if gen == ringSize {
			gen = 0
		}
		r.gen = gen

		// Inner iterations: settle the current bucket over light edges
		// until it stops re-filling.
		for !r.buckets[gen].empty() {
			idle = 0
			r.generateRequests()
			r.relaxPhase(r.light)
		}

		// Heavy requests accumulated across the inner iterations are
		// relaxed once per epoch; heavy edges always land in a later
		// bucket, so the current epoch stays quiescent.
		r.relaxPhase(r.heavy)
	}

	return r.dist, nil
}

// run is the per-Compute state of the engine. dist and pos are written
// single-writer-per-vertex inside relax phases; the request maps are
// the only cross-worker write channel during request generation.
type run struct {
	g        *core.Graph
	delta    float64
	workers  int
	ringSize int
	gen      int

	dist    []float64
	pos     []int
	buckets []*bucket

	light *requestMap
	heavy *requestMap

	// Scratch for the edge-balanced partition of phase L1: per-slice
	// inclusive degree prefixes and per-worker totals.
	prefix      []int
	workerTotal []int
	workerPref  []int

	pool *workerPool
}

// bucketFor maps the current tentative distance of v to its ring slot,
// or noBucket while v is unreached.
func (r *run) bucketFor(v int) int {
	d := r.dist[v]
	if math.IsInf(d, 1) {
		return noBucket
	}

	return int(d/r.delta) % r.ringSize
}

// generateRequests is phase L1: snapshot the current bucket, split its
// edge index range evenly across workers, and publish one light or
// heavy proposal per improving edge. Two barriers: one to finish the
// per-worker degree prefixes, one to finish the scan. The bucket is
// cleared afterwards; its contents have been consumed.
//
// Vertex-balanced chunking is pathological on high-variance degree
// graphs (RMAT, scale-free): one worker can end up owning nearly every
// edge. Edge-balanced chunking keeps per-worker work within
// O(E/W + max_degree).
func (r *run) generateRequests() {
	cur := r.buckets[r.gen]
	size := cur.size()
	nodesPer := (size + r.workers - 1) / r.workers

	// Stage A: each worker computes the inclusive running edge count of
	// its node slice (tombstones count zero) plus the slice total.
	for tid := 0; tid < r.workers; tid++ {
		tid := tid
		lo := min(tid*nodesPer, size)
		hi := min(lo+nodesPer, size)
		r.pool.run(tid, func() {
			running := 0
			for i := lo; i < hi; i++ {
				if u := cur.read(i); u != tombstone {
					running += r.g.Degree(u)
				}
				r.prefix[i] = running
			}
			r.workerTotal[tid] = running
		})
	}
	r.pool.wait()

	// Driver: inclusive scan of the per-worker totals.
	total := 0
	for tid := 0; tid < r.workers; tid++ {
		total += r.workerTotal[tid]
		r.workerPref[tid] = total
	}

	// Stage B: hand each worker an equal share of the edge index range
	// [0, total); the worker locates its starting (node, edge offset)
	// pair by binary search in the owning slice's prefix.
	chunk := (total + r.workers - 1) / r.workers
	batch := 0
	for tid := 0; tid < r.workers; tid++ {
		startE := tid * chunk
		endE := min(total, startE+chunk)
		for batch < r.workers && startE >= r.workerPref[batch] {
			batch++
		}
		startBatch := startE
		if batch > 0 {
			startBatch -= r.workerPref[batch-1]
		}
		owner := batch
		r.pool.run(tid, func() {
			r.scanEdges(cur, size, nodesPer, startE, endE, owner, startBatch)
		})
	}
	r.pool.wait()

	cur.clear()
}

// scanEdges walks the edge index range [startE, endE) of the bucket
// snapshot. owner is the stage-A slice containing edge startE and
// startBatch the slice-relative offset of that edge.
func (r *run) scanEdges(cur *bucket, size, nodesPer, startE, endE, owner, startBatch int) {
	if startE >= endE || owner >= r.workers {
		return
	}
	lo := min(owner*nodesPer, size)
	hi := min(lo+nodesPer, size)

	// First slice position whose inclusive prefix exceeds startBatch;
	// zero-degree nodes and tombstones at the boundary are skipped.
	nodeIdx := lo + sort.Search(hi-lo, func(i int) bool { return r.prefix[lo+i] > startBatch })
	edgeOff := startBatch
	if nodeIdx > lo {
		edgeOff -= r.prefix[nodeIdx-1]
	}

	for curEdge := startE; curEdge < endE && nodeIdx < size; nodeIdx++ {
		if u := cur.read(nodeIdx); u != tombstone {
			targets, weights := r.g.Neighbors(u)
			du := r.dist[u]
			for k := edgeOff; k < len(targets) && curEdge < endE; k++ {
				v, w := targets[k], weights[k]
				if nd := du + w; nd < r.dist[v] {
					if w < r.delta {
						r.light.add(v, nd)
					} else {
						r.heavy.add(v, nd)
					}
				}
				curEdge++
			}
		}
		edgeOff = 0
	}
}

// relaxPhase is phase L2 (light) or H (heavy): partition the touched
// targets evenly across workers and settle each one. Every vertex is
// owned by exactly one worker here, which makes dist, pos and
// tombstone writes single-writer.
func (r *run) relaxPhase(m *requestMap) {
	size := m.size()
	chunk := (size + r.workers - 1) / r.workers
	for tid := 0; tid < r.workers; tid++ {
		lo := min(tid*chunk, size)
		hi := min(lo+chunk, size)
		r.pool.run(tid, func() {
			for i := lo; i < hi; i++ {
				r.settle(m.touched[i], m)
			}
		})
	}
	r.pool.wait()
	m.resetCount()
}

// settle commits the winning proposal for v if it still improves
// dist[v], then migrates v between buckets.
//
// Two elisions shave bucket traffic:
//   - the current bucket was cleared at the end of L1, so a stale entry
//     there needs no tombstone;
//   - a vertex staying in the same (non-current) bucket keeps its live
//     entry and is not re-enqueued. If it was in the current bucket it
//     must be re-enqueued, or the next inner iteration would miss it.
func (r *run) settle(v int, m *requestMap) {
	nd := m.drain(v)
	if nd >= r.dist[v] {
		return
	}

	old := r.bucketFor(v)
	r.dist[v] = nd
	next := r.bucketFor(v)

	if old != noBucket && old != r.gen && old != next {
		r.buckets[old].markRemoved(r.pos[v])
	}
	if old == r.gen || old != next {
		r.pos[v] = r.buckets[next].push(v)
	}
}
