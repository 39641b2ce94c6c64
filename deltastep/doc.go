// Package deltastep implements parallel Δ-stepping single-source
// shortest paths over a core.Graph, plus a sequential Δ-stepping
// reference used as an oracle in tests and for small inputs.
//
// Overview:
//
//   - Vertices are grouped into distance buckets of width Δ; edges split
//     into light (w < Δ) and heavy (w ≥ Δ) classes. The bucket with the
//     smallest index is relaxed repeatedly over its light edges until it
//     stops re-filling, then its accumulated heavy requests are relaxed
//     once, and the engine advances to the next bucket.
//   - Buckets live in a cyclic ring of ⌈W_max/Δ⌉ + slack slots indexed
//     by ⌊dist/Δ⌋ mod ring size. Δ-stepping guarantees at most
//     ⌈W_max/Δ⌉ distinct absolute indices are live at once, so cyclic
//     reuse never aliases a stale index onto a fresh one.
//   - A run terminates once ring-size consecutive buckets are empty,
//     which proves no live bucket remains anywhere in the ring.
//
// Concurrency model:
//
//   - A fixed pool of W worker goroutines plus the driver, synchronized
//     by a single (W+1)-party cyclic barrier. The driver publishes one
//     task per worker per phase and then arrives at the barrier itself;
//     a phase is over when all parties have arrived.
//   - Phase L1 (request generation) partitions the edge index range of
//     the current bucket snapshot evenly across workers, so skewed
//     degree distributions cannot starve a worker. Workers read dist
//     without synchronization: the values are at worst stale, which only
//     produces extra proposals, and those lose the minimize race below.
//   - Proposals are coalesced in a requestMap: one atomic float64 slot
//     per vertex (+Inf means empty), a CAS-from-+Inf enrollment that
//     admits each target exactly once per phase, and a CAS minimize loop
//     that leaves the slot holding the minimum over all proposals.
//   - Phase L2/H (relaxation) partitions the touched-target list across
//     workers, so dist, bucket positions, and tombstones have exactly
//     one writer per vertex per phase.
//
// The hot path takes no locks: buckets use an atomic tail counter with
// tombstoned lazy deletion, the request map uses CAS on 64-bit words,
// and the only blocking point is the phase barrier.
//
// Entry points:
//
//	solver, err := deltastep.New(0.1, 8)
//	dist, err := solver.Compute(g, source)
//
//	dist, err := deltastep.Sequential(g, source, 0.1)
//
// Errors (sentinel): ErrBadDelta, ErrBadWorkers, ErrBadRingSlack,
// ErrNilGraph, ErrSourceRange. The compute path itself is infallible on
// valid inputs: no retries, no partial results.
package deltastep
