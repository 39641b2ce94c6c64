// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// Package builder constructs synthetic weighted digraphs for tests and
// benchmarks: random sparse/dense, complete, grid, path, star, RMAT
// and scale-free (preferential attachment) families.
//
// Design:
//   - Every family is a plain constructor returning (*core.Graph, error).
//   - Functional options resolve into one immutable config: seed,
//     weight distribution (uniform range or power-law), directedness.
//   - Determinism: identical family, parameters and options produce an
//     identical graph, byte for byte. The topology RNG and the weight
//     RNG are seeded independently from the same seed, so switching the
//     weight distribution does not disturb the topology.
//   - The stochastic families (RandomSparse, RandomDense, ScaleFree)
//     return the largest weakly-connected component remapped to dense
//     IDs, so benchmark sources reach a meaningful vertex fraction.
//
// Weight distributions:
//   - Uniform on [lo, hi): the default, on [0, 1).
//   - Power-law via a Pareto tail (gonum distuv), default α ≈ 1.287.
//
// Errors are sentinels (ErrTooFewVertices, ErrBadEdgeCount, ...);
// constructors never panic.
package builder
