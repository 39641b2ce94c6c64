// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// options.go - functional options and the resolved generator config.

package builder

import (
	"errors"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors shared by all constructors.
var (
	// ErrTooFewVertices indicates a vertex count below the family minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadEdgeCount indicates a negative or unsatisfiable edge count.
	ErrBadEdgeCount = errors.New("builder: bad edge count")

	// ErrBadWeightRange indicates an empty or inverted uniform range, or
	// a negative lower bound.
	ErrBadWeightRange = errors.New("builder: bad weight range")

	// ErrBadAlpha indicates a non-positive power-law exponent.
	ErrBadAlpha = errors.New("builder: power-law alpha must be > 0")

	// ErrBadDimensions indicates grid dimensions below 1.
	ErrBadDimensions = errors.New("builder: grid dimensions must be ≥ 1")

	// ErrBadScale indicates an RMAT scale outside [0, 30].
	ErrBadScale = errors.New("builder: rmat scale out of range")
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultSeed seeds both RNG streams unless WithSeed overrides it.
	DefaultSeed int64 = 42

	// DefaultPowerLawAlpha is the power-law exponent used by
	// WithPowerLawWeights when the caller keeps the default.
	DefaultPowerLawAlpha = 1.287

	// powerLawXm is the Pareto scale parameter: the smallest weight the
	// power-law distribution can emit.
	powerLawXm = 0.01

	// weightStreamOffset decorrelates the weight RNG stream from the
	// topology stream derived from the same seed.
	weightStreamOffset int64 = 0x9E3779B9

	defaultWeightLo = 0.0
	defaultWeightHi = 1.0
)

type weightKind int

const (
	weightUniform weightKind = iota
	weightPowerLaw
)

// config aggregates all generator knobs; resolved once per constructor
// call and passed by value.
type config struct {
	seed       int64
	undirected bool
	kind       weightKind
	lo, hi     float64
	alpha      float64
}

// Option is a functional option for the graph constructors.
type Option func(*config)

func defaultConfig() config {
	return config{
		seed:  DefaultSeed,
		kind:  weightUniform,
		lo:    defaultWeightLo,
		hi:    defaultWeightHi,
		alpha: DefaultPowerLawAlpha,
	}
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed fixes both RNG streams for reproducible graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithUndirected emits every edge in both directions with one shared
// weight. Default is directed.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

// WithWeightRange selects uniform weights on [lo, hi). Validated at
// build time: 0 ≤ lo < hi.
func WithWeightRange(lo, hi float64) Option {
	return func(c *config) {
		c.kind = weightUniform
		c.lo, c.hi = lo, hi
	}
}

// WithPowerLawWeights selects Pareto-tailed weights with the given
// exponent; alpha must be > 0. Use DefaultPowerLawAlpha for the
// benchmark-standard tail.
func WithPowerLawWeights(alpha float64) Option {
	return func(c *config) {
		c.kind = weightPowerLaw
		c.alpha = alpha
	}
}

// validateWeights checks the weight knobs once per constructor call.
func (c config) validateWeights() error {
	switch c.kind {
	case weightPowerLaw:
		if c.alpha <= 0 {
			return ErrBadAlpha
		}
	default:
		if c.lo < 0 || c.lo >= c.hi {
			return ErrBadWeightRange
		}
	}

	return nil
}

// topologyRNG returns the deterministic stream driving edge placement.
func (c config) topologyRNG() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}

// weightFn returns the deterministic weight sampler. The stream is
// seeded independently of the topology stream so that swapping the
// distribution preserves the topology.
func (c config) weightFn() func() float64 {
	if c.kind == weightPowerLaw {
		pareto := distuv.Pareto{
			Xm:    powerLawXm,
			Alpha: c.alpha,
			Src:   exprand.NewSource(uint64(c.seed + weightStreamOffset)),
		}

		return pareto.Rand
	}

	rng := rand.New(rand.NewSource(c.seed + weightStreamOffset))
	lo, hi := c.lo, c.hi

	return func() float64 { return lo + rng.Float64()*(hi-lo) }
}
