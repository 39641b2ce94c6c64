package deltastep

import "errors"

// Sentinel errors returned by New, Compute and Sequential.
var (
	// ErrBadDelta indicates a bucket width that is not strictly positive.
	ErrBadDelta = errors.New("deltastep: delta must be > 0")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("deltastep: workers must be ≥ 1")

	// ErrBadRingSlack indicates a ring slack below one; at least one
	// spare slot is required for safe cyclic reuse.
	ErrBadRingSlack = errors.New("deltastep: ring slack must be ≥ 1")

	// ErrNilGraph indicates a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("deltastep: graph is nil")

	// ErrSourceRange indicates a source vertex outside [0, |V|).
	ErrSourceRange = errors.New("deltastep: source vertex out of range")
)

// tombstone marks a bucket slot whose vertex has migrated elsewhere.
// noPosition marks a vertex that is in no bucket. Both sentinels are
// negative so they can never collide with a vertex ID.
const (
	tombstone  = -1
	noPosition = -1
	noBucket   = -1
)

// DefaultRingSlack is the number of spare bucket slots kept beyond the
// ⌈W_max/Δ⌉ that can be live at once. The textbook bound is one spare;
// the default keeps a few more because the cost is a handful of machine
// words per slot.
const DefaultRingSlack = 5

// Options holds the tunable knobs of the parallel solver.
//
// RingSlack - extra bucket slots beyond ⌈W_max/Δ⌉ in the ring (≥ 1).
type Options struct {
	RingSlack int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the deterministic defaults applied by New
// before any Option runs.
func DefaultOptions() Options {
	return Options{RingSlack: DefaultRingSlack}
}

// WithRingSlack overrides the number of spare bucket slots in the ring.
// Values below one are rejected by New with ErrBadRingSlack.
func WithRingSlack(slack int) Option {
	return func(o *Options) {
		o.RingSlack = slack
	}
}
