package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for sweep configuration.
var (
	// ErrNoFiles indicates a sweep without graph files.
	ErrNoFiles = errors.New("bench: sweep needs at least one graph file")

	// ErrNoDeltas indicates a sweep without deltas and with the
	// adaptive delta disabled.
	ErrNoDeltas = errors.New("bench: sweep needs deltas or adaptive_delta")

	// ErrNoThreads indicates a sweep without worker counts.
	ErrNoThreads = errors.New("bench: sweep needs at least one thread count")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("bench: iterations must be ≥ 1")
)

// Default sweep knobs, applied by LoadSweep when the file leaves them
// unset.
const (
	DefaultIterations = 5
	DefaultWarmup     = 1
)

// SweepConfig is the YAML description of a benchmark sweep.
//
// AdaptiveDelta adds the configuration Δ = |V|/|E| per graph, the
// load-balance heuristic the reference benchmarks always include.
type SweepConfig struct {
	Files         []string  `yaml:"files"`
	Deltas        []float64 `yaml:"deltas"`
	Threads       []int     `yaml:"threads"`
	Source        int       `yaml:"source"`
	Iterations    int       `yaml:"iterations"`
	Warmup        int       `yaml:"warmup"`
	Normalize     bool      `yaml:"normalize"`
	AdaptiveDelta bool      `yaml:"adaptive_delta"`
	SkipVerify    bool      `yaml:"skip_verify"`
}

// Validate checks the sweep for the errors above.
func (c *SweepConfig) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoFiles
	}
	if len(c.Deltas) == 0 && !c.AdaptiveDelta {
		return ErrNoDeltas
	}
	if len(c.Threads) == 0 {
		return ErrNoThreads
	}
	if c.Iterations < 1 {
		return ErrBadIterations
	}

	return nil
}

// LoadSweep reads, defaults and validates a sweep file.
func LoadSweep(path string) (*SweepConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	cfg := &SweepConfig{
		Iterations: DefaultIterations,
		Warmup:     DefaultWarmup,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("bench: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
