package bench

import (
	"errors"
	"fmt"
	"math"
)

// Verification tolerance: relative for distances ≥ 1, absolute below.
const verifyTolerance = 1e-9

// ErrMismatch indicates the engine output diverged from the oracle.
var ErrMismatch = errors.New("bench: result mismatch")

// Verify compares an engine result elementwise against the oracle.
// Infinities must match exactly; finite values within 1e-9 relative
// tolerance (absolute for distances below 1).
func Verify(got, want []float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: length %d vs %d", ErrMismatch, len(got), len(want))
	}
	for v := range got {
		gi, wi := math.IsInf(got[v], 1), math.IsInf(want[v], 1)
		if gi || wi {
			if gi != wi {
				return fmt.Errorf("%w: vertex %d: %g vs %g", ErrMismatch, v, got[v], want[v])
			}

			continue
		}
		tol := verifyTolerance
		if abs := math.Abs(want[v]); abs > 1 {
			tol *= abs
		}
		if math.Abs(got[v]-want[v]) > tol {
			return fmt.Errorf("%w: vertex %d: %g vs %g", ErrMismatch, v, got[v], want[v])
		}
	}

	return nil
}
