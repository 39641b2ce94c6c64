package deltastep

import (
	"math"
	"sync/atomic"
)

// infBits is the bit pattern of +Inf, the distinguished "empty slot"
// marker. Inputs are non-negative finite weights and dist is finite or
// +Inf, so NaN can never enter a slot and IEEE-754 ordering is total
// for every comparison below.
var infBits = math.Float64bits(math.Inf(1))

// requestMap coalesces concurrent tentative-distance proposals: one
// atomic float64 slot per vertex plus a compact list of the targets
// touched this phase.
//
// Producers race on add; the CAS-from-+Inf enrollment admits each
// target into touched exactly once per phase, and the minimize loop
// leaves the slot holding the minimum over all proposals once the
// producing phase quiesces. The slot value is monotonically
// non-increasing while producers run, so each producer performs at
// most one successful CAS in the loop.
//
// The consumer side is single-reader per vertex: drain atomically
// exchanges the slot back to +Inf, so a proposal is consumed exactly
// once even if a vertex is drained from a stale partition.
type requestMap struct {
	slots   []atomic.Uint64
	touched []int
	count   atomic.Int64
}

func newRequestMap(n int) *requestMap {
	m := &requestMap{
		slots:   make([]atomic.Uint64, n),
		touched: make([]int, n),
	}
	for i := range m.slots {
		m.slots[i].Store(infBits)
	}

	return m
}

// add proposes the tentative distance nd for target v.
func (m *requestMap) add(v int, nd float64) {
	slot := &m.slots[v]
	ndBits := math.Float64bits(nd)

	// Enrollment: at most one producer observes the initial +Inf and
	// wins this CAS, so v lands in touched at most once per phase.
	if slot.Load() == infBits && slot.CompareAndSwap(infBits, ndBits) {
		m.touched[m.count.Add(1)-1] = v

		return
	}

	// Minimize: keep lowering the slot until nd is no improvement.
	for {
		cur := slot.Load()
		if nd >= math.Float64frombits(cur) {
			return
		}
		if slot.CompareAndSwap(cur, ndBits) {
			return
		}
	}
}

// drain consumes and clears the winning proposal for v, returning +Inf
// if no proposal is pending. Single consumer per vertex per phase.
func (m *requestMap) drain(v int) float64 {
	return math.Float64frombits(m.slots[v].Swap(infBits))
}

// size returns how many distinct targets were touched this phase.
func (m *requestMap) size() int { return int(m.count.Load()) }

// resetCount rewinds the touched list after the phase has drained.
// The slots themselves are already +Inf again, restored by drain.
func (m *requestMap) resetCount() { m.count.Store(0) }
