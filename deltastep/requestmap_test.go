package deltastep

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestMap_DrainEmptyIsInf(t *testing.T) {
	m := newRequestMap(3)
	require.True(t, math.IsInf(m.drain(1), 1))
	require.Equal(t, 0, m.size())
}

func TestRequestMap_AddEnrollsOnce(t *testing.T) {
	m := newRequestMap(3)
	m.add(2, 0.8)
	m.add(2, 0.5)
	m.add(2, 0.9)

	// One touched entry, slot holds the minimum proposal.
	require.Equal(t, 1, m.size())
	require.Equal(t, 2, m.touched[0])
	require.Equal(t, 0.5, m.drain(2))

	// Drain restored the empty marker.
	require.True(t, math.IsInf(m.drain(2), 1))
}

func TestRequestMap_ResetCountKeepsSlotsClean(t *testing.T) {
	m := newRequestMap(2)
	m.add(0, 1.5)
	require.Equal(t, 1.5, m.drain(0))
	m.resetCount()
	require.Equal(t, 0, m.size())

	// Next phase starts from scratch.
	m.add(0, 0.25)
	require.Equal(t, 1, m.size())
	require.Equal(t, 0.25, m.drain(0))
}

func TestRequestMap_ZeroProposal(t *testing.T) {
	// Zero is a valid tentative distance and must not read as "empty".
	m := newRequestMap(1)
	m.add(0, 0)
	require.Equal(t, 1, m.size())
	require.Equal(t, 0.0, m.drain(0))
}

// TestRequestMap_ConcurrentCoalescing drives many producers per target
// and checks both invariants: each target enrolled exactly once, and
// the slot quiesces at the minimum over all proposals.
func TestRequestMap_ConcurrentCoalescing(t *testing.T) {
	const (
		targets   = 64
		producers = 16
	)
	m := newRequestMap(targets)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for v := 0; v < targets; v++ {
				// Distinct proposal per (producer, target); minimum over
				// producers is v/targets, from producer 0.
				m.add(v, float64(v+p*targets)/float64(targets))
			}
		}(p)
	}
	wg.Wait()

	require.Equal(t, targets, m.size())
	seen := make(map[int]bool, targets)
	for i := 0; i < m.size(); i++ {
		v := m.touched[i]
		require.False(t, seen[v], "target %d enrolled twice", v)
		seen[v] = true
	}
	for v := 0; v < targets; v++ {
		require.Equal(t, float64(v)/float64(targets), m.drain(v))
	}
}
