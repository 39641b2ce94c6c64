// Package dijkstra_test validates the oracle against hand-computed
// scenarios; the parallel engine's own tests then lean on this oracle.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

func mustGraph(t *testing.T, n int, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	return g
}

func TestCompute_NilGraph(t *testing.T) {
	_, err := dijkstra.Compute(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestCompute_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, nil)
	_, err := dijkstra.Compute(g, 2)
	require.ErrorIs(t, err, dijkstra.ErrSourceRange)
	_, err = dijkstra.Compute(g, -1)
	require.ErrorIs(t, err, dijkstra.ErrSourceRange)
}

func TestCompute_SingleVertex(t *testing.T) {
	g := mustGraph(t, 1, nil)
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, dist)
}

func TestCompute_DisconnectedPair(t *testing.T) {
	g := mustGraph(t, 2, nil)
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[0])
	require.True(t, math.IsInf(dist[1], 1))
}

func TestCompute_Chain(t *testing.T) {
	// 0→1 (0.3), 1→2 (0.7), 2→3 (0.2).
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: 0.3},
		{From: 1, To: 2, Weight: 0.7},
		{From: 2, To: 3, Weight: 0.2},
	})
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.3, 1.0, 1.2}, dist, 1e-12)
}

func TestCompute_Triangle(t *testing.T) {
	// Indirect route 0→1→2 beats the direct edge 0→2.
	g := mustGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 0.5},
		{From: 0, To: 2, Weight: 0.8},
		{From: 1, To: 2, Weight: 0.2},
	})
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.5, 0.7}, dist, 1e-12)
}

func TestCompute_Diamond(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: 1.0},
		{From: 0, To: 2, Weight: 2.0},
		{From: 1, To: 3, Weight: 2.0},
		{From: 2, To: 3, Weight: 0.5},
	})
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 2, 2.5}, dist, 1e-12)
}

func TestCompute_SelfLoopIgnored(t *testing.T) {
	g := mustGraph(t, 1, []core.Edge{{From: 0, To: 0, Weight: 0.4}})
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, dist)
}

func TestCompute_ZeroWeightEdges(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 0},
	})
	dist, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, dist)
}

// TestCompute_EdgeAdditionMonotonicity: adding an edge never increases
// any finite distance.
func TestCompute_EdgeAdditionMonotonicity(t *testing.T) {
	base := []core.Edge{
		{From: 0, To: 1, Weight: 0.9},
		{From: 1, To: 2, Weight: 0.9},
		{From: 0, To: 3, Weight: 0.4},
	}
	g := mustGraph(t, 4, base)
	before, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	// A shortcut 3→2 and a brand-new reach 3→1.
	extended := append(append([]core.Edge{}, base...),
		core.Edge{From: 3, To: 2, Weight: 0.1},
		core.Edge{From: 3, To: 1, Weight: 0.1},
	)
	g2 := mustGraph(t, 4, extended)
	after, err := dijkstra.Compute(g2, 0)
	require.NoError(t, err)

	for v := range before {
		require.LessOrEqual(t, after[v], before[v], "vertex %d", v)
	}
	require.InDelta(t, 0.5, after[2], 1e-12)
}
