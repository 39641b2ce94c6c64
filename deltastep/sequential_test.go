package deltastep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/deltastep"
	"github.com/katalvlaran/sssp/dijkstra"
)

func TestSequential_Validation(t *testing.T) {
	g := mustGraph(t, 2, nil)

	_, err := deltastep.Sequential(g, 0, 0)
	require.ErrorIs(t, err, deltastep.ErrBadDelta)

	_, err = deltastep.Sequential(nil, 0, 0.1)
	require.ErrorIs(t, err, deltastep.ErrNilGraph)

	_, err = deltastep.Sequential(g, 5, 0.1)
	require.ErrorIs(t, err, deltastep.ErrSourceRange)
}

func TestSequential_Scenarios(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: 0.3},
		{From: 1, To: 2, Weight: 0.7},
		{From: 2, To: 3, Weight: 0.2},
	})
	got, err := deltastep.Sequential(g, 0, 0.4)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.3, 1.0, 1.2}, got, 1e-12)
}

func TestSequential_SingleVertexAndUnreachable(t *testing.T) {
	g := mustGraph(t, 1, nil)
	got, err := deltastep.Sequential(g, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, got)

	g = mustGraph(t, 2, nil)
	got, err = deltastep.Sequential(g, 0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(got[1], 1))
}

// TestSequential_MatchesDijkstra runs the oracle pair over seeded
// graphs and a spread of deltas.
func TestSequential_MatchesDijkstra(t *testing.T) {
	for _, seed := range []int64{41, 42, 43} {
		g, err := builder.RandomSparse(180, 720, builder.WithSeed(seed))
		require.NoError(t, err)
		want, err := dijkstra.Compute(g, 0)
		require.NoError(t, err)

		for _, delta := range []float64{0.01, 0.2, 1.0} {
			got, err := deltastep.Sequential(g, 0, delta)
			require.NoError(t, err)
			requireSameDistances(t, want, got)
		}
	}
}
