package graphio_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/graphio"
)

func TestLoad_RemapsInFirstAppearanceOrder(t *testing.T) {
	// Raw IDs 10, 42, 7 must become 0, 1, 2.
	in := "10 42 0.5\n42 7 0.25\n"
	g, err := graphio.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())

	targets, weights := g.Neighbors(0)
	require.Equal(t, []int{1}, targets)
	require.Equal(t, []float64{0.5}, weights)

	targets, _ = g.Neighbors(1)
	require.Equal(t, []int{2}, targets)
}

func TestLoad_SkipsBlankAndMalformedLines(t *testing.T) {
	in := strings.Join([]string{
		"",
		"0 1 0.5",
		"only two",
		"x y z",
		"1 2",      // missing weight
		"1 2 -3.0", // negative weight
		"1 2 nan",  // weight must be finite
		"2 0 0.25",
		"",
	}, "\n")
	g, err := graphio.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
}

func TestLoad_EmptyInput(t *testing.T) {
	g, err := graphio.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
}

func TestLoad_Normalization(t *testing.T) {
	in := "0 1 2.0\n1 2 4.0\n"
	g, err := graphio.Load(strings.NewReader(in), graphio.WithNormalizedWeights())
	require.NoError(t, err)
	require.Equal(t, 1.0, g.MaxEdgeWeight())

	_, weights := g.Neighbors(0)
	require.Equal(t, []float64{0.5}, weights)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 0.5},
		{From: 1, To: 2, Weight: 0.125},
		{From: 2, To: 0, Weight: 1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.Save(&buf, g))

	got, err := graphio.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Edges(), got.Edges())
}

func TestWriteDistances_InfAsToken(t *testing.T) {
	var buf bytes.Buffer
	err := graphio.WriteDistances(&buf, []float64{0, 0.5, math.Inf(1)})
	require.NoError(t, err)
	require.Equal(t, "0\n0.5\ninf\n", buf.String())
}
