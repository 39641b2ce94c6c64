package bench_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/bench"
	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/graphio"
)

func TestVerify_Accepts(t *testing.T) {
	inf := math.Inf(1)
	require.NoError(t, bench.Verify(
		[]float64{0, 0.5, inf, 100.0000000001},
		[]float64{0, 0.5 + 1e-12, inf, 100},
	))
}

func TestVerify_Rejects(t *testing.T) {
	inf := math.Inf(1)

	err := bench.Verify([]float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, bench.ErrMismatch)

	err = bench.Verify([]float64{0, inf}, []float64{0, 5})
	require.ErrorIs(t, err, bench.ErrMismatch)

	err = bench.Verify([]float64{0, 0.5}, []float64{0, 0.5000001})
	require.ErrorIs(t, err, bench.ErrMismatch)
}

func TestSweepConfig_Validate(t *testing.T) {
	cfg := &bench.SweepConfig{}
	require.ErrorIs(t, cfg.Validate(), bench.ErrNoFiles)

	cfg.Files = []string{"g.txt"}
	require.ErrorIs(t, cfg.Validate(), bench.ErrNoDeltas)

	cfg.AdaptiveDelta = true
	require.ErrorIs(t, cfg.Validate(), bench.ErrNoThreads)

	cfg.Threads = []int{1}
	require.ErrorIs(t, cfg.Validate(), bench.ErrBadIterations)

	cfg.Iterations = 3
	require.NoError(t, cfg.Validate())
}

func TestLoadSweep_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.yaml")
	raw := strings.Join([]string{
		"files: [a.txt, b.txt]",
		"deltas: [0.01, 0.1]",
		"threads: [1, 4]",
		"adaptive_delta: true",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := bench.LoadSweep(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt"}, cfg.Files)
	require.Equal(t, []float64{0.01, 0.1}, cfg.Deltas)
	require.Equal(t, []int{1, 4}, cfg.Threads)
	require.True(t, cfg.AdaptiveDelta)

	// Defaults fill in when the file stays silent.
	require.Equal(t, bench.DefaultIterations, cfg.Iterations)
	require.Equal(t, bench.DefaultWarmup, cfg.Warmup)
}

func TestRunner_EndToEnd(t *testing.T) {
	g, err := builder.RandomSparse(120, 500, builder.WithSeed(99))
	require.NoError(t, err)

	dir := t.TempDir()
	file := filepath.Join(dir, "random.txt")
	require.NoError(t, graphio.SaveFile(file, g))

	cfg := &bench.SweepConfig{
		Files:         []string{file},
		Deltas:        []float64{0.1},
		Threads:       []int{1, 4},
		Iterations:    2,
		Warmup:        1,
		AdaptiveDelta: true,
	}
	require.NoError(t, cfg.Validate())

	results, err := bench.NewRunner(cfg, nil).Run()
	require.NoError(t, err)
	// 2 deltas (one adaptive) × 2 thread counts.
	require.Len(t, results, 4)
	for _, res := range results {
		require.True(t, res.Verified)
		require.Equal(t, g.VertexCount(), res.Vertices)
		require.GreaterOrEqual(t, res.MinMs, 0.0)
		require.GreaterOrEqual(t, res.MeanMs, res.MinMs)
	}
}

func TestWriteCSV(t *testing.T) {
	results := []bench.Result{{
		File:     "g.txt",
		Vertices: 10,
		Edges:    20,
		Delta:    0.5,
		Threads:  4,
		MeanMs:   1.5,
		MedianMs: 1.4,
		MinMs:    1.2,
		StddevMs: 0.1,
		Verified: true,
	}}

	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "file,vertices,edges,delta,threads,mean_ms,median_ms,min_ms,stddev_ms,verified", lines[0])
	require.Equal(t, "g.txt,10,20,0.5,4,1.500,1.400,1.200,0.100,true", lines[1])
}
