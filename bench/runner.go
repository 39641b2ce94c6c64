package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/deltastep"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/graphio"
)

// Result is the aggregate of one (file, delta, threads) configuration.
type Result struct {
	File     string
	Vertices int
	Edges    int
	Delta    float64
	Threads  int

	MeanMs   float64
	MedianMs float64
	MinMs    float64
	StddevMs float64

	Verified bool
}

// Runner executes a sweep.
type Runner struct {
	cfg *SweepConfig
	log *zap.Logger
}

// NewRunner pairs a validated sweep with a logger. A nil logger
// disables logging.
func NewRunner(cfg *SweepConfig, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{cfg: cfg, log: log}
}

// Run loads each graph once and benchmarks every delta × threads
// combination on it. Every configuration's first warmup run is checked
// against the Dijkstra oracle unless skip_verify is set; a mismatch
// aborts the sweep, because timing a wrong engine is worthless. With
// warmup 0 nothing is checked and Verified stays false.
func (r *Runner) Run() ([]Result, error) {
	var results []Result
	for _, file := range r.cfg.Files {
		var loadOpts []graphio.LoadOption
		if r.cfg.Normalize {
			loadOpts = append(loadOpts, graphio.WithNormalizedWeights())
		}
		g, err := graphio.LoadFile(file, loadOpts...)
		if err != nil {
			return nil, err
		}
		r.log.Info("graph loaded",
			zap.String("file", file),
			zap.String("vertices", humanize.Comma(int64(g.VertexCount()))),
			zap.String("edges", humanize.Comma(int64(g.EdgeCount()))),
			zap.Float64("max_weight", g.MaxEdgeWeight()),
		)

		oracle, err := dijkstra.Compute(g, r.cfg.Source)
		if err != nil {
			return nil, err
		}

		deltas := append([]float64(nil), r.cfg.Deltas...)
		if r.cfg.AdaptiveDelta && g.EdgeCount() > 0 {
			deltas = append(deltas, float64(g.VertexCount())/float64(g.EdgeCount()))
		}

		for _, delta := range deltas {
			for _, threads := range r.cfg.Threads {
				res, err := r.runOne(file, g, oracle, delta, threads)
				if err != nil {
					return nil, err
				}
				results = append(results, res)
			}
		}
	}

	return results, nil
}

func (r *Runner) runOne(file string, g *core.Graph, oracle []float64, delta float64, threads int) (Result, error) {
	solver, err := deltastep.New(delta, threads)
	if err != nil {
		return Result{}, err
	}

	verified := false
	for i := 0; i < r.cfg.Warmup; i++ {
		dist, err := solver.Compute(g, r.cfg.Source)
		if err != nil {
			return Result{}, err
		}
		if i == 0 && !r.cfg.SkipVerify {
			if err := Verify(dist, oracle); err != nil {
				return Result{}, fmt.Errorf("%s delta=%g threads=%d: %w", file, delta, threads, err)
			}
			verified = true
		}
	}

	times := make([]float64, 0, r.cfg.Iterations)
	for i := 0; i < r.cfg.Iterations; i++ {
		start := time.Now()
		if _, err := solver.Compute(g, r.cfg.Source); err != nil {
			return Result{}, err
		}
		times = append(times, float64(time.Since(start).Microseconds())/1000.0)
	}

	mean, _ := stats.Mean(times)
	median, _ := stats.Median(times)
	minimum, _ := stats.Min(times)
	stddev, _ := stats.StandardDeviation(times)

	res := Result{
		File:     file,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Delta:    delta,
		Threads:  threads,
		MeanMs:   mean,
		MedianMs: median,
		MinMs:    minimum,
		StddevMs: stddev,
		Verified: verified,
	}
	r.log.Info("configuration done",
		zap.String("file", file),
		zap.Float64("delta", delta),
		zap.Int("threads", threads),
		zap.Float64("mean_ms", mean),
		zap.Float64("min_ms", minimum),
	)

	return res, nil
}

// csvHeader is the column layout of WriteCSV.
var csvHeader = []string{
	"file", "vertices", "edges", "delta", "threads",
	"mean_ms", "median_ms", "min_ms", "stddev_ms", "verified",
}

// WriteCSV emits the results with a header row.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: csv: %w", err)
	}
	for _, res := range results {
		row := []string{
			res.File,
			strconv.Itoa(res.Vertices),
			strconv.Itoa(res.Edges),
			strconv.FormatFloat(res.Delta, 'g', -1, 64),
			strconv.Itoa(res.Threads),
			strconv.FormatFloat(res.MeanMs, 'f', 3, 64),
			strconv.FormatFloat(res.MedianMs, 'f', 3, 64),
			strconv.FormatFloat(res.MinMs, 'f', 3, 64),
			strconv.FormatFloat(res.StddevMs, 'f', 3, 64),
			strconv.FormatBool(res.Verified),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
