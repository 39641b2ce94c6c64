// Command dsgen writes synthetic benchmark graphs in the edge-list
// format. One invocation emits a single family, or, with -suite, the
// canonical benchmark set in one go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/graphio"
)

type options struct {
	Family   string  `long:"family" default:"random" choice:"random" choice:"dense" choice:"complete" choice:"grid" choice:"path" choice:"star" choice:"rmat" choice:"scale-free" description:"graph family"`
	N        int     `short:"n" long:"vertices" default:"1000" description:"vertex count (rows*cols for grid, 2^scale for rmat)"`
	M        int     `short:"m" long:"edges" default:"7000" description:"edge count (random/dense/rmat)"`
	Rows     int     `long:"rows" default:"100" description:"grid rows"`
	Cols     int     `long:"cols" default:"100" description:"grid cols"`
	Scale    int     `long:"scale" default:"10" description:"rmat scale (|V| = 2^scale)"`
	EdgesPer int     `long:"edges-per" default:"8" description:"scale-free attachments per vertex"`
	Weights  string  `long:"weights" default:"uniform" choice:"uniform" choice:"powerlaw" description:"weight distribution"`
	WMin     float64 `long:"wmin" default:"0" description:"uniform weight lower bound"`
	WMax     float64 `long:"wmax" default:"1" description:"uniform weight upper bound (exclusive)"`
	Alpha    float64 `long:"alpha" default:"1.287" description:"power-law exponent"`
	Undirect bool    `short:"u" long:"undirected" description:"emit both directions per edge"`
	Seed     int64   `long:"seed" default:"42" description:"RNG seed"`
	Out      string  `short:"o" long:"out" default:"graph.txt" description:"output file"`
	Suite    bool    `long:"suite" description:"generate the canonical benchmark suite into --out as a directory"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if opts.Suite {
		if err := generateSuite(log, &opts); err != nil {
			log.Fatal("suite generation failed", zap.Error(err))
		}

		return
	}

	g, err := generate(&opts)
	if err != nil {
		log.Fatal("generation failed", zap.Error(err))
	}
	if err := graphio.SaveFile(opts.Out, g); err != nil {
		log.Fatal("save failed", zap.Error(err))
	}
	log.Info("graph written",
		zap.String("family", opts.Family),
		zap.String("file", opts.Out),
		zap.String("vertices", humanize.Comma(int64(g.VertexCount()))),
		zap.String("edges", humanize.Comma(int64(g.EdgeCount()))),
	)
}

func buildOpts(o *options) []builder.Option {
	out := []builder.Option{builder.WithSeed(o.Seed)}
	if o.Weights == "powerlaw" {
		out = append(out, builder.WithPowerLawWeights(o.Alpha))
	} else {
		out = append(out, builder.WithWeightRange(o.WMin, o.WMax))
	}
	if o.Undirect {
		out = append(out, builder.WithUndirected())
	}

	return out
}

func generate(o *options) (*core.Graph, error) {
	bopts := buildOpts(o)
	switch o.Family {
	case "random":
		return builder.RandomSparse(o.N, o.M, bopts...)
	case "dense":
		return builder.RandomDense(o.N, o.M, bopts...)
	case "complete":
		return builder.Complete(o.N, bopts...)
	case "grid":
		return builder.Grid(o.Rows, o.Cols, bopts...)
	case "path":
		return builder.Path(o.N, bopts...)
	case "star":
		return builder.Star(o.N, bopts...)
	case "rmat":
		return builder.RMAT(o.Scale, o.M, bopts...)
	case "scale-free":
		return builder.ScaleFree(o.N, o.EdgesPer, bopts...)
	default:
		return nil, fmt.Errorf("dsgen: unknown family %q", o.Family)
	}
}

// suiteSpec is one entry of the canonical benchmark set: the mix of
// sparse, dense, structured and skewed graphs the sweep configs expect.
type suiteSpec struct {
	name string
	opts options
}

func suite(base *options) []suiteSpec {
	return []suiteSpec{
		{"random_sparse.txt", options{Family: "random", N: 100000, M: 700000, Undirect: true, Seed: 12345}},
		{"random_dense.txt", options{Family: "dense", N: 5000, M: 500000, Undirect: true, Seed: 23456}},
		{"complete.txt", options{Family: "complete", N: 1000, Seed: 34567}},
		{"scale_free.txt", options{Family: "scale-free", N: 50000, EdgesPer: 8, Undirect: true, Seed: 45678}},
		{"grid.txt", options{Family: "grid", Rows: 300, Cols: 300, Undirect: true, Seed: 56789}},
		{"path.txt", options{Family: "path", N: 100000, Undirect: true, Seed: 67890}},
		{"rmat.txt", options{Family: "rmat", Scale: base.Scale, M: base.M, Seed: 78901}},
	}
}

// generateSuite builds every suite graph concurrently; each worker owns
// its own RNGs, so the suite stays deterministic regardless of
// scheduling.
func generateSuite(log *zap.Logger, base *options) error {
	dir := base.Out
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var eg errgroup.Group
	for _, spec := range suite(base) {
		spec := spec
		eg.Go(func() error {
			o := spec.opts
			if o.WMax == 0 {
				o.WMax = 1
			}
			if o.Weights == "" {
				o.Weights = base.Weights
				o.Alpha = base.Alpha
			}
			g, err := generate(&o)
			if err != nil {
				return fmt.Errorf("%s: %w", spec.name, err)
			}
			path := filepath.Join(dir, spec.name)
			if err := graphio.SaveFile(path, g); err != nil {
				return err
			}
			log.Info("suite graph written",
				zap.String("file", path),
				zap.String("vertices", humanize.Comma(int64(g.VertexCount()))),
				zap.String("edges", humanize.Comma(int64(g.EdgeCount()))),
			)

			return nil
		})
	}

	return eg.Wait()
}
