// Command dsbench runs a benchmark sweep described by a YAML file and
// writes one CSV row per (graph, delta, threads) configuration.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/katalvlaran/sssp/bench"
)

type options struct {
	Config string `short:"c" long:"config" required:"true" description:"sweep YAML file"`
	Out    string `short:"o" long:"out" default:"results.csv" description:"CSV output file"`
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

	cfg, err := bench.LoadSweep(opts.Config)
	if err != nil {
		log.Fatal("sweep config rejected", zap.Error(err))
	}

	results, err := bench.NewRunner(cfg, log).Run()
	if err != nil {
		log.Fatal("sweep failed", zap.Error(err))
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		log.Fatal("open output failed", zap.Error(err))
	}
	if err := bench.WriteCSV(f, results); err != nil {
		f.Close()
		log.Fatal("write failed", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		log.Fatal("close failed", zap.Error(err))
	}
	log.Info("sweep complete",
		zap.Int("configurations", len(results)),
		zap.String("out", opts.Out),
	)
}
