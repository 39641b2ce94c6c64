// Package bench drives benchmark sweeps of the parallel engine: for
// every (graph file × delta × worker count) configuration it runs
// warmup plus timed iterations, checks the output against the Dijkstra
// oracle, aggregates the timings and reports one CSV row per
// configuration.
//
// The sweep is described by a YAML file (see SweepConfig); progress and
// summaries go through a zap logger supplied by the caller. Library
// rule of thumb: bench logs, the solver packages never do.
package bench
