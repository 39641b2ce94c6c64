// Package graphio reads and writes the plain-text graph formats used
// by the generators, the solver CLIs and the benchmark harness.
//
// Edge-list format: one directed edge per line, "<u> <v> <w>", where u
// and v are integers (any values; the loader remaps them to a dense
// 0..n-1 range in order of first appearance) and w is a non-negative
// decimal weight. Blank and malformed lines are skipped, including
// lines whose weight parses negative or non-finite. Optional
// normalization divides every weight by the maximum weight observed.
//
// Distance format: one value per vertex in dense-remapped order, one
// per line; +Inf is emitted as "inf".
package graphio
