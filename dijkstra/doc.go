// Package dijkstra implements sequential Dijkstra shortest paths on a
// core.Graph. It is the ground-truth oracle for the parallel engine:
// simple, exact, and easy to audit.
//
// Overview:
//
//   - Binary min-heap keyed by tentative distance; decrease-key is
//     simulated lazily by pushing duplicates and skipping entries that
//     are stale when popped.
//   - Time O((V + E) log V), space O(V + E) (heap duplicates under the
//     lazy decrease-key strategy).
//
// Errors (sentinel):
//
//   - ErrNilGraph    if the graph is nil.
//   - ErrSourceRange if the source vertex is outside [0, |V|).
//
// Negative weights cannot occur: core.NewGraph rejects them, so no
// pre-scan is needed here.
package dijkstra
