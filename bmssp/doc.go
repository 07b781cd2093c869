// Package bmssp implements the Bounded Multi-Source Shortest Path
// algorithm on directed graphs with non-negative edge weights.
//
// Overview:
//
//   - BMSSP computes minimum-cost paths from a set of source vertices to
//     all reachable vertices, like a multi-source Dijkstra, but organizes
//     the work as a recursive divide-and-conquer over distance ranges.
//   - Each recursive call owns an exclusive distance bound B: it settles
//     nodes provably closer than a completion bound it returns, and leaves
//     everything farther to its caller.
//   - A bounded Bellman-Ford pass ("pivot finding") shrinks each call's
//     source set to the few sources that anchor large shortest-path
//     subtrees; only those are recursed on.
//   - At the bottom, a budgeted Dijkstra settles at most k nodes around a
//     single source and reports how far it got.
//
// Determinism and tie-breaking:
//
//   - Every relaxation adds a tiny synthetic perturbation (a per-run
//     counter plus a per-edge identity) on top of the true cost, so
//     equal-cost paths always compare unequal in a stable order.
//   - The perturbations are scaled from the graph size and the requested
//     precision so they can never change a reported distance: the clean
//     cost is tracked separately and rounded for output.
//   - Repeated calls with identical inputs return identical distance and
//     path maps; there is no randomness anywhere.
//
// Derived tuning constants (all functions of n = |vertices|):
//
//   - k     = max(1, ⌊∛log₂n⌋)   - fan-out per pivot round, base-case budget.
//   - t     = max(1, ⌊∛log₂²n⌋)  - recursion branching control.
//   - level = ⌈log₂n / t⌉        - maximum recursion depth (O(log n)).
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrGraphNil        - nil *core.Graph.
//   - ErrUndirectedGraph - BMSSP requires directed semantics; convert
//     undirected graphs first.
//   - ErrNoSources       - empty source set.
//   - ErrVertexNotFound  - a source or target vertex is absent.
//   - ErrNegativeWeight  - a resolved edge weight is negative; BMSSP
//     cannot bound correctness with negative weights.
//   - ErrNoPath          - the requested target is unreachable.
//   - ErrBadPrecision    - (via panic) negative precision supplied.
//
// Weight resolution:
//
//   - By attribute (default "weight"): reads Edge.Weight on weighted
//     graphs; other attribute names read Edge.Attrs, with absent values
//     costing DefaultEdgeWeight (1). Unweighted graphs count hops.
//   - By callback (WithWeightFunc): evaluated once per edge during setup;
//     returning ok=false hides the edge entirely (edge masking).
//   - Multigraphs: parallel edges between the same ordered pair collapse
//     to their minimum resolved weight.
//
// API reference:
//
//	BMSSP(g, sources, opts...)                  (dist, paths, error)
//	SingleSourcePath(g, source, target, ...)    ([]string, error)
//	SingleSourcePathLength(g, source, target, ...) (float64, error)
//	MultiSourcePath(g, sources, ...)            (map[string][]string, error)
//	MultiSourcePathLength(g, sources, ...)      (map[string]float64, error)
//
// Unreachable vertices are absent from every returned map - test for
// presence, not for an infinity value.
//
// Concurrency:
//
//   - A run is single-threaded and synchronous: the recursive calls share
//     one mutable scratch state by design, which is safe only because
//     execution is strictly nested. Do not mutate the graph during a call;
//     distinct calls on the same graph are independent and may run in
//     parallel from separate goroutines.
//
// See also:
//
//   - core.Graph: graph construction, edge attributes, multi-edge support.
package bmssp
