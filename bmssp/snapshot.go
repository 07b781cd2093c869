package bmssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/core"
)

// arc is one adjacency entry in the index-based snapshot.
//
// id is a synthetic tie-breaking offset, unique per arc and strictly
// increasing in insertion order. It is added to the perturbed distance on
// every relaxation so that equal-cost paths compare unequal in a stable,
// reproducible order; it is small enough that it can never change the
// reported distance at the requested rounding precision.
type arc struct {
	to     int     // target node index
	weight float64 // resolved non-negative cost
	id     float64 // tie-breaking offset: arcIndex * edgeAdjust
}

// snapshot is a dense, index-based view of the caller's graph, owned by one
// algorithm invocation. Node indices 0..n-1 follow the graph's stable
// vertex enumeration order; idxOf/labelOf form a bijection valid for the
// duration of the run.
type snapshot struct {
	idxOf   map[string]int // vertex ID → dense index
	labelOf []string       // dense index → vertex ID
	adj     [][]arc        // adj[u] = outgoing arcs of u
}

// buildSnapshot converts g into adjacency form, resolving weights and
// assigning tie-break identities.
//
// Steps:
//  1. Index vertices in enumeration order (bijection).
//  2. Resolve every edge through weight; ok=false hides the edge,
//     negative weights fail with ErrNegativeWeight.
//  3. Collapse parallel edges of a multigraph to their minimum weight;
//     the surviving arc keeps its first-assigned identity.
//
// The per-arc identity is arcIndex * edgeAdjust with
// edgeAdjust = 1 / (10^(precision+1) * (2n+1) * (2m+1)): small enough that
// up to m accumulations stay below half an output rounding unit, large
// enough to remain distinguishable in float64 arithmetic.
//
// Complexity: O(V + E).
func buildSnapshot(g *core.Graph, weight WeightFunc, precision int) (*snapshot, error) {
	labels := g.Vertices()
	n := len(labels)

	snap := &snapshot{
		idxOf:   make(map[string]int, n),
		labelOf: labels,
		adj:     make([][]arc, n),
	}
	var i int
	var id string
	for i, id = range labels {
		snap.idxOf[id] = i
	}

	edges := g.Edges()
	m := len(edges)
	edgeAdjust := 1 / (pow10(precision+1) * float64(2*n+1) * float64(2*m+1))

	// seen maps an ordered (u,v) pair to the arc position in adj[u],
	// used to collapse multigraph parallels to their minimum weight.
	type pair struct{ u, v int }
	seen := make(map[pair]int, m)

	arcIndex := 0
	var e *core.Edge
	for _, e = range edges {
		w, ok := weight(e.From, e.To, e)
		if !ok {
			continue // hidden edge
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}

		u, v := snap.idxOf[e.From], snap.idxOf[e.To]
		if pos, dup := seen[pair{u, v}]; dup {
			// Parallel edge: keep the minimum weight, first identity wins.
			if w < snap.adj[u][pos].weight {
				snap.adj[u][pos].weight = w
			}

			continue
		}

		seen[pair{u, v}] = len(snap.adj[u])
		snap.adj[u] = append(snap.adj[u], arc{
			to:     v,
			weight: w,
			id:     float64(arcIndex) * edgeAdjust,
		})
		arcIndex++
	}

	return snap, nil
}

// params holds the derived tuning constants of one run.
//
// k bounds both the per-round fan-out of the pivot finder and the pop
// budget of the base case; t controls recursion branching; level is the
// maximum recursion depth (level 0 calls the base case directly); counter
// is the tie-break increment added once per relaxation, scaled so it
// cannot alias with arc identities or affect the rounded output.
type params struct {
	k       int
	t       int
	level   int
	counter float64
}

// deriveParams computes the tuning constants from the node count and the
// requested precision. Pure and deterministic:
//
//	k       = max(1, ⌊∛(log2 n)⌋)
//	t       = max(1, ⌊∛(log2² n)⌋)
//	level   = ⌈log2 n / t⌉
//	counter = 1 / (10^(precision+1) * (2n+1))
//
// n ≤ 1 forces k = t = 1 and level = 0.
func deriveParams(n, precision int) params {
	p := params{
		k:       1,
		t:       1,
		level:   0,
		counter: 1 / (pow10(precision+1) * float64(2*n+1)),
	}
	if n <= 1 {
		return p
	}

	log2n := math.Log2(float64(n))
	if k := int(math.Floor(math.Cbrt(log2n))); k > 1 {
		p.k = k
	}
	if t := int(math.Floor(math.Cbrt(log2n * log2n))); t > 1 {
		p.t = t
	}
	p.level = int(math.Ceil(log2n / float64(p.t)))

	return p
}

// pow10 returns 10^e as a float64.
func pow10(e int) float64 { return math.Pow(10, float64(e)) }
