// Package bmssp_test contains unit tests for the BMSSP implementation.
// These tests cover input validation, the documented concrete scenarios,
// multi-source behavior, weight resolution (attributes, callbacks,
// multigraph parallels), precision rounding, tie-break determinism, and a
// randomized cross-check against a reference Dijkstra.
package bmssp_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/core"
)

// digraph builds a directed weighted graph for tests.
func digraph(opts ...core.GraphOption) *core.Graph {
	all := append([]core.GraphOption{core.WithDirected(true), core.WithWeighted()}, opts...)

	return core.NewGraph(all...)
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs, in documented order.
// ------------------------------------------------------------------------

func TestBMSSP_NilGraph(t *testing.T) {
	_, _, err := bmssp.BMSSP(nil, []string{"A"})
	assert.ErrorIs(t, err, bmssp.ErrGraphNil)
}

func TestBMSSP_UndirectedGraphRejected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted()) // undirected by default
	_, _ = g.AddEdge("A", "B", 1)
	_, _, err := bmssp.BMSSP(g, []string{"A"})
	assert.ErrorIs(t, err, bmssp.ErrUndirectedGraph)
}

func TestBMSSP_EmptySources(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _, err := bmssp.BMSSP(g, nil)
	assert.ErrorIs(t, err, bmssp.ErrNoSources)
}

func TestBMSSP_SourceNotFound(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _, err := bmssp.BMSSP(g, []string{"X"})
	assert.ErrorIs(t, err, bmssp.ErrVertexNotFound)
}

func TestBMSSP_TargetNotFound(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, err := bmssp.SingleSourcePath(g, "A", "X")
	assert.ErrorIs(t, err, bmssp.ErrVertexNotFound)
}

func TestBMSSP_NegativeWeightRejected(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", -5)
	dist, paths, err := bmssp.BMSSP(g, []string{"A"})
	assert.ErrorIs(t, err, bmssp.ErrNegativeWeight)
	// No partial results on failure.
	assert.Nil(t, dist)
	assert.Nil(t, paths)
}

func TestBMSSP_NegativeCallbackWeightRejected(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1)
	neg := func(_, _ string, _ *core.Edge) (float64, bool) { return -1, true }
	_, _, err := bmssp.BMSSP(g, []string{"A"}, bmssp.WithWeightFunc(neg))
	assert.ErrorIs(t, err, bmssp.ErrNegativeWeight)
}

func TestWithPrecision_NegativePanics(t *testing.T) {
	assert.PanicsWithValue(t, bmssp.ErrBadPrecision.Error(), func() {
		bmssp.WithPrecision(-1)
	})
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios from the contract.
// ------------------------------------------------------------------------

func TestBMSSP_Triangle(t *testing.T) {
	// 0→1 w=1, 1→2 w=2, 0→2 w=4: shortest to 2 is 0→1→2 with cost 3.
	g := digraph()
	_, _ = g.AddEdge("0", "1", 1)
	_, _ = g.AddEdge("1", "2", 2)
	_, _ = g.AddEdge("0", "2", 4)

	dist, paths, err := bmssp.BMSSP(g, []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"0": 0, "1": 1, "2": 3}, dist)
	assert.Equal(t, []string{"0", "1", "2"}, paths["2"])
	assert.Equal(t, []string{"0"}, paths["0"])
}

func TestBMSSP_Cycle(t *testing.T) {
	// Cycle 0→1→2→3→0, each weight 1.
	g := digraph()
	_, _ = g.AddEdge("0", "1", 1)
	_, _ = g.AddEdge("1", "2", 1)
	_, _ = g.AddEdge("2", "3", 1)
	_, _ = g.AddEdge("3", "0", 1)

	dist, _, err := bmssp.BMSSP(g, []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"0": 0, "1": 1, "2": 2, "3": 3}, dist)
}

func TestBMSSP_MultigraphParallelMinimum(t *testing.T) {
	// Two parallel 0→1 edges weighted 5 and 2: resolved weight is 2.
	g := digraph(core.WithMultiEdges())
	_, _ = g.AddEdge("0", "1", 5)
	_, _ = g.AddEdge("0", "1", 2)

	d, err := bmssp.SingleSourcePathLength(g, "0", "1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

func TestBMSSP_SelfDistanceZero(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 7)

	d, err := bmssp.SingleSourcePathLength(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	p, err := bmssp.SingleSourcePath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p)
}

func TestBMSSP_UnreachableNodesAbsent(t *testing.T) {
	// B is reachable from A; C→D is a separate component.
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)

	dist, paths, err := bmssp.BMSSP(g, []string{"A"})
	require.NoError(t, err)
	assert.NotContains(t, dist, "C")
	assert.NotContains(t, dist, "D")
	assert.NotContains(t, paths, "C")
	assert.NotContains(t, paths, "D")

	_, err = bmssp.SingleSourcePath(g, "A", "D")
	assert.ErrorIs(t, err, bmssp.ErrNoPath)
	_, err = bmssp.SingleSourcePathLength(g, "A", "D")
	assert.ErrorIs(t, err, bmssp.ErrNoPath)
}

// ------------------------------------------------------------------------
// 3. Multi-source behavior.
// ------------------------------------------------------------------------

func TestMultiSource_MinimumOfSingles(t *testing.T) {
	// A line with two sources at the ends: every vertex gets the nearer one.
	g := digraph()
	ids := []string{"v0", "v1", "v2", "v3", "v4", "v5"}
	for i := 0; i < len(ids)-1; i++ {
		_, _ = g.AddEdge(ids[i], ids[i+1], 1)
		_, _ = g.AddEdge(ids[i+1], ids[i], 1)
	}

	fromA, err := bmssp.MultiSourcePathLength(g, []string{"v0"})
	require.NoError(t, err)
	fromB, err := bmssp.MultiSourcePathLength(g, []string{"v5"})
	require.NoError(t, err)
	both, err := bmssp.MultiSourcePathLength(g, []string{"v0", "v5"})
	require.NoError(t, err)

	for _, id := range ids {
		want := math.Min(fromA[id], fromB[id])
		assert.Equal(t, want, both[id], "dist[%s]", id)
	}
}

func TestMultiSource_PathsStartAtNearestSource(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("a", "m", 1)
	_, _ = g.AddEdge("b", "m", 5)

	paths, err := bmssp.MultiSourcePath(g, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m"}, paths["m"])
	assert.Equal(t, []string{"b"}, paths["b"])
}

func TestMultiSource_DuplicateSourcesTolerated(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1)

	dist, err := bmssp.MultiSourcePathLength(g, []string{"A", "A"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1}, dist)
}

// ------------------------------------------------------------------------
// 4. Weight resolution: attributes, callbacks, masking, hop counting.
// ------------------------------------------------------------------------

func TestWeight_CustomAttribute(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 9, core.WithEdgeAttr("toll", 2))
	_, _ = g.AddEdge("B", "C", 9) // no toll attribute → DefaultEdgeWeight

	d, err := bmssp.SingleSourcePathLength(g, "A", "C", bmssp.WithWeightAttribute("toll"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, d) // 2 + default 1
}

func TestWeight_CallbackMasksEdges(t *testing.T) {
	// Hiding the direct A→C shortcut forces the A→B→C detour.
	g := digraph()
	shortcut, _ := g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 2)

	mask := func(_, _ string, e *core.Edge) (float64, bool) {
		if e.ID == shortcut {
			return 0, false // hidden
		}

		return e.Weight, true
	}

	d, err := bmssp.SingleSourcePathLength(g, "A", "C", bmssp.WithWeightFunc(mask))
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	// Masking every edge into a vertex makes it unreachable, not an error.
	hideAll := func(_, to string, e *core.Edge) (float64, bool) {
		if to == "C" || e.To == "C" {
			return 0, false
		}

		return e.Weight, true
	}
	_, err = bmssp.SingleSourcePathLength(g, "A", "C", bmssp.WithWeightFunc(hideAll))
	assert.ErrorIs(t, err, bmssp.ErrNoPath)
}

func TestWeight_UnweightedGraphCountsHops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true)) // unweighted
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	dist, _, err := bmssp.BMSSP(g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 2}, dist)
}

// ------------------------------------------------------------------------
// 5. Precision rounding.
// ------------------------------------------------------------------------

func TestPrecision_Rounding(t *testing.T) {
	g := digraph()
	_, _ = g.AddEdge("A", "B", 1.25)
	_, _ = g.AddEdge("B", "C", 1.25)

	exact, err := bmssp.SingleSourcePathLength(g, "A", "C", bmssp.WithPrecision(2))
	require.NoError(t, err)
	assert.Equal(t, 2.5, exact)

	oneDecimal, err := bmssp.SingleSourcePathLength(g, "A", "C", bmssp.WithPrecision(1))
	require.NoError(t, err)
	assert.Equal(t, 2.5, oneDecimal)

	whole, err := bmssp.SingleSourcePathLength(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, whole) // math.Round half away from zero
}

func TestPrecision_PerturbationInvisibleAtScale(t *testing.T) {
	// A long equal-weight chain accumulates many perturbation increments;
	// none of them may leak into the rounded output.
	g := digraph()
	const n = 200
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge("c"+strconv.Itoa(i), "c"+strconv.Itoa(i+1), 0.1)
	}

	d, err := bmssp.SingleSourcePathLength(g, "c0", "c"+strconv.Itoa(n), bmssp.WithPrecision(1))
	require.NoError(t, err)
	assert.Equal(t, 20.0, d)
}

// ------------------------------------------------------------------------
// 6. Determinism: identical inputs ⇒ identical path maps.
// ------------------------------------------------------------------------

func TestDeterminism_EqualCostPaths(t *testing.T) {
	// Diamond with two cost-2 paths A→B→D and A→C→D, plus a tied grid
	// behind it; the winning predecessor must be stable across runs.
	build := func() *core.Graph {
		g := digraph()
		_, _ = g.AddEdge("A", "B", 1)
		_, _ = g.AddEdge("A", "C", 1)
		_, _ = g.AddEdge("B", "D", 1)
		_, _ = g.AddEdge("C", "D", 1)
		_, _ = g.AddEdge("D", "E", 1)
		_, _ = g.AddEdge("B", "E", 2)

		return g
	}

	_, first, err := bmssp.BMSSP(build(), []string{"A"})
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		_, again, rerr := bmssp.BMSSP(build(), []string{"A"})
		require.NoError(t, rerr)
		assert.Equal(t, first, again, "path map changed on run %d", run)
	}
}

// ------------------------------------------------------------------------
// 7. Cross-check against a reference Dijkstra on generated graphs.
// ------------------------------------------------------------------------

// referenceDijkstra is a deliberately simple O(V²) single-source Dijkstra
// over the same graph, used as ground truth.
func referenceDijkstra(g *core.Graph, source string) map[string]float64 {
	const inf = math.MaxFloat64
	dist := map[string]float64{}
	for _, id := range g.Vertices() {
		dist[id] = inf
	}
	dist[source] = 0
	visited := map[string]bool{}

	for {
		u, best := "", inf
		for id, d := range dist {
			if !visited[id] && d < best {
				u, best = id, d
			}
		}
		if u == "" {
			break
		}
		visited[u] = true
		edges, _ := g.Neighbors(u)
		for _, e := range edges {
			if nd := best + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
			}
		}
	}
	for id, d := range dist {
		if d == inf {
			delete(dist, id)
		}
	}

	return dist
}

func TestBMSSP_MatchesDijkstra_LayeredRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := digraph(core.WithMultiEdges())
	const n = 120
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "n" + strconv.Itoa(i)
		_ = g.AddVertex(ids[i])
	}
	// Forward edges within a small window plus a few long skips.
	for i := 0; i < n; i++ {
		for j := i + 1; j < i+5 && j < n; j++ {
			_, _ = g.AddEdge(ids[i], ids[j], float64(1+rng.Intn(10)))
		}
		if skip := i + 20; skip < n {
			_, _ = g.AddEdge(ids[i], ids[skip], float64(5+rng.Intn(20)))
		}
	}

	want := referenceDijkstra(g, ids[0])
	got, _, err := bmssp.BMSSP(g, []string{ids[0]})
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for id, d := range want {
		assert.Equal(t, d, got[id], "dist[%s]", id)
	}
}

func TestBMSSP_MatchesDijkstra_SparseWithCycles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := digraph()
	const n = 90
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "s" + strconv.Itoa(i)
		_ = g.AddVertex(ids[i])
	}
	// Ring plus random chords, including backward edges (cycles).
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(ids[i], ids[(i+1)%n], float64(1+rng.Intn(4)))
	}
	for c := 0; c < 3*n; c++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(ids[u], ids[v]) {
			continue
		}
		_, _ = g.AddEdge(ids[u], ids[v], float64(1+rng.Intn(15)))
	}

	want := referenceDijkstra(g, ids[3])
	got, paths, err := bmssp.BMSSP(g, []string{ids[3]})
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for id, d := range want {
		assert.Equal(t, d, got[id], "dist[%s]", id)
	}
	// Every reported path must start at the source, end at its key, and
	// cost exactly the reported distance.
	for id, p := range paths {
		require.NotEmpty(t, p)
		assert.Equal(t, ids[3], p[0])
		assert.Equal(t, id, p[len(p)-1])
		var cost float64
		for i := 0; i+1 < len(p); i++ {
			cost += cheapestEdge(t, g, p[i], p[i+1])
		}
		assert.Equal(t, got[id], cost, "path cost mismatch for %s", id)
	}
}

// cheapestEdge returns the minimum weight among edges u→v.
func cheapestEdge(t *testing.T, g *core.Graph, u, v string) float64 {
	t.Helper()
	edges, err := g.Neighbors(u)
	require.NoError(t, err)
	best := math.MaxFloat64
	for _, e := range edges {
		if e.To == v && e.Weight < best {
			best = e.Weight
		}
	}
	require.Less(t, best, math.MaxFloat64, "no edge %s→%s", u, v)

	return best
}

// ------------------------------------------------------------------------
// 8. Target short-circuit.
// ------------------------------------------------------------------------

func TestTarget_StopsEarly(t *testing.T) {
	// With a target configured, vertices beyond it may be left unsettled;
	// the target's own distance must still be exact.
	g := digraph()
	const n = 50
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge("t"+strconv.Itoa(i), "t"+strconv.Itoa(i+1), 2)
	}

	d, err := bmssp.SingleSourcePathLength(g, "t0", "t10")
	require.NoError(t, err)
	assert.Equal(t, 20.0, d)

	p, err := bmssp.SingleSourcePath(g, "t0", "t10")
	require.NoError(t, err)
	require.Len(t, p, 11)
	assert.Equal(t, "t0", p[0])
	assert.Equal(t, "t10", p[10])
}
