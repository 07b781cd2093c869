package bmssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/core"
)

// BMSSP computes shortest distances and paths from a set of source vertices
// to every reachable vertex of the directed graph g.
//
// Returns:
//
//   - dist: map from vertex ID to the distance from the nearest source,
//     rounded to the configured precision. Unreachable vertices are absent.
//   - paths: map from vertex ID to one shortest path (source first,
//     vertex last). Unreachable vertices are absent here too.
//   - err: a sentinel error if inputs are invalid or a resolved edge
//     weight is negative.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be directed (ErrUndirectedGraph).
//  3. sources must be non-empty (ErrNoSources).
//  4. Every source - and the target, when configured - must exist in g
//     (ErrVertexNotFound).
//  5. No resolved edge weight may be negative (ErrNegativeWeight).
//
// Options customization:
//
//   - WithPrecision(p): decimal rounding of reported distances.
//   - WithWeightAttribute(name) / WithWeightFunc(fn): weight resolution.
//   - WithTarget(id): stop as soon as id is completed.
//
// Tie-breaking between equal-cost paths is deterministic: repeated calls
// with identical inputs return identical path maps.
//
// Complexity: O(m·log^(2/3) n) relaxation work in the intended regime;
// O(n + m) space. Single-threaded; the graph must not be mutated
// concurrently with the call.
func BMSSP(g *core.Graph, sources []string, opts ...Option) (map[string]float64, map[string][]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source set.
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, nil, ErrUndirectedGraph
	}
	if len(sources) == 0 {
		return nil, nil, ErrNoSources
	}
	var src string
	for _, src = range sources {
		if !g.HasVertex(src) {
			return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, src)
		}
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 3) One-time setup: weight resolution, dense snapshot, tuning
	//    constants. Negative weights surface here, before any search work.
	weight := resolveWeight(g.Weighted(), cfg)
	snap, err := buildSnapshot(g, weight, cfg.Precision)
	if err != nil {
		return nil, nil, err
	}
	prm := deriveParams(len(snap.labelOf), cfg.Precision)

	target := noPred
	if cfg.Target != "" {
		target = snap.idxOf[cfg.Target]
	}

	// 4) Seed the scratch state with the deduplicated source set.
	st := newSearchState(snap, prm, target)
	roots := make([]int, 0, len(sources))
	seen := make(map[int]struct{}, len(sources))
	for _, src = range sources {
		u := snap.idxOf[src]
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		st.seed(u)
		roots = append(roots, u)
	}

	// 5) Run the recursive driver over the whole distance range and
	//    assemble caller-facing maps.
	st.run(prm.level, math.Inf(1), roots)

	dist, paths := st.assemble(cfg.Precision)

	return dist, paths, nil
}

// run is the recursive divide-and-conquer driver. level indexes the state
// machine depth-wise: it strictly decreases on every sub-call and level 0
// always returns, so termination is structural.
//
// Contract: the call is responsible for distances strictly below bound and
// returns (comp, settled) where comp ≤ bound is the completion bound it
// actually certifies and settled is the exact set of nodes it completed
// (final distance proven < comp).
func (s *searchState) run(level int, bound float64, sources []int) (float64, []int) {
	// Terminal state: a single-source bounded Dijkstra. The caller
	// maintains the invariant that sources is a singleton here.
	if level == 0 {
		return s.baseCase(bound, sources[0])
	}

	// 1) Reduce the source set to pivots worth recursing on.
	pivots, reached := s.findPivots(bound, sources)

	// 2) Seed the frontier with every pivot, keyed by current distance.
	d := newFrontier(len(pivots))
	for _, p := range pivots {
		d.push(s.dist[p], p)
	}

	// 3) Pop / recurse / merge until the frontier drains. minSub tracks the
	//    tightest sub-call bound, the certificate for an early target stop.
	minSub := bound
	var settled []int
	for {
		it, ok := d.popMin()
		if !ok {
			break
		}
		if s.done[it.node] {
			continue // completed by an earlier sibling sub-call
		}
		if it.key > s.dist[it.node] {
			continue // stale entry; a fresher duplicate settles the node
		}

		// The sub-call owns everything up to the smallest key still
		// waiting behind this pop (pull semantics); once the frontier is
		// otherwise empty, it inherits the caller's whole range.
		pull := bound
		if nxt, more := d.peekMin(); more {
			pull = nxt.key
		}

		subBound, completed := s.run(level-1, pull, []int{it.node})
		settled = append(settled, completed...)
		if subBound < minSub {
			minSub = subBound
		}

		// Relax everything leaving the newly completed nodes and requeue
		// by the node's current estimate, whether or not this relaxation
		// improved it - the estimate may already be final from an earlier
		// stage. Two-window policy: candidates in [pull, bound) go
		// straight back onto the frontier; candidates below pull are
		// staged and batch-prepended only after this pass, so they cannot
		// jump ahead of nodes already known to be closer.
		hitTarget := false
		for _, c := range completed {
			if c == s.target {
				hitTarget = true
			}
			for _, a := range s.snap.adj[c] {
				s.relax(c, a)
				nd := s.dist[a.to]
				if s.done[a.to] || nd >= bound {
					continue
				}
				if nd >= pull {
					d.push(nd, a.to)
				} else {
					d.prepend(nd, a.to)
				}
			}
		}
		d.flush()

		if hitTarget {
			// Cancellation by value: the caller only needs the target.
			// minSub is the bound actually certified so far.
			return minSub, settled
		}
	}

	// 4) The frontier drained, so every node below the caller's bound that
	//    is reachable through a pivot has been settled; the full range is
	//    certified. Fold in nodes discovered during pivot-finding that sit
	//    under the bound: they are complete even though they were never
	//    explicitly popped (their anchors were too small to pivot on).
	for _, w := range reached {
		if !s.done[w] && s.dist[w] < bound {
			s.done[w] = true
			settled = append(settled, w)
		}
	}

	return bound, settled
}

// SingleSourcePath returns one shortest path from source to target
// (inclusive of both endpoints). Fails with ErrNoPath when target is
// unreachable and ErrVertexNotFound when either vertex is absent.
func SingleSourcePath(g *core.Graph, source, target string, opts ...Option) ([]string, error) {
	_, paths, err := BMSSP(g, []string{source}, withTargetOption(opts, target)...)
	if err != nil {
		return nil, err
	}
	p, ok := paths[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, source, target)
	}

	return p, nil
}

// SingleSourcePathLength returns the shortest distance from source to
// target, rounded to the configured precision. The distance from a vertex
// to itself is 0. Fails with ErrNoPath when target is unreachable.
func SingleSourcePathLength(g *core.Graph, source, target string, opts ...Option) (float64, error) {
	dist, _, err := BMSSP(g, []string{source}, withTargetOption(opts, target)...)
	if err != nil {
		return 0, err
	}
	d, ok := dist[target]
	if !ok {
		return 0, fmt.Errorf("%w: %s → %s", ErrNoPath, source, target)
	}

	return d, nil
}

// MultiSourcePath returns, for every vertex reachable from at least one
// source, one shortest path from its nearest source.
func MultiSourcePath(g *core.Graph, sources []string, opts ...Option) (map[string][]string, error) {
	_, paths, err := BMSSP(g, sources, opts...)
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// MultiSourcePathLength returns, for every vertex reachable from at least
// one source, the distance from its nearest source.
func MultiSourcePathLength(g *core.Graph, sources []string, opts ...Option) (map[string]float64, error) {
	dist, _, err := BMSSP(g, sources, opts...)
	if err != nil {
		return nil, err
	}

	return dist, nil
}

// withTargetOption appends WithTarget to a fresh option slice, leaving the
// caller's slice untouched.
func withTargetOption(opts []Option, target string) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	out = append(out, WithTarget(target))

	return out
}
