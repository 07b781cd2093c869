package bmssp

import "math"

// noPred is the predecessor sentinel for nodes without a best-known path.
const noPred = -1

// searchState is the mutable scratch state of one BMSSP invocation, shared
// by reference across all recursive calls: deeper calls must observe and
// improve on distances discovered by shallower and sibling calls.
//
// This sharing is safe because execution is single-threaded and strictly
// nested - a child call always completes before its parent resumes. The
// state is allocated once per top-level call and discarded on return;
// nothing here persists across invocations.
//
// Invariant: dist[v] never increases (every write is a strict improvement
// of the perturbed estimate), and cdist/pred are updated in lockstep with
// dist, so pred always reconstructs the path whose cost cdist reports.
type searchState struct {
	snap *snapshot
	prm  params

	dist   []float64 // perturbed distance estimates
	cdist  []float64 // true (unperturbed) sum-of-weights distances
	pred   []int     // predecessor node index, or noPred
	done   []bool    // nodes whose distance has been completed
	target int       // early-stop node index, or noPred when absent
}

// newSearchState allocates the scratch arrays for a graph of n nodes:
// all distances +∞, all predecessors noPred.
func newSearchState(snap *snapshot, prm params, target int) *searchState {
	n := len(snap.labelOf)
	s := &searchState{
		snap:   snap,
		prm:    prm,
		dist:   make([]float64, n),
		cdist:  make([]float64, n),
		pred:   make([]int, n),
		done:   make([]bool, n),
		target: target,
	}
	for i := 0; i < n; i++ {
		s.dist[i] = math.Inf(1)
		s.cdist[i] = math.Inf(1)
		s.pred[i] = noPred
	}

	return s
}

// seed marks a node as a search root: zero distance, no predecessor.
func (s *searchState) seed(u int) {
	s.dist[u] = 0
	s.cdist[u] = 0
	s.pred[u] = noPred
}

// relax attempts to improve the estimate of a.to by traveling u→a.
//
// The perturbed candidate adds counter + a.id on top of the true weight so
// that equal-cost paths always compare unequal; the clean distance tracks
// the true cost only. Returns the perturbed candidate and whether the
// estimate was improved (and dist/cdist/pred rewritten).
func (s *searchState) relax(u int, a arc) (float64, bool) {
	nd := s.dist[u] + a.weight + s.prm.counter + a.id
	if nd >= s.dist[a.to] {
		return nd, false
	}
	s.dist[a.to] = nd
	s.cdist[a.to] = s.cdist[u] + a.weight
	s.pred[a.to] = u

	return nd, true
}
