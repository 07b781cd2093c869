package bmssp

import "container/heap"

// baseCase settles up to k nodes around a single source with an
// early-terminating Dijkstra and returns a tightened completion bound.
//
// Standard min-heap relaxation with two twists:
//
//   - Pop budget: once k nodes have been completed, the key of the entry
//     that would have been popped next becomes the new bound - every node
//     completed so far is provably closer than it. If the heap exhausts
//     first, the original bound stands.
//   - Out-of-bound pruning: relaxations producing a perturbed distance
//     ≥ bound still improve dist (the monotonic invariant allows any
//     genuine improvement) but are never pushed; nodes beyond the bound
//     are some other call's responsibility.
//
// Neighbors are pushed at their current estimate whether or not this
// call's relaxation improved it: pivot-finding and sibling calls write
// into the shared dist array, so an already-final neighbor still has to
// enter the heap here to be completed. Stale heap entries (key above the
// current estimate) and nodes already completed by sibling calls are
// skipped without consuming the budget. completed lists the nodes
// settled here, in pop order.
func (s *searchState) baseCase(bound float64, source int) (newBound float64, completed []int) {
	k := s.prm.k
	newBound = bound
	completed = make([]int, 0, k)

	pq := make(pairHeap, 0, k+1)
	heap.Init(&pq)
	heap.Push(&pq, pairItem{key: s.dist[source], node: source})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(pairItem)
		if it.key > s.dist[it.node] {
			continue // stale lazy-decrease-key entry
		}
		if s.done[it.node] {
			continue
		}
		if len(completed) == k {
			// The k-th pop already happened; this entry's key bounds
			// everything we completed.
			newBound = it.key

			break
		}

		s.done[it.node] = true
		completed = append(completed, it.node)

		for _, a := range s.snap.adj[it.node] {
			s.relax(it.node, a)
			if nd := s.dist[a.to]; !s.done[a.to] && nd < bound {
				heap.Push(&pq, pairItem{key: nd, node: a.to})
			}
		}
	}

	return newBound, completed
}
