package bmssp

// findPivots runs a bounded Bellman-Ford expansion from the source set and
// reduces it to the pivots worth recursing on.
//
// Up to k rounds, every outgoing arc of the current layer (nodes with
// dist < bound) is relaxed; nodes improved to a distance below the bound
// form the next layer and join the working set W. Two early exits:
//
//   - |W| > k*|S|: the problem is too wide to benefit from pivot reduction
//     this round; return (S, W) unchanged so the caller treats every
//     source as its own pivot.
//   - a round produces no new nodes: natural termination.
//
// Afterwards the tight-edge forest is built: for every v in W whose
// predecessor also lies in W, record the parent→child link. A source is a
// pivot iff it is a forest root (its predecessor is outside W) and its
// forest subtree holds at least k nodes - it anchors a cluster large
// enough to amortize a recursive sub-call.
//
// Guarantees on return: pivots ⊆ sources, reached ⊇ sources, and every
// node in reached has dist < bound (subject only to further improvement;
// dist never increases).
func (s *searchState) findPivots(bound float64, sources []int) (pivots, reached []int) {
	k := s.prm.k

	inW := make(map[int]struct{}, len(sources)*k)
	reached = append(reached, sources...)
	for _, u := range sources {
		inW[u] = struct{}{}
	}

	layer := sources
	for round := 0; round < k; round++ {
		var next []int
		for _, u := range layer {
			if s.dist[u] >= bound {
				continue
			}
			for _, a := range s.snap.adj[u] {
				nd, improved := s.relax(u, a)
				if !improved || nd >= bound {
					continue
				}
				if _, seen := inW[a.to]; !seen {
					inW[a.to] = struct{}{}
					reached = append(reached, a.to)
					next = append(next, a.to)
				}
			}
		}
		if len(reached) > k*len(sources) {
			// Too wide: fall back to every source being its own pivot.
			return sources, reached
		}
		if len(next) == 0 {
			break
		}
		layer = next
	}

	// Tight-edge forest: predecessor links restricted to W capture exactly
	// the edges used to achieve the currently-best distances.
	children := make(map[int][]int, len(inW))
	for _, v := range reached {
		u := s.pred[v]
		if u == noPred || u == v {
			continue
		}
		if _, ok := inW[u]; ok {
			children[u] = append(children[u], v)
		}
	}

	for _, u := range sources {
		if _, ok := inW[u]; !ok {
			continue
		}
		if p := s.pred[u]; p != noPred {
			if _, ok := inW[p]; ok {
				continue // not a forest root
			}
		}
		if subtreeAtLeast(u, children, k) {
			pivots = append(pivots, u)
		}
	}

	return pivots, reached
}

// subtreeAtLeast reports whether the forest subtree rooted at u contains at
// least k nodes. Depth-first with a stack, aborting as soon as the count
// is reached, so each call costs O(k). Overlapping subtrees of distinct
// candidate roots are re-walked rather than memoized; the walk is cheap
// enough that a shared cache would cost more than it saves.
func subtreeAtLeast(u int, children map[int][]int, k int) bool {
	count := 0
	stack := []int{u}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if count >= k {
			return true
		}
		stack = append(stack, children[v]...)
	}

	return false
}
