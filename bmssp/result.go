package bmssp

import "math"

// assemble converts the scratch arrays into the caller-facing maps.
//
// For every node with a finite estimate, the clean (unperturbed) distance
// is rounded to the requested precision and the path is rebuilt by walking
// predecessors back to the sentinel. Nodes never reached are absent from
// both maps - callers must test for presence, not for an infinity value.
func (s *searchState) assemble(precision int) (map[string]float64, map[string][]string) {
	scale := pow10(precision)
	dist := make(map[string]float64, len(s.dist))
	paths := make(map[string][]string, len(s.dist))

	for i, d := range s.dist {
		if math.IsInf(d, 1) {
			continue
		}
		id := s.snap.labelOf[i]
		dist[id] = math.Round(s.cdist[i]*scale) / scale
		paths[id] = s.pathTo(i)
	}

	return dist, paths
}

// pathTo reconstructs the source→node path by walking pred to the noPred
// sentinel, then reversing.
func (s *searchState) pathTo(node int) []string {
	var rev []string
	for v := node; v != noPred; v = s.pred[v] {
		rev = append(rev, s.snap.labelOf[v])
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
