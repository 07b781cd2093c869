// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors).
//
// Determinism:
//   - Neighbors() returns edges ordered by insertion (numeric edge ID).
//
// Concurrency:
//   - Locks are acquired in the same order as mutators (muVert -> muEdgeAdj).
package core

import "sort"

// Neighbors returns the edges traversable out of the vertex id.
//
// Adjacency policy:
//   - Directed edges are returned only when e.From == id (no walking
//     backwards along one-way edges).
//   - Undirected edges appear in both endpoints' adjacency and are
//     returned from either side.
//
// Returns ErrEmptyVertexID for an empty id and ErrVertexNotFound when the
// vertex does not exist. The returned *Edge values are read-only by
// convention.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e == nil {
				continue
			}
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	// Sort by (len, ID) = numeric edge ID order for reproducible iteration.
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}
