// File: methods_adjacent.go
// Role: Neighborhood API (NeighborIDs).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted ascending.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

import "sort"

// NeighborIDs returns the distinct vertices adjacent to id, ascending.
//
// Implementation:
//   - Stage 1: Acquire the read lock and validate existence.
//   - Stage 2: Copy the adjacency bucket keys and sort them.
//
// Behavior highlights:
//   - A self-loop lists id among its own neighbors.
//   - The returned slice is freshly allocated.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	ids := make([]int, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	sort.Ints(ids)

	return ids, nil
}
