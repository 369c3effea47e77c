// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency buckets protected by mu.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, check presence.
//   - Stage 2: If missing, register it and bootstrap its adjacency bucket so
//     NeighborIDs can rely on the bucket existing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked registers id; caller holds mu for writing.
func (g *Graph) addVertexLocked(id int) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[int]string)
	}
}

// HasVertex reports whether the vertex ID exists.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns every vertex ID in ascending order.
//
// The returned slice is freshly allocated and owned by the caller.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	var id int
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
//
// Behavior highlights:
//   - Parallel links cannot exist, so this equals the count of incident edges.
//   - A self-loop makes id its own neighbor and counts once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
