// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus
//       Clear and nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by the numeric part of Edge.ID.
//   - nextEdgeID() is monotonic and stable ("e" + decimal) until Clear.
// Concurrency:
//   - Mutations under the mu write lock, queries under the read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates the undirected edge {u, v}, adding missing endpoints.
//
// Steps:
//  1. Reject u == v unless loops are allowed.
//  2. Lock mu; ensure both endpoints exist.
//  3. Reject an existing edge between u and v in either orientation.
//  4. Generate eid, store the edge, link adjacency in both directions.
//
// Errors:
//   - ErrLoopNotAllowed: u == v and WithLoops was not given.
//   - ErrMultiEdgeNotAllowed: an edge already joins u and v. The graph is
//     left unchanged apart from endpoints that already existed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if _, exists := g.adjacency[u][v]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: u, To: v}
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return eid, nil
}

// HasEdge reports whether an edge joins u and v (orientation-free).
// Unknown vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns all edges ordered by creation (Edge.ID numeric ascending).
// The *Edge values are shared with the graph; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clear removes all vertices and edges and restarts edge numbering.
// Configuration flags are preserved.
// Complexity: O(1) (old maps are left to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[int]struct{})
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[int]map[int]string)
	g.nextEdgeID = 0
}

// nextEdgeID returns a new unique textual edge ID. Caller holds mu.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

// edgeSeq extracts the sequence number from an ID produced by nextEdgeID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
