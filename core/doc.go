// Package core provides the undirected, integer-keyed in-memory Graph that the
// lodge network is built on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only: adjacency[u][v] and adjacency[v][u] always agree.
//   - Unweighted: trail payload (distance, difficulty, ...) stays in the catalog.
//   - At most one edge per unordered pair; a second AddEdge(u,v) or AddEdge(v,u)
//     returns ErrMultiEdgeNotAllowed so callers can collapse parallel links.
//   - Self-loops only with WithLoops().
//   - Collision-free edge IDs ("e1", "e2", ...) from a counter reset by Clear.
//   - One sync.RWMutex guards vertices, edges and adjacency together.
//
// Determinism:
//
//	Vertices() and NeighborIDs() return ascending IDs; Edges() is ordered by
//	the numeric part of Edge.ID. Traversals built on top (bfs, dfs) therefore
//	visit vertices in a reproducible order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int)                      // O(1), idempotent
//	HasVertex(id int) bool                 // O(1)
//	Vertices() []int                       // O(V·log V)
//	VertexCount() int                      // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) (edgeID string, err error) // O(1), creates endpoints
//	HasEdge(u, v int) bool                       // O(1), symmetric
//	Edges() []*Edge                              // O(E·log E)
//	EdgeCount() int                              // O(1)
//
//	// Query
//	NeighborIDs(id int) ([]int, error)     // O(d·log d), unique, sorted
//	Degree(id int) (int, error)            // O(1), distinct neighbors
//
//	// Maintenance
//	Clear()                                // O(1): reset state, keep flags
//
// Read-only consumers should accept the Reader interface rather than *Graph;
// only the owner of a Graph mutates it.
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
