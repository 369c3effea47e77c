// Package core defines the central Graph and Edge types and the Reader view
// consumed by traversals and structural queries.
//
// This file declares Edge, Graph, GraphOption, Reader, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates an edge already joins the requested endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected link between two vertices.
//
// From and To keep the orientation the edge was added with; it carries no
// meaning for traversal.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as passed to AddEdge.
	From int

	// To is the second endpoint as passed to AddEdge.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Reader is the read-only surface of a Graph.
//
// Query components and traversals depend on Reader so that only the owner of
// the *Graph can mutate it.
type Reader interface {
	HasVertex(id int) bool
	HasEdge(u, v int) bool
	Vertices() []int
	NeighborIDs(id int) ([]int, error)
	Degree(id int) (int, error)
	VertexCount() int
	EdgeCount() int
}

// Graph is the core in-memory undirected graph.
//
// mu protects every field below it. nextEdgeID is only touched under mu.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64           // edge ID generator
	vertices   map[int]struct{} // vertex catalog
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[u][v] = edgeID, mirrored as adjacency[v][u].
	adjacency map[int]map[int]string
}

// NewGraph creates an empty Graph with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[int]map[int]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

var _ Reader = (*Graph)(nil)
