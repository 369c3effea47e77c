package bfs

import (
	"fmt"

	"github.com/katalvlaran/lodgenet/core"
)

// SearchTree is a BFS tree together with the order its vertices were added.
type SearchTree struct {
	*core.Graph

	// Root is the start vertex.
	Root int

	// Order is the insertion order of the tree's vertices, Root first.
	Order []int
}

// Reached returns the tree's vertices other than Root, in insertion order.
// The slice is never nil.
func (t *SearchTree) Reached() []int {
	out := make([]int, len(t.Order)-1)
	copy(out, t.Order[1:])

	return out
}

// Tree builds the breadth-first search tree rooted at startID.
//
// The tree holds every vertex BFS reached and one edge per discovery link
// {Parent[v], v}. It is a fresh graph owned by the caller; g is not
// modified. A start vertex without neighbors yields a single-vertex tree.
//
// Complexity: O(V + E) time, O(V) extra space.
func Tree(g core.Reader, startID int, opts ...Option) (*SearchTree, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	t := &SearchTree{Graph: core.NewGraph(), Root: startID, Order: res.Order}
	t.AddVertex(startID)
	// Order is visit order, so every parent is already in the tree.
	for _, id := range res.Order[1:] {
		if _, err = t.AddEdge(res.Parent[id], id); err != nil {
			return nil, fmt.Errorf("bfs: tree edge %d-%d: %w", res.Parent[id], id, err)
		}
	}

	return t, nil
}
