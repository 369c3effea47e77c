package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/core"
	"github.com/katalvlaran/lodgenet/dfs"
)

// Queries answers structural questions about the current network through a
// read-only view.
type Queries struct {
	g   core.Reader
	dir *Directory
}

// NewQueries binds a query service to a graph view and a directory.
func NewQueries(g core.Reader, dir *Directory) *Queries {
	return &Queries{g: g, dir: dir}
}

// ListNodes returns the lodges present in the network, in the graph's node
// order (ascending id). Callers must not rely on the order.
func (q *Queries) ListNodes() ([]catalog.Lodge, error) {
	return q.dir.ResolveAll(q.g.Vertices())
}

// Degree returns the number of distinct neighbors of l, or 0 when l is not
// part of the current network.
func (q *Queries) Degree(l catalog.Lodge) int {
	d, err := q.g.Degree(l.ID)
	if err != nil {
		return 0
	}

	return d
}

// ComponentCount returns the number of connected components: 0 for an empty
// network, 1 for a single lodge.
//
// It runs a DFS forest over every node; each tree is one component.
func (q *Queries) ComponentCount(ctx context.Context) (int, error) {
	res, err := dfs.DFS(q.g, 0, dfs.WithFullTraversal(), dfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("network: component count: %w", err)
	}

	return len(res.Roots), nil
}

// Components returns each connected component as a sorted id list, largest
// component first (ties broken by smallest id).
func (q *Queries) Components(ctx context.Context) ([][]int, error) {
	res, err := dfs.DFS(q.g, 0, dfs.WithFullTraversal(), dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("network: components: %w", err)
	}

	byRoot := make(map[int][]int, len(res.Roots))
	for _, id := range q.g.Vertices() {
		r := res.Root[id]
		byRoot[r] = append(byRoot[r], id)
	}

	out := make([][]int, 0, len(res.Roots))
	for _, r := range res.Roots {
		out = append(out, byRoot[r])
	}
	sortComponents(out)

	return out, nil
}

// sortComponents orders components by size descending, then first id.
func sortComponents(cs [][]int) {
	sort.Slice(cs, func(i, j int) bool {
		if len(cs[i]) != len(cs[j]) {
			return len(cs[i]) > len(cs[j])
		}
		return cs[i][0] < cs[j][0]
	})
}
