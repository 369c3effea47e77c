package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lodgenet/core"
)

type walker struct {
	graph core.Reader
	ctx   context.Context
	res   *Result
}

// DFS performs a recursive depth-first search on g from startID, or over
// every vertex when WithFullTraversal is given.
//
// On cancellation or a failed neighbor lookup the partial result is returned
// with the error.
func DFS(g core.Reader, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}
	if !o.forest && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		ctx:   o.ctx,
		res: &Result{
			Discovery: make([]int, 0, n),
			Root:      make(map[int]int, n),
		},
	}

	starts := []int{startID}
	if o.forest {
		starts = g.Vertices()
	}
	for _, v := range starts {
		if _, seen := w.res.Root[v]; seen {
			continue
		}
		w.res.Roots = append(w.res.Roots, v)
		if err := w.visit(v, v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// visit records id under root and recurses into unreached neighbors.
func (w *walker) visit(id, root int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	w.res.Root[id] = root
	w.res.Discovery = append(w.res.Discovery, id)

	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%d): %w", id, err)
	}
	for _, nid := range nbrs {
		if _, seen := w.res.Root[nid]; seen {
			continue // includes self-loops
		}
		if err = w.visit(nid, root); err != nil {
			return err
		}
	}

	return nil
}
