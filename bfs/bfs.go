package bfs

import (
	"fmt"

	"github.com/katalvlaran/lodgenet/core"
)

// walker holds the state of one search.
type walker struct {
	graph   core.Reader
	opts    options
	queue   []int
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g from startID.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors when the graph fails a lookup, and ctx.Err() when the
// context set by WithContext is done. On error the partial result is
// returned.
func BFS(g core.Reader, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Start:  startID,
			Order:  make([]int, 0, n),
			Parent: make(map[int]int, n),
		},
	}
	w.visited[startID] = true
	w.queue = append(w.queue, startID)

	return w.res, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		nbrs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, id, err)
		}
		// NeighborIDs is ascending, so the visit order is reproducible.
		for _, nbr := range nbrs {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.res.Parent[nbr] = id
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
