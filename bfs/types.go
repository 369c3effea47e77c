package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start lodge is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors wraps a failed neighbor lookup.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Option tunes a search.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext stops the search with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the outcome of one search.
type Result struct {
	// Start is the vertex the search began at.
	Start int

	// Order lists visited vertices level by level, Start first.
	Order []int

	// Parent maps every visited vertex except Start to the vertex it was
	// discovered from.
	Parent map[int]int
}
