package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned in single-source mode when the
	// start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option tunes a traversal.
type Option func(*options)

type options struct {
	ctx    context.Context
	forest bool
}

// WithContext aborts the traversal with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithFullTraversal walks a forest: a new tree is started from every vertex
// not yet reached, in ascending ID order. The startID passed to DFS is
// ignored.
func WithFullTraversal() Option {
	return func(o *options) {
		o.forest = true
	}
}

// Result is the outcome of a traversal.
type Result struct {
	// Discovery lists vertices in the order they were first reached.
	Discovery []int

	// Roots lists the root of every tree, in the order trees were started.
	// For a full traversal of an undirected graph, len(Roots) is the number
	// of connected components.
	Roots []int

	// Root maps every reached vertex to the root of its tree.
	Root map[int]int
}
