// Package bfs provides breadth-first search over a core.Reader and the BFS
// tree built from its discovery links.
//
// BFS visits vertices level by level from a start vertex and reports the
// visit order and the parent each vertex was discovered from. Tree turns
// that result into a SearchTree: a new *core.Graph holding one edge per
// discovery link, plus the order its vertices were inserted.
//
// Determinism
//
//	core.Reader.NeighborIDs returns ascending IDs and BFS enqueues neighbors
//	in that order, so the visit sequence is reproducible.
//
// Usage
//
//	tree, err := bfs.Tree(g, 1, bfs.WithContext(ctx))
//	reachable := tree.Reached() // discovery order, start excluded
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if NeighborIDs fails for any vertex.
//   - ctx.Err()               once the WithContext context is done.
package bfs
