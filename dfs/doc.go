// Package dfs provides recursive depth-first search over a core.Reader.
//
// DFS reports the discovery (pre-order) sequence and, for every reached
// vertex, the root of the tree it belongs to. With WithFullTraversal it
// restarts from every unreached vertex in ascending ID order and records
// each tree root in Result.Roots; on an undirected graph the number of
// roots is the number of connected components.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//   - ctx.Err()                 once the WithContext context is done.
package dfs
