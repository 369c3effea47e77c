// Package lodgenet is the root of a small system that answers structural
// questions about a network of mountain lodges joined by dated trails.
//
// The network is rebuilt on demand for a year cutoff: only trails
// established on or before that year are edges, and only lodges touching
// such a trail are nodes. Against that snapshot it answers which lodges are
// present, how many distinct neighbors a lodge has, how many disconnected
// clusters exist, and which lodges are reachable from a given one.
//
// Layout:
//
//	core/      undirected int-keyed graph with a read-only Reader view
//	bfs/       breadth-first search and BFS tree construction
//	dfs/       recursive depth-first search and DFS forests
//	catalog/   lodge and connection records; memory, YAML, Postgres and
//	           Redis-cached catalog backends
//	network/   the engine: directory, builder, structural queries and
//	           cross-validated reachability
//	builder/   deterministic synthetic catalog generators
//	internal/  config (env + .env), logger (slog), httpapi (gin)
//	cmd/lodgenet  CLI: nodes, degree, components, reachable, serve, seed,
//	           generate
//
// Reachability runs three independent strategies (BFS tree, recursive DFS,
// iterative BFS) and reports any disagreement without failing the query.
package lodgenet
