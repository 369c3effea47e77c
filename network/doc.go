// Package network is the lodge network engine: it builds a filtered,
// undirected graph of lodges for a year cutoff and answers structural
// questions about it.
//
// Flow
//
//	eng := network.New(ctx, cat)   // loads the Directory once
//	_ = eng.Build(ctx, 2005)       // graph := connections with year <= 2005
//	nodes, _ := eng.ListNodes()
//	n, _ := eng.ComponentCount(ctx)
//	reach, _ := eng.Reachable(ctx, lodge) // BFS discovery order
//
// Graph invariants
//
//   - A lodge is a node iff it is an endpoint of a qualifying connection;
//     there are no isolated nodes.
//   - Parallel connections between the same pair collapse into one edge.
//   - Every Build starts from an empty graph. A catalog failure leaves it
//     empty and returns an error wrapping ErrBuild.
//
// Reachability
//
// Three strategies (see Strategy) compute the set of lodges reachable from a
// start lodge. Every call runs all of them and compares the results as sets;
// a disagreement is logged, counted in lodgenet_reachability_mismatch_total
// and passed to the WithOnMismatch hook. The StrategyBFSTree result is
// returned; if that strategy fails, the next one that succeeded is used.
//
// Concurrency
//
// The Builder is the only writer. Queries read through a core.Reader view.
// Build must not run concurrently with queries on the same Engine.
package network
