package network

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lodgenet/bfs"
	"github.com/katalvlaran/lodgenet/core"
)

// Strategy names one reachability algorithm. All strategies share the
// Traverse contract: the ids reachable from start, start excluded.
type Strategy int

const (
	// StrategyBFSTree derives the reachable set from bfs.Tree, in the order
	// the tree's vertices were inserted (level by level). It is the
	// canonical engine answer.
	StrategyBFSTree Strategy = iota

	// StrategyRecursiveDFS is a recursive depth-first walk; results are in
	// discovery order.
	StrategyRecursiveDFS

	// StrategyIterativeBFS is a queue-driven breadth-first walk; results are
	// in non-decreasing distance from start.
	StrategyIterativeBFS
)

// Strategies lists every strategy, canonical first.
func Strategies() []Strategy {
	return []Strategy{StrategyBFSTree, StrategyRecursiveDFS, StrategyIterativeBFS}
}

// String returns the metric/log label of s.
func (s Strategy) String() string {
	switch s {
	case StrategyBFSTree:
		return "bfs_tree"
	case StrategyRecursiveDFS:
		return "recursive_dfs"
	case StrategyIterativeBFS:
		return "iterative_bfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// traverseFunc is the uniform traversal signature behind Strategy.
type traverseFunc func(ctx context.Context, g core.Reader, start int) ([]int, error)

// Traverse runs s on g from start. start must be a node of g. A done ctx
// aborts the walk with ctx.Err().
func (s Strategy) Traverse(ctx context.Context, g core.Reader, start int) ([]int, error) {
	fn, ok := traversals[s]
	if !ok {
		return nil, fmt.Errorf("network: unknown strategy %d", int(s))
	}

	return fn(ctx, g, start)
}

var traversals = map[Strategy]traverseFunc{
	StrategyBFSTree:      reachBFSTree,
	StrategyRecursiveDFS: reachRecursiveDFS,
	StrategyIterativeBFS: reachIterativeBFS,
}

// reachBFSTree builds the BFS tree and returns its nodes minus start, in
// insertion order.
func reachBFSTree(ctx context.Context, g core.Reader, start int) ([]int, error) {
	tree, err := bfs.Tree(g, start, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return tree.Reached(), nil
}

// reachRecursiveDFS marks start visited, then recursively appends every
// unvisited neighbor in discovery order.
func reachRecursiveDFS(ctx context.Context, g core.Reader, start int) ([]int, error) {
	visited := map[int]bool{start: true}
	out := []int{}

	var visit func(node int) error
	visit = func(node int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		nbrs, err := g.NeighborIDs(node)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			out = append(out, nbr)
			if err = visit(nbr); err != nil {
				return err
			}
		}

		return nil
	}
	if err := visit(start); err != nil {
		return nil, err
	}

	return out, nil
}

// reachIterativeBFS walks a FIFO queue seeded with start.
func reachIterativeBFS(ctx context.Context, g core.Reader, start int) ([]int, error) {
	visited := map[int]bool{start: true}
	queue := []int{start}
	out := []int{}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := queue[0]
		queue = queue[1:]

		nbrs, err := g.NeighborIDs(node)
		if err != nil {
			return nil, err
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
			out = append(out, nbr)
		}
	}

	return out, nil
}
