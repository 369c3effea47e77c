package network

import "errors"

var (
	// ErrLodgeNotInDirectory signals a graph node with no directory record.
	// It is an internal invariant violation: the builder only creates nodes
	// from connections resolved against the same directory.
	ErrLodgeNotInDirectory = errors.New("network: lodge id missing from directory")

	// ErrBuild wraps catalog failures during Build. The graph is left empty.
	ErrBuild = errors.New("network: build failed")

	// ErrNoStrategyResult is returned when every reachability strategy failed.
	ErrNoStrategyResult = errors.New("network: no reachability strategy produced a result")
)
