package network

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/core"
)

// Mismatch describes two strategies that disagreed for one start lodge.
// Err is set instead of the difference lists when B failed outright.
type Mismatch struct {
	Start   int
	A, B    Strategy
	OnlyInA []int
	OnlyInB []int
	Err     error
}

// String renders m for logs.
func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("start %d: %s failed: %v", m.Start, m.B, m.Err)
	}

	return fmt.Sprintf("start %d: %s vs %s: only in %s %v, only in %s %v",
		m.Start, m.A, m.B, m.A, m.OnlyInA, m.B, m.OnlyInB)
}

// strategyRun is one strategy's outcome during cross-validation.
type strategyRun struct {
	kind Strategy
	ids  []int
	err  error
}

// Reachability computes reachable lodge sets and cross-validates every
// strategy against the others.
type Reachability struct {
	g          core.Reader
	dir        *Directory
	log        *slog.Logger
	metrics    *metrics
	onMismatch func(Mismatch)
	traversals map[Strategy]traverseFunc
}

// ReachableIDs returns the ids reachable from start, start excluded, in the
// discovery order of the strategy that produced them. A start absent from
// the network yields an empty slice.
//
// Every strategy runs; any pairwise disagreement is logged, counted and
// passed to the mismatch hook, and the canonical result is still returned.
// If the canonical strategy failed, the first successful one is used;
// ErrNoStrategyResult is returned only if all of them failed.
//
// A done ctx is not a disagreement: ctx.Err() is returned and nothing is
// reported.
func (r *Reachability) ReachableIDs(ctx context.Context, start int) ([]int, error) {
	if !r.g.HasVertex(start) {
		return []int{}, nil
	}
	r.metrics.reachQueries.Inc()

	kinds := Strategies()
	runs := make([]strategyRun, 0, len(kinds))
	for _, k := range kinds {
		fn := r.traversals[k]
		ids, err := fn(ctx, r.g, start)
		runs = append(runs, strategyRun{kind: k, ids: ids, err: err})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.crossValidate(start, runs)

	for _, run := range runs {
		if run.err == nil {
			return run.ids, nil
		}
	}

	return nil, fmt.Errorf("%w: start %d", ErrNoStrategyResult, start)
}

// Reachable resolves ReachableIDs(start.ID) to lodge records.
func (r *Reachability) Reachable(ctx context.Context, start catalog.Lodge) ([]catalog.Lodge, error) {
	ids, err := r.ReachableIDs(ctx, start.ID)
	if err != nil {
		return nil, err
	}

	return r.dir.ResolveAll(ids)
}

// crossValidate compares every pair of runs as sets.
func (r *Reachability) crossValidate(start int, runs []strategyRun) {
	for i := 0; i < len(runs); i++ {
		for j := i + 1; j < len(runs); j++ {
			a, b := runs[i], runs[j]
			switch {
			case a.err != nil && b.err != nil:
				// both failed; nothing to compare
				continue
			case a.err != nil:
				r.report(Mismatch{Start: start, A: b.kind, B: a.kind, Err: a.err})
				continue
			case b.err != nil:
				r.report(Mismatch{Start: start, A: a.kind, B: b.kind, Err: b.err})
				continue
			}
			onlyA, onlyB := setDiff(a.ids, b.ids)
			if len(onlyA) == 0 && len(onlyB) == 0 {
				continue
			}
			r.report(Mismatch{Start: start, A: a.kind, B: b.kind, OnlyInA: onlyA, OnlyInB: onlyB})
		}
	}
}

// report makes a mismatch observable.
func (r *Reachability) report(m Mismatch) {
	r.metrics.mismatches.WithLabelValues(m.A.String() + "/" + m.B.String()).Inc()
	r.log.Warn("reachability_mismatch",
		"start", m.Start,
		"a", m.A.String(),
		"b", m.B.String(),
		"only_in_a", m.OnlyInA,
		"only_in_b", m.OnlyInB,
		"err", m.Err,
	)
	if r.onMismatch != nil {
		r.onMismatch(m)
	}
}

// setDiff returns the sorted elements only in a and only in b.
func setDiff(a, b []int) (onlyA, onlyB []int) {
	inA := make(map[int]struct{}, len(a))
	for _, id := range a {
		inA[id] = struct{}{}
	}
	inB := make(map[int]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
		if _, ok := inA[id]; !ok {
			onlyB = append(onlyB, id)
		}
	}
	for id := range inA {
		if _, ok := inB[id]; !ok {
			onlyA = append(onlyA, id)
		}
	}
	sort.Ints(onlyA)
	sort.Ints(onlyB)

	return onlyA, onlyB
}
