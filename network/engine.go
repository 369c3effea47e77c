package network

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/core"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegisterer registers the engine metrics on reg.
// Without it the collectors exist but are not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.reg = reg }
}

// WithOnMismatch installs a hook called for every strategy disagreement.
func WithOnMismatch(fn func(Mismatch)) Option {
	return func(e *Engine) { e.onMismatch = fn }
}

// Engine ties the directory, the builder and the query services together.
//
// Build and queries must not be interleaved: the engine is a single-writer
// structure and callers serialize access (see internal/httpapi).
type Engine struct {
	dir     *Directory
	builder *Builder
	queries *Queries
	reach   *Reachability

	log        *slog.Logger
	reg        prometheus.Registerer
	onMismatch func(Mismatch)
}

// New loads the lodge directory from cat and returns an engine with an empty
// network. A directory load failure is logged and leaves the directory
// empty; it never aborts construction.
func New(ctx context.Context, cat catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	m := newMetrics(e.reg)
	e.dir = NewDirectory()
	if err := e.dir.Load(ctx, cat); err != nil {
		e.log.Warn("directory_load_error", "err", err)
	} else {
		e.log.Info("directory_loaded", "lodges", e.dir.Len())
	}

	e.builder = newBuilder(cat, e.dir, e.log, m)
	e.queries = NewQueries(e.builder.View(), e.dir)
	e.reach = &Reachability{
		g:          e.builder.View(),
		dir:        e.dir,
		log:        e.log,
		metrics:    m,
		onMismatch: e.onMismatch,
		traversals: traversals,
	}

	return e
}

// Build rebuilds the network for year. See Builder.Build.
func (e *Engine) Build(ctx context.Context, year int) error {
	return e.builder.Build(ctx, year)
}

// Snapshot describes the last build.
func (e *Engine) Snapshot() Snapshot { return e.builder.Snapshot() }

// Directory returns the lodge directory.
func (e *Engine) Directory() *Directory { return e.dir }

// View returns the read-only current network.
func (e *Engine) View() core.Reader { return e.builder.View() }

// ListNodes returns the lodges in the current network.
func (e *Engine) ListNodes() ([]catalog.Lodge, error) { return e.queries.ListNodes() }

// Degree returns the number of distinct neighbors of l (0 if absent).
func (e *Engine) Degree(l catalog.Lodge) int { return e.queries.Degree(l) }

// ComponentCount returns the number of connected components.
func (e *Engine) ComponentCount(ctx context.Context) (int, error) {
	return e.queries.ComponentCount(ctx)
}

// Components returns the connected components as sorted id lists.
func (e *Engine) Components(ctx context.Context) ([][]int, error) {
	return e.queries.Components(ctx)
}

// Reachable returns the lodges reachable from l, l excluded.
func (e *Engine) Reachable(ctx context.Context, l catalog.Lodge) ([]catalog.Lodge, error) {
	return e.reach.Reachable(ctx, l)
}

// ReachableIDs is Reachable over lodge ids.
func (e *Engine) ReachableIDs(ctx context.Context, id int) ([]int, error) {
	return e.reach.ReachableIDs(ctx, id)
}
