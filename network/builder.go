package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/core"
)

// Snapshot describes the most recent build.
type Snapshot struct {
	BuildID     string    `json:"build_id"`
	Year        int       `json:"year"`
	Built       bool      `json:"built"`
	Connections int       `json:"connections"`
	Collapsed   int       `json:"collapsed"`
	Nodes       int       `json:"nodes"`
	Edges       int       `json:"edges"`
	BuiltAt     time.Time `json:"built_at"`
}

// Builder is the single writer of the network graph.
type Builder struct {
	cat     catalog.Catalog
	dir     *Directory
	graph   *core.Graph
	log     *slog.Logger
	metrics *metrics
	last    Snapshot
}

// newBuilder returns a Builder over an empty graph. Self-loops are admitted
// so that a trail returning to its own lodge keeps that lodge in the network.
func newBuilder(cat catalog.Catalog, dir *Directory, log *slog.Logger, m *metrics) *Builder {
	return &Builder{
		cat:     cat,
		dir:     dir,
		graph:   core.NewGraph(core.WithLoops()),
		log:     log,
		metrics: m,
	}
}

// View returns the read-only graph handed to query components.
func (b *Builder) View() core.Reader { return b.graph }

// Snapshot returns the description of the last build attempt.
func (b *Builder) Snapshot() Snapshot { return b.last }

// Build discards the current graph and rebuilds it from the connections
// established on or before year.
//
// Steps:
//  1. Clear the graph.
//  2. Fetch qualifying connections, resolved through the directory index.
//  3. No connections: leave the graph empty.
//  4. Accumulate endpoint pairs and the set of involved lodge ids.
//  5. Add the edges (parallel connections collapse into one edge), then
//     ensure every involved id is a node.
//
// On any error the graph is cleared again and ErrBuild is returned wrapped.
func (b *Builder) Build(ctx context.Context, year int) error {
	b.graph.Clear()
	b.last = Snapshot{BuildID: uuid.NewString(), Year: year}
	b.metrics.builds.Inc()

	conns, err := b.cat.FetchConnectionsUpTo(ctx, b.dir.Index(), year)
	if err != nil {
		return b.fail(year, err)
	}
	if len(conns) == 0 {
		b.finish(0, 0)
		return nil
	}

	edges := make([][2]int, 0, len(conns))
	involved := make(map[int]struct{}, 2*len(conns))
	for _, c := range conns {
		u, v := c.Lodge1.ID, c.Lodge2.ID
		involved[u] = struct{}{}
		involved[v] = struct{}{}
		edges = append(edges, [2]int{u, v})
	}

	collapsed := 0
	for _, e := range edges {
		if _, err = b.graph.AddEdge(e[0], e[1]); err != nil {
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				collapsed++
				continue
			}
			return b.fail(year, fmt.Errorf("add edge %d-%d: %w", e[0], e[1], err))
		}
	}
	for id := range involved {
		b.graph.AddVertex(id)
	}

	b.finish(len(conns), collapsed)

	return nil
}

// finish records a successful build.
func (b *Builder) finish(conns, collapsed int) {
	b.last.Built = true
	b.last.Connections = conns
	b.last.Collapsed = collapsed
	b.last.Nodes = b.graph.VertexCount()
	b.last.Edges = b.graph.EdgeCount()
	b.last.BuiltAt = time.Now()

	b.metrics.nodes.Set(float64(b.last.Nodes))
	b.metrics.edges.Set(float64(b.last.Edges))
	b.metrics.collapsed.Add(float64(collapsed))
	b.log.Info("network_build_ok",
		"build_id", b.last.BuildID,
		"year", b.last.Year,
		"connections", conns,
		"collapsed", collapsed,
		"nodes", b.last.Nodes,
		"edges", b.last.Edges,
	)
}

// fail clears the graph and records a failed build.
func (b *Builder) fail(year int, cause error) error {
	b.graph.Clear()
	b.metrics.buildFailures.Inc()
	b.metrics.nodes.Set(0)
	b.metrics.edges.Set(0)
	b.log.Error("network_build_error", "build_id", b.last.BuildID, "year", year, "err", cause)

	return fmt.Errorf("%w: year %d: %w", ErrBuild, year, cause)
}
