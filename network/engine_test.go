package network_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lodgenet/catalog"
	"github.com/katalvlaran/lodgenet/network"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func lodges(ids ...int) []catalog.Lodge {
	out := make([]catalog.Lodge, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Lodge{ID: id, Name: fmt.Sprintf("Lodge %d", id)})
	}

	return out
}

func lodgeIDs(ls []catalog.Lodge) []int {
	out := make([]int, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}

	return out
}

// EngineSuite runs the catalog scenario: lodges 1..4 with trails
// 1-2 (2000), 2-3 (2005) and 3-4 (2010).
type EngineSuite struct {
	suite.Suite
	ctx context.Context
	eng *network.Engine
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
	cat := catalog.NewMemory(lodges(1, 2, 3, 4), []catalog.Link{
		{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000},
		{ID: 2, Lodge1: 2, Lodge2: 3, Year: 2005},
		{ID: 3, Lodge1: 3, Lodge2: 4, Year: 2010},
	})
	s.eng = network.New(s.ctx, cat, network.WithLogger(quietLog))
	require.Equal(s.T(), 4, s.eng.Directory().Len())
}

// TestBuild2005 checks nodes, edges, components, reachability and degree.
func (s *EngineSuite) TestBuild2005() {
	require.NoError(s.T(), s.eng.Build(s.ctx, 2005))

	nodes, err := s.eng.ListNodes()
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []int{1, 2, 3}, lodgeIDs(nodes))

	v := s.eng.View()
	require.True(s.T(), v.HasEdge(1, 2))
	require.True(s.T(), v.HasEdge(2, 3))
	require.False(s.T(), v.HasVertex(4))
	require.Equal(s.T(), 2, v.EdgeCount())

	n, err := s.eng.ComponentCount(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, n)

	l1, _ := s.eng.Directory().Lookup(1)
	reach, err := s.eng.Reachable(s.ctx, l1)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []int{2, 3}, lodgeIDs(reach))

	l2, _ := s.eng.Directory().Lookup(2)
	require.Equal(s.T(), 2, s.eng.Degree(l2))

	l4, _ := s.eng.Directory().Lookup(4)
	require.Equal(s.T(), 0, s.eng.Degree(l4))

	snap := s.eng.Snapshot()
	require.True(s.T(), snap.Built)
	require.Equal(s.T(), 2005, snap.Year)
	require.Equal(s.T(), 2, snap.Connections)
	require.Equal(s.T(), 3, snap.Nodes)
	require.Equal(s.T(), 2, snap.Edges)
	require.NotEmpty(s.T(), snap.BuildID)
}

// TestBuild1999 checks that a cutoff before every trail yields an empty network.
func (s *EngineSuite) TestBuild1999() {
	require.NoError(s.T(), s.eng.Build(s.ctx, 2010))
	require.NoError(s.T(), s.eng.Build(s.ctx, 1999))

	nodes, err := s.eng.ListNodes()
	require.NoError(s.T(), err)
	require.Empty(s.T(), nodes)

	n, err := s.eng.ComponentCount(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, n)

	for _, l := range s.eng.Directory().All() {
		reach, err := s.eng.Reachable(s.ctx, l)
		require.NoError(s.T(), err)
		require.Empty(s.T(), reach)
	}
	require.Equal(s.T(), 0, s.eng.Snapshot().Nodes)
}

// TestRebuildDiscardsPreviousGraph checks that a smaller cutoff drops edges.
func (s *EngineSuite) TestRebuildDiscardsPreviousGraph() {
	require.NoError(s.T(), s.eng.Build(s.ctx, 2010))
	require.Equal(s.T(), 4, s.eng.View().VertexCount())

	first := s.eng.Snapshot().BuildID
	require.NoError(s.T(), s.eng.Build(s.ctx, 2000))
	require.Equal(s.T(), []int{1, 2}, s.eng.View().Vertices())
	require.NotEqual(s.T(), first, s.eng.Snapshot().BuildID)
}

// TestReachableUnknownLodge checks that a lodge outside the directory is not an error.
func (s *EngineSuite) TestReachableUnknownLodge() {
	require.NoError(s.T(), s.eng.Build(s.ctx, 2010))

	reach, err := s.eng.Reachable(s.ctx, catalog.Lodge{ID: 99})
	require.NoError(s.T(), err)
	require.Empty(s.T(), reach)
	require.Equal(s.T(), 0, s.eng.Degree(catalog.Lodge{ID: 99}))
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestEngine_DisjointPairs(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewMemory(lodges(1, 2, 3, 4), []catalog.Link{
		{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000},
		{ID: 2, Lodge1: 3, Lodge2: 4, Year: 2000},
	})
	eng := network.New(ctx, cat, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 2000))

	n, err := eng.ComponentCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	r1, err := eng.ReachableIDs(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, r1)

	r3, err := eng.ReachableIDs(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []int{4}, r3)

	comps, err := eng.Components(ctx)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, comps)
}

func TestEngine_ParallelConnectionsCollapse(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewMemory(lodges(1, 2, 3), []catalog.Link{
		{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000},
		{ID: 2, Lodge1: 2, Lodge2: 1, Year: 2001},
		{ID: 3, Lodge1: 1, Lodge2: 2, Year: 2002},
		{ID: 4, Lodge1: 2, Lodge2: 3, Year: 2002},
	})
	eng := network.New(ctx, cat, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 2002))

	require.Equal(t, 2, eng.View().EdgeCount())
	l1, _ := eng.Directory().Lookup(1)
	require.Equal(t, 1, eng.Degree(l1))

	snap := eng.Snapshot()
	require.Equal(t, 4, snap.Connections)
	require.Equal(t, 2, snap.Collapsed)
}

func TestEngine_SelfLoopKeepsLodge(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewMemory(lodges(5, 6), []catalog.Link{
		{ID: 1, Lodge1: 5, Lodge2: 5, Year: 2000},
	})
	eng := network.New(ctx, cat, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 2000))

	require.Equal(t, []int{5}, eng.View().Vertices())
	l5, _ := eng.Directory().Lookup(5)
	require.Equal(t, 1, eng.Degree(l5))

	reach, err := eng.ReachableIDs(ctx, 5)
	require.NoError(t, err)
	require.Empty(t, reach)

	n, err := eng.ComponentCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestEngine_ReachableInDiscoveryOrder(t *testing.T) {
	ctx := context.Background()
	// 1-2-3-4 with a spur 1-5: 5 is one hop away, 3 and 4 are further.
	cat := catalog.NewMemory(lodges(1, 2, 3, 4, 5), []catalog.Link{
		{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000},
		{ID: 2, Lodge1: 2, Lodge2: 3, Year: 2000},
		{ID: 3, Lodge1: 3, Lodge2: 4, Year: 2000},
		{ID: 4, Lodge1: 1, Lodge2: 5, Year: 2000},
	})
	eng := network.New(ctx, cat, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 2000))

	ids, err := eng.ReachableIDs(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 3, 4}, ids)

	l1, _ := eng.Directory().Lookup(1)
	reach, err := eng.Reachable(ctx, l1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 3, 4}, lodgeIDs(reach))
}

func TestEngine_CancelledQueries(t *testing.T) {
	cat := catalog.NewMemory(lodges(1, 2), []catalog.Link{{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000}})
	eng := network.New(context.Background(), cat, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(context.Background(), 2000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.ComponentCount(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = eng.Components(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = eng.ReachableIDs(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

// flakyCatalog fails FetchConnectionsUpTo when err is set.
type flakyCatalog struct {
	*catalog.Memory
	err error
}

func (f *flakyCatalog) FetchConnectionsUpTo(ctx context.Context, idx catalog.Index, year int) ([]catalog.Connection, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.Memory.FetchConnectionsUpTo(ctx, idx, year)
}

func TestEngine_BuildFailureLeavesGraphEmpty(t *testing.T) {
	ctx := context.Background()
	cat := &flakyCatalog{Memory: catalog.NewMemory(lodges(1, 2), []catalog.Link{
		{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000},
	})}
	eng := network.New(ctx, cat, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 2000))
	require.Equal(t, 2, eng.View().VertexCount())

	boom := errors.New("connection reset")
	cat.err = boom
	err := eng.Build(ctx, 2000)
	require.ErrorIs(t, err, network.ErrBuild)
	require.ErrorIs(t, err, boom)

	require.Equal(t, 0, eng.View().VertexCount())
	require.Equal(t, 0, eng.View().EdgeCount())
	require.False(t, eng.Snapshot().Built)

	nodes, err := eng.ListNodes()
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestEngine_CancelledBuild(t *testing.T) {
	cat := catalog.NewMemory(lodges(1, 2), []catalog.Link{{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000}})
	eng := network.New(context.Background(), cat, network.WithLogger(quietLog))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := eng.Build(ctx, 2000)
	require.ErrorIs(t, err, network.ErrBuild)
	require.ErrorIs(t, err, context.Canceled)
}

// brokenLodges fails FetchAllLodges.
type brokenLodges struct {
	*catalog.Memory
}

func (brokenLodges) FetchAllLodges(context.Context) ([]catalog.Lodge, error) {
	return nil, errors.New("catalog offline")
}

func TestEngine_DirectoryLoadFailsSilently(t *testing.T) {
	ctx := context.Background()
	cat := brokenLodges{Memory: catalog.NewMemory(lodges(1, 2), []catalog.Link{
		{ID: 1, Lodge1: 1, Lodge2: 2, Year: 2000},
	})}
	eng := network.New(ctx, cat, network.WithLogger(quietLog))
	require.Equal(t, 0, eng.Directory().Len())
	require.Empty(t, eng.Directory().All())

	// Endpoints cannot be resolved against an empty directory.
	err := eng.Build(ctx, 2000)
	require.ErrorIs(t, err, network.ErrBuild)
	require.ErrorIs(t, err, catalog.ErrUnknownLodge)
}

func TestEngine_EmptyCatalog(t *testing.T) {
	ctx := context.Background()
	eng := network.New(ctx, catalog.NewMemory(nil, nil), network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 3000))

	nodes, err := eng.ListNodes()
	require.NoError(t, err)
	require.Empty(t, nodes)

	n, err := eng.ComponentCount(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

// ghostCatalog resolves a connection to a lodge the directory never saw.
type ghostCatalog struct{}

func (ghostCatalog) FetchAllLodges(context.Context) ([]catalog.Lodge, error) {
	return lodges(1), nil
}

func (ghostCatalog) FetchConnectionsUpTo(_ context.Context, idx catalog.Index, _ int) ([]catalog.Connection, error) {
	return []catalog.Connection{{ID: 1, Lodge1: idx[1], Lodge2: catalog.Lodge{ID: 42}, Year: 2000}}, nil
}

func TestEngine_NodeMissingFromDirectory(t *testing.T) {
	ctx := context.Background()
	eng := network.New(ctx, ghostCatalog{}, network.WithLogger(quietLog))
	require.NoError(t, eng.Build(ctx, 2000))

	_, err := eng.ListNodes()
	require.ErrorIs(t, err, network.ErrLodgeNotInDirectory)

	l1, _ := eng.Directory().Lookup(1)
	_, err = eng.Reachable(ctx, l1)
	require.ErrorIs(t, err, network.ErrLodgeNotInDirectory)
}
