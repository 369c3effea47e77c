package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lodgenet/core"
)

// TestGraph_AddVertexIdempotent verifies AddVertex is a no-op for existing IDs.
func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)
	g.AddVertex(1)
	if got := g.VertexCount(); got != 1 {
		t.Fatalf("VertexCount = %d; want 1", got)
	}
	if !g.HasVertex(1) {
		t.Error("HasVertex(1) = false; want true")
	}
	if g.HasVertex(2) {
		t.Error("HasVertex(2) = true; want false")
	}
}

// TestGraph_AddEdgeConstraints covers loops and parallel edges.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge(1, 1); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("loop: want ErrLoopNotAllowed, got %v", err)
	}
	if g.HasVertex(1) {
		t.Error("rejected loop must not create its endpoint")
	}

	eid, err := g.AddEdge(1, 2)
	if err != nil {
		t.Fatalf("AddEdge(1,2): %v", err)
	}
	if eid != "e1" {
		t.Errorf("first edge ID = %q; want e1", eid)
	}
	if _, err = g.AddEdge(2, 1); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("mirror duplicate: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	if _, err = g.AddEdge(1, 2); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("duplicate: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}

	gl := core.NewGraph(core.WithLoops())
	if _, err = gl.AddEdge(3, 3); err != nil {
		t.Fatalf("loop with WithLoops: %v", err)
	}
	d, err := gl.Degree(3)
	if err != nil || d != 1 {
		t.Errorf("Degree(3) = %d, %v; want 1, nil", d, err)
	}
}

// TestGraph_Queries checks neighbors, degree, symmetry, and sorted outputs.
func TestGraph_Queries(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{3, 1}, {1, 2}, {4, 1}} {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	if got, want := g.Vertices(), []int{1, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
	nbrs, err := g.NeighborIDs(1)
	if err != nil {
		t.Fatalf("NeighborIDs(1): %v", err)
	}
	if want := []int{2, 3, 4}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("NeighborIDs(1) = %v; want %v", nbrs, want)
	}
	if d, _ := g.Degree(1); d != 3 {
		t.Errorf("Degree(1) = %d; want 3", d)
	}
	if !g.HasEdge(1, 3) || !g.HasEdge(3, 1) {
		t.Error("HasEdge must be symmetric for {1,3}")
	}
	if g.HasEdge(2, 3) || g.HasEdge(9, 1) {
		t.Error("HasEdge reported a missing edge")
	}
	if _, err = g.NeighborIDs(9); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("NeighborIDs(9): want ErrVertexNotFound, got %v", err)
	}
	if _, err = g.Degree(9); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Degree(9): want ErrVertexNotFound, got %v", err)
	}

	nbrs, err = g.NeighborIDs(4)
	if want := []int{1}; err != nil || !reflect.DeepEqual(nbrs, want) {
		t.Errorf("NeighborIDs(4) = %v, %v; want %v", nbrs, err, want)
	}
}

// TestGraph_EdgesAreSorted ensures Edges() follows creation order past e9.
func TestGraph_EdgesAreSorted(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		if _, err := g.AddEdge(i, i+1); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	edges := g.Edges()
	if len(edges) != 12 {
		t.Fatalf("len(Edges) = %d; want 12", len(edges))
	}
	for i, e := range edges {
		if e.From != i || e.To != i+1 {
			t.Errorf("edge %d = %+v; want From=%d To=%d", i, e, i, i+1)
		}
	}
}

// TestGraph_ClearResetsStateKeepsFlags verifies Clear semantics.
func TestGraph_ClearResetsStateKeepsFlags(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 2)
	g.Clear()

	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Fatalf("after Clear: V=%d E=%d; want 0,0", g.VertexCount(), g.EdgeCount())
	}
	if _, err := g.AddEdge(7, 7); err != nil {
		t.Errorf("Clear must preserve WithLoops: %v", err)
	}
	g.Clear()
	eid, err := g.AddEdge(5, 6)
	if err != nil || eid != "e1" {
		t.Errorf("AddEdge after Clear = %q, %v; want e1, nil", eid, err)
	}
}
