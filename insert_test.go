package poche

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCrossingEdgesSplit(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(Pt3(-5, 0, 0))
	b := m.AddVertex(Pt3(5, 0, 0))
	c := m.AddVertex(Pt3(0, 0, -5))
	d := m.AddVertex(Pt3(0, 0, 5))

	first := m.AddEdge(a, b)
	if len(first) != 1 {
		t.Fatalf("first insertion created %d edges, want 1", len(first))
	}
	second := m.AddEdge(c, d)
	if len(second) != 2 {
		t.Fatalf("second insertion created %d edges, want 2", len(second))
	}

	if m.NumVertices() != 5 {
		t.Fatalf("got %d vertices, want 5", m.NumVertices())
	}
	mid, ok := m.FindNearbyVertex(Pt3(0, 0, 0), 1e-6)
	if !ok {
		t.Fatal("no vertex at the crossing point")
	}
	v, _ := m.Vertex(mid)
	diff(t, Pt3(0, 0, 0), v.Position, cmpopts.EquateApprox(0, 1e-9))
	if len(v.Edges) != 4 {
		t.Errorf("crossing vertex has %d edges, want 4", len(v.Edges))
	}

	if m.NumEdges() != 4 {
		t.Fatalf("got %d edges, want 4", m.NumEdges())
	}
	for e := range m.Edges() {
		v1, _ := m.Vertex(e.V1)
		v2, _ := m.Vertex(e.V2)
		if l := v1.Position.Distance(v2.Position); abs(l-5) > 1e-9 {
			t.Errorf("edge %s has length %g, want 5 (no full-span edge may survive)", e.ID, l)
		}
	}
	checkInvariants(t, m)
}

func TestChordInvalidatesFace(t *testing.T) {
	m, vids := quad(t)
	orig := soleFace(t, m)

	m.AddEdge(vids[0], vids[2])

	if _, ok := m.Face(orig.ID); ok {
		t.Error("chorded face must be deleted")
	}
	if m.NumFaces() != 2 {
		t.Fatalf("got %d faces, want 2 triangles", m.NumFaces())
	}
	covered := make(map[EdgeID]struct{})
	for f := range m.Faces() {
		if len(f.Edges) != 3 {
			t.Errorf("face %s has %d edges, want 3", f.ID, len(f.Edges))
		}
		for _, eid := range f.Edges {
			covered[eid] = struct{}{}
		}
	}
	if m.NumEdges() != 5 || len(covered) != 5 {
		t.Errorf("5 edges must exist and all be covered; have %d edges, %d covered",
			m.NumEdges(), len(covered))
	}
	checkInvariants(t, m)
}

func TestMultipleCrossings(t *testing.T) {
	m := NewMesh()
	m.AddEdge(m.AddVertex(Pt3(2, 0, -5)), m.AddVertex(Pt3(2, 0, 5)))
	m.AddEdge(m.AddVertex(Pt3(4, 0, -5)), m.AddVertex(Pt3(4, 0, 5)))

	a := m.AddVertex(Pt3(0, 0, 0))
	b := m.AddVertex(Pt3(6, 0, 0))
	chain := m.AddEdge(a, b)

	if len(chain) != 3 {
		t.Fatalf("got %d chain segments, want 3", len(chain))
	}
	if m.NumVertices() != 8 {
		t.Errorf("got %d vertices, want 8", m.NumVertices())
	}
	if m.NumEdges() != 7 {
		t.Errorf("got %d edges, want 7", m.NumEdges())
	}

	// Chain runs in parametric order from a to b.
	want := []Point3{Pt3(0, 0, 0), Pt3(2, 0, 0), Pt3(4, 0, 0), Pt3(6, 0, 0)}
	prev := a
	for i, eid := range chain {
		e, _ := m.Edge(eid)
		if e.Other(prev) == "" {
			t.Fatalf("segment %d does not continue the chain", i)
		}
		v, _ := m.Vertex(prev)
		diff(t, want[i], v.Position, cmpopts.EquateApprox(0, 1e-9))
		prev = e.Other(prev)
	}
	checkInvariants(t, m)
}

func TestSplitTransfersConstructionFlag(t *testing.T) {
	m := NewMesh()
	g1 := m.AddVertex(Pt3(0, 0, -5))
	g2 := m.AddVertex(Pt3(0, 0, 5))
	guide := m.AddConstructionEdge(g1, g2)
	if len(guide) != 1 {
		t.Fatal("guide edge not created")
	}

	m.AddEdge(m.AddVertex(Pt3(-5, 0, 0)), m.AddVertex(Pt3(5, 0, 0)))

	if _, ok := m.Edge(guide[0]); ok {
		t.Fatal("crossed guide edge must be replaced by remnants")
	}
	var construction, solid int
	for e := range m.Edges() {
		if e.Construction {
			construction++
		} else {
			solid++
		}
	}
	if construction != 2 || solid != 2 {
		t.Errorf("got %d construction and %d solid edges, want 2 and 2", construction, solid)
	}
	checkInvariants(t, m)
}

func TestSplitLeavesFaceUnrebuilt(t *testing.T) {
	m, _ := quad(t)
	f := soleFace(t, m)

	// Cross only the bottom boundary edge; the endpoint inside the quad
	// closes no loop.
	m.AddEdge(m.AddVertex(Pt3(5, 0, -5)), m.AddVertex(Pt3(5, 0, 5)))

	got, ok := m.Face(f.ID)
	if !ok {
		t.Fatal("face must survive a boundary split")
	}
	if len(got.Edges) != 3 {
		t.Errorf("face kept %d edges, want 3 (split edge detached, not rebuilt)", len(got.Edges))
	}
	checkInvariants(t, m)
}

func TestSplitSegmentsCloseLoops(t *testing.T) {
	// Crossing a quad all the way through splits two boundary edges and the
	// middle chain segment closes both halves.
	m, _ := quad(t)
	m.AddEdge(m.AddVertex(Pt3(5, 0, -5)), m.AddVertex(Pt3(5, 0, 15)))

	// The dangling original plus the two synthesized halves.
	if m.NumFaces() != 3 {
		t.Fatalf("got %d faces, want 3", m.NumFaces())
	}
	quads := 0
	for f := range m.Faces() {
		if len(f.Edges) == 4 {
			quads++
		}
	}
	if quads != 2 {
		t.Errorf("got %d 4-edge faces, want the 2 halves", quads)
	}
	checkInvariants(t, m)
}

func TestConstructionEdgeBypassesProtocol(t *testing.T) {
	m := NewMesh()
	m.AddEdge(m.AddVertex(Pt3(-5, 0, 0)), m.AddVertex(Pt3(5, 0, 0)))

	// A guide crossing a solid edge splits nothing.
	ids := m.AddConstructionEdge(m.AddVertex(Pt3(0, 0, -5)), m.AddVertex(Pt3(0, 0, 5)))
	if len(ids) != 1 {
		t.Fatalf("got %d edges, want 1", len(ids))
	}
	if m.NumEdges() != 2 || m.NumVertices() != 4 {
		t.Errorf("guide insertion must not split; have %d edges, %d vertices",
			m.NumEdges(), m.NumVertices())
	}
	checkInvariants(t, m)
}

func TestSplitDropsReplacedEdgeFromSelection(t *testing.T) {
	m := NewMesh()
	eid := m.AddEdge(m.AddVertex(Pt3(-5, 0, 0)), m.AddVertex(Pt3(5, 0, 0)))[0]
	m.Selection().Select(KindEdge, string(eid))

	m.AddEdge(m.AddVertex(Pt3(0, 0, -5)), m.AddVertex(Pt3(0, 0, 5)))

	if m.Selection().IsSelected(KindEdge, string(eid)) {
		t.Error("replaced edge still selected")
	}
	if got := m.Selection().Selected(); len(got) != 0 {
		t.Errorf("selection not empty: %v", got)
	}
}
