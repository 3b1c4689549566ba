package poche

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// quad builds the canonical closed test quad on the ground plane and
// returns the mesh and its corner ids in loop order.
func quad(t *testing.T) (*Mesh, [4]VertexID) {
	t.Helper()
	m := NewMesh()
	vids := [4]VertexID{
		m.AddVertex(Pt3(0, 0, 0)),
		m.AddVertex(Pt3(10, 0, 0)),
		m.AddVertex(Pt3(10, 0, 10)),
		m.AddVertex(Pt3(0, 0, 10)),
	}
	for i := range vids {
		m.AddEdge(vids[i], vids[(i+1)%4])
	}
	return m, vids
}

// checkInvariants verifies the bidirectional reference invariants: every
// vertex's edge list matches exactly the edges that name it as an endpoint,
// every edge's face list matches exactly the faces whose boundary contains
// it, and no vertex pair is connected twice.
func checkInvariants(t *testing.T, m *Mesh) {
	t.Helper()

	incident := make(map[VertexID]map[EdgeID]struct{})
	type pair struct{ a, b VertexID }
	pairs := make(map[pair]EdgeID)
	for e := range m.Edges() {
		if e.V1 == e.V2 {
			t.Errorf("edge %s is a self-loop", e.ID)
		}
		for _, vid := range []VertexID{e.V1, e.V2} {
			if _, ok := m.Vertex(vid); !ok {
				t.Errorf("edge %s references unknown vertex %s", e.ID, vid)
			}
			if incident[vid] == nil {
				incident[vid] = make(map[EdgeID]struct{})
			}
			incident[vid][e.ID] = struct{}{}
		}
		p := pair{e.V1, e.V2}
		if e.V2 < e.V1 {
			p = pair{e.V2, e.V1}
		}
		if other, ok := pairs[p]; ok {
			t.Errorf("edges %s and %s connect the same vertex pair", other, e.ID)
		}
		pairs[p] = e.ID
	}
	for v := range m.Vertices() {
		got := make(map[EdgeID]struct{})
		for _, eid := range v.Edges {
			got[eid] = struct{}{}
		}
		want := incident[v.ID]
		if want == nil {
			want = make(map[EdgeID]struct{})
		}
		diff(t, want, got)
	}

	facesByEdge := make(map[EdgeID]map[FaceID]struct{})
	for f := range m.Faces() {
		seen := make(map[EdgeID]struct{})
		for _, eid := range f.Edges {
			if _, dup := seen[eid]; dup {
				t.Errorf("face %s lists edge %s twice", f.ID, eid)
			}
			seen[eid] = struct{}{}
			if facesByEdge[eid] == nil {
				facesByEdge[eid] = make(map[FaceID]struct{})
			}
			facesByEdge[eid][f.ID] = struct{}{}
		}
	}
	for e := range m.Edges() {
		got := make(map[FaceID]struct{})
		for _, fid := range e.Faces {
			got[fid] = struct{}{}
		}
		want := facesByEdge[e.ID]
		if want == nil {
			want = make(map[FaceID]struct{})
		}
		diff(t, want, got)
	}
}

// soleFace returns the only face of the mesh, failing if there isn't
// exactly one.
func soleFace(t *testing.T, m *Mesh) Face {
	t.Helper()
	if n := m.NumFaces(); n != 1 {
		t.Fatalf("got %d faces, want 1", n)
	}
	for f := range m.Faces() {
		return f
	}
	panic("unreachable")
}
