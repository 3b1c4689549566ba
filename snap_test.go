package poche

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSnapToGridIdempotent(t *testing.T) {
	pts := []Point3{
		Pt3(0.4, 1.6, -2.3),
		Pt3(-0.5, 0.5, 0.49),
		Pt3(123.456, -7.89, 0),
	}
	for _, g := range []float64{1, 0.5, 2.5} {
		for _, pt := range pts {
			once := SnapToGrid(pt, g)
			twice := SnapToGrid(once, g)
			diff(t, once, twice)
		}
	}
}

func TestSnapToGridDisabled(t *testing.T) {
	pt := Pt3(0.4, 1.6, -2.3)
	diff(t, pt, SnapToGrid(pt, 0))
}

func TestInferAxisDeterminism(t *testing.T) {
	// 10° off the X axis locks to X and keeps the start's Y and Z.
	start := Pt3(0, 0, 0)
	cand := Pt3(10, 0, 10*math.Tan(10*math.Pi/180))
	pt, axis, ok := InferAxis(start, cand)
	if !ok || axis != AxisX {
		t.Fatalf("got axis %v (locked=%v), want x", axis, ok)
	}
	if pt.Y != start.Y || pt.Z != start.Z {
		t.Errorf("locked point %v must keep the start's Y and Z", pt)
	}
	diff(t, 10.0, pt.X, cmpopts.EquateApprox(0, 1e-9))
}

func TestInferAxisNegativeDirection(t *testing.T) {
	pt, axis, ok := InferAxis(Pt3(3, 1, 2), Pt3(-7, 1, 2))
	if !ok || axis != AxisX {
		t.Fatalf("got axis %v (locked=%v), want x", axis, ok)
	}
	diff(t, Pt3(-7, 1, 2), pt, cmpopts.EquateApprox(0, 1e-9))
}

func TestInferAxisNoLock(t *testing.T) {
	// 45° between X and Z: no axis within 15°.
	cand := Pt3(10, 0, 10)
	pt, axis, ok := InferAxis(Pt3(0, 0, 0), cand)
	if ok || axis != AxisNone {
		t.Fatalf("got axis %v (locked=%v), want none", axis, ok)
	}
	diff(t, cand, pt)
}

func TestInferAxisDegenerate(t *testing.T) {
	start := Pt3(1, 2, 3)
	if _, _, ok := InferAxis(start, start); ok {
		t.Error("zero-length direction must not lock")
	}
}

func TestInferAxisRay(t *testing.T) {
	// A ray from above aimed just off the X axis locks onto it.
	start := Pt3(0, 0, 0)
	origin := Pt3(20, 10, 0.5)
	dir := Pt3(20, 0, 0.5).Sub(origin)
	pt, axis, ok := InferAxisRay(start, origin, dir)
	if !ok || axis != AxisX {
		t.Fatalf("got axis %v (locked=%v), want x", axis, ok)
	}
	if pt.Y != 0 || pt.Z != 0 {
		t.Errorf("locked point %v must lie on the X axis", pt)
	}
	diff(t, 20.0, pt.X, cmpopts.EquateApprox(0, 1e-6))

	// The same lateral offset right next to the start is too wide an angle.
	origin = Pt3(0.2, 10, 0.5)
	dir = Pt3(0.2, 0, 0.5).Sub(origin)
	if _, axis, ok := InferAxisRay(start, origin, dir); ok && axis == AxisX {
		t.Error("near the start the corridor must be narrow")
	}
}

func TestResolveSnapVertexWins(t *testing.T) {
	m := NewMesh()
	vid := m.AddVertex(Pt3(1, 0, 0))

	res := m.ResolveSnap(SnapQuery{
		Point:       Pt3(2, 0, 0),
		Drawing:     true,
		Start:       Pt3(0, 0, 0),
		GridEnabled: true,
	})
	if res.Kind != SnapVertex || res.Vertex != vid {
		t.Fatalf("got %+v, want vertex snap to %s", res, vid)
	}
	diff(t, Pt3(1, 0, 0), res.Point)
}

func TestResolveSnapAxis(t *testing.T) {
	m := NewMesh()
	res := m.ResolveSnap(SnapQuery{
		Point:       Pt3(10.3, 0, 0.4),
		Drawing:     true,
		Start:       Pt3(0, 0, 0),
		GridEnabled: true,
	})
	if res.Kind != SnapAxis || res.Axis != AxisX {
		t.Fatalf("got %+v, want x-axis snap", res)
	}
	// Grid-snapped along the locked axis only.
	diff(t, Pt3(10, 0, 0), res.Point, cmpopts.EquateApprox(0, 1e-9))
}

func TestResolveSnapGrid(t *testing.T) {
	m := NewMesh()
	res := m.ResolveSnap(SnapQuery{Point: Pt3(3.4, 0, 5.6), GridEnabled: true})
	if res.Kind != SnapGrid {
		t.Fatalf("got %+v, want grid snap", res)
	}
	diff(t, Pt3(3, 0, 6), res.Point)

	res = m.ResolveSnap(SnapQuery{Point: Pt3(3.4, 0, 5.6)})
	if res.Kind != SnapNone {
		t.Fatalf("got %+v, want no snap", res)
	}
	diff(t, Pt3(3.4, 0, 5.6), res.Point)
}
