package poche

import "math"

// Axis names one of the three world axes.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "none"
}

// Unit returns the axis's unit vector, or the zero vector for AxisNone.
func (a Axis) Unit() Vec3 {
	switch a {
	case AxisX:
		return V3(1, 0, 0)
	case AxisY:
		return V3(0, 1, 0)
	case AxisZ:
		return V3(0, 0, 1)
	}
	return Vec3{}
}

var axes = [3]Axis{AxisX, AxisY, AxisZ}

// SnapToGrid rounds every coordinate to the nearest multiple of size. A
// size of 0 or less returns the point unchanged. The operation is
// idempotent.
func SnapToGrid(pt Point3, size float64) Point3 {
	if size <= 0 {
		return pt
	}
	return Point3{
		X: math.Round(pt.X/size) * size,
		Y: math.Round(pt.Y/size) * size,
		Z: math.Round(pt.Z/size) * size,
	}
}

// InferAxis decides whether the direction from start to candidate lies
// within [AxisLockAngle] of a world axis (in either orientation). If so it
// returns the candidate projected onto that axis line through start (the
// point keeps start's other two coordinates) and the locked axis.
// Otherwise it returns the candidate unchanged and reports no lock.
// Degenerate (near zero-length) directions never lock.
func InferAxis(start, candidate Point3) (Point3, Axis, bool) {
	d := candidate.Sub(start)
	if d.Hypot() < 1e-9 {
		return candidate, AxisNone, false
	}
	for _, a := range axes {
		u := a.Unit()
		ang := d.AngleTo(u)
		if ang > math.Pi/2 {
			ang = math.Pi - ang
		}
		if ang <= AxisLockAngle {
			return start.Translate(u.Mul(d.Dot(u))), a, true
		}
	}
	return candidate, AxisNone, false
}

// InferAxisRay is the screen-space variant of [InferAxis] for pointer
// rays. For each world axis it finds the point on the axis line through
// start nearest to the ray; the axis locks when the ray passes within a
// corridor whose width grows with the distance from start, matching how
// much easier axis-locking should feel far from the anchor. The nearest
// qualifying axis wins.
func InferAxisRay(start, rayOrigin Point3, rayDir Vec3) (Point3, Axis, bool) {
	if rayDir.Hypot() < 1e-9 {
		return start, AxisNone, false
	}
	rd := rayDir.Normalize()

	bestRatio := math.Inf(1)
	var bestPt Point3
	bestAxis := AxisNone

	for _, a := range axes {
		u := a.Unit()
		w := rayOrigin.Sub(start)

		b := rd.Dot(u)
		denom := 1 - b*b
		var s float64
		if denom < 1e-9 {
			// Ray parallel to the axis: lock at the projection of the ray
			// origin.
			s = w.Dot(u)
		} else {
			d0 := rd.Dot(w)
			e := u.Dot(w)
			s = (e - b*d0) / denom
		}
		onAxis := start.Translate(u.Mul(s))

		// Separation between the axis point and the ray.
		t := onAxis.Sub(rayOrigin).Dot(rd)
		if t < 0 {
			t = 0
		}
		onRay := rayOrigin.Translate(rd.Mul(t))
		sep := onAxis.Distance(onRay)

		dist := onAxis.Distance(start)
		corridor := math.Tan(AxisLockAngle) * math.Max(dist, 1)
		if sep > corridor {
			continue
		}
		ratio := sep / corridor
		if ratio < bestRatio {
			bestRatio, bestPt, bestAxis = ratio, onAxis, a
		}
	}
	if bestAxis == AxisNone {
		return start, AxisNone, false
	}
	return bestPt, bestAxis, true
}

// SnapKind classifies why a snap query chose its point.
type SnapKind string

const (
	SnapNone   SnapKind = "none"
	SnapVertex SnapKind = "vertex"
	SnapAxis   SnapKind = "axis"
	SnapGrid   SnapKind = "grid"
)

// SnapQuery is one pointer-move or click resolved against the mesh.
type SnapQuery struct {
	// Point is the pointer position projected onto the ground plane.
	Point Point3
	// Drawing reports whether a draw is in progress; axis inference only
	// applies while drawing.
	Drawing bool
	// Start is the draw-start anchor, meaningful when Drawing is set.
	Start Point3
	// GridEnabled turns on grid snapping for the axis and grid fallbacks.
	GridEnabled bool
}

// SnapResult is the resolved point together with its source category.
// Vertex is set when Kind is SnapVertex; Axis when Kind is SnapAxis.
type SnapResult struct {
	Point  Point3
	Kind   SnapKind
	Vertex VertexID
	Axis   Axis
}

// ResolveSnap resolves where a drawn point should land. Exactly one snap
// source applies, in priority order: an existing vertex within the vertex
// snap radius always wins; while drawing, an axis lock from the draw start
// comes next; otherwise the point falls back to the grid (when enabled) or
// passes through unchanged.
func (m *Mesh) ResolveSnap(q SnapQuery) SnapResult {
	if vid, ok := m.FindNearbyVertex(q.Point, m.opts.vertexSnapRadius); ok {
		return SnapResult{Point: m.position(vid), Kind: SnapVertex, Vertex: vid}
	}
	if q.Drawing {
		if pt, axis, ok := InferAxis(q.Start, q.Point); ok {
			if q.GridEnabled {
				pt = snapAlongAxis(pt, axis, m.opts.gridSize)
			}
			return SnapResult{Point: pt, Kind: SnapAxis, Axis: axis}
		}
	}
	if q.GridEnabled {
		return SnapResult{Point: SnapToGrid(q.Point, m.opts.gridSize), Kind: SnapGrid}
	}
	return SnapResult{Point: q.Point, Kind: SnapNone}
}

// snapAlongAxis grid-snaps only the coordinate along the locked axis,
// leaving the other two untouched.
func snapAlongAxis(pt Point3, a Axis, size float64) Point3 {
	if size <= 0 {
		return pt
	}
	switch a {
	case AxisX:
		pt.X = math.Round(pt.X/size) * size
	case AxisY:
		pt.Y = math.Round(pt.Y/size) * size
	case AxisZ:
		pt.Z = math.Round(pt.Z/size) * size
	}
	return pt
}
