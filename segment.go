package poche

// Segment is a straight line segment between two points in 3D space.
type Segment struct {
	// The segment's start point.
	P0 Point3
	// The segment's end point.
	P1 Point3
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 Point3) Segment {
	return Segment{P0: p0, P1: p1}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Eval returns the point at parameter t, with t = 0 at P0 and t = 1 at P1.
func (s Segment) Eval(t float64) Point3 {
	return s.P0.Lerp(s.P1, t)
}

// Midpoint returns the segment's midpoint.
func (s Segment) Midpoint() Point3 {
	return s.P0.Midpoint(s.P1)
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

// Nearest returns the squared distance from pt to the segment and the
// parameter of the closest point, clamped to [0, 1].
func (s Segment) Nearest(pt Point3) (distSq, t float64) {
	d := s.P1.Sub(s.P0)
	dotp := d.Dot(pt.Sub(s.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(s.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(s.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(s.Eval(t)).Hypot2()
		return dist, t
	}
}

// Contains reports whether pt lies on the segment, within tol.
func (s Segment) Contains(pt Point3, tol float64) bool {
	distSq, _ := s.Nearest(pt)
	return distSq <= tol*tol
}

// Intersect computes the crossing point of two segments, if there is one
// strictly inside both. It returns the crossing point and its parameter
// along s.
//
// A crossing counts only when the segments are coplanar within
// [CoplanarTolerance], both parameters land inside (margin, 1−margin) with
// margin = [EndpointMargin] (endpoint-to-endpoint touches are not
// crossings), and the two per-segment solutions agree within
// [IntersectTolerance]. Near-parallel pairs fail the last guard and report
// no crossing rather than an unstable point.
func (s Segment) Intersect(o Segment) (Point3, float64, bool) {
	d1 := s.P1.Sub(s.P0)
	d2 := o.P1.Sub(o.P0)
	w := o.P0.Sub(s.P0)

	l1 := d1.Hypot()
	l2 := d2.Hypot()
	if l1 == 0 || l2 == 0 {
		return Point3{}, 0, false
	}

	// Coplanarity: the triple product is the (signed) volume spanned by the
	// two directions and the offset between start points.
	if abs(w.Triple(d1, d2))/(l1*l2) > CoplanarTolerance {
		return Point3{}, 0, false
	}

	n := d1.Cross(d2)
	n2 := n.Hypot2()
	if n2 < 1e-12 {
		// Parallel or nearly so.
		return Point3{}, 0, false
	}

	t := w.Cross(d2).Dot(n) / n2
	u := w.Cross(d1).Dot(n) / n2

	if t <= EndpointMargin || t >= 1-EndpointMargin ||
		u <= EndpointMargin || u >= 1-EndpointMargin {
		return Point3{}, 0, false
	}

	p := s.Eval(t)
	q := o.Eval(u)
	if p.Distance(q) > IntersectTolerance {
		return Point3{}, 0, false
	}
	return p.Midpoint(q), t, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
