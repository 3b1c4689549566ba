package poche

import "math"

// Numeric tolerances used throughout the kernel. They match the conventions
// of interactive sketch tools: generous enough to absorb freehand input
// noise, and every guarded path degrades to "no result" instead of NaN.
const (
	// CoplanarTolerance is the maximum normalized plane distance for a set
	// of points to count as flat, and the flatness bound for segment
	// crossings.
	CoplanarTolerance = 0.01
	// IntersectTolerance is the maximum gap between the two per-segment
	// solutions of a crossing before it is discarded as numerically
	// unstable.
	IntersectTolerance = 0.01
	// EndpointMargin excludes crossings within 2% of either segment's
	// endpoints; those are touches, not crossings.
	EndpointMargin = 0.02
	// AxisLockAngle is the angular threshold for axis inference.
	AxisLockAngle = math.Pi / 12
)

// Coplanar reports whether all points lie on a single plane, within tol.
//
// The plane is built from the first three points; every further point's
// signed distance to it is compared against tol scaled by the normal's
// magnitude. Fewer than four points, and degenerate inputs whose first
// three points are collinear, are trivially coplanar.
func Coplanar(pts []Point3, tol float64) bool {
	if len(pts) < 4 {
		return true
	}
	v1 := pts[1].Sub(pts[0])
	v2 := pts[2].Sub(pts[0])
	n := v1.Cross(v2)
	nl := n.Hypot()
	if nl < 1e-9 {
		return true
	}
	for _, pt := range pts[3:] {
		if abs(n.Dot(pt.Sub(pts[0]))) > tol*nl {
			return false
		}
	}
	return true
}

// NewellNormal computes the unit normal of the polygon with the given
// boundary points using Newell's method: the pairwise cross-product
// contributions of consecutive points are accumulated over the whole loop.
// Unlike a three-point cross product it stays usable for near-planar,
// reflex, or noisy loops, which is what freehand sketch input produces.
//
// Degenerate (near zero-area) loops yield the +Y unit vector.
func NewellNormal(pts []Point3) Vec3 {
	var n Vec3
	for i, cur := range pts {
		next := pts[(i+1)%len(pts)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	if n.Hypot() < 1e-9 {
		return V3(0, 1, 0)
	}
	return n.Normalize()
}
