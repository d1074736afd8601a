package spatialmath

import (
	"github.com/golang/geo/r3"
)

// plane is the set of points P with normal·P + offset = 0. A zero normal marks the plane of a
// degenerate triangle; such a plane has no meaningful distance function.
type plane struct {
	normal r3.Vector
	offset float64
}

// newPlane builds the plane through a, b and c. When the points are not collinear the normal is
// normalized so distance returns a Euclidean distance.
func newPlane(a, b, c r3.Vector) plane {
	n := b.Sub(a).Cross(c.Sub(a))
	if !IsNonZero(n) {
		return plane{}
	}
	n = n.Normalize()
	return plane{normal: n, offset: -a.Dot(n)}
}

func (p plane) degenerate() bool {
	return p.normal == r3.Vector{}
}

// distance returns the signed distance from pt to the plane.
func (p plane) distance(pt r3.Vector) float64 {
	return p.normal.Dot(pt) + p.offset
}
