package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// planeCrossing describes how a segment meets a plane.
type planeCrossing uint8

const (
	noCrossing = planeCrossing(iota)
	pointCrossing
	coplanarCrossing
)

// segment is an edge of a triangle, or the span of a degenerate one.
type segment struct {
	a, b r3.Vector
}

// intersectPlane returns where s meets pl. For a pointCrossing the returned point is the single
// intersection. For a coplanarCrossing the whole segment lies in the plane and the returned point
// is s.a; callers must fall back to in-plane tests.
func (s segment) intersectPlane(pl plane) (r3.Vector, planeCrossing) {
	da := pl.distance(s.a)
	db := pl.distance(s.b)

	switch {
	case almostZero(da) && almostZero(db):
		return s.a, coplanarCrossing
	case almostZero(da):
		return s.a, pointCrossing
	case almostZero(db):
		return s.b, pointCrossing
	case da*db < 0:
		t := da / (da - db)
		return s.a.Add(s.b.Sub(s.a).Mul(t)), pointCrossing
	default:
		return r3.Vector{}, noCrossing
	}
}

// intersects reports whether two segments share at least one point.
func (s segment) intersects(other segment) bool {
	return segmentsIntersect(s.a, s.b, other.a, other.b)
}

// segmentsIntersect reports whether [p1, p2] and [q1, q2] share a point. The result does not
// depend on the order of the two segments.
func segmentsIntersect(p1, p2, q1, q2 r3.Vector) bool {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)

	pointLike1 := !IsNonZero(d1)
	pointLike2 := !IsNonZero(d2)
	switch {
	case pointLike1 && pointLike2:
		return VectorsAlmostEqual(p1, q1)
	case pointLike1:
		return BelongsToSegment(p1, q1, q2)
	case pointLike2:
		return BelongsToSegment(q1, p1, p2)
	}

	r := q1.Sub(p1)
	n := d1.Cross(d2)
	nn := n.Norm2()
	// |d1×d2| / (|d1||d2|) is the sine of the angle between the segments, so the parallel
	// test does not depend on their lengths.
	if math.Sqrt(nn) <= floatEpsilon*d1.Norm()*d2.Norm() {
		// parallel: they meet only if they overlap on a common line
		return BelongsToSegment(p1, q1, q2) || BelongsToSegment(p2, q1, q2) ||
			BelongsToSegment(q1, p1, p2) || BelongsToSegment(q2, p1, p2)
	}

	// distance between the two carrier lines
	if !almostZero(math.Abs(TripleProduct(d1, d2, r)) / math.Sqrt(nn)) {
		return false
	}

	s := r.Cross(d2).Dot(n) / nn
	t := r.Cross(d1).Dot(n) / nn
	x1 := p1.Add(d1.Mul(s))
	x2 := q1.Add(d2.Mul(t))
	return BelongsToSegment(x1, p1, p2) && BelongsToSegment(x2, q1, q2)
}
