package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Triangle is an immutable triangle in 3D space carrying the identifier it is reported under.
// Its vertices may coincide or be collinear; such triangles are degenerate and behave as a point
// or a segment.
type Triangle struct {
	a, b, c r3.Vector
	plane   plane
	index   int
}

// NewTriangle creates a triangle from three vertices and an identifier.
func NewTriangle(a, b, c r3.Vector, index int) *Triangle {
	return &Triangle{
		a:     a,
		b:     b,
		c:     c,
		plane: newPlane(a, b, c),
		index: index,
	}
}

// Index returns the identifier the triangle was created with.
func (t *Triangle) Index() int {
	return t.index
}

// Points returns the three vertices in construction order.
func (t *Triangle) Points() []r3.Vector {
	return []r3.Vector{t.a, t.b, t.c}
}

// Normal returns the unit normal of the triangle, or the zero vector if it is degenerate.
func (t *Triangle) Normal() r3.Vector {
	return t.plane.normal
}

// IsValid reports whether all vertices are finite.
func (t *Triangle) IsValid() bool {
	return IsFinite(t.a) && IsFinite(t.b) && IsFinite(t.c)
}

// IsPoint reports whether all three vertices coincide.
func (t *Triangle) IsPoint() bool {
	return VectorsAlmostEqual(t.a, t.b) && VectorsAlmostEqual(t.a, t.c)
}

// IsDegenerate reports whether the triangle has zero area.
func (t *Triangle) IsDegenerate() bool {
	return t.plane.degenerate()
}

// IsSegment reports whether the triangle collapses to a segment of non-zero length.
func (t *Triangle) IsSegment() bool {
	return t.IsDegenerate() && !t.IsPoint()
}

// Bounds returns the smallest box holding the triangle, closed on both sides.
func (t *Triangle) Bounds() (r3.Vector, r3.Vector) {
	lo := r3.Vector{
		X: math.Min(t.a.X, math.Min(t.b.X, t.c.X)),
		Y: math.Min(t.a.Y, math.Min(t.b.Y, t.c.Y)),
		Z: math.Min(t.a.Z, math.Min(t.b.Z, t.c.Z)),
	}
	hi := r3.Vector{
		X: math.Max(t.a.X, math.Max(t.b.X, t.c.X)),
		Y: math.Max(t.a.Y, math.Max(t.b.Y, t.c.Y)),
		Z: math.Max(t.a.Z, math.Max(t.b.Z, t.c.Z)),
	}
	return lo, hi
}

func (t *Triangle) edges() [3]segment {
	return [3]segment{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

// Intersects reports whether t and other share at least one point. Touching at a vertex or
// along an edge counts as intersecting.
func (t *Triangle) Intersects(other *Triangle) bool {
	switch {
	case t.IsDegenerate() && other.IsDegenerate():
		return degenerateIntersect(t, other)
	case t.IsDegenerate():
		// a degenerate triangle has no plane to test against
		return other.crossedByEdgesOf(t)
	case other.IsDegenerate():
		return t.crossedByEdgesOf(other)
	}
	// An edge of t may pierce other without any edge of other crossing t, so test both ways.
	return t.crossedByEdgesOf(other) || other.crossedByEdgesOf(t)
}

// crossedByEdgesOf reports whether any edge of other meets t. t must not be degenerate.
func (t *Triangle) crossedByEdgesOf(other *Triangle) bool {
	for _, e := range other.edges() {
		if t.meetsSegment(e) {
			return true
		}
	}
	return false
}

func (t *Triangle) meetsSegment(s segment) bool {
	p, crossing := s.intersectPlane(t.plane)
	switch crossing {
	case pointCrossing:
		return t.containsCoplanarPoint(p)
	case coplanarCrossing:
		if t.containsCoplanarPoint(s.a) || t.containsCoplanarPoint(s.b) {
			return true
		}
		for _, e := range t.edges() {
			if e.intersects(s) {
				return true
			}
		}
		return false
	case noCrossing:
	}
	return false
}

// containsCoplanarPoint reports whether p, which must lie in the plane of t, is inside t or on
// its boundary. Each vertex-to-vertex edge must not have p strictly on its outer side, measured
// as a signed distance from the edge line.
func (t *Triangle) containsCoplanarPoint(p r3.Vector) bool {
	if VectorsAlmostEqual(p, t.a) || VectorsAlmostEqual(p, t.b) || VectorsAlmostEqual(p, t.c) {
		return true
	}
	for _, e := range t.edges() {
		dir := e.b.Sub(e.a)
		side := dir.Cross(p.Sub(e.a)).Dot(t.plane.normal) / dir.Norm()
		if side < -floatEpsilon {
			return false
		}
	}
	return true
}

// pointInTriangleAngleSum is the angle-sum form of containsCoplanarPoint: p is inside t when the
// three angles subtended at p by the vertex pairs add up to 2π.
func pointInTriangleAngleSum(p, a, b, c r3.Vector) bool {
	ra, rb, rc := a.Sub(p), b.Sub(p), c.Sub(p)
	if almostZero(ra.Norm()) || almostZero(rb.Norm()) || almostZero(rc.Norm()) {
		return true
	}
	sum := clampedAngle(ra, rb) + clampedAngle(rb, rc) + clampedAngle(rc, ra)
	return almostZero(sum - 2*math.Pi)
}

func clampedAngle(u, v r3.Vector) float64 {
	cos := u.Dot(v) / (u.Norm() * v.Norm())
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// String returns a human readable description of the triangle.
func (t *Triangle) String() string {
	return fmt.Sprintf("triangle %d: %v %v %v", t.index, t.a, t.b, t.c)
}
