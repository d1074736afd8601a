// Package spatialmath defines the geometric primitives used to detect intersecting triangles:
// vector helpers over r3, planes, segments, axis-aligned boxes and the triangle predicate.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// floatEpsilon is the absolute tolerance below which two floats are treated as equal.
const floatEpsilon = 1e-6

// Epsilon returns the tolerance used by every comparison in this package.
func Epsilon() float64 {
	return floatEpsilon
}

func almostZero(f float64) bool {
	return scalar.EqualWithinAbs(f, 0, floatEpsilon)
}

// VectorsAlmostEqual compares two vectors component-wise within the package tolerance.
func VectorsAlmostEqual(a, b r3.Vector) bool {
	return scalar.EqualWithinAbs(a.X, b.X, floatEpsilon) &&
		scalar.EqualWithinAbs(a.Y, b.Y, floatEpsilon) &&
		scalar.EqualWithinAbs(a.Z, b.Z, floatEpsilon)
}

// IsNonZero reports whether v differs from the zero vector by more than the tolerance.
func IsNonZero(v r3.Vector) bool {
	return !VectorsAlmostEqual(v, r3.Vector{})
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v r3.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// TripleProduct returns the determinant of the matrix whose rows are a, b and c.
func TripleProduct(a, b, c r3.Vector) float64 {
	return a.Dot(b.Cross(c))
}

// BelongsToSegment reports whether p lies on the segment [lo, hi]. It uses the equality case of
// the triangle inequality, |p-lo| + |p-hi| == |hi-lo|, so it checks collinearity and betweenness
// at once.
func BelongsToSegment(p, lo, hi r3.Vector) bool {
	return almostZero(p.Sub(lo).Norm() + p.Sub(hi).Norm() - hi.Sub(lo).Norm())
}
