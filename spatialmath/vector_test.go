package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestVectorHelpers(t *testing.T) {
	t.Run("almost equal", func(t *testing.T) {
		test.That(t, VectorsAlmostEqual(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 1 + 1e-7, Y: 2 - 1e-7, Z: 3}), test.ShouldBeTrue)
		test.That(t, VectorsAlmostEqual(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 1, Y: 2, Z: 3.001}), test.ShouldBeFalse)
	})

	t.Run("non zero", func(t *testing.T) {
		test.That(t, IsNonZero(r3.Vector{}), test.ShouldBeFalse)
		test.That(t, IsNonZero(r3.Vector{X: 1e-8, Y: 0, Z: -1e-8}), test.ShouldBeFalse)
		test.That(t, IsNonZero(r3.Vector{X: 0, Y: 0, Z: 1e-3}), test.ShouldBeTrue)
	})

	t.Run("finite", func(t *testing.T) {
		test.That(t, IsFinite(r3.Vector{X: 1, Y: 2, Z: 3}), test.ShouldBeTrue)
		test.That(t, IsFinite(r3.Vector{X: math.NaN(), Y: 2, Z: 3}), test.ShouldBeFalse)
		test.That(t, IsFinite(r3.Vector{X: 1, Y: math.Inf(1), Z: 3}), test.ShouldBeFalse)
	})

	t.Run("triple product", func(t *testing.T) {
		test.That(t, TripleProduct(r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 0, Y: 0, Z: 1}), test.ShouldEqual, 1.)
		test.That(t, TripleProduct(r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 0}), test.ShouldEqual, 0.)
	})

	t.Run("belongs to segment", func(t *testing.T) {
		lo, hi := r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 10, Y: 0, Z: 0}
		test.That(t, BelongsToSegment(r3.Vector{X: 5, Y: 0, Z: 0}, lo, hi), test.ShouldBeTrue)
		test.That(t, BelongsToSegment(lo, lo, hi), test.ShouldBeTrue)
		test.That(t, BelongsToSegment(hi, lo, hi), test.ShouldBeTrue)
		test.That(t, BelongsToSegment(r3.Vector{X: 11, Y: 0, Z: 0}, lo, hi), test.ShouldBeFalse)
		test.That(t, BelongsToSegment(r3.Vector{X: 5, Y: 1, Z: 0}, lo, hi), test.ShouldBeFalse)
		// order of the ends does not matter
		test.That(t, BelongsToSegment(r3.Vector{X: 5, Y: 0, Z: 0}, hi, lo), test.ShouldBeTrue)
	})
}

func TestPlane(t *testing.T) {
	pl := newPlane(r3.Vector{X: 0, Y: 0, Z: 1}, r3.Vector{X: 2, Y: 0, Z: 1}, r3.Vector{X: 0, Y: 2, Z: 1})
	test.That(t, pl.degenerate(), test.ShouldBeFalse)
	test.That(t, pl.normal, test.ShouldResemble, r3.Vector{X: 0, Y: 0, Z: 1})
	test.That(t, pl.distance(r3.Vector{X: 5, Y: 5, Z: 4}), test.ShouldAlmostEqual, 3.)
	test.That(t, pl.distance(r3.Vector{X: 5, Y: 5, Z: -1}), test.ShouldAlmostEqual, -2.)

	test.That(t, newPlane(r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1}, r3.Vector{X: 2, Y: 2, Z: 2}).degenerate(), test.ShouldBeTrue)
	test.That(t, newPlane(r3.Vector{X: 1, Y: 1, Z: 1}, r3.Vector{X: 1, Y: 1, Z: 1}, r3.Vector{X: 1, Y: 1, Z: 1}).degenerate(), test.ShouldBeTrue)
}
