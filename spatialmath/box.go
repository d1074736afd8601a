package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
)

// AxisAlignedBox is a box aligned with the coordinate axes. Membership follows the half-open
// policy min < v <= max on every axis, so the eight octants of a box never share a point.
// The zero value is not a valid box; use EmptyBox to start accumulating points.
type AxisAlignedBox struct {
	x, y, z r1.Interval
}

// EmptyBox returns a box containing nothing. AddPoint grows it.
func EmptyBox() AxisAlignedBox {
	return AxisAlignedBox{r1.EmptyInterval(), r1.EmptyInterval(), r1.EmptyInterval()}
}

// NewAxisAlignedBox returns the box spanned by two corners given in any order.
func NewAxisAlignedBox(p, q r3.Vector) AxisAlignedBox {
	return EmptyBox().AddPoint(p).AddPoint(q)
}

// IsEmpty reports whether the box has never received a point.
func (b AxisAlignedBox) IsEmpty() bool {
	return b.x.IsEmpty() || b.y.IsEmpty() || b.z.IsEmpty()
}

// AddPoint returns the smallest box containing both b and p.
func (b AxisAlignedBox) AddPoint(p r3.Vector) AxisAlignedBox {
	return AxisAlignedBox{b.x.AddPoint(p.X), b.y.AddPoint(p.Y), b.z.AddPoint(p.Z)}
}

// Min returns the low corner.
func (b AxisAlignedBox) Min() r3.Vector {
	return r3.Vector{X: b.x.Lo, Y: b.y.Lo, Z: b.z.Lo}
}

// Max returns the high corner.
func (b AxisAlignedBox) Max() r3.Vector {
	return r3.Vector{X: b.x.Hi, Y: b.y.Hi, Z: b.z.Hi}
}

// Center returns the midpoint of the box.
func (b AxisAlignedBox) Center() r3.Vector {
	return r3.Vector{X: b.x.Center(), Y: b.y.Center(), Z: b.z.Center()}
}

// Size returns the edge lengths of the box.
func (b AxisAlignedBox) Size() r3.Vector {
	return r3.Vector{X: b.x.Length(), Y: b.y.Length(), Z: b.z.Length()}
}

// ExpandLow moves the low corner down by margin on every axis, and always by at least one
// representable step so points lying on the old low corner become members.
func (b AxisAlignedBox) ExpandLow(margin float64) AxisAlignedBox {
	lower := func(i r1.Interval) r1.Interval {
		i.Lo = math.Min(i.Lo-margin, math.Nextafter(i.Lo, math.Inf(-1)))
		return i
	}
	return AxisAlignedBox{lower(b.x), lower(b.y), lower(b.z)}
}

// Octant returns one of the eight equal sub-boxes of b. Bit 2 of i selects the upper half
// along x, bit 1 along y and bit 0 along z.
func (b AxisAlignedBox) Octant(i int) AxisAlignedBox {
	half := func(iv r1.Interval, upper bool) r1.Interval {
		if upper {
			return r1.Interval{Lo: iv.Center(), Hi: iv.Hi}
		}
		return r1.Interval{Lo: iv.Lo, Hi: iv.Center()}
	}
	return AxisAlignedBox{half(b.x, i&4 != 0), half(b.y, i&2 != 0), half(b.z, i&1 != 0)}
}

func halfOpenContains(iv r1.Interval, v float64) bool {
	return iv.Lo < v && v <= iv.Hi
}

// ContainsPoint reports whether min < p <= max on every axis.
func (b AxisAlignedBox) ContainsPoint(p r3.Vector) bool {
	return halfOpenContains(b.x, p.X) && halfOpenContains(b.y, p.Y) && halfOpenContains(b.z, p.Z)
}

// ContainsTriangle reports whether all three vertices of t are members of b.
func (b AxisAlignedBox) ContainsTriangle(t *Triangle) bool {
	return b.ContainsPoint(t.a) && b.ContainsPoint(t.b) && b.ContainsPoint(t.c)
}

// Overlaps reports whether the closed box [lo, hi], padded by margin, touches b.
func (b AxisAlignedBox) Overlaps(lo, hi r3.Vector, margin float64) bool {
	return b.x.Intersects(r1.Interval{Lo: lo.X, Hi: hi.X}.Expanded(margin)) &&
		b.y.Intersects(r1.Interval{Lo: lo.Y, Hi: hi.Y}.Expanded(margin)) &&
		b.z.Intersects(r1.Interval{Lo: lo.Z, Hi: hi.Z}.Expanded(margin))
}

// String returns a human readable description of the box.
func (b AxisAlignedBox) String() string {
	return fmt.Sprintf("box from %v to %v", b.Min(), b.Max())
}
