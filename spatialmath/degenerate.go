package spatialmath

import "github.com/golang/geo/r3"

// Span returns the segment covered by a degenerate triangle: the pair of vertices between which
// the third one lies. For a point triangle both ends are the same vertex.
func (t *Triangle) Span() (r3.Vector, r3.Vector) {
	s := t.span()
	return s.a, s.b
}

func (t *Triangle) span() segment {
	switch {
	case BelongsToSegment(t.a, t.b, t.c):
		return segment{t.b, t.c}
	case BelongsToSegment(t.b, t.a, t.c):
		return segment{t.a, t.c}
	default:
		return segment{t.a, t.b}
	}
}

// degenerateIntersect handles two zero-area triangles, each of which is a point or a segment.
func degenerateIntersect(t1, t2 *Triangle) bool {
	p1, p2 := t1.IsPoint(), t2.IsPoint()
	switch {
	case p1 && p2:
		return VectorsAlmostEqual(t1.a, t2.a)
	case p1:
		s := t2.span()
		return BelongsToSegment(t1.a, s.a, s.b)
	case p2:
		s := t1.span()
		return BelongsToSegment(t2.a, s.a, s.b)
	default:
		return t1.span().intersects(t2.span())
	}
}
