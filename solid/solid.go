// Package solid tessellates simple solids into triangles, producing scenes for the collision
// query with a known shape.
package solid

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/tricollide/spatialmath"
)

// Supported shape names.
const (
	Sphere   = "sphere"
	Box      = "box"
	Cylinder = "cylinder"
)

// DefaultCells is the marching cubes resolution used when none is given.
const DefaultCells = 20

// Shapes lists the names accepted by Options.Shape.
var Shapes = []string{Sphere, Box, Cylinder}

// Options describe a scene of identical solids placed along the x axis.
type Options struct {
	Shape string
	// Size is the radius of a sphere or cylinder and the edge length of a box. A cylinder is as
	// tall as it is wide.
	Size float64
	// Cells is the number of marching cubes cells along the longest side of a solid.
	Cells int
	// Copies is the number of solids; zero means one.
	Copies int
	// Offset is the distance along x between consecutive copies.
	Offset float64
}

func (opts Options) shape() (sdf.SDF3, error) {
	if opts.Size <= 0 {
		return nil, errors.Errorf("invalid size (%.2f) for a %s", opts.Size, opts.Shape)
	}
	switch opts.Shape {
	case Sphere:
		return sdf.Sphere3D(opts.Size)
	case Box:
		return sdf.Box3D(v3.Vec{X: opts.Size, Y: opts.Size, Z: opts.Size}, 0)
	case Cylinder:
		return sdf.Cylinder3D(2*opts.Size, opts.Size, 0)
	default:
		return nil, errors.Errorf("unknown shape %q, expected one of %v", opts.Shape, Shapes)
	}
}

// Generate tessellates the solids described by opts. Identifiers follow the order in which the
// triangles are produced, copy after copy.
func Generate(opts Options) ([]*spatialmath.Triangle, error) {
	s, err := opts.shape()
	if err != nil {
		return nil, err
	}
	if opts.Copies < 0 {
		return nil, errors.Errorf("invalid number of copies (%d)", opts.Copies)
	}
	copies := opts.Copies
	if copies == 0 {
		copies = 1
	}
	cells := opts.Cells
	if cells <= 0 {
		cells = DefaultCells
	}

	var triangles []*spatialmath.Triangle
	for i := 0; i < copies; i++ {
		placed := sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: float64(i) * opts.Offset}))
		renderer := render.NewMarchingCubesUniform(cells)
		for _, tri := range render.ToTriangles(placed, renderer) {
			triangles = append(triangles, spatialmath.NewTriangle(
				toVector(tri[0]),
				toVector(tri[1]),
				toVector(tri[2]),
				len(triangles),
			))
		}
	}
	if len(triangles) == 0 {
		return nil, errors.Errorf("tessellating a %s produced no triangles", opts.Shape)
	}
	return triangles, nil
}

func toVector(v v3.Vec) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
