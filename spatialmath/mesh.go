package spatialmath

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

const fieldsPerTriangle = 9

// ReadTriangles parses triangles from whitespace separated text. The input may start with the
// number of triangles; after that every nine numbers are the x, y, z coordinates of the three
// vertices of one triangle. Triangles are identified by their position in the input.
func ReadTriangles(r io.Reader) ([]*Triangle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var fields []string
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read triangles")
	}

	offset := 0
	if len(fields)%fieldsPerTriangle == 1 {
		count, err := strconv.Atoi(fields[0])
		if err != nil || count < 0 {
			return nil, errors.Errorf("expected a triangle count but got %q", fields[0])
		}
		if count*fieldsPerTriangle != len(fields)-1 {
			return nil, errors.Errorf("expected %d triangles but found %d", count, (len(fields)-1)/fieldsPerTriangle)
		}
		offset = 1
	} else if len(fields)%fieldsPerTriangle != 0 {
		return nil, errors.Errorf("found %d coordinates, which is not a whole number of triangles", len(fields))
	}

	coords, err := parseFloats(fields[offset:], offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse triangles")
	}

	triangles := make([]*Triangle, 0, len(coords)/fieldsPerTriangle)
	for i := 0; i+fieldsPerTriangle <= len(coords); i += fieldsPerTriangle {
		c := coords[i : i+fieldsPerTriangle]
		triangles = append(triangles, NewTriangle(
			r3.Vector{X: c[0], Y: c[1], Z: c[2]},
			r3.Vector{X: c[3], Y: c[4], Z: c[5]},
			r3.Vector{X: c[6], Y: c[7], Z: c[8]},
			len(triangles),
		))
	}
	return triangles, nil
}

// WriteTriangles writes triangles in the format read by ReadTriangles, count first.
func WriteTriangles(w io.Writer, triangles []*Triangle) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(triangles)); err != nil {
		return err
	}
	for _, t := range triangles {
		for i, p := range t.Points() {
			sep := " "
			if i == 2 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(bw, "%s %s %s%s", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z), sep); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
