package spatialmath

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// parseFloats converts whitespace-split fields into finite numbers. offset is the position of
// the first field in the whole input and is only used in error messages.
func parseFloats(fields []string, offset int) ([]float64, error) {
	converted := make([]float64, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", offset+i)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errors.Errorf("field %d: coordinate %q is not finite", offset+i, field)
		}
		converted = append(converted, value)
	}
	return converted, nil
}
