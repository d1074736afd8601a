package utils

import (
	"github.com/pkg/errors"
)

// NewConfigValidationError returns an error specifying the path of the configuration that
// failed validation.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError is used when a required field of a configuration
// is missing or has an unusable value.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}

// NewOutOfRangeError is used when a numeric value is outside the range it may take.
func NewOutOfRangeError(field string, value, min, max int) error {
	return errors.Errorf("%s must be between %d and %d, got %d", field, min, max, value)
}
