package utils

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestConfigValidationErrors(t *testing.T) {
	err := NewConfigValidationError("tricollide.json", errors.New("bad value"))
	test.That(t, err, test.ShouldBeError, `error validating "tricollide.json": bad value`)

	err = NewConfigValidationFieldRequiredError("tricollide.json", "shape")
	test.That(t, err, test.ShouldBeError, `error validating "tricollide.json": "shape" is required`)

	err = NewOutOfRangeError("max_depth", 99, 0, 64)
	test.That(t, err, test.ShouldBeError, "max_depth must be between 0 and 64, got 99")
}
