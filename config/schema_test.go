package config

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"
)

func TestSchema(t *testing.T) {
	out, err := json.Marshal(Schema())
	test.That(t, err, test.ShouldBeNil)
	for _, field := range []string{"parallelism", "max_depth", "brute_force", "generate", "shape"} {
		test.That(t, string(out), test.ShouldContainSubstring, field)
	}
	test.That(t, string(out), test.ShouldNotContainSubstring, "ConfigFilePath")
}
