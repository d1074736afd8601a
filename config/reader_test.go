package config

import (
	"strings"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"go.viam.com/tricollide/collision"
	"go.viam.com/tricollide/solid"
)

func TestFromReaderValidate(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := FromReader("somepath", strings.NewReader(""), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "EOF")

	_, err = FromReader("somepath", strings.NewReader(`{"parallelism": "many"}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unmarshal")

	_, err = FromReader("somepath", strings.NewReader(`{"paralelism": 2}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown field")

	conf, err := FromReader("somepath", strings.NewReader(`{}`), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{
		ConfigFilePath: "somepath",
	})

	_, err = FromReader("somepath", strings.NewReader(`{"parallelism": -2}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "somepath"`)

	_, err = FromReader("somepath", strings.NewReader(`{"max_depth": 65}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_depth must be between 0 and 64")

	_, err = FromReader("somepath", strings.NewReader(`{"generate": {}}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `somepath.generate`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"shape" is required`)

	_, err = FromReader("somepath", strings.NewReader(`{"generate": {"shape": "torus", "size": 1}}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `unknown shape "torus"`)

	_, err = FromReader("somepath", strings.NewReader(`{"generate": {"shape": "box"}}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"size" is required`)

	conf, err = FromReader(
		"somepath",
		strings.NewReader(`{"parallelism": 4, "max_depth": 10, "brute_force": true, "generate": {"shape": "box", "size": 2}}`),
		logger,
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{
		ConfigFilePath: "somepath",
		Parallelism:    4,
		MaxDepth:       10,
		BruteForce:     true,
		Generate: &GenerateConfig{
			Shape: solid.Box,
			Size:  2,
		},
	})
}

func TestRead(t *testing.T) {
	logger := golog.NewTestLogger(t)
	t.Setenv("TRICOLLIDE_PARALLELISM", "3")

	conf, err := Read("data/tricollide.json", logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf.ConfigFilePath, test.ShouldEqual, "data/tricollide.json")
	test.That(t, conf.CollisionOptions(), test.ShouldResemble, collision.Options{Parallelism: 3, MaxDepth: 12})
	test.That(t, conf.Generate, test.ShouldNotBeNil)
	test.That(t, conf.Generate.SolidOptions(), test.ShouldResemble, solid.Options{
		Shape:  solid.Sphere,
		Size:   2.5,
		Cells:  16,
		Copies: 2,
		Offset: 3,
	})

	_, err = Read("data/missing.json", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read config file")
}
