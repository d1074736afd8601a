// Package config defines the configuration file read by the tricollide command.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/tricollide/collision"
	"go.viam.com/tricollide/solid"
	"go.viam.com/tricollide/utils"
)

// maxDepthLimit is the deepest octree a configuration may ask for. Boxes below it are too small
// to be split in double precision.
const maxDepthLimit = 64

// Config describes how a scene is searched for intersecting triangles.
type Config struct {
	ConfigFilePath string `json:"-"`

	Parallelism int  `json:"parallelism,omitempty"`
	MaxDepth    int  `json:"max_depth,omitempty"`
	BruteForce  bool `json:"brute_force,omitempty"`
	Debug       bool `json:"debug,omitempty"`

	Generate *GenerateConfig `json:"generate,omitempty"`
}

// GenerateConfig describes the default scene produced by the generate command.
type GenerateConfig struct {
	Shape  string  `json:"shape"`
	Size   float64 `json:"size"`
	Cells  int     `json:"cells,omitempty"`
	Copies int     `json:"copies,omitempty"`
	Offset float64 `json:"offset,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.Parallelism < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("parallelism must not be negative, got %d", cfg.Parallelism))
	}
	if cfg.MaxDepth < 0 || cfg.MaxDepth > maxDepthLimit {
		return utils.NewConfigValidationError(path, utils.NewOutOfRangeError("max_depth", cfg.MaxDepth, 0, maxDepthLimit))
	}
	if cfg.Generate != nil {
		if err := cfg.Generate.Validate(fmt.Sprintf("%s.%s", path, "generate")); err != nil {
			return err
		}
	}
	return nil
}

// Validate ensures the scene description is usable.
func (gc *GenerateConfig) Validate(path string) error {
	if gc.Shape == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "shape")
	}
	if !lo.Contains(solid.Shapes, gc.Shape) {
		return utils.NewConfigValidationError(path, errors.Errorf("unknown shape %q", gc.Shape))
	}
	if gc.Size <= 0 {
		return utils.NewConfigValidationFieldRequiredError(path, "size")
	}
	if gc.Cells < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("cells must not be negative, got %d", gc.Cells))
	}
	if gc.Copies < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("copies must not be negative, got %d", gc.Copies))
	}
	return nil
}

// CollisionOptions returns the search options described by the config.
func (cfg *Config) CollisionOptions() collision.Options {
	return collision.Options{
		Parallelism: cfg.Parallelism,
		MaxDepth:    cfg.MaxDepth,
		BruteForce:  cfg.BruteForce,
	}
}

// SolidOptions returns the scene description used by the generate command.
func (gc *GenerateConfig) SolidOptions() solid.Options {
	return solid.Options{
		Shape:  gc.Shape,
		Size:   gc.Size,
		Cells:  gc.Cells,
		Copies: gc.Copies,
		Offset: gc.Offset,
	}
}
