// Package cli contains the tricollide command line application.
package cli

import (
	"fmt"
	"io"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"go.viam.com/tricollide/config"
	"go.viam.com/tricollide/solid"
)

// Flags.
const (
	FlagConfig      = "config"
	FlagDebug       = "debug"
	FlagInput       = "input"
	FlagParallelism = "parallelism"
	FlagMaxDepth    = "max-depth"
	FlagBruteForce  = "brute-force"
	FlagStats       = "stats"

	GenerateFlagShape  = "shape"
	GenerateFlagSize   = "size"
	GenerateFlagCells  = "cells"
	GenerateFlagCopies = "copies"
	GenerateFlagOffset = "offset"
)

// Keys into the app metadata filled by Before.
const (
	loggerKey = "logger"
	configKey = "config"
)

// NewApp returns the tricollide application reading triangles from in and writing results to
// out and diagnostics to errOut.
func NewApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "tricollide",
		Usage:           "report the triangles of a scene that intersect another triangle",
		UsageText:       "tricollide [options] < scene.txt",
		HideHelpCommand: true,
		Reader:          in,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    FlagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    FlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.PathFlag{
				Name:    FlagInput,
				Aliases: []string{"i"},
				Usage:   "read triangles from `FILE` instead of standard input",
			},
			&cli.IntFlag{
				Name:  FlagParallelism,
				Usage: "number of goroutines searching for intersections",
			},
			&cli.IntFlag{
				Name:  FlagMaxDepth,
				Usage: "maximum depth of the octree, 0 for the default",
			},
			&cli.BoolFlag{
				Name:  FlagBruteForce,
				Usage: "compare every pair of triangles instead of building an octree",
			},
			&cli.BoolFlag{
				Name:  FlagStats,
				Usage: "print octree statistics to standard error",
			},
		},
		Before: func(c *cli.Context) error {
			var logger golog.Logger
			if c.Bool(FlagDebug) {
				logger = golog.NewDebugLogger("tricollide")
			} else {
				logger = zap.NewNop().Sugar()
			}
			c.App.Metadata = map[string]interface{}{loggerKey: logger}

			cfg := &config.Config{}
			if path := c.Path(FlagConfig); path != "" {
				var err error
				cfg, err = config.Read(path, logger)
				if err != nil {
					return err
				}
				if cfg.Debug && !c.Bool(FlagDebug) {
					c.App.Metadata[loggerKey] = golog.NewDebugLogger("tricollide")
				}
			}
			c.App.Metadata[configKey] = cfg
			return nil
		},
		Action: QueryAction,
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "tessellate solids and print the triangles in the input format",
				UsageText: fmt.Sprintf("tricollide generate [--%s %s|%s|%s] [other options]", GenerateFlagShape, solid.Sphere, solid.Box, solid.Cylinder),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  GenerateFlagShape,
						Value: solid.Sphere,
						Usage: "solid to tessellate",
					},
					&cli.Float64Flag{
						Name:  GenerateFlagSize,
						Value: 1,
						Usage: "radius of a sphere or cylinder, edge length of a box",
					},
					&cli.IntFlag{
						Name:  GenerateFlagCells,
						Value: solid.DefaultCells,
						Usage: "marching cubes cells along the longest side",
					},
					&cli.IntFlag{
						Name:  GenerateFlagCopies,
						Value: 1,
						Usage: "number of solids placed along the x axis",
					},
					&cli.Float64Flag{
						Name:  GenerateFlagOffset,
						Usage: "distance along x between consecutive solids",
					},
				},
				Action: GenerateAction,
			},
			{
				Name:   "config-schema",
				Usage:  "print the JSON schema of the configuration file",
				Action: ConfigSchemaAction,
			},
		},
	}
}

func loggerFrom(c *cli.Context) golog.Logger {
	if logger, ok := c.App.Metadata[loggerKey].(golog.Logger); ok {
		return logger
	}
	return zap.NewNop().Sugar()
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}
