package cli

import (
	"encoding/json"

	"github.com/urfave/cli/v2"

	"go.viam.com/tricollide/config"
	"go.viam.com/tricollide/solid"
	"go.viam.com/tricollide/spatialmath"
)

// GenerateAction tessellates the requested solids and prints them in the input format.
func GenerateAction(c *cli.Context) error {
	opts := generateOptions(c, configFrom(c))
	triangles, err := solid.Generate(opts)
	if err != nil {
		return err
	}
	loggerFrom(c).Debugw("generated scene", "shape", opts.Shape, "triangles", len(triangles))
	return spatialmath.WriteTriangles(c.App.Writer, triangles)
}

// generateOptions starts from the flag defaults, replaces them with the config file's generate
// section when present, then applies the flags given explicitly.
func generateOptions(c *cli.Context, cfg *config.Config) solid.Options {
	opts := solid.Options{
		Shape:  c.String(GenerateFlagShape),
		Size:   c.Float64(GenerateFlagSize),
		Cells:  c.Int(GenerateFlagCells),
		Copies: c.Int(GenerateFlagCopies),
		Offset: c.Float64(GenerateFlagOffset),
	}
	if cfg.Generate == nil {
		return opts
	}
	fromConfig := cfg.Generate.SolidOptions()
	if !c.IsSet(GenerateFlagShape) {
		opts.Shape = fromConfig.Shape
	}
	if !c.IsSet(GenerateFlagSize) {
		opts.Size = fromConfig.Size
	}
	if !c.IsSet(GenerateFlagCells) && fromConfig.Cells > 0 {
		opts.Cells = fromConfig.Cells
	}
	if !c.IsSet(GenerateFlagCopies) && fromConfig.Copies > 0 {
		opts.Copies = fromConfig.Copies
	}
	if !c.IsSet(GenerateFlagOffset) {
		opts.Offset = fromConfig.Offset
	}
	return opts
}

// ConfigSchemaAction prints the JSON schema of the configuration file.
func ConfigSchemaAction(c *cli.Context) error {
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(config.Schema())
}
