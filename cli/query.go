package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/tricollide/collision"
	"go.viam.com/tricollide/config"
	"go.viam.com/tricollide/spatialmath"
)

// QueryAction reads a scene and prints the identifier of every triangle intersecting another
// triangle, one per line in ascending order.
func QueryAction(c *cli.Context) error {
	logger := loggerFrom(c)
	opts, err := queryOptions(c, configFrom(c))
	if err != nil {
		return err
	}

	triangles, err := readScene(c)
	if err != nil {
		return err
	}
	logger.Debugw("read scene", "triangles", len(triangles))

	var found []int
	if c.Bool(FlagStats) && len(triangles) > 0 {
		tree, err := collision.BuildOctree(triangles, opts.MaxDepth, logger)
		if err != nil {
			return err
		}
		ids, err := tree.Intersecting(c.Context, opts.Parallelism)
		if err != nil {
			return err
		}
		found = collision.SortedIdentifiers(ids)
		stats, err := tree.Stats()
		if err != nil {
			return errors.Wrap(err, "failed to compute octree statistics")
		}
		fmt.Fprintln(c.App.ErrWriter, stats.String())
	} else {
		found, err = collision.FindIntersecting(c.Context, triangles, opts, logger)
		if err != nil {
			return err
		}
	}

	for _, id := range found {
		if _, err := fmt.Fprintln(c.App.Writer, id); err != nil {
			return err
		}
	}
	return nil
}

// queryOptions starts from the config file and applies the flags given explicitly. Statistics
// describe the octree, so they cannot be asked for together with a brute force search.
func queryOptions(c *cli.Context, cfg *config.Config) (collision.Options, error) {
	opts := cfg.CollisionOptions()
	if c.IsSet(FlagParallelism) {
		opts.Parallelism = c.Int(FlagParallelism)
	}
	if c.IsSet(FlagMaxDepth) {
		opts.MaxDepth = c.Int(FlagMaxDepth)
	}
	if c.IsSet(FlagBruteForce) {
		opts.BruteForce = c.Bool(FlagBruteForce)
	}
	if opts.BruteForce && c.Bool(FlagStats) {
		return collision.Options{}, errors.Errorf("--%s reports octree statistics and cannot be used with a brute force search", FlagStats)
	}
	return opts, nil
}

func readScene(c *cli.Context) (triangles []*spatialmath.Triangle, err error) {
	var r io.Reader = c.App.Reader
	if path := c.Path(FlagInput); path != "" && path != "-" {
		//nolint:gosec
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, errors.Wrapf(openErr, "failed to open scene %q", path)
		}
		defer func() {
			err = multierr.Combine(err, f.Close())
		}()
		r = f
	}
	triangles, err = spatialmath.ReadTriangles(r)
	return triangles, errors.Wrap(err, "failed to read scene")
}
