// Package collision finds the triangles of a scene that intersect at least one other triangle.
package collision

import (
	"context"
	"sort"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/tricollide/octree"
	"go.viam.com/tricollide/spatialmath"
	"go.viam.com/tricollide/utils"
)

// Options control how FindIntersecting searches for intersections.
type Options struct {
	// Parallelism is the number of goroutines used for the search. Zero or one searches sequentially.
	Parallelism int
	// MaxDepth bounds the depth of the octree. Zero uses octree.DefaultMaxDepth.
	MaxDepth int
	// BruteForce compares every pair of triangles instead of building an octree.
	BruteForce bool
}

// BoundingBox returns the box holding every vertex of triangles. Its low corner is moved down
// by the geometric tolerance so that no vertex lies on the excluded side of the box.
func BoundingBox(triangles []*spatialmath.Triangle) spatialmath.AxisAlignedBox {
	box := spatialmath.EmptyBox()
	for _, t := range triangles {
		for _, p := range t.Points() {
			box = box.AddPoint(p)
		}
	}
	if box.IsEmpty() {
		return box
	}
	return box.ExpandLow(spatialmath.Epsilon())
}

// Validate checks that every triangle is present and has finite coordinates.
func Validate(triangles []*spatialmath.Triangle) error {
	for i, t := range triangles {
		if t == nil {
			return errors.Errorf("triangle at position %d is nil", i)
		}
		if !t.IsValid() {
			return errors.Errorf("triangle %d has non-finite coordinates", t.Index())
		}
	}
	return nil
}

// BuildOctree validates triangles and inserts them, in order, into an octree over their
// bounding box.
func BuildOctree(triangles []*spatialmath.Triangle, maxDepth int, logger golog.Logger) (*octree.TriangleOctree, error) {
	if err := Validate(triangles); err != nil {
		return nil, err
	}
	if len(triangles) == 0 {
		return nil, errors.New("cannot build an octree without triangles")
	}
	tree, err := octree.New(BoundingBox(triangles), maxDepth, logger)
	if err != nil {
		return nil, err
	}
	for _, t := range triangles {
		if err := tree.Insert(t); err != nil {
			return nil, errors.Wrapf(err, "failed to insert triangle %d", t.Index())
		}
	}
	return tree, nil
}

// FindIntersecting returns, in ascending order and without duplicates, the identifiers of every
// triangle that intersects at least one other triangle.
func FindIntersecting(
	ctx context.Context,
	triangles []*spatialmath.Triangle,
	opts Options,
	logger golog.Logger,
) ([]int, error) {
	if err := Validate(triangles); err != nil {
		return nil, err
	}
	if len(triangles) < 2 {
		return []int{}, nil
	}

	if opts.BruteForce {
		parallelism := opts.Parallelism
		if parallelism < 1 {
			parallelism = 1
		}
		logger.Debugw("comparing all pairs", "triangles", len(triangles), "parallelism", parallelism)
		return BruteForce(ctx, triangles, parallelism)
	}

	tree, err := BuildOctree(triangles, opts.MaxDepth, logger)
	if err != nil {
		return nil, err
	}
	found, err := tree.Intersecting(ctx, opts.Parallelism)
	if err != nil {
		return nil, err
	}
	logger.Debugw("octree traversal done", "triangles", tree.Size(), "hits", len(found))
	return SortedIdentifiers(found), nil
}

// BruteForce compares every pair of triangles. Rows of the comparison are split across
// parallelism groups; zero uses every available core. It returns sorted unique identifiers.
func BruteForce(ctx context.Context, triangles []*spatialmath.Triangle, parallelism int) ([]int, error) {
	if err := Validate(triangles); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var found []int
	err := utils.GroupWorkParallel(
		ctx,
		len(triangles),
		parallelism,
		nil,
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			var local []int
			return func(memberNum, workNum int) {
					t1 := triangles[workNum]
					for _, t2 := range triangles[workNum+1:] {
						if t1.Intersects(t2) {
							local = append(local, t1.Index(), t2.Index())
						}
					}
				}, func() {
					mu.Lock()
					defer mu.Unlock()
					found = append(found, local...)
				}
		},
	)
	if err != nil {
		return nil, err
	}
	return SortedIdentifiers(found), nil
}

// SortedIdentifiers removes duplicates from ids and sorts the rest in ascending order.
func SortedIdentifiers(ids []int) []int {
	out := lo.Uniq(ids)
	sort.Ints(out)
	return out
}
