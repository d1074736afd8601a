package octree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"go.viam.com/tricollide/spatialmath"
)

// Intersecting returns the identifiers of every triangle that intersects another triangle in
// the tree. Each node contributes the pairs within its own list and the pairs between its own
// list and every triangle below it, so every pair of triangles is compared at most once. The
// result may contain duplicates and is in no particular order.
//
// With parallelism greater than one, nodes are processed concurrently by at most that many
// goroutines. The tree must not be modified while Intersecting runs.
func (octree *TriangleOctree) Intersecting(ctx context.Context, parallelism int) ([]int, error) {
	octree.comparisons.Store(0)
	if parallelism <= 1 {
		var found []int
		for idx := range octree.nodes {
			nodeFound, err := octree.nodeIntersections(ctx, idx)
			if err != nil {
				return nil, err
			}
			found = append(found, nodeFound...)
		}
		return found, nil
	}

	results := make([][]int, len(octree.nodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for idx := range octree.nodes {
		if len(octree.nodes[idx].triangles) == 0 {
			continue
		}
		g.Go(func() error {
			nodeFound, err := octree.nodeIntersections(gctx, idx)
			if err != nil {
				return err
			}
			results[idx] = nodeFound
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var found []int
	for _, r := range results {
		found = append(found, r...)
	}
	octree.logger.Debugw("parallel traversal done", "nodes", len(octree.nodes), "comparisons", octree.comparisons.Load())
	return found, nil
}

// nodeIntersections compares the triangles held by the node at idx with each other and with
// every triangle in the subtrees of its children.
func (octree *TriangleOctree) nodeIntersections(ctx context.Context, idx int) ([]int, error) {
	n := &octree.nodes[idx]
	var found []int
	for i, t1 := range n.triangles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, t2 := range n.triangles[i+1:] {
			if octree.intersects(t1, t2) {
				found = append(found, t1.Index(), t2.Index())
			}
		}
		if !n.isLeaf() {
			found = octree.subtreeIntersections(t1, n.firstChild, found)
		}
	}
	return found, nil
}

// subtreeIntersections appends to found every pair of t with a triangle held at or below the
// eight siblings starting at first. Subtrees whose box cannot reach t are skipped.
func (octree *TriangleOctree) subtreeIntersections(t *spatialmath.Triangle, first int, found []int) []int {
	lo, hi := t.Bounds()
	// The margin covers the tolerance of vertex and plane comparisons. It does not cover a point
	// lying near a long segment: BelongsToSegment measures its tolerance along the segment, so it
	// accepts points about sqrt(ε·length) off the line, and such a pair may be skipped here even
	// though comparing every pair reports it.
	margin := spatialmath.Epsilon()
	stack := []int{first}
	for len(stack) > 0 {
		block := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for idx := block; idx < block+8; idx++ {
			child := &octree.nodes[idx]
			if !child.box.Overlaps(lo, hi, margin) {
				continue
			}
			for _, other := range child.triangles {
				if octree.intersects(t, other) {
					found = append(found, t.Index(), other.Index())
				}
			}
			if !child.isLeaf() {
				stack = append(stack, child.firstChild)
			}
		}
	}
	return found
}

func (octree *TriangleOctree) intersects(t1, t2 *spatialmath.Triangle) bool {
	octree.comparisons.Inc()
	return t1.Intersects(t2)
}
