// Package octree implements an octree over triangles used to find every triangle that
// intersects at least one other triangle without testing all pairs.
package octree

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"go.viam.com/tricollide/spatialmath"
)

// DefaultMaxDepth bounds the descent of an insertion when no maximum depth is configured.
const DefaultMaxDepth = 48

// noChildren marks a leaf node in the arena.
const noChildren = -1

// node is a region of the tree. A node is either a leaf or owns exactly eight children stored
// contiguously in the arena starting at firstChild, in octant order.
type node struct {
	box        spatialmath.AxisAlignedBox
	triangles  []*spatialmath.Triangle
	firstChild int
	depth      int
}

func (n *node) isLeaf() bool {
	return n.firstChild == noChildren
}

// TriangleOctree is an insert-only octree of triangles. Nodes live in a single arena and are
// addressed by index; the root is at index 0. Each triangle is held by exactly one node: the
// deepest node whose box contains all three of its vertices, subject to the rules in Insert.
type TriangleOctree struct {
	logger      golog.Logger
	nodes       []node
	maxDepth    int
	size        int
	comparisons atomic.Int64
}

// New creates an empty octree covering box. A maxDepth of zero selects DefaultMaxDepth.
func New(box spatialmath.AxisAlignedBox, maxDepth int, logger golog.Logger) (*TriangleOctree, error) {
	if box.IsEmpty() {
		return nil, errors.New("cannot create an octree over an empty box")
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("invalid max depth (%d) for octree", maxDepth)
	}
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	return &TriangleOctree{
		logger:   logger,
		nodes:    []node{{box: box, firstChild: noChildren}},
		maxDepth: maxDepth,
	}, nil
}

// Size returns the number of triangles inserted so far.
func (octree *TriangleOctree) Size() int {
	return octree.size
}

// Box returns the region covered by the root.
func (octree *TriangleOctree) Box() spatialmath.AxisAlignedBox {
	return octree.nodes[0].box
}

// Insert adds t to the tree. Starting at the root, t moves down into the octant containing all
// of its vertices. It stops at the current node when it fits no single octant, when it is a point
// triangle and the node has no children yet, or when the node is at the maximum depth. Children
// are created the first time a triangle needs them.
func (octree *TriangleOctree) Insert(t *spatialmath.Triangle) error {
	if t == nil {
		return errors.New("cannot insert a nil triangle")
	}
	if !t.IsValid() {
		return errors.Errorf("triangle %d has non-finite coordinates", t.Index())
	}
	if !octree.nodes[0].box.ContainsTriangle(t) {
		return errors.Errorf("%v is outside the bounds of this octree", t)
	}

	current := 0
	for octree.nodes[current].depth < octree.maxDepth {
		octant, ok := childIndex(t, octree.nodes[current].box)
		if !ok {
			break
		}
		if octree.nodes[current].isLeaf() {
			if t.IsPoint() {
				break
			}
			octree.split(current)
		}
		current = octree.nodes[current].firstChild + octant
	}

	octree.nodes[current].triangles = append(octree.nodes[current].triangles, t)
	octree.size++
	return nil
}

// split appends the eight children of the node at idx to the arena.
func (octree *TriangleOctree) split(idx int) {
	parent := octree.nodes[idx]
	first := len(octree.nodes)
	for i := 0; i < 8; i++ {
		octree.nodes = append(octree.nodes, node{
			box:        parent.box.Octant(i),
			firstChild: noChildren,
			depth:      parent.depth + 1,
		})
	}
	octree.nodes[idx].firstChild = first
	octree.logger.Debugw("split octree node", "node", idx, "depth", parent.depth, "box", parent.box.String())
}

// childIndex returns the octant of box that holds all three vertices of t. It reports false
// when t straddles a splitting plane.
func childIndex(t *spatialmath.Triangle, box spatialmath.AxisAlignedBox) (int, bool) {
	for i := 0; i < 8; i++ {
		if box.Octant(i).ContainsTriangle(t) {
			return i, true
		}
	}
	return 0, false
}
