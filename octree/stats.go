package octree

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"go.uber.org/multierr"
)

// Stats describes the shape of a TriangleOctree.
type Stats struct {
	Nodes     int
	Leaves    int
	MaxDepth  int
	Triangles int
	// Triangles held per node, over the nodes holding at least one.
	MeanPerNode   float64
	MedianPerNode float64
	MaxPerNode    float64
	// Predicate evaluations made by the last call to Intersecting.
	Comparisons int64
}

// Stats gathers statistics about the tree.
func (octree *TriangleOctree) Stats() (Stats, error) {
	s := Stats{
		Nodes:       len(octree.nodes),
		Triangles:   octree.size,
		Comparisons: octree.comparisons.Load(),
	}
	perNode := make([]float64, 0, len(octree.nodes))
	for i := range octree.nodes {
		n := &octree.nodes[i]
		if n.isLeaf() {
			s.Leaves++
		}
		if n.depth > s.MaxDepth {
			s.MaxDepth = n.depth
		}
		if len(n.triangles) > 0 {
			perNode = append(perNode, float64(len(n.triangles)))
		}
	}
	if len(perNode) == 0 {
		return s, nil
	}

	var err, err2, err3 error
	s.MeanPerNode, err = stats.Mean(perNode)
	s.MedianPerNode, err2 = stats.Median(perNode)
	s.MaxPerNode, err3 = stats.Max(perNode)
	if combined := multierr.Combine(err, err2, err3); combined != nil {
		return Stats{}, combined
	}
	return s, nil
}

// String renders the statistics as a table.
func (s Stats) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"nodes", s.Nodes},
		{"leaves", s.Leaves},
		{"max depth", s.MaxDepth},
		{"triangles", s.Triangles},
		{"mean triangles per occupied node", fmt.Sprintf("%.2f", s.MeanPerNode)},
		{"median triangles per occupied node", fmt.Sprintf("%.2f", s.MedianPerNode)},
		{"max triangles per node", fmt.Sprintf("%.0f", s.MaxPerNode)},
		{"comparisons", s.Comparisons},
	})
	return t.Render()
}
