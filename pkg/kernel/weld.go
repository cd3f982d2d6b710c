package kernel

import (
	"math"

	"github.com/chazu/prtkit/pkg/geometry"
)

// weldPrecision is the grid, in model units, vertices are snapped to
// before being merged.
const weldPrecision = 1e-6

// Triangle is three xyz corners.
type Triangle [3][3]float64

// FromTriangles builds an indexed geometry from a triangle soup, merging
// vertices that coincide. Degenerate triangles (two corners welded
// together) are dropped.
func FromTriangles(tris []Triangle) *geometry.Geometry {
	g := &geometry.Geometry{
		Vertices:   make([]float64, 0, len(tris)*3),
		Indices:    make([]uint32, 0, len(tris)*3),
		FaceCounts: make([]uint32, 0, len(tris)),
	}
	seen := make(map[[3]int64]uint32, len(tris))

	for _, tri := range tris {
		var idx [3]uint32
		for j, p := range tri {
			key := [3]int64{snap(p[0]), snap(p[1]), snap(p[2])}
			i, ok := seen[key]
			if !ok {
				i = uint32(len(g.Vertices) / 3)
				seen[key] = i
				g.Vertices = append(g.Vertices, p[0], p[1], p[2])
			}
			idx[j] = i
		}
		if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
			continue
		}
		g.Indices = append(g.Indices, idx[0], idx[1], idx[2])
		g.FaceCounts = append(g.FaceCounts, 3)
	}
	return g
}

func snap(v float64) int64 {
	return int64(math.Round(v / weldPrecision))
}
