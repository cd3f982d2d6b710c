// Package geometry holds the flat buffers that describe polygon meshes,
// both the initial shapes fed into generation and the generated output.
package geometry

import "fmt"

// Geometry is a polygon mesh stored as flat arrays.
// Vertices has 3 floats per vertex (x,y,z). Indices lists vertex indices
// for all faces back to back, and FaceCounts gives how many indices each
// face consumes.
type Geometry struct {
	Vertices   []float64 `json:"vertices" yaml:"vertices"`     // [x0,y0,z0, x1,y1,z1, ...]
	Indices    []uint32  `json:"indices" yaml:"indices"`       // [i0,i1,i2,i3, ...]
	FaceCounts []uint32  `json:"faceCounts" yaml:"face_counts"` // [4, 3, ...]
}

// NewGeometry builds a single-face geometry whose face visits every
// vertex in order. This is the common way to describe a lot footprint.
func NewGeometry(vertices []float64) Geometry {
	n := len(vertices) / 3
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return Geometry{
		Vertices:   vertices,
		Indices:    indices,
		FaceCounts: []uint32{uint32(n)},
	}
}

// Rectangle returns a w x d footprint in the xy plane with its minimum
// corner at the origin.
func Rectangle(w, d float64) Geometry {
	return NewGeometry([]float64{
		0, 0, 0,
		w, 0, 0,
		w, d, 0,
		0, d, 0,
	})
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// IndexCount returns the number of face indices.
func (g *Geometry) IndexCount() int {
	return len(g.Indices)
}

// FaceCountsCount returns the number of faces.
func (g *Geometry) FaceCountsCount() int {
	return len(g.FaceCounts)
}

// IsEmpty returns true if the geometry has no vertices.
func (g *Geometry) IsEmpty() bool {
	return len(g.Vertices) == 0
}

// Validate checks the structural invariants of the flat buffers.
func (g *Geometry) Validate() error {
	if len(g.Vertices)%3 != 0 {
		return fmt.Errorf("vertex buffer length %d is not a multiple of 3", len(g.Vertices))
	}
	var sum int
	for i, c := range g.FaceCounts {
		if c == 0 {
			return fmt.Errorf("face %d has zero indices", i)
		}
		sum += int(c)
	}
	if sum != len(g.Indices) {
		return fmt.Errorf("face counts sum to %d but there are %d indices", sum, len(g.Indices))
	}
	n := uint32(g.VertexCount())
	for i, idx := range g.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Footprint returns the first face projected onto the xy plane.
func (g *Geometry) Footprint() ([][2]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(g.FaceCounts) == 0 {
		return nil, fmt.Errorf("geometry has no faces")
	}
	count := int(g.FaceCounts[0])
	if count < 3 {
		return nil, fmt.Errorf("footprint face has %d vertices, need at least 3", count)
	}
	pts := make([][2]float64, count)
	for i, idx := range g.Indices[:count] {
		pts[i] = [2]float64{g.Vertices[idx*3], g.Vertices[idx*3+1]}
	}
	return pts, nil
}
