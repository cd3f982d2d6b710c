package kernel

import (
	"testing"

	"github.com/chazu/prtkit/pkg/geometry"
)

// --- FromTriangles ---

func TestFromTrianglesWeldsSharedCorners(t *testing.T) {
	// Two triangles forming a unit square share two corners.
	tris := []Triangle{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	}
	g := FromTriangles(tris)
	if g.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", g.VertexCount())
	}
	if g.FaceCountsCount() != 2 {
		t.Errorf("FaceCountsCount() = %d, want 2", g.FaceCountsCount())
	}
	if g.IndexCount() != 6 {
		t.Errorf("IndexCount() = %d, want 6", g.IndexCount())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestFromTrianglesDropsDegenerate(t *testing.T) {
	tris := []Triangle{
		{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}
	g := FromTriangles(tris)
	if g.FaceCountsCount() != 1 {
		t.Errorf("FaceCountsCount() = %d, want 1", g.FaceCountsCount())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestFromTrianglesEmpty(t *testing.T) {
	g := FromTriangles(nil)
	if !g.IsEmpty() {
		t.Error("expected empty geometry")
	}
}

// --- Compile-time interface check with a stub kernel ---

type stubSolid struct {
	minBB, maxBB [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return s.minBB, s.maxBB
}

// stubKernel proves the interface is satisfiable.
type stubKernel struct{}

func (k *stubKernel) Box(x, y, z float64) (Solid, error) {
	return &stubSolid{maxBB: [3]float64{x, y, z}}, nil
}

func (k *stubKernel) Extrude(footprint [][2]float64, height float64) (Solid, error) {
	s := &stubSolid{}
	for _, p := range footprint {
		s.maxBB[0] = max(s.maxBB[0], p[0])
		s.maxBB[1] = max(s.maxBB[1], p[1])
	}
	s.maxBB[2] = height
	return s, nil
}

func (k *stubKernel) Union(a, _ Solid) Solid                   { return a }
func (k *stubKernel) Translate(s Solid, _, _, _ float64) Solid { return s }

func (k *stubKernel) ToGeometry(_ Solid) (*geometry.Geometry, error) {
	return &geometry.Geometry{}, nil
}

var _ Solid = (*stubSolid)(nil)
var _ Kernel = (*stubKernel)(nil)

func TestStubKernelExtrudeBoundingBox(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Extrude([][2]float64{{0, 0}, {4, 0}, {4, 3}}, 7)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	_, maxBB := s.BoundingBox()
	if maxBB != [3]float64{4, 3, 7} {
		t.Errorf("max = %v, want [4 3 7]", maxBB)
	}
}
