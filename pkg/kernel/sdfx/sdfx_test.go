package sdfx

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := New(32)
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	g, err := k.ToGeometry(box)
	if err != nil {
		t.Fatalf("ToGeometry failed: %v", err)
	}
	if g.IsEmpty() {
		t.Fatal("geometry is empty")
	}
	if g.FaceCountsCount() == 0 {
		t.Fatal("expected non-zero face count")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	for i, c := range g.FaceCounts {
		if c != 3 {
			t.Fatalf("face %d has %d indices, want 3", i, c)
		}
	}
	t.Logf("box: %d vertices, %d faces", g.VertexCount(), g.FaceCountsCount())
}

func TestBoxRejectsNegative(t *testing.T) {
	k := New(0)
	if _, err := k.Box(-1, 1, 1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestBoxBoundingBox(t *testing.T) {
	k := New(0)
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{100, 50, 25}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestExtrude(t *testing.T) {
	k := New(32)
	footprint := [][2]float64{{0, 0}, {20, 0}, {20, 10}, {0, 10}}
	s, err := k.Extrude(footprint, 30)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}

	min, max := s.BoundingBox()
	const tol = 0.5
	if math.Abs(min[2]) > tol || math.Abs(max[2]-30) > tol {
		t.Errorf("z extent = [%f, %f], expected [0, 30]", min[2], max[2])
	}

	g, err := k.ToGeometry(s)
	if err != nil {
		t.Fatalf("ToGeometry failed: %v", err)
	}
	if g.IsEmpty() {
		t.Fatal("extruded geometry is empty")
	}
}

func TestExtrudeErrors(t *testing.T) {
	k := New(0)
	if _, err := k.Extrude([][2]float64{{0, 0}, {1, 0}}, 5); err == nil {
		t.Error("expected error for two-point footprint")
	}
	if _, err := k.Extrude([][2]float64{{0, 0}, {1, 0}, {1, 1}}, 0); err == nil {
		t.Error("expected error for zero height")
	}
}

func TestTranslate(t *testing.T) {
	k := New(0)
	box, err := k.Box(10, 10, 10)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	translated := k.Translate(box, 100, 200, 300)
	min, max := translated.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestUnion(t *testing.T) {
	k := New(32)
	a, _ := k.Box(50, 50, 50)
	b, _ := k.Box(50, 50, 50)
	u := k.Union(a, k.Translate(b, 30, 0, 0))
	_, max := u.BoundingBox()
	if math.Abs(max[0]-80) > 0.5 {
		t.Errorf("union max x = %f, expected ~80", max[0])
	}
	g, err := k.ToGeometry(u)
	if err != nil {
		t.Fatalf("ToGeometry failed: %v", err)
	}
	if g.IsEmpty() {
		t.Fatal("union geometry is empty")
	}
}
