// Package kernel defines the solid-modeling interface used by the model
// generator. Backends (currently sdfx) build solids from footprints and
// primitives and turn them into flat polygon geometry.
package kernel

import "github.com/chazu/prtkit/pkg/geometry"

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Box has its minimum corner at the origin. Extrude lifts
	// a closed xy polygon from z=0 to z=height.
	Box(x, y, z float64) (Solid, error)
	Extrude(footprint [][2]float64, height float64) (Solid, error)

	Union(a, b Solid) Solid
	Translate(s Solid, x, y, z float64) Solid

	// ToGeometry tessellates a solid into triangles.
	ToGeometry(s Solid) (*geometry.Geometry, error)
}
