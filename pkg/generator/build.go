package generator

import (
	"fmt"

	"github.com/chazu/prtkit/pkg/geometry"
	"github.com/chazu/prtkit/pkg/kernel"
	"github.com/chazu/prtkit/pkg/rules"
)

// cursor accumulates the offset set by translate ops. Every solid created
// after a translate is placed at the accumulated offset.
type cursor struct {
	x, y, z float64
}

func (c *cursor) move(op rules.Op) {
	c.x += op.X
	c.y += op.Y
	c.z += op.Z
}

func (c *cursor) place(k kernel.Kernel, s kernel.Solid) kernel.Solid {
	if c.x == 0 && c.y == 0 && c.z == 0 {
		return s
	}
	return k.Translate(s, c.x, c.y, c.z)
}

// build applies ops to shape and tessellates the result. A rule that
// creates no solid passes the initial shape through unchanged.
func (g *ModelGenerator) build(shape *geometry.Geometry, ops []rules.Op) (*geometry.Geometry, error) {
	var (
		solid kernel.Solid
		cur   cursor
	)

	add := func(s kernel.Solid) {
		s = cur.place(g.kernel, s)
		if solid == nil {
			solid = s
			return
		}
		solid = g.kernel.Union(solid, s)
	}

	for i, op := range ops {
		switch op.Kind {
		case rules.OpTranslate:
			cur.move(op)

		case rules.OpExtrude:
			footprint, err := shape.Footprint()
			if err != nil {
				return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
			}
			s, err := g.kernel.Extrude(footprint, op.Z)
			if err != nil {
				return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
			}
			add(s)

		case rules.OpBox:
			s, err := g.kernel.Box(op.X, op.Y, op.Z)
			if err != nil {
				return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
			}
			add(s)

		default:
			return nil, fmt.Errorf("op %d: unknown kind %v", i, op.Kind)
		}
	}

	if solid == nil {
		return copyGeometry(shape), nil
	}

	geo, err := g.kernel.ToGeometry(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellation failed: %w", err)
	}
	return geo, nil
}

func copyGeometry(src *geometry.Geometry) *geometry.Geometry {
	return &geometry.Geometry{
		Vertices:   append([]float64(nil), src.Vertices...),
		Indices:    append([]uint32(nil), src.Indices...),
		FaceCounts: append([]uint32(nil), src.FaceCounts...),
	}
}
