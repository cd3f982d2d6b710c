// Package model defines the output of one generation run: the generated
// model for an initial shape, and the tagged Result that replaces an
// absent model as the failure signal.
package model

import (
	"errors"
	"fmt"
)

// GeneratedModel is the geometry and metadata produced for one initial shape.
type GeneratedModel struct {
	InitialShapeIndex int            `json:"initialShapeIndex"`
	Vertices          []float64      `json:"vertices"` // [x0,y0,z0, ...]
	Indices           []uint32       `json:"indices"`  // vertex indices of all faces, back to back
	Faces             []uint32       `json:"faces"`    // index count per face
	Report            map[string]any `json:"report"`
	CGAPrints         string         `json:"cgaPrints"`
	CGAErrors         []string       `json:"cgaErrors"`
	Attributes        map[string]any `json:"attributes"`
}

// VertexCount returns the number of vertices.
func (m *GeneratedModel) VertexCount() int {
	return len(m.Vertices) / 3
}

// FaceCount returns the number of faces.
func (m *GeneratedModel) FaceCount() int {
	return len(m.Faces)
}

// ErrNoModel is the reason recorded for a failure constructed without one.
var ErrNoModel = errors.New("no model generated")

// Result is either a generated model or the reason generation failed.
// Exactly one of Model and Err is set.
type Result struct {
	InitialShapeIndex int
	Model             *GeneratedModel
	Err               error
}

// Success wraps a generated model. A nil model is treated as a failure.
func Success(m *GeneratedModel) Result {
	if m == nil {
		return Result{Err: ErrNoModel}
	}
	return Result{InitialShapeIndex: m.InitialShapeIndex, Model: m}
}

// Failure records that the initial shape at index produced no model.
func Failure(initialShapeIndex int, err error) Result {
	if err == nil {
		err = ErrNoModel
	}
	return Result{InitialShapeIndex: initialShapeIndex, Err: err}
}

// OK reports whether the result carries a model.
func (r Result) OK() bool {
	return r.Err == nil && r.Model != nil
}

func (r Result) String() string {
	if r.OK() {
		return fmt.Sprintf("model(shape %d, %d vertices)", r.InitialShapeIndex, r.Model.VertexCount())
	}
	return fmt.Sprintf("failure(shape %d: %v)", r.InitialShapeIndex, r.Err)
}
