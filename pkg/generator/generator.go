// Package generator runs a rule over a set of initial shapes and produces
// one model.Result per shape. Each shape is evaluated independently: a
// failure for one shape is recorded in its Result and never stops the rest.
package generator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/chazu/prtkit/pkg/geometry"
	"github.com/chazu/prtkit/pkg/kernel"
	"github.com/chazu/prtkit/pkg/model"
	"github.com/chazu/prtkit/pkg/rules"
)

// GenerationError is the failure reason recorded for one initial shape.
type GenerationError struct {
	InitialShapeIndex int
	Err               error
}

// Error omits the shape index; the Result carrying the error already has it.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ModelGenerator generates models for a fixed set of initial shapes.
// The shapes are never modified.
type ModelGenerator struct {
	shapes []geometry.Geometry
	kernel kernel.Kernel
	rules  *rules.Evaluator
	log    *zap.Logger
}

// Option configures a ModelGenerator.
type Option func(*ModelGenerator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *ModelGenerator) {
		if log != nil {
			g.log = log
		}
	}
}

// New returns a ModelGenerator for shapes.
func New(shapes []geometry.Geometry, k kernel.Kernel, ev *rules.Evaluator, opts ...Option) *ModelGenerator {
	g := &ModelGenerator{
		shapes: shapes,
		kernel: k,
		rules:  ev,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ShapeCount returns the number of initial shapes.
func (g *ModelGenerator) ShapeCount() int {
	return len(g.shapes)
}

// Generate evaluates ruleSource once per initial shape. attrs holds the
// shape attributes: either one map shared by every shape, or one map per
// shape. It returns one Result per shape in shape order.
//
// If ctx is cancelled, including while a rule is running, Generate stops
// and returns the results of the shapes already finished together with
// ctx.Err().
func (g *ModelGenerator) Generate(ctx context.Context, ruleSource string, attrs []map[string]any) ([]model.Result, error) {
	if len(attrs) > 1 && len(attrs) != len(g.shapes) {
		return nil, fmt.Errorf("generator: got %d attribute sets for %d initial shapes", len(attrs), len(g.shapes))
	}

	results := make([]model.Result, 0, len(g.shapes))
	for i := range g.shapes {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var shapeAttrs map[string]any
		switch len(attrs) {
		case 0:
		case 1:
			shapeAttrs = attrs[0]
		default:
			shapeAttrs = attrs[i]
		}

		m, err := g.generateOne(ctx, i, ruleSource, shapeAttrs)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, ctxErr
		}
		if err != nil {
			g.log.Warn("generation failed", zap.Int("shape", i), zap.Error(err))
			results = append(results, model.Failure(i, &GenerationError{InitialShapeIndex: i, Err: err}))
			continue
		}
		g.log.Debug("generated model",
			zap.Int("shape", i),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("faces", m.FaceCount()),
		)
		results = append(results, model.Success(m))
	}
	return results, nil
}

// generateOne builds the model for a single shape. Kernel panics are
// turned into errors.
func (g *ModelGenerator) generateOne(ctx context.Context, idx int, source string, attrs map[string]any) (m *model.GeneratedModel, err error) {
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("panic during generation: %v", r)
		}
	}()

	shape := &g.shapes[idx]
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid initial shape: %w", err)
	}

	prog, ruleErrs, err := g.rules.Evaluate(ctx, source, attrs)
	if err != nil {
		return nil, err
	}
	if len(ruleErrs) > 0 {
		msgs := make([]string, len(ruleErrs))
		for i, e := range ruleErrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("rule error: %s", strings.Join(msgs, "; "))
	}
	for _, e := range prog.Errors {
		g.log.Warn("rule reported error", zap.Int("shape", idx), zap.String("error", e))
	}

	geo, err := g.build(shape, prog.Ops)
	if err != nil {
		return nil, err
	}

	return &model.GeneratedModel{
		InitialShapeIndex: idx,
		Vertices:          geo.Vertices,
		Indices:           geo.Indices,
		Faces:             geo.FaceCounts,
		Report:            prog.Report,
		CGAPrints:         strings.Join(prog.Prints, "\n"),
		CGAErrors:         prog.Errors,
		Attributes:        prog.Attributes,
	}, nil
}
