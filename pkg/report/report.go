// Package report summarizes a batch of generation results and formats
// the summary as human-readable text.
//
// Summarize is pure and returns a structured Summary. Write is the
// optional presentation layer; Visualize runs both.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chazu/prtkit/pkg/model"
)

// Geometry holds the buffer sizes of a generated model.
type Geometry struct {
	VertexVectorSize int // length of the flat vertex buffer
	VertexCount      int // VertexVectorSize / 3
	FaceVectorSize   int // length of the flat face index buffer
}

// Entry summarizes one result.
type Entry struct {
	Position          int // position in the input batch
	InitialShapeIndex int
	Err               error     // set when generation failed
	Geometry          *Geometry // nil when the model has no vertices
	Report            string    // rendered report, empty when there is none
}

// Failed reports whether the entry describes a failed generation.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Summary is the structured report for a batch of results.
type Summary struct {
	Count   int
	Entries []Entry
}

// Failures returns the number of failed entries.
func (s Summary) Failures() int {
	n := 0
	for _, e := range s.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

// Summarize builds a Summary. Model fields of failed results are never read.
func Summarize(results []model.Result) Summary {
	s := Summary{
		Count:   len(results),
		Entries: make([]Entry, 0, len(results)),
	}
	for i, r := range results {
		e := Entry{Position: i, InitialShapeIndex: r.InitialShapeIndex}
		if !r.OK() {
			e.Err = r.Err
			if e.Err == nil {
				e.Err = model.ErrNoModel
			}
			s.Entries = append(s.Entries, e)
			continue
		}

		m := r.Model
		e.InitialShapeIndex = m.InitialShapeIndex
		if len(m.Vertices) > 0 {
			e.Geometry = &Geometry{
				VertexVectorSize: len(m.Vertices),
				VertexCount:      len(m.Vertices) / 3,
				FaceVectorSize:   len(m.Indices),
			}
		}
		e.Report = FormatValues(m.Report)
		s.Entries = append(s.Entries, e)
	}
	return s
}

// FormatValues renders report values as "key: value" lines with keys sorted.
func FormatValues(values map[string]any) string {
	if len(values) == 0 {
		return ""
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %v", k, values[k])
	}
	return b.String()
}
