package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chazu/prtkit/pkg/model"
	"github.com/chazu/prtkit/pkg/reshape"
)

// WriteMatrices prints the vertex and face matrices of every successful
// result. With strict set, a malformed buffer aborts with the
// *reshape.ValidationError; otherwise buffers are truncated leniently.
func WriteMatrices(w io.Writer, results []model.Result, strict bool) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if !r.OK() {
			continue
		}
		m := r.Model

		var (
			verts [][3]float64
			faces [][]uint32
			err   error
		)
		if strict {
			if verts, err = reshape.Vertices(m.Vertices); err != nil {
				return fmt.Errorf("initial shape %d: %w", m.InitialShapeIndex, err)
			}
			if faces, err = reshape.Faces(m.Indices, m.Faces); err != nil {
				return fmt.Errorf("initial shape %d: %w", m.InitialShapeIndex, err)
			}
		} else {
			verts = reshape.VerticesLenient(m.Vertices)
			faces = reshape.FacesLenient(m.Indices, m.Faces)
		}

		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "Vertices of initial shape %d:\n", m.InitialShapeIndex)
		for _, v := range verts {
			fmt.Fprintf(bw, "%g %g %g\n", v[0], v[1], v[2])
		}
		fmt.Fprintf(bw, "Faces of initial shape %d:\n", m.InitialShapeIndex)
		for _, f := range faces {
			fmt.Fprintln(bw, f)
		}
	}
	return bw.Flush()
}
