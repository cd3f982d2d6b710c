package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chazu/prtkit/pkg/model"
)

// Write prints s to w in the legacy text layout.
func Write(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Number of generated geometries (= nber of initial shapes):")
	fmt.Fprintln(bw, s.Count)

	for _, e := range s.Entries {
		if e.Failed() {
			fmt.Fprintln(bw)
			fmt.Fprintln(bw, "Error while instanciating the model generator.")
			if e.Err != nil && !errors.Is(e.Err, model.ErrNoModel) {
				fmt.Fprintf(bw, "Initial Shape Index %d: %v\n", e.InitialShapeIndex, e.Err)
			}
			continue
		}

		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "Initial Shape Index: %d\n", e.InitialShapeIndex)

		if g := e.Geometry; g != nil {
			fmt.Fprintln(bw)
			fmt.Fprintf(bw, "Size of the model vertices vector: %d\n", g.VertexVectorSize)
			fmt.Fprintf(bw, "Number of model vertices: %d\n", g.VertexCount)
			fmt.Fprintf(bw, "Size of the model faces vector: %d\n", g.FaceVectorSize)
		}

		if e.Report != "" {
			fmt.Fprintln(bw)
			fmt.Fprintln(bw, "Report of the generated model:")
			fmt.Fprintln(bw, e.Report)
		}
	}

	return bw.Flush()
}

// Visualize summarizes results and prints them to w.
func Visualize(w io.Writer, results []model.Result) error {
	return Write(w, Summarize(results))
}
