// Package reshape converts the flat vertex and face buffers of a
// generated model into per-vertex and per-face groups, and back.
//
// The strict functions reject malformed buffers with a *ValidationError.
// The Lenient variants keep the permissive behavior of the original
// helpers: a trailing partial vertex is dropped and an over-running face
// count yields a short final group.
package reshape

import "fmt"

// Number is any element type a vertex buffer may hold.
type Number interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// Index is any element type a face index buffer may hold.
type Index interface {
	~uint16 | ~uint32 | ~uint64 | ~int | ~int32
}

// ValidationError reports a flat buffer that does not match its shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reshape: invalid %s: %s", e.Field, e.Reason)
}

// Vertices groups a flat xyz buffer into one triple per vertex.
// It fails if the buffer length is not a multiple of 3.
func Vertices[T Number](flat []T) ([][3]T, error) {
	if len(flat)%3 != 0 {
		return nil, &ValidationError{
			Field:  "vertices",
			Reason: fmt.Sprintf("length %d is not a multiple of 3", len(flat)),
		}
	}
	return VerticesLenient(flat), nil
}

// VerticesLenient groups a flat xyz buffer into triples, silently
// dropping any trailing partial vertex.
func VerticesLenient[T Number](flat []T) [][3]T {
	n := len(flat) / 3
	out := make([][3]T, n)
	for i := range out {
		out[i] = [3]T{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return out
}

// Faces splits a flat index buffer into one group per face count.
// It fails if the counts do not sum to the buffer length.
func Faces[I Index](indices []I, counts []uint32) ([][]I, error) {
	var sum uint64
	for _, c := range counts {
		sum += uint64(c)
	}
	if sum != uint64(len(indices)) {
		return nil, &ValidationError{
			Field:  "faces",
			Reason: fmt.Sprintf("face counts sum to %d but there are %d indices", sum, len(indices)),
		}
	}
	return FacesLenient(indices, counts), nil
}

// FacesLenient splits a flat index buffer by face counts, clamping each
// slice to the buffer. Counts that run past the end produce short or
// empty groups.
func FacesLenient[I Index](indices []I, counts []uint32) [][]I {
	out := make([][]I, 0, len(counts))
	offset := 0
	for _, c := range counts {
		start := min(offset, len(indices))
		end := min(offset+int(c), len(indices))
		group := make([]I, end-start)
		copy(group, indices[start:end])
		out = append(out, group)
		offset += int(c)
	}
	return out
}

// FlattenVertices is the inverse of Vertices.
func FlattenVertices[T Number](matrix [][3]T) []T {
	flat := make([]T, 0, len(matrix)*3)
	for _, v := range matrix {
		flat = append(flat, v[0], v[1], v[2])
	}
	return flat
}

// FlattenFaces is the inverse of Faces. It returns the concatenated
// indices and the per-face counts.
func FlattenFaces[I Index](faces [][]I) (indices []I, counts []uint32) {
	counts = make([]uint32, len(faces))
	total := 0
	for i, f := range faces {
		counts[i] = uint32(len(f))
		total += len(f)
	}
	indices = make([]I, 0, total)
	for _, f := range faces {
		indices = append(indices, f...)
	}
	return indices, counts
}
