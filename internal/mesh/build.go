package mesh

import (
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/objmesh/pkg/formats"
)

// Build assembles the triangle list of obj, failing on the first bad face.
func Build(obj *formats.OBJ) ([]Vertex, error) {
	m, err := BuildMesh(obj, BuildOptions{})
	if err != nil {
		return nil, err
	}
	return m.Vertices, nil
}

// BuildMesh assembles the triangle list of obj: every face is resolved,
// triangulated and given per-corner tangents, in face order.
//
// Under FaceAbort the first failing face (lowest index) is returned as an
// *formats.OBJError and no mesh is produced. Under FaceSkip failing faces
// are left out and collected in Mesh.Skipped.
func BuildMesh(obj *formats.OBJ, opts BuildOptions) (*Mesh, error) {
	faces := obj.Faces
	faceErrs := make([]error, len(faces))

	// Output slots are fixed up front so that concurrent and sequential
	// builds write identical buffers.
	offsets := make([]int, len(faces))
	total := 0
	for i, face := range faces {
		offsets[i] = total
		tris, ok := TriangleCount(len(face.Corners))
		if !ok {
			faceErrs[i] = atFace(&formats.OBJError{
				Kind:   formats.ErrInvalidFaceArity,
				Detail: arityDetail(len(face.Corners)),
			}, face, i)
			continue
		}
		total += tris * 3
	}

	out := make([]Vertex, total)
	stopEarly := opts.Policy == FaceAbort

	emitRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if faceErrs[i] == nil {
				faceErrs[i] = emitFace(obj, i, out[offsets[i]:])
			}
			if faceErrs[i] != nil && stopEarly {
				return
			}
		}
	}

	if opts.Workers > 1 && len(faces) > 1 {
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		chunk := (len(faces) + opts.Workers - 1) / opts.Workers
		for lo := 0; lo < len(faces); lo += chunk {
			lo, hi := lo, min(lo+chunk, len(faces))
			g.Go(func() error {
				emitRange(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		emitRange(0, len(faces))
	}

	if stopEarly {
		for _, err := range faceErrs {
			if err != nil {
				return nil, err
			}
		}
		return &Mesh{Vertices: out, Bounds: computeBounds(out)}, nil
	}

	// Skip policy: compact the emitted faces.
	var skipped error
	vertices := out[:0]
	for i, face := range faces {
		if faceErrs[i] != nil {
			skipped = multierr.Append(skipped, faceErrs[i])
			continue
		}
		n := len(face.Corners)
		tris, _ := TriangleCount(n)
		vertices = append(vertices, out[offsets[i]:offsets[i]+tris*3]...)
	}

	return &Mesh{
		Vertices: vertices,
		Bounds:   computeBounds(vertices),
		Skipped:  skipped,
	}, nil
}

// emitFace writes the vertices of face i to dst.
func emitFace(obj *formats.OBJ, i int, dst []Vertex) error {
	face := obj.Faces[i]

	resolved, err := ResolveFace(obj, i)
	if err != nil {
		return err
	}
	corners, err := Triangulate(resolved)
	if err != nil {
		return atFace(err, face, i)
	}

	for t := 0; t+2 < len(corners); t += 3 {
		tri, err := ComputeTriangle(corners[t], corners[t+1], corners[t+2])
		if err != nil {
			return atFace(withDetail(err, fmt.Sprintf("triangle %d", t/3)), face, i)
		}
		copy(dst[t:t+3], tri[:])
	}
	return nil
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	bounds := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for i := range vertices[1:] {
		updateBounds(&bounds, vertices[i+1].Position)
	}
	return bounds
}

func updateBounds(b *Bounds, p [3]float32) {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] {
			b.Min[axis] = p[axis]
		}
		if p[axis] > b.Max[axis] {
			b.Max[axis] = p[axis]
		}
	}
}
