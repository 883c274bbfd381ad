package mesh

import "github.com/Faultbox/objmesh/pkg/formats"

// TriangleCount returns how many triangles a face with the given number of
// corners expands into. ok is false for anything but 3 or 4 corners.
func TriangleCount(corners int) (count int, ok bool) {
	switch corners {
	case 3:
		return 1, true
	case 4:
		return 2, true
	default:
		return 0, false
	}
}

// Triangulate expands a triangle or quad into triangle-list order.
// Quads split along the 0-2 diagonal as (0,1,2) (2,3,0); winding is kept.
func Triangulate[T any](corners []T) ([]T, error) {
	switch len(corners) {
	case 3:
		return []T{corners[0], corners[1], corners[2]}, nil
	case 4:
		return []T{
			corners[0], corners[1], corners[2],
			corners[2], corners[3], corners[0],
		}, nil
	default:
		return nil, &formats.OBJError{
			Kind:   formats.ErrInvalidFaceArity,
			Face:   -1,
			Detail: arityDetail(len(corners)),
		}
	}
}
