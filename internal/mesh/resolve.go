package mesh

import "github.com/Faultbox/objmesh/pkg/formats"

// Resolve looks up the attributes a corner refers to. Indices are 1-based;
// zero and anything past the end of a table is ErrIndexOutOfRange.
func Resolve(obj *formats.OBJ, c formats.OBJCorner) (ResolvedVertex, error) {
	var v ResolvedVertex

	pos, ok := lookup(obj.Positions, c.Position)
	if !ok {
		return v, outOfRange("position", c.Position, len(obj.Positions))
	}
	v.Position = pos.XYZ()

	normal, ok := lookup(obj.Normals, c.Normal)
	if !ok {
		return v, outOfRange("normal", c.Normal, len(obj.Normals))
	}
	v.Normal = normal

	if c.HasUV {
		uv, ok := lookup(obj.TexCoords, c.UV)
		if !ok {
			return v, outOfRange("texcoord", c.UV, len(obj.TexCoords))
		}
		v.UV = uv
	}

	return v, nil
}

// ResolveFace resolves every corner of face i in file order.
func ResolveFace(obj *formats.OBJ, i int) ([]ResolvedVertex, error) {
	face := obj.Faces[i]
	out := make([]ResolvedVertex, len(face.Corners))
	for ci, c := range face.Corners {
		v, err := Resolve(obj, c)
		if err != nil {
			return nil, atFace(err, face, i)
		}
		out[ci] = v
	}
	return out, nil
}

func lookup[T any](table []T, index int) (T, bool) {
	var zero T
	i := index - 1
	if i < 0 || i >= len(table) {
		return zero, false
	}
	return table[i], true
}

func outOfRange(table string, index, size int) error {
	return &formats.OBJError{
		Kind:   formats.ErrIndexOutOfRange,
		Face:   -1,
		Detail: formatRange(table, index, size),
	}
}
