package mesh

import (
	"fmt"

	"github.com/Faultbox/objmesh/pkg/formats"
	"github.com/Faultbox/objmesh/pkg/math"
)

// cornerEdges lists, per triangle corner, the two corners its edges point to.
var cornerEdges = [3][2]int{{1, 2}, {0, 2}, {0, 1}}

var (
	unitU = math.Vec3{X: 1}
	unitV = math.Vec3{Y: 1}
	unitN = math.Vec3{Z: 1}
)

// VertexTangents computes the tangent space of one triangle corner from the
// corner's normal and the edges (with their UV deltas) to the other two
// corners.
//
// The UV edges and +Z form the tangent-space basis T, the object-space
// edges and the normal form W. M = W * T^-1 maps tangent space to object
// space, so the tangents are M*(1,0,0) and M*(0,1,0). Edges are not
// normalized. Collinear or zero UV edges make T singular and fail with
// ErrTangentBasisDegenerate.
func VertexTangents(normal, edge1 math.Vec3, uvEdge1 math.Vec2, edge2 math.Vec3, uvEdge2 math.Vec2) (tangentU, tangentV math.Vec3, err error) {
	tangentBasis := math.Mat3FromCols(uvEdge1.Extend(0), uvEdge2.Extend(0), unitN)
	worldBasis := math.Mat3FromCols(edge1, edge2, normal)

	inv, ok := tangentBasis.Inverse()
	if !ok {
		return math.Vec3{}, math.Vec3{}, degenerate("uv edges %v and %v are collinear", uvEdge1, uvEdge2)
	}

	fromTangentSpace := worldBasis.Mul(inv)
	tangentU = fromTangentSpace.MulVec(unitU)
	tangentV = fromTangentSpace.MulVec(unitV)
	if !tangentU.IsFinite() || !tangentV.IsFinite() {
		return math.Vec3{}, math.Vec3{}, degenerate("non-finite tangents %v %v", tangentU, tangentV)
	}
	return tangentU, tangentV, nil
}

// ComputeTriangle builds the three output vertices of a triangle. Each
// corner gets its own tangents, computed with that corner as the origin of
// both edges. Tangents are not shared or averaged between triangles.
func ComputeTriangle(v0, v1, v2 ResolvedVertex) ([3]Vertex, error) {
	corners := [3]ResolvedVertex{v0, v1, v2}
	var out [3]Vertex

	for i := range corners {
		self := corners[i]
		a := corners[cornerEdges[i][0]]
		b := corners[cornerEdges[i][1]]

		tu, tv, err := VertexTangents(
			self.Normal,
			a.Position.Sub(self.Position), a.UV.Sub(self.UV),
			b.Position.Sub(self.Position), b.UV.Sub(self.UV),
		)
		if err != nil {
			return out, withDetail(err, fmt.Sprintf("corner %d", i))
		}

		out[i] = Vertex{
			Position: self.Position.Array(),
			Normal:   self.Normal.Array(),
			UV:       self.UV.Array(),
			TangentU: tu.Array(),
			TangentV: tv.Array(),
		}
	}
	return out, nil
}

func degenerate(format string, args ...any) error {
	return &formats.OBJError{
		Kind:   formats.ErrTangentBasisDegenerate,
		Face:   -1,
		Detail: fmt.Sprintf(format, args...),
	}
}
