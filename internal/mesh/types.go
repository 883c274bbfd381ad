// Package mesh turns parsed OBJ models into triangle-list vertex data with
// per-corner tangent space, ready for GPU upload.
package mesh

import (
	"fmt"

	"github.com/Faultbox/objmesh/pkg/math"
)

// ResolvedVertex is a face corner with its attributes looked up.
type ResolvedVertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2 // (0, 0) when the corner has no texture coordinate
}

// Vertex is one element of the output triangle list.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
	TangentU [3]float32 // Object-space direction of increasing u
	TangentV [3]float32 // Object-space direction of increasing v
}

// Attribute describes one interleaved vertex attribute.
type Attribute struct {
	Name       string
	Components int // float32 count
	Offset     int // Byte offset within a vertex
}

// VertexStride is the size in bytes of one Vertex in the exported buffer.
const VertexStride = 14 * 4

// VertexLayout lists the attributes of Vertex in buffer order.
var VertexLayout = []Attribute{
	{Name: "position", Components: 3, Offset: 0},
	{Name: "normal", Components: 3, Offset: 12},
	{Name: "uv", Components: 2, Offset: 24},
	{Name: "tangent_u", Components: 3, Offset: 32},
	{Name: "tangent_v", Components: 3, Offset: 44},
}

// Mesh holds the assembled triangle list.
type Mesh struct {
	Vertices []Vertex
	Bounds   Bounds

	// Skipped aggregates the per-face errors dropped under FaceSkip.
	// Nil when every face was emitted.
	Skipped error
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// FacePolicy selects what happens when a face cannot be built.
type FacePolicy int

const (
	// FaceAbort fails the whole build on the first bad face.
	FaceAbort FacePolicy = iota
	// FaceSkip drops bad faces and reports them in Mesh.Skipped.
	FaceSkip
)

// String returns the config name of the policy.
func (p FacePolicy) String() string {
	switch p {
	case FaceAbort:
		return "abort"
	case FaceSkip:
		return "skip"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseFacePolicy parses a config name. Empty selects FaceAbort.
func ParseFacePolicy(s string) (FacePolicy, error) {
	switch s {
	case "", "abort":
		return FaceAbort, nil
	case "skip":
		return FaceSkip, nil
	default:
		return FaceAbort, fmt.Errorf("unknown face policy %q (want abort or skip)", s)
	}
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// Policy decides between failing the build and dropping bad faces.
	Policy FacePolicy
	// Workers > 1 assembles contiguous face ranges concurrently.
	// Output is identical to the sequential build.
	Workers int
}
