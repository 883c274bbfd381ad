package mesh

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/objmesh/pkg/formats"
)

// gridOBJ returns an n x n grid of quads on the XY plane with a planar UV
// mapping, so every triangle has a well-defined tangent basis.
func gridOBJ(n int) string {
	var b strings.Builder
	b.WriteString("# grid\no grid\nvn 0 0 1\n")
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			fmt.Fprintf(&b, "v %d %d 0\n", x, y)
			fmt.Fprintf(&b, "vt %g %g\n", float32(x)/float32(n), float32(y)/float32(n))
		}
	}
	idx := func(x, y int) int { return y*(n+1) + x + 1 }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a, c := idx(x, y), idx(x+1, y)
			d, e := idx(x+1, y+1), idx(x, y+1)
			if (x+y)%2 == 0 {
				fmt.Fprintf(&b, "f %d/%d/1 %d/%d/1 %d/%d/1 %d/%d/1\n", a, a, c, c, d, d, e, e)
			} else {
				fmt.Fprintf(&b, "f %d/%d/1 %d/%d/1 %d/%d/1\n", a, a, c, c, d, d)
				fmt.Fprintf(&b, "f %d/%d/1 %d/%d/1 %d/%d/1\n", d, d, e, e, a, a)
			}
		}
	}
	return b.String()
}

func mustParse(t *testing.T, src string) *formats.OBJ {
	t.Helper()
	obj, err := formats.ParseOBJ([]byte(src))
	require.NoError(t, err)
	return obj
}

// cubeQuad is a quad from the original sample data: four positions, one
// shared normal and two texture coordinates.
const cubeQuad = `v 1 1 1
v -1 1 1
v -1 -1 1
v 1 -1 1
vn 0.5 -0.5 0.5
vt 0 0
vt 1 1
f 1/1/1 2/1/1 3/2/1 4/2/1
`
