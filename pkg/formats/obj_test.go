package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/objmesh/pkg/math"
)

func TestParseOBJ_Position(t *testing.T) {
	tests := []struct {
		name string
		line string
		want math.Vec4
	}{
		{"three values default w", "v 1.0 2.0 3.0", math.Vec4{X: 1, Y: 2, Z: 3, W: 1}},
		{"explicit w", "v 1.0 2.0 3.0 4.0", math.Vec4{X: 1, Y: 2, Z: 3, W: 4}},
		{"explicit w of zero", "v -1 0.5 2 0", math.Vec4{X: -1, Y: 0.5, Z: 2, W: 0}},
		{"scientific notation", "v 1e2 -2.5E-1 0", math.Vec4{X: 100, Y: -0.25, Z: 0, W: 1}},
		{"tabs and trailing comment", "v\t1\t2\t3 # corner", math.Vec4{X: 1, Y: 2, Z: 3, W: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ParseOBJ([]byte(tt.line))
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if len(obj.Positions) != 1 {
				t.Fatalf("expected 1 position, got %d", len(obj.Positions))
			}
			if obj.Positions[0] != tt.want {
				t.Errorf("got %v, want %v", obj.Positions[0], tt.want)
			}
		})
	}
}

func TestParseOBJ_TexCoordAndNormal(t *testing.T) {
	obj, err := ParseOBJ([]byte("vt 1.0 2.0\nvt 0.25 0.5 0.0\nvn 1.0 2.0 3.0\n"))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	wantUV := []math.Vec2{{X: 1, Y: 2}, {X: 0.25, Y: 0.5}}
	if len(obj.TexCoords) != len(wantUV) {
		t.Fatalf("expected %d texcoords, got %d", len(wantUV), len(obj.TexCoords))
	}
	for i, uv := range wantUV {
		if obj.TexCoords[i] != uv {
			t.Errorf("texcoord %d: got %v, want %v", i, obj.TexCoords[i], uv)
		}
	}

	if len(obj.Normals) != 1 || obj.Normals[0] != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("unexpected normals: %v", obj.Normals)
	}
}

func TestParseOBJ_Faces(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []OBJCorner
	}{
		{
			name: "full corners",
			line: "f 1/2/3 4/5/6 7/8/9",
			want: []OBJCorner{
				{Position: 1, UV: 2, HasUV: true, Normal: 3},
				{Position: 4, UV: 5, HasUV: true, Normal: 6},
				{Position: 7, UV: 8, HasUV: true, Normal: 9},
			},
		},
		{
			name: "missing uv",
			line: "f 1//3 4//6 7//9",
			want: []OBJCorner{
				{Position: 1, Normal: 3},
				{Position: 4, Normal: 6},
				{Position: 7, Normal: 9},
			},
		},
		{
			name: "quad with mixed uv",
			line: "f 7830//1 516/2/2 3//3 517//4",
			want: []OBJCorner{
				{Position: 7830, Normal: 1},
				{Position: 516, UV: 2, HasUV: true, Normal: 2},
				{Position: 3, Normal: 3},
				{Position: 517, Normal: 4},
			},
		},
		{
			name: "zero index kept for resolution",
			line: "f 0/0/0 1/1/1 2/2/2",
			want: []OBJCorner{
				{Position: 0, UV: 0, HasUV: true, Normal: 0},
				{Position: 1, UV: 1, HasUV: true, Normal: 1},
				{Position: 2, UV: 2, HasUV: true, Normal: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ParseOBJ([]byte(tt.line))
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if len(obj.Faces) != 1 {
				t.Fatalf("expected 1 face, got %d", len(obj.Faces))
			}
			face := obj.Faces[0]
			if face.Line != 1 {
				t.Errorf("expected face line 1, got %d", face.Line)
			}
			if len(face.Corners) != len(tt.want) {
				t.Fatalf("expected %d corners, got %d", len(tt.want), len(face.Corners))
			}
			for i, c := range tt.want {
				if face.Corners[i] != c {
					t.Errorf("corner %d: got %+v, want %+v", i, face.Corners[i], c)
				}
			}
		})
	}
}

func TestParseOBJ_FaceArityDeferred(t *testing.T) {
	obj, err := ParseOBJ([]byte("f 1//1 2//1\nf 1//1 2//1 3//1 4//1 5//1\n"))
	if err != nil {
		t.Fatalf("face arity must not fail parsing, got %v", err)
	}
	if len(obj.Faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(obj.Faces))
	}
	stats := obj.Stats()
	if stats.Other != 2 || stats.Triangles != 0 || stats.Quads != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestParseOBJ_Blender(t *testing.T) {
	src := `# Blender v2.76 (sub 0) OBJ File: ''
# www.blender.org
mtllib monkey.mtl
o Suzanne
v 1.0 1.0 1.0
v -1.0 1.0 1.0
vn 0.5 -0.5 0.5
vn 0.5 0.5 0.5
usemtl None
s 1
f 7830//1 516//2 3//3 517//4
f 7821//5 528//6 48//7 529//8
`
	obj, err := ParseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	stats := obj.Stats()
	want := OBJStats{Positions: 2, TexCoords: 0, Normals: 2, Faces: 2, Quads: 2}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
	if obj.Faces[1].Line != 12 {
		t.Errorf("expected second face on line 12, got %d", obj.Faces[1].Line)
	}
	if obj.Faces[1].Corners[2] != (OBJCorner{Position: 48, Normal: 7}) {
		t.Errorf("unexpected corner: %+v", obj.Faces[1].Corners[2])
	}
}

func TestParseOBJ_IgnoredLines(t *testing.T) {
	src := "\n   \n# comment\no cube\ng side\ns off\nusemtl red\nmtllib cube.mtl\nl 1 2\nvp 0.5\r\n"
	obj, err := ParseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if (obj.Stats() != OBJStats{}) {
		t.Errorf("expected empty model, got %+v", obj.Stats())
	}
}

func TestParseOBJ_CRLF(t *testing.T) {
	obj, err := ParseOBJ([]byte("v 1 2 3\r\nvn 0 0 1\r\nf 1//1 1//1 1//1\r\n"))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(obj.Positions) != 1 || len(obj.Normals) != 1 || len(obj.Faces) != 1 {
		t.Errorf("unexpected stats: %+v", obj.Stats())
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKind error
		wantLine int
	}{
		{"position too few values", "v 1.0 2.0", ErrMissingRequiredField, 1},
		{"position not a number", "v 1.0 abc 3.0", ErrMalformedNumber, 1},
		{"position bad w", "v 1 2 3 w", ErrMalformedNumber, 1},
		{"texcoord too few values", "vt 1.0", ErrMissingRequiredField, 1},
		{"texcoord not a number", "vt 1.0 x", ErrMalformedNumber, 1},
		{"normal too few values", "# header\nvn 1.0 2.0", ErrMissingRequiredField, 2},
		{"normal not a number", "vn 1 2 three", ErrMalformedNumber, 1},
		{"corner without normal", "f 1/2 3/4 5/6", ErrMissingRequiredField, 1},
		{"corner position only", "f 1 2 3", ErrMissingRequiredField, 1},
		{"corner empty position", "f /1/1 2/2/2 3/3/3", ErrMissingRequiredField, 1},
		{"corner empty normal", "f 1/1/ 2/2/2 3/3/3", ErrMissingRequiredField, 1},
		{"corner negative index", "f -1//1 2//1 3//1", ErrMalformedNumber, 1},
		{"corner non-integer uv", "f 1/a/1 2/2/1 3/3/1", ErrMalformedNumber, 1},
		{"corner float index", "f 1.5//1 2//1 3//1", ErrMalformedNumber, 1},
		{"corner too many fields", "f 1/1/1/1 2/2/2 3/3/3", ErrMalformedNumber, 1},
		{"error after valid lines", "v 0 0 0\nv 1 1 1\n\nv 1 1", ErrMissingRequiredField, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ParseOBJ([]byte(tt.src))
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantKind)
			}
			if obj != nil {
				t.Error("expected nil model on error")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("expected %v, got %v", tt.wantKind, err)
			}
			var objErr *OBJError
			if !errors.As(err, &objErr) {
				t.Fatalf("expected *OBJError, got %T", err)
			}
			if objErr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, objErr.Line)
			}
			if objErr.Face != -1 {
				t.Errorf("expected no face index, got %d", objErr.Face)
			}
		})
	}
}

func TestReadOBJ_LineTooLong(t *testing.T) {
	long := "v 1 2 3 " + strings.Repeat("0 ", 100)
	_, err := ReadOBJ(strings.NewReader(long), 64)
	if err == nil {
		t.Fatal("expected error for line exceeding limit")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected line number in error, got %v", err)
	}
}

func TestOBJError_Error(t *testing.T) {
	tests := []struct {
		err  *OBJError
		want string
	}{
		{
			NewLineError(ErrMalformedNumber, 3, "%q value %q", "v", "x"),
			`line 3: malformed number: "v" value "x"`,
		},
		{
			NewFaceError(ErrIndexOutOfRange, OBJFace{Line: 9}, 2, "position 0"),
			"line 9: face 2: index out of range: position 0",
		},
		{
			&OBJError{Kind: ErrInvalidFaceArity, Face: 0},
			"face 0: invalid face arity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
