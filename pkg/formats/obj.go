package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/objmesh/pkg/math"
)

// DefaultMaxLineBytes is the longest line ReadOBJ accepts by default.
const DefaultMaxLineBytes = 1 << 20

// OBJCorner is one face corner as written in the file: 1-based indices into
// the attribute tables. HasUV is false for the "v//vn" form.
type OBJCorner struct {
	Position int
	UV       int
	HasUV    bool
	Normal   int
}

// OBJFace is a polygon as written in the file. Arity is validated when the
// mesh is built, not here.
type OBJFace struct {
	Corners []OBJCorner
	Line    int // Source line of the "f" record
}

// OBJ holds the attribute tables and faces of a parsed model.
// Tables are in file order and are not modified after parsing.
type OBJ struct {
	Positions []math.Vec4
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Faces     []OBJFace
}

// OBJStats summarizes a parsed model.
type OBJStats struct {
	Positions int
	TexCoords int
	Normals   int
	Faces     int
	Triangles int // Faces with 3 corners
	Quads     int // Faces with 4 corners
	Other     int // Faces with any other corner count
}

// Stats returns table sizes and the face arity histogram.
func (o *OBJ) Stats() OBJStats {
	s := OBJStats{
		Positions: len(o.Positions),
		TexCoords: len(o.TexCoords),
		Normals:   len(o.Normals),
		Faces:     len(o.Faces),
	}
	for _, f := range o.Faces {
		switch len(f.Corners) {
		case 3:
			s.Triangles++
		case 4:
			s.Quads++
		default:
			s.Other++
		}
	}
	return s
}

// ParseOBJ parses OBJ model text.
func ParseOBJ(data []byte) (*OBJ, error) {
	return ReadOBJ(bytes.NewReader(data), DefaultMaxLineBytes)
}

// ReadOBJ parses OBJ model text from r. Lines longer than maxLineBytes fail
// the read; maxLineBytes <= 0 selects DefaultMaxLineBytes.
func ReadOBJ(r io.Reader, maxLineBytes int) (*OBJ, error) {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}

	obj := &OBJ{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := obj.parseLine(scanner.Text(), lineNum); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", lineNum+1, err)
	}

	return obj, nil
}

func (o *OBJ) parseLine(line string, lineNum int) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	keyword, args := fields[0], fields[1:]
	switch keyword {
	case "v":
		f, err := parseFloats(keyword, args, 3, lineNum)
		if err != nil {
			return err
		}
		pos := math.Vec4{X: f[0], Y: f[1], Z: f[2], W: 1}
		if len(f) > 3 {
			pos.W = f[3]
		}
		o.Positions = append(o.Positions, pos)

	case "vt":
		f, err := parseFloats(keyword, args, 2, lineNum)
		if err != nil {
			return err
		}
		o.TexCoords = append(o.TexCoords, math.Vec2{X: f[0], Y: f[1]})

	case "vn":
		f, err := parseFloats(keyword, args, 3, lineNum)
		if err != nil {
			return err
		}
		o.Normals = append(o.Normals, math.Vec3{X: f[0], Y: f[1], Z: f[2]})

	case "f":
		face := OBJFace{
			Corners: make([]OBJCorner, 0, len(args)),
			Line:    lineNum,
		}
		for _, tok := range args {
			c, err := parseCorner(tok, lineNum)
			if err != nil {
				return err
			}
			face.Corners = append(face.Corners, c)
		}
		o.Faces = append(o.Faces, face)
	}

	// Everything else (o, g, s, usemtl, mtllib, ...) is not geometry.
	return nil
}

// parseFloats parses every argument as float32 and requires at least need of them.
func parseFloats(keyword string, args []string, need, lineNum int) ([]float32, error) {
	if len(args) < need {
		return nil, NewLineError(ErrMissingRequiredField, lineNum,
			"%q needs %d values, got %d", keyword, need, len(args))
	}

	values := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, NewLineError(ErrMalformedNumber, lineNum, "%q value %q", keyword, a)
		}
		values[i] = float32(f)
	}
	return values, nil
}

// parseCorner parses "p/t/n" or "p//n".
func parseCorner(tok string, lineNum int) (OBJCorner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return OBJCorner{}, NewLineError(ErrMalformedNumber, lineNum, "face corner %q has %d fields", tok, len(parts))
	}
	if len(parts) < 3 || parts[0] == "" || parts[2] == "" {
		return OBJCorner{}, NewLineError(ErrMissingRequiredField, lineNum,
			"face corner %q needs position and normal indices", tok)
	}

	var c OBJCorner
	var err error
	if c.Position, err = parseIndex(parts[0], tok, lineNum); err != nil {
		return OBJCorner{}, err
	}
	if parts[1] != "" {
		if c.UV, err = parseIndex(parts[1], tok, lineNum); err != nil {
			return OBJCorner{}, err
		}
		c.HasUV = true
	}
	if c.Normal, err = parseIndex(parts[2], tok, lineNum); err != nil {
		return OBJCorner{}, err
	}
	return c, nil
}

// parseIndex accepts non-negative integers. Zero is kept so that resolution
// reports it as out of range.
func parseIndex(s, tok string, lineNum int) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, NewLineError(ErrMalformedNumber, lineNum, "face corner %q index %q", tok, s)
	}
	return int(n), nil
}
