package formats

import (
	"errors"
	"fmt"
	"strings"
)

// OBJ load error kinds. Every error returned while loading a model wraps
// exactly one of these; test with errors.Is.
var (
	ErrMalformedNumber        = errors.New("malformed number")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidFaceArity       = errors.New("invalid face arity")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrTangentBasisDegenerate = errors.New("degenerate tangent basis")
)

// OBJError describes a failure at a specific place in an OBJ model.
type OBJError struct {
	Kind   error  // One of the Err* kinds above
	Line   int    // 1-based source line, 0 if unknown
	Face   int    // 0-based face index, -1 if not face related
	Detail string // Human-readable specifics
}

// NewLineError returns a parse error located at a source line.
func NewLineError(kind error, line int, format string, args ...any) *OBJError {
	return &OBJError{Kind: kind, Line: line, Face: -1, Detail: fmt.Sprintf(format, args...)}
}

// NewFaceError returns an error located at a face.
func NewFaceError(kind error, face OBJFace, index int, format string, args ...any) *OBJError {
	return &OBJError{Kind: kind, Line: face.Line, Face: index, Detail: fmt.Sprintf(format, args...)}
}

func (e *OBJError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Face >= 0 {
		fmt.Fprintf(&b, "face %d: ", e.Face)
	}
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the error kind.
func (e *OBJError) Unwrap() error {
	return e.Kind
}
