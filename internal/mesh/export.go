package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteVertices writes vertices as an interleaved little-endian float32
// buffer laid out per VertexLayout, VertexStride bytes per vertex.
func WriteVertices(w io.Writer, vertices []Vertex) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, vertices); err != nil {
		return fmt.Errorf("writing vertices: %w", err)
	}
	return bw.Flush()
}

// ReadVertices reads a buffer written by WriteVertices.
func ReadVertices(r io.Reader, count int) ([]Vertex, error) {
	vertices := make([]Vertex, count)
	if err := binary.Read(r, binary.LittleEndian, vertices); err != nil {
		return nil, fmt.Errorf("reading %d vertices: %w", count, err)
	}
	return vertices, nil
}
