// Package formats provides parsers for 3D model file formats.
//
// The only format implemented is Wavefront OBJ geometry (positions, texture
// coordinates, normals and polygon faces), see obj.go.
package formats
