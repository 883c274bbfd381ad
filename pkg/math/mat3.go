package math

import "github.com/chewxy/math32"

// Epsilon is the float32 machine epsilon. Determinants at or below it are
// treated as singular.
const Epsilon float32 = 1.1920929e-7

// Mat3 is a 3x3 matrix in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromCols builds a matrix from three column vectors.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// At returns the element at the given row and column.
func (m Mat3) At(row, col int) float32 {
	return m[col*3+row]
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[k*3+row] * other[col*3+k]
			}
			result[col*3+row] = sum
		}
	}
	return result
}

// MulVec returns m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float32 {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of m. The second result is false when m is
// singular (|det| <= Epsilon), in which case the returned matrix is zero.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Determinant()
	if math32.Abs(det) <= Epsilon || math32.IsNaN(det) {
		return Mat3{}, false
	}

	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	inv := 1 / det

	// Adjugate, written back in column-major order.
	return Mat3{
		(e*i - f*h) * inv, (f*g - d*i) * inv, (d*h - e*g) * inv,
		(c*h - b*i) * inv, (a*i - c*g) * inv, (b*g - a*h) * inv,
		(b*f - c*e) * inv, (c*d - a*f) * inv, (a*e - b*d) * inv,
	}, true
}
