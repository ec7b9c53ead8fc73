// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix3 is a 3x3 transformation matrix stored in row-major order:
//
//	[0 1 2]   [xx xy x0]
//	[3 4 5] = [yx yy y0]
//	[6 7 8]   [wx wy w1]
//
// The bottom row is (0, 0, 1) for affine transforms, but is carried
// through all operations so that projective transforms set manually
// survive intact.
type Matrix3 [9]float32

// Identity returns a new identity [Matrix3].
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate returns a new [Matrix3] translating by the given offsets.
func Translate(x, y float32) Matrix3 {
	return Matrix3{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// Scale returns a new [Matrix3] scaling by the given factors.
func Scale(x, y float32) Matrix3 {
	return Matrix3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Rotate returns a new [Matrix3] rotating counterclockwise by the
// given angle in radians.
func Rotate(theta float32) Matrix3 {
	s, c := Sincos(theta)
	return RotateCosSin(c, s)
}

// RotateCosSin returns a new rotation [Matrix3] from a precomputed
// cosine and sine of the rotation angle.
func RotateCosSin(cos, sin float32) Matrix3 {
	return Matrix3{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Skew returns a new [Matrix3] skewing by the given angles in radians
// along the x and y axes.
func Skew(x, y float32) Matrix3 {
	return Matrix3{
		1, Tan(x), 0,
		Tan(y), 1, 0,
		0, 0, 1,
	}
}

// Mul returns this matrix multiplied by the other given matrix (m * o).
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{
		m[0]*o[0] + m[1]*o[3] + m[2]*o[6],
		m[0]*o[1] + m[1]*o[4] + m[2]*o[7],
		m[0]*o[2] + m[1]*o[5] + m[2]*o[8],

		m[3]*o[0] + m[4]*o[3] + m[5]*o[6],
		m[3]*o[1] + m[4]*o[4] + m[5]*o[7],
		m[3]*o[2] + m[4]*o[5] + m[5]*o[8],

		m[6]*o[0] + m[7]*o[3] + m[8]*o[6],
		m[6]*o[1] + m[7]*o[4] + m[8]*o[7],
		m[6]*o[2] + m[7]*o[5] + m[8]*o[8],
	}
}

// MulVector2AsPoint returns the given vector, treated as a point with an
// implicit third coordinate of 1, multiplied by this matrix. Projective
// matrices divide through by the resulting w coordinate.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	x := m[0]*v.X + m[1]*v.Y + m[2]
	y := m[3]*v.X + m[4]*v.Y + m[5]
	w := m[6]*v.X + m[7]*v.Y + m[8]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Vec2(x, y)
}

// MulVector2AsVector returns the given vector, treated as a direction with
// an implicit third coordinate of 0, multiplied by this matrix. Directions
// are not translated.
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	x := m[0]*v.X + m[1]*v.Y
	y := m[3]*v.X + m[4]*v.Y
	return Vec2(x, y)
}

// Determinant returns the determinant of this matrix.
func (m Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of this matrix and true, or the identity
// matrix and false if this matrix is singular and has no inverse.
// Callers must check the second return value before using the result.
func (m Matrix3) Inverse() (Matrix3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,

		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,

		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, true
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// ExtractScale returns the x and y scale factors encoded in the upper-left
// part of this matrix, as the lengths of its transformed basis vectors.
func (m Matrix3) ExtractScale() (sx, sy float32) {
	sx = Hypot(m[0], m[3])
	sy = Hypot(m[1], m[4])
	return sx, sy
}

// IsIdentity returns whether this is the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m == Identity()
}

// IsAffine returns whether the bottom row of this matrix is (0, 0, 1).
func (m Matrix3) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

// AlmostEqual returns whether the matrix is almost equal to the other matrix,
// with each element within the given tolerance of the other.
func (m Matrix3) AlmostEqual(o Matrix3, tol float32) bool {
	for i := range m {
		if Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// String returns the SVG-style string representation of an affine matrix
// ("matrix(xx,yx,xy,yy,x0,y0)"), "none" for the identity matrix, or the
// full nine elements for a projective matrix.
func (m Matrix3) String() string {
	if m.IsIdentity() {
		return "none"
	}
	if m.IsAffine() {
		return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", m[0], m[3], m[1], m[4], m[2], m[5])
	}
	return fmt.Sprintf("matrix3(%v,%v,%v,%v,%v,%v,%v,%v,%v)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
