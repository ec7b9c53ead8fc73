// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// Matrix is a reactive 3x3 transform. Every shape owns one; by default
// [Shape.Update] recomposes it from the shape's position, attitude,
// scale, and skew, overwriting anything set here. Call [Matrix.SetManual]
// to take over and author the matrix directly, including projective
// bottom rows, which the composer never touches.
type Matrix struct {
	n      math32.Matrix3
	manual bool

	mark func()
}

// NewMatrix returns an identity matrix in automatic mode.
func NewMatrix() *Matrix {
	return &Matrix{n: math32.Identity()}
}

func (m *Matrix) bind(mark func()) {
	m.mark = mark
}

func (m *Matrix) touch() {
	if m.mark != nil {
		m.mark()
	}
}

// Manual reports whether the matrix is authored directly rather than
// composed from transform components.
func (m *Matrix) Manual() bool { return m.manual }

// SetManual sets whether the matrix is authored directly.
func (m *Matrix) SetManual(manual bool) *Matrix {
	if m.manual == manual {
		return m
	}
	m.manual = manual
	m.touch()
	return m
}

// Matrix3 returns the current elements as a plain [math32.Matrix3].
func (m *Matrix) Matrix3() math32.Matrix3 { return m.n }

// Elements returns the current elements in row-major order.
func (m *Matrix) Elements() [9]float32 { return [9]float32(m.n) }

// SetIdentity resets the matrix to the identity.
func (m *Matrix) SetIdentity() *Matrix {
	m.n = math32.Identity()
	m.touch()
	return m
}

// Set sets all nine elements in row-major order.
func (m *Matrix) Set(a, b, c, d, e, f, g, h, i float32) *Matrix {
	m.n = math32.Matrix3{a, b, c, d, e, f, g, h, i}
	m.touch()
	return m
}

// SetMatrix3 sets the elements from a plain [math32.Matrix3].
func (m *Matrix) SetMatrix3(n math32.Matrix3) *Matrix {
	m.n = n
	m.touch()
	return m
}

// CopyFrom copies the elements and manual flag from o. The owner
// binding is not copied.
func (m *Matrix) CopyFrom(o *Matrix) *Matrix {
	m.n = o.n
	m.manual = o.manual
	m.touch()
	return m
}

// Clone returns an unbound copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{n: m.n, manual: m.manual}
}

// Multiply post-multiplies the matrix by o, so that o applies before
// the current transform.
func (m *Matrix) Multiply(o math32.Matrix3) *Matrix {
	m.n = m.n.Mul(o)
	m.touch()
	return m
}

// Translate post-multiplies by a translation.
func (m *Matrix) Translate(x, y float32) *Matrix {
	return m.Multiply(math32.Translate(x, y))
}

// Scale post-multiplies by a scale.
func (m *Matrix) Scale(x, y float32) *Matrix {
	return m.Multiply(math32.Scale(x, y))
}

// Rotate post-multiplies by a rotation of theta radians.
func (m *Matrix) Rotate(theta float32) *Matrix {
	return m.Multiply(math32.Rotate(theta))
}

// Skew post-multiplies by a skew of the given angles in radians.
func (m *Matrix) Skew(x, y float32) *Matrix {
	return m.Multiply(math32.Skew(x, y))
}

// SkewX post-multiplies by a skew about the x axis.
func (m *Matrix) SkewX(theta float32) *Matrix {
	return m.Multiply(math32.Skew(theta, 0))
}

// SkewY post-multiplies by a skew about the y axis.
func (m *Matrix) SkewY(theta float32) *Matrix {
	return m.Multiply(math32.Skew(0, theta))
}

// Inverse returns the inverse of the current elements, and false if
// the matrix is singular.
func (m *Matrix) Inverse() (math32.Matrix3, bool) {
	return m.n.Inverse()
}

func (m *Matrix) String() string { return m.n.String() }
