// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/easel2d/easel/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.True(t, Equal(1+Epsilon/2, 1))
	assert.False(t, Equal(1, 1.1))
	assert.True(t, EqualPoint(Vec2(1, 2), Vec2(1, 2+Epsilon/2)))
	assert.False(t, EqualPoint(Vec2(1, 2), Vec2(1.1, 2)))
}

func TestSolveQuadraticFormula(t *testing.T) {
	// x^2 - 3x + 2 = 0
	x1, x2 := solveQuadraticFormula(1, -3, 2)
	tolassert.EqualTol(t, 1, x1, standardTol)
	tolassert.EqualTol(t, 2, x2, standardTol)

	// 2x - 4 = 0
	x1, x2 = solveQuadraticFormula(0, 2, -4)
	tolassert.EqualTol(t, 2, x1, standardTol)
	assert.True(t, IsNaN(x2))

	// x^2 + 1 = 0 has no real roots
	x1, x2 = solveQuadraticFormula(1, 0, 1)
	assert.True(t, IsNaN(x1))
	assert.True(t, IsNaN(x2))

	// 5 = 0 has no solutions
	x1, x2 = solveQuadraticFormula(0, 0, 5)
	assert.True(t, IsNaN(x1))
	assert.True(t, IsNaN(x2))

	// 0 = 0 is satisfied everywhere
	x1, x2 = solveQuadraticFormula(0, 0, 0)
	assert.Equal(t, float32(0), x1)
	assert.True(t, IsNaN(x2))
}

func TestCubicBezierPoint(t *testing.T) {
	p0 := Vec2(0, 0)
	c0 := Vec2(0, 1)
	c1 := Vec2(1, 1)
	p1 := Vec2(1, 0)

	assert.Equal(t, p0, CubicBezierPoint(p0, c0, c1, p1, 0))
	assert.Equal(t, p1, CubicBezierPoint(p0, c0, c1, p1, 1))
	tolAssertEqualVector(t, standardTol, Vec2(0.5, 0.75), CubicBezierPoint(p0, c0, c1, p1, 0.5))
}

func TestCubicBezierSplit(t *testing.T) {
	p0 := Vec2(0, 0)
	c0 := Vec2(0, 1)
	c1 := Vec2(1, 1)
	p1 := Vec2(1, 0)

	left, right := CubicBezierSplit(p0, c0, c1, p1, 0.5)
	assert.Equal(t, p0, left[0])
	assert.Equal(t, p1, right[3])
	assert.Equal(t, left[3], right[0])
	tolAssertEqualVector(t, standardTol, CubicBezierPoint(p0, c0, c1, p1, 0.5), left[3])

	// The halves trace the same points as the whole.
	tolAssertEqualVector(t, standardTol,
		CubicBezierPoint(p0, c0, c1, p1, 0.25),
		CubicBezierPoint(left[0], left[1], left[2], left[3], 0.5))
	tolAssertEqualVector(t, standardTol,
		CubicBezierPoint(p0, c0, c1, p1, 0.75),
		CubicBezierPoint(right[0], right[1], right[2], right[3], 0.5))
}

func TestCubicBezierLength(t *testing.T) {
	// Control net on the chord: length is the chord.
	l := CubicBezierLength(Vec2(0, 0), Vec2(1, 0), Vec2(2, 0), Vec2(3, 0), 0)
	tolassert.EqualTol(t, 3, l, standardTol)

	// Fully degenerate curve.
	p := Vec2(2, -1)
	assert.Equal(t, float32(0), CubicBezierLength(p, p, p, p, 0))

	// Quarter of the unit circle: handle length 4*tan(pi/8)/3.
	k := 4 * Tan(Pi/8) / 3
	l = CubicBezierLength(Vec2(1, 0), Vec2(1, k), Vec2(k, 1), Vec2(0, 1), 0)
	tolassert.EqualTol(t, Pi/2, l, 1.0e-3)

	// A non-positive limit falls back to the default.
	curve := [4]Vector2{Vec2(0, 0), Vec2(0, 1), Vec2(1, 1), Vec2(1, 0)}
	assert.Equal(t,
		CubicBezierLength(curve[0], curve[1], curve[2], curve[3], DefaultLengthLimit),
		CubicBezierLength(curve[0], curve[1], curve[2], curve[3], -1))
}

func TestCubicBezierBounds(t *testing.T) {
	// An arch rises above its endpoints.
	b := CubicBezierBounds(Vec2(0, 0), Vec2(0, 1), Vec2(1, 1), Vec2(1, 0))
	tolAssertEqualVector(t, standardTol, Vec2(0, 0), b.Min)
	tolAssertEqualVector(t, standardTol, Vec2(1, 0.75), b.Max)

	// A straight diagonal is bounded by its endpoints.
	b = CubicBezierBounds(Vec2(0, 0), Vec2(0.5, 0.5), Vec2(1.5, 1.5), Vec2(2, 2))
	assert.Equal(t, B2(0, 0, 2, 2), b)
}
