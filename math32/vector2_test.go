// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/easel2d/easel/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func TestVector2Arithmetic(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, -4)

	assert.Equal(t, Vec2(4, -2), a.Add(b))
	assert.Equal(t, Vec2(-2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(0.5, 1), a.DivScalar(2))
	assert.Equal(t, Vec2(2, 3), a.AddScalar(1))
	assert.Equal(t, Vec2(0, 1), a.SubScalar(1))
	assert.Equal(t, Vec2(-1, -2), a.Negate())
	assert.Equal(t, Vec2(3, 4), b.Abs())

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec2(4, -2), c)
	c.SetSub(b)
	assert.Equal(t, a, c)
	c.SetMul(b)
	assert.Equal(t, Vec2(3, -8), c)
}

func TestVector2MinMax(t *testing.T) {
	a := Vec2(1, 5)
	b := Vec2(3, 2)

	assert.Equal(t, Vec2(1, 2), a.Min(b))
	assert.Equal(t, Vec2(3, 5), a.Max(b))

	c := a
	c.SetMin(b)
	assert.Equal(t, Vec2(1, 2), c)
	c = a
	c.SetMax(b)
	assert.Equal(t, Vec2(3, 5), c)
}

func TestVector2Rounding(t *testing.T) {
	v := Vec2(1.4, -1.6)
	assert.Equal(t, Vec2(1, -2), v.Floor())
	assert.Equal(t, Vec2(2, -1), v.Ceil())
	assert.Equal(t, Vec2(1, -2), v.Round())
}

func TestVector2Products(t *testing.T) {
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)

	assert.Equal(t, float32(0), vx.Dot(vy))
	assert.Equal(t, float32(1), vx.Dot(vx))
	assert.Equal(t, float32(1), vx.Cross(vy))
	assert.Equal(t, float32(-1), vy.Cross(vx))

	tolassert.EqualTol(t, 5, Vec2(3, 4).Length(), standardTol)
	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
	tolassert.EqualTol(t, 5, Vec2(0, 0).DistanceTo(Vec2(3, 4)), standardTol)
	assert.Equal(t, float32(25), Vec2(0, 0).DistanceToSquared(Vec2(3, 4)))
}

func TestVector2Normal(t *testing.T) {
	n := Vec2(3, 4).Normal()
	tolAssertEqualVector(t, standardTol, Vec2(0.6, 0.8), n)
	tolassert.EqualTol(t, 1, n.Length(), standardTol)

	// A zero vector has no direction and normalizes to zero.
	assert.Equal(t, Vec2(0, 0), Vec2(0, 0).Normal())
}

func TestVector2Angle(t *testing.T) {
	tolassert.EqualTol(t, 0, Vec2(1, 0).Angle(), standardTol)
	tolassert.EqualTol(t, Pi/2, Vec2(0, 1).Angle(), standardTol)
	tolassert.EqualTol(t, Pi, Vec2(-1, 0).Angle(), standardTol)
	tolassert.EqualTol(t, -Pi/2, Vec2(0, -1).Angle(), standardTol)
}

func TestVector2Rotate(t *testing.T) {
	vx := Vec2(1, 0)
	tolAssertEqualVector(t, standardTol, Vec2(0, 1), vx.Rotate(Pi/2))
	tolAssertEqualVector(t, standardTol, Vec2(-1, 0), vx.Rotate(Pi))
	tolAssertEqualVector(t, standardTol, Vec2(0, -1), vx.Rotate(-Pi/2))
	tolAssertEqualVector(t, standardTol, vx, vx.Rotate(Pi/3).Rotate(-Pi/3))
}

func TestVector2Lerp(t *testing.T) {
	a := Vec2(0, 0)
	b := Vec2(10, -20)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	tolAssertEqualVector(t, standardTol, Vec2(5, -10), a.Lerp(b, 0.5))
}

func TestVector2AlmostEqual(t *testing.T) {
	a := Vec2(1, 1)
	assert.True(t, a.AlmostEqual(Vec2(1.0005, 0.9995), 0.001))
	assert.False(t, a.AlmostEqual(Vec2(1.1, 1), 0.001))
}
