// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Empty(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec2(1, 2))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(1, 2, 1, 2), b)

	b.ExpandByPoint(Vec2(-1, 4))
	assert.Equal(t, B2(-1, 2, 1, 4), b)
}

func TestBox2Expand(t *testing.T) {
	b := B2(0, 0, 1, 1)
	b.ExpandByScalar(1)
	assert.Equal(t, B2(-1, -1, 2, 2), b)

	b = B2(0, 0, 1, 1)
	b.ExpandByVector(Vec2(1, 2))
	assert.Equal(t, B2(-1, -2, 2, 3), b)

	b = B2(0, 0, 1, 1)
	b.ExpandByBox(B2(-1, 0.5, 0.5, 3))
	assert.Equal(t, B2(-1, 0, 1, 3), b)
}

func TestBox2UnionIntersect(t *testing.T) {
	a := B2(0, 0, 2, 2)
	b := B2(1, 1, 3, 3)
	assert.Equal(t, B2(0, 0, 3, 3), a.Union(b))
	assert.Equal(t, B2(1, 1, 2, 2), a.Intersect(b))
	assert.True(t, a.IntersectsBox(b))
	assert.False(t, a.IntersectsBox(B2(5, 5, 6, 6)))
}

func TestBox2CenterSize(t *testing.T) {
	b := B2(-1, -2, 3, 4)
	assert.Equal(t, Vec2(1, 1), b.Center())
	assert.Equal(t, Vec2(4, 6), b.Size())

	var c Box2
	c.SetFromCenterAndSize(Vec2(1, 1), Vec2(4, 6))
	assert.Equal(t, b, c)
}

func TestBox2Contains(t *testing.T) {
	b := B2(0, 0, 2, 2)
	assert.True(t, b.ContainsPoint(Vec2(1, 1)))
	assert.True(t, b.ContainsPoint(Vec2(0, 2))) // edges count
	assert.False(t, b.ContainsPoint(Vec2(3, 1)))
	assert.True(t, b.ContainsBox(B2(0.5, 0.5, 1.5, 1.5)))
	assert.True(t, b.ContainsBox(b))
	assert.False(t, b.ContainsBox(B2(1, 1, 3, 3)))
}

func TestBox2Translate(t *testing.T) {
	assert.Equal(t, B2(1, 2, 3, 4), B2(0, 0, 2, 2).Translate(Vec2(1, 2)))
}

func TestBox2SetFromPoints(t *testing.T) {
	var b Box2
	b.SetFromPoints([]Vector2{Vec2(1, 5), Vec2(-2, 0), Vec2(4, 3)})
	assert.Equal(t, B2(-2, 0, 4, 5), b)

	b.SetFromPoints(nil)
	assert.True(t, b.IsEmpty())
}

func TestBox2Canon(t *testing.T) {
	assert.Equal(t, B2(0, 1, 2, 3), B2(2, 1, 0, 3).Canon())
	assert.Equal(t, B2(0, 1, 2, 3), B2(0, 3, 2, 1).Canon())
	assert.Equal(t, B2(0, 1, 2, 3), B2(0, 1, 2, 3).Canon())
}

func TestBox2MulMatrix3(t *testing.T) {
	b := B2(0, 0, 2, 1)

	assert.Equal(t, B2(3, 4, 5, 5), b.MulMatrix3(Translate(3, 4)))

	// Rotating 90 degrees sends (x, y) to (-y, x).
	r := b.MulMatrix3(Rotate(DegToRad(90)))
	tolAssertEqualVector(t, standardTol, Vec2(-1, 0), r.Min)
	tolAssertEqualVector(t, standardTol, Vec2(0, 2), r.Max)
}
