// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/easel2d/easel/math32"
	"github.com/stretchr/testify/assert"
)

func newPointRow(n int) *Points {
	p := NewPoints(nil)
	for i := 0; i < n; i++ {
		p.Vertices().Add(NewVector(float32(i), 0))
	}
	return p
}

func TestPointsDefaults(t *testing.T) {
	p := NewPoints(nil)
	assert.Equal(t, KindPoints, p.Kind())
	assert.Equal(t, float32(1), p.Size())
	assert.False(t, p.SizeAttenuation())
	assert.Equal(t, 0, p.Vertices().Len())

	p.Update(false)
	assert.Empty(t, p.RenderedVertices())
	assert.True(t, p.LocalBoundingBox().IsEmpty())
}

func TestPointsDirtyFlags(t *testing.T) {
	p := newPointRow(2)
	p.Update(false)
	p.ClearDirty()

	// Unlike curve shapes, points carry no arc length.
	p.Vertices().At(0).SetX(5)
	assert.True(t, p.Dirty().HasFlag(DirtyVertices))
	assert.False(t, p.Dirty().HasFlag(DirtyLength))

	p.ClearDirty()
	p.Vertices().Add(NewVector(9, 9))
	assert.True(t, p.Dirty().HasFlag(DirtyVertices))

	p.ClearDirty()
	p.SetSize(4)
	assert.True(t, p.Dirty().HasFlag(DirtySize))
	p.SetSizeAttenuation(true)
	assert.True(t, p.Dirty().HasFlag(DirtySizeAttenuation))

	// A removed vector stops notifying.
	v := p.Vertices().At(2)
	p.Vertices().Remove(v)
	p.ClearDirty()
	v.SetX(7)
	assert.False(t, p.Dirty().HasFlag(DirtyVertices))
}

func TestPointsIndexTrim(t *testing.T) {
	p := newPointRow(5)
	p.Update(false)
	assert.Len(t, p.RenderedVertices(), 5)

	// Trimming selects a contiguous index window.
	p.SetBeginning(0.25)
	p.SetEnding(0.75)
	p.Update(false)
	assert.Equal(t, []math32.Vector2{
		math32.Vec2(1, 0), math32.Vec2(2, 0), math32.Vec2(3, 0),
	}, p.RenderedVertices())

	// A reversed range selects the same window.
	p.SetBeginning(0.75)
	p.SetEnding(0.25)
	p.MarkDirty(DirtyVertices)
	p.Update(false)
	assert.Len(t, p.RenderedVertices(), 3)

	// Fractional boundaries round inward.
	p.SetBeginning(0.3)
	p.SetEnding(1)
	p.MarkDirty(DirtyVertices)
	p.Update(false)
	assert.Equal(t, []math32.Vector2{
		math32.Vec2(2, 0), math32.Vec2(3, 0), math32.Vec2(4, 0),
	}, p.RenderedVertices())

	// A zero width window still lands on a point.
	p.SetBeginning(0.5)
	p.SetEnding(0.5)
	p.MarkDirty(DirtyVertices)
	p.Update(false)
	assert.Equal(t, []math32.Vector2{math32.Vec2(2, 0)}, p.RenderedVertices())
}

func TestPointsBoundingBox(t *testing.T) {
	p := newPointRow(5)

	// The dot radius pads the bounds; without attenuation it ignores
	// the transform.
	assert.Equal(t, math32.B2(-0.5, -0.5, 4.5, 0.5), p.LocalBoundingBox())

	p.SetScale(2)
	assert.Equal(t, math32.B2(-0.5, -0.5, 8.5, 0.5), p.LocalBoundingBox())

	p.SetSizeAttenuation(true)
	assert.Equal(t, math32.B2(-1, -1, 9, 1), p.LocalBoundingBox())

	p.SetSize(2)
	assert.Equal(t, math32.B2(-2, -2, 10, 2), p.LocalBoundingBox())
}

func TestPointsClone(t *testing.T) {
	p := newPointRow(3)
	p.SetSize(4)
	p.SetSizeAttenuation(true)
	p.SetLinewidth(2)

	o := p.Clone().(*Points)
	assert.NotEqual(t, p.ID(), o.ID())
	assert.Equal(t, 3, o.Vertices().Len())
	assert.Equal(t, float32(4), o.Size())
	assert.True(t, o.SizeAttenuation())
	assert.Equal(t, float32(2), o.Linewidth())

	// Cloned vectors notify the clone, not the source.
	p.Update(false)
	p.ClearDirty()
	o.ClearDirty()
	o.Vertices().At(0).SetX(9)
	assert.Equal(t, Dirty(0), p.Dirty())
	assert.True(t, o.Dirty().HasFlag(DirtyVertices))
	assert.Equal(t, float32(0), p.Vertices().At(0).X())
}

func TestPointsDispose(t *testing.T) {
	p := newPointRow(2)
	p.Update(false)
	p.ClearDirty()
	p.Dispose()

	p.Vertices().At(0).SetX(3)
	assert.Equal(t, Dirty(0), p.Dirty())
}
