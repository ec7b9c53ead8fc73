// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/easel2d/easel/base/tolassert"
	"github.com/easel2d/easel/math32"
	"github.com/stretchr/testify/assert"
)

func TestTextDefaults(t *testing.T) {
	tx := NewText(nil, "hi")
	assert.Equal(t, "hi", tx.Value())
	assert.Equal(t, KindText, tx.Kind())
	assert.Equal(t, "sans-serif", tx.Family())
	assert.Equal(t, float32(13), tx.Size())
	assert.Equal(t, float32(17), tx.Leading())
	assert.Equal(t, AlignMiddle, tx.Alignment())
	assert.Equal(t, BaselineMiddle, tx.Baseline())
	assert.Equal(t, "normal", tx.Style())
	assert.Equal(t, float32(400), tx.Weight())
	assert.Equal(t, "none", tx.Decoration())
	assert.Nil(t, tx.Stroke())
	assert.NotNil(t, tx.Fill())
	assert.Nil(t, tx.Face())
}

func TestTextDirtyFlags(t *testing.T) {
	tx := NewText(nil, "hi")
	check := func(mutate func(), want ...Dirty) {
		t.Helper()
		tx.ClearDirty()
		mutate()
		var expected Dirty
		for _, f := range want {
			expected.SetFlag(true, f)
		}
		assert.Equal(t, expected, tx.Dirty())
	}
	check(func() { tx.SetValue("ho") }, DirtyValue)
	check(func() { tx.SetValue("ho") })
	check(func() { tx.SetFamily("serif") }, DirtyFamily)
	check(func() { tx.SetSize(20) }, DirtySize)
	check(func() { tx.SetLeading(24) }, DirtyLeading)
	check(func() { tx.SetAlignment(AlignEnd) }, DirtyAlignment)
	check(func() { tx.SetBaseline(BaselineTop) }, DirtyBaseline)
	check(func() { tx.SetStyle("italic") }, DirtyStyle)
	check(func() { tx.SetWeight(700) }, DirtyWeight)
	check(func() { tx.SetDecoration("underline") }, DirtyDecoration)
	check(func() { tx.SetFace(DefaultFace()) }, DirtyFamily)
}

func TestTextMeasure(t *testing.T) {
	assert.Equal(t, TextMetrics{}, NewText(nil, "").Measure())

	tx := NewText(nil, "Hello")
	m := tx.Measure()
	assert.Greater(t, m.Width, float32(0))
	assert.Greater(t, m.Ascent, float32(0))
	assert.Greater(t, m.Descent, float32(0))
	assert.Equal(t, m.Ascent+m.Descent, m.Height())

	// Measuring again without changes returns the cached metrics.
	assert.Equal(t, m, tx.Measure())

	// A larger size shapes wider.
	tx.SetSize(26)
	assert.Greater(t, tx.Measure().Width, m.Width)

	// A longer value shapes wider still.
	longer := NewText(nil, "Hello, world")
	longer.SetSize(26)
	assert.Greater(t, longer.Measure().Width, tx.Measure().Width)
}

func TestTextBoundingBox(t *testing.T) {
	tx := NewText(nil, "Hello")
	m := tx.Measure()
	h := m.Height()

	assert.Equal(t,
		math32.B2(-m.Width/2, -h/2, m.Width/2, h/2), tx.LocalBoundingBox())

	tx.SetAlignment(AlignStart)
	assert.Equal(t, math32.B2(0, -h/2, m.Width, h/2), tx.LocalBoundingBox())

	tx.SetAlignment(AlignEnd)
	assert.Equal(t, math32.B2(-m.Width, -h/2, 0, h/2), tx.LocalBoundingBox())

	tx.SetAlignment(AlignMiddle)
	tx.SetBaseline(BaselineTop)
	assert.Equal(t, math32.B2(-m.Width/2, 0, m.Width/2, h), tx.LocalBoundingBox())

	tx.SetBaseline(BaselineAlphabetic)
	assert.Equal(t,
		math32.B2(-m.Width/2, -m.Ascent, m.Width/2, m.Descent),
		tx.LocalBoundingBox())

	tx.SetBaseline(BaselineBottom)
	assert.Equal(t, math32.B2(-m.Width/2, -h, m.Width/2, 0), tx.LocalBoundingBox())

	// The position carries through the matrix.
	tx.SetBaseline(BaselineMiddle)
	tx.Position().Set(100, 50)
	assert.Equal(t,
		math32.B2(100-m.Width/2, 50-h/2, 100+m.Width/2, 50+h/2),
		tx.LocalBoundingBox())
}

func TestTextOrientation(t *testing.T) {
	// Detached text composes as authored.
	free := NewText(nil, "hi")
	free.Position().Set(5, 0)
	free.Update(false)
	q := free.Matrix().Matrix3().MulVector2AsPoint(math32.Vec2(1, 0))
	assert.Equal(t, math32.Vec2(6, 0), q)

	// Attached under the standard orientation, text picks up a quarter
	// turn along with the axis swap.
	sc := NewScene(100, 100)
	tx := NewText(sc, "hi")
	tx.Position().Set(5, 0)
	tx.Update(false)
	q = tx.Matrix().Matrix3().MulVector2AsPoint(math32.Vec2(1, 0))
	tolassert.EqualTol(t, 0, q.X, 1.0e-5)
	tolassert.EqualTol(t, 6, q.Y, 1.0e-5)
}

func TestTextSubdivide(t *testing.T) {
	assert.ErrorIs(t, NewText(nil, "hi").Subdivide(1), ErrNotImplemented)
}

func TestTextClone(t *testing.T) {
	tx := NewText(nil, "Hello")
	tx.SetFamily("serif")
	tx.SetSize(20)
	tx.SetAlignment(AlignEnd)
	tx.SetBaseline(BaselineTop)
	tx.SetWeight(700)
	tx.SetDecoration("underline")
	tx.Position().Set(3, 4)

	o := tx.Clone().(*Text)
	assert.NotEqual(t, tx.ID(), o.ID())
	assert.Equal(t, "Hello", o.Value())
	assert.Equal(t, "serif", o.Family())
	assert.Equal(t, float32(20), o.Size())
	assert.Equal(t, AlignEnd, o.Alignment())
	assert.Equal(t, BaselineTop, o.Baseline())
	assert.Equal(t, float32(700), o.Weight())
	assert.Equal(t, "underline", o.Decoration())
	assert.Equal(t, float32(3), o.Position().X())
	assert.Equal(t, allDirty, o.Dirty())
}
