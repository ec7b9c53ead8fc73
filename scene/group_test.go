// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/easel2d/easel/colors"
	"github.com/easel2d/easel/math32"
	"github.com/stretchr/testify/assert"
)

func TestGroupAddRemove(t *testing.T) {
	g := NewGroup(nil)
	a := NewPath(nil, NewAnchor(0, 0), NewAnchor(2, 0))
	b := NewPath(nil, NewAnchor(0, 0), NewAnchor(0, 3))

	g.Add(a, b)
	assert.Equal(t, 2, g.Children().Len())
	assert.Same(t, g, a.Parent())
	assert.Equal(t, []Shape{a, b}, g.Additions())
	assert.True(t, g.Dirty().HasFlag(DirtyAdditions))
	assert.True(t, g.Dirty().HasFlag(DirtyLength))

	g.ClearDirty()
	assert.Empty(t, g.Additions())
	assert.Empty(t, g.Subtractions())

	g.Remove(b)
	assert.Equal(t, 1, g.Children().Len())
	assert.Nil(t, b.Parent())
	assert.Equal(t, []Shape{b}, g.Subtractions())
	assert.True(t, g.Dirty().HasFlag(DirtySubtractions))

	// Removal disposes the shape: its anchors stop notifying it.
	b.ClearDirty()
	b.Vertices().At(0).Origin().SetX(5)
	assert.Equal(t, Dirty(0), b.Dirty())

	// Shapes belonging to another group are ignored.
	other := NewGroup(nil)
	c := NewPath(nil)
	other.Add(c)
	g.ClearDirty()
	g.Remove(c)
	assert.True(t, other.Children().Contains(c))
	assert.Empty(t, g.Subtractions())

	// So are nils.
	g.Add(nil)
	g.Remove(nil)
	assert.Equal(t, 1, g.Children().Len())
}

func TestGroupReparent(t *testing.T) {
	g1 := NewGroup(nil)
	g2 := NewGroup(nil)
	p := NewPath(nil, NewAnchor(0, 0), NewAnchor(1, 0))
	g1.Add(p)
	g1.ClearDirty()

	g2.Add(p)
	assert.Same(t, g2, p.Parent())
	assert.False(t, g1.Children().Contains(p))
	assert.Equal(t, []Shape{p}, g1.Subtractions())
	assert.Empty(t, g1.Additions())
	assert.Equal(t, []Shape{p}, g2.Additions())
	assert.Empty(t, g2.Subtractions())
	assert.True(t, g1.Dirty().HasFlag(DirtyLength))

	// Adding and removing within one frame leaves only the removal
	// queued.
	g2.Children().Remove(p)
	assert.Nil(t, p.Parent())
	assert.Empty(t, g2.Additions())
	assert.Equal(t, []Shape{p}, g2.Subtractions())

	// Adding back leaves only the addition.
	g2.Add(p)
	assert.Equal(t, []Shape{p}, g2.Additions())
	assert.Empty(t, g2.Subtractions())
}

func TestGroupReAddMovesToEnd(t *testing.T) {
	g := NewGroup(nil)
	a, b := NewPath(nil), NewPath(nil)
	g.Add(a, b)
	g.ClearDirty()

	g.Add(a)
	assert.Equal(t, []Shape{b, a}, g.Children().Values())
	assert.True(t, g.Dirty().HasFlag(DirtyOrder))
	// The child was already present, so renderers see no addition.
	assert.Empty(t, g.Additions())
}

func TestGroupLength(t *testing.T) {
	g := NewGroup(nil,
		NewPath(nil, NewAnchor(0, 0), NewAnchor(2, 0)),
		NewPath(nil, NewAnchor(0, 0), NewAnchor(0, 3)))
	assert.Equal(t, float32(5), g.Length())
}

func TestGroupDistribute(t *testing.T) {
	mk := func() *Path { return NewPath(nil, NewAnchor(0, 0), NewAnchor(10, 0)) }
	a, b, c := mk(), mk(), mk()
	g := NewGroup(nil, a, b, c)

	g.SetBeginning(0.5)
	g.Update(false)
	assert.Equal(t, float32(1), a.Beginning())
	assert.Equal(t, float32(1), a.Ending())
	assert.Equal(t, float32(0.5), b.Beginning())
	assert.Equal(t, float32(1), b.Ending())
	assert.Equal(t, float32(0), c.Beginning())
	assert.Equal(t, float32(1), c.Ending())
	assert.False(t, g.Dirty().HasFlag(DirtyBeginning))

	g.SetBeginning(0)
	g.SetEnding(0.25)
	g.Update(false)
	assert.Equal(t, float32(0), a.Beginning())
	assert.Equal(t, float32(0.75), a.Ending())
	assert.Equal(t, float32(0), b.Beginning())
	assert.Equal(t, float32(0), b.Ending())
	assert.Equal(t, float32(0), c.Ending())

	// A reversed range distributes the same window.
	g.SetBeginning(1)
	g.SetEnding(0.5)
	g.Update(false)
	assert.Equal(t, float32(1), a.Beginning())
	assert.Equal(t, float32(0.5), b.Beginning())
	assert.Equal(t, float32(1), b.Ending())
}

func TestGroupFanOut(t *testing.T) {
	inner := NewPath(nil, NewAnchor(0, 0), NewAnchor(1, 0))
	sub := NewGroup(nil, inner)
	outer := NewGroup(nil, sub)

	outer.SetLinewidth(3)
	assert.Equal(t, float32(3), inner.Linewidth())

	outer.SetCap(CapRound)
	outer.SetJoin(JoinBevel)
	assert.Equal(t, CapRound, inner.Cap())
	assert.Equal(t, JoinBevel, inner.Join())

	u := colors.Uniform(colors.FromRGB(0, 128, 0))
	outer.SetFill(u)
	assert.Same(t, u, sub.Fill())
	assert.Same(t, u, inner.Fill())

	outer.SetVisible(false)
	assert.False(t, inner.Visible())
}

func TestGroupLookups(t *testing.T) {
	p1 := NewPath(nil)
	p1.SetClassName("red hot")
	p2 := NewPath(nil)
	p2.SetClassName("red")
	tx := NewText(nil, "hi")
	sub := NewGroup(nil, p2, tx)
	g := NewGroup(nil, p1, sub)

	assert.Same(t, p2, g.ByID(p2.ID()))
	assert.Same(t, sub, g.ByID(sub.ID()))
	assert.Nil(t, g.ByID("missing"))

	assert.Equal(t, []Shape{p1, p2}, g.ByClassName("red"))
	assert.Equal(t, []Shape{p1}, g.ByClassName("hot"))
	assert.Empty(t, g.ByClassName("blue"))

	assert.Equal(t, []Shape{p1, p2}, g.ByKind(KindPath))
	assert.Equal(t, []Shape{sub}, g.ByKind(KindGroup))
	assert.Equal(t, []Shape{tx}, g.ByKind(KindText))
}

func TestGroupBoundingBox(t *testing.T) {
	p1 := NewPath(nil, NewAnchor(0, 0), NewAnchor(2, 0))
	p1.SetStroke(nil)
	p2 := NewPath(nil, NewAnchor(0, 5), NewAnchor(0, 9))
	p2.SetStroke(nil)
	g := NewGroup(nil, p1, p2)
	g.Position().Set(10, 0)

	assert.Equal(t, math32.B2(10, 0, 12, 9), g.BoundingBox())
	assert.Equal(t, math32.B2(10, 0, 12, 9), g.LocalBoundingBox())
	assert.True(t, NewGroup(nil).BoundingBox().IsEmpty())
}

func TestGroupSubdivide(t *testing.T) {
	p := NewPath(nil, NewAnchor(0, 0), NewAnchor(10, 0))
	tx := NewText(nil, "hi")
	g := NewGroup(nil, p, tx)

	// Kinds that cannot subdivide are skipped, not failed on.
	assert.NoError(t, g.Subdivide(1))
	assert.Equal(t, 3, p.Vertices().Len())
}

func TestGroupClone(t *testing.T) {
	p := NewPath(nil, NewAnchor(0, 0), NewAnchor(3, 0))
	sub := NewGroup(nil, p)
	g := NewGroup(nil, sub)
	g.SetLinewidth(7)
	g.Position().Set(1, 2)

	c := g.Clone().(*Group)
	assert.NotEqual(t, g.ID(), c.ID())
	assert.Equal(t, float32(7), c.Linewidth())
	assert.Equal(t, float32(1), c.Position().X())
	assert.Equal(t, 1, c.Children().Len())

	csub, ok := c.Children().At(0).(*Group)
	assert.True(t, ok)
	assert.NotSame(t, sub, csub)
	assert.Same(t, c, csub.Parent())

	cp, ok := csub.Children().At(0).(*Path)
	assert.True(t, ok)
	assert.NotSame(t, p, cp)
	assert.Equal(t, 2, cp.Vertices().Len())
	assert.Equal(t, float32(7), cp.Linewidth())

	// The clone's shapes are independent of the source's.
	p.Update(false)
	p.ClearDirty()
	cp.Vertices().At(0).Origin().SetX(9)
	assert.Equal(t, Dirty(0), p.Dirty())
}

func TestGroupDispose(t *testing.T) {
	p := NewPath(nil)
	g := NewGroup(nil, p)
	g.Dispose()

	// The children are left alone.
	assert.Same(t, g, p.Parent())

	// The reparenting protocol is off afterwards.
	q := NewPath(nil)
	g.Children().Add(q)
	assert.True(t, g.Children().Contains(q))
	assert.Nil(t, q.Parent())
}

func TestGroupScenePropagation(t *testing.T) {
	sc := NewScene(800, 600)
	p := NewPath(nil, NewAnchor(0, 0), NewAnchor(1, 0))
	sub := NewGroup(nil, p)
	assert.Nil(t, p.Scene())

	sc.Root.Add(sub)
	assert.Same(t, sc, sub.Scene())
	assert.Same(t, sc, p.Scene())
}
