// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// quarterHandle scales a radius to the cubic handle length that best
// approximates a quarter circle.
var quarterHandle = 4 * math32.Tan(math32.Pi/8) / 3

// Circle is a path whose four anchors and handles are derived from a
// radius.
type Circle struct {
	Path

	radius float32
}

// NewCircle returns a circle of the given radius positioned at
// (x, y).
func NewCircle(sc *Scene, x, y, radius float32) *Circle {
	c := &Circle{radius: radius}
	initPath(&c.Path, sc, quadrantAnchors(4)...)
	c.closed = true
	c.automatic = false
	c.position.Set(x, y)
	c.Update(false)
	return c
}

// quadrantAnchors returns n anchors ready to carry curve geometry:
// a Move followed by Curves, with relative handles.
func quadrantAnchors(n int) []*Anchor {
	anchors := make([]*Anchor, n)
	for i := range anchors {
		anchors[i] = NewAnchor(0, 0)
		if i > 0 {
			anchors[i].command = CurveTo
		}
	}
	return anchors
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float32 { return c.radius }

// SetRadius sets the circle's radius; the anchors are rederived on
// the next update.
func (c *Circle) SetRadius(r float32) {
	if c.radius == r {
		return
	}
	c.radius = r
	c.dirty.SetFlag(true, DirtyRadius)
}

// Update rederives the anchors from the radius when it changed, then
// runs the path update.
func (c *Circle) Update(bubble bool) {
	if c.dirty.HasFlag(DirtyRadius) {
		c.plotCircle()
		c.dirty.SetFlag(false, DirtyRadius)
	}
	c.Path.Update(bubble)
}

func (c *Circle) plotCircle() {
	r := c.radius
	k := quarterHandle * r
	for i, a := range c.vertices.items {
		sin, cos := math32.Sincos(float32(i) * math32.Pi / 2)
		a.origin.Set(r*cos, r*sin)
		a.left.Set(k*sin, -k*cos)
		a.right.Set(-k*sin, k*cos)
	}
}

// Clone returns an independent copy of the circle.
func (c *Circle) Clone() Shape {
	o := NewCircle(c.scene, 0, 0, c.radius)
	o.copyStyleFrom(&c.ShapeBase)
	return o
}
