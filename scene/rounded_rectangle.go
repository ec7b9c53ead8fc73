// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// RoundedRectangle is a path alternating straight edges with curved
// corners, derived from a width, a height, and a corner radius.
type RoundedRectangle struct {
	Path

	width  float32
	height float32
	radius float32
}

// NewRoundedRectangle returns a width by height rectangle with
// rounded corners of the given radius, positioned at (x, y) and
// centered on its position.
func NewRoundedRectangle(sc *Scene, x, y, width, height, radius float32) *RoundedRectangle {
	r := &RoundedRectangle{width: width, height: height, radius: radius}
	anchors := make([]*Anchor, 9)
	for i := range anchors {
		anchors[i] = NewAnchor(0, 0)
		switch {
		case i == 0:
			anchors[i].command = MoveTo
		case i%2 == 0:
			anchors[i].command = CurveTo
		default:
			anchors[i].command = LineTo
		}
	}
	initPath(&r.Path, sc, anchors...)
	r.closed = true
	r.automatic = false
	r.position.Set(x, y)
	r.Update(false)
	return r
}

// Width returns the rectangle's width.
func (r *RoundedRectangle) Width() float32 { return r.width }

// SetWidth sets the rectangle's width.
func (r *RoundedRectangle) SetWidth(w float32) {
	if r.width == w {
		return
	}
	r.width = w
	r.dirty.SetFlag(true, DirtyWidth)
}

// Height returns the rectangle's height.
func (r *RoundedRectangle) Height() float32 { return r.height }

// SetHeight sets the rectangle's height.
func (r *RoundedRectangle) SetHeight(h float32) {
	if r.height == h {
		return
	}
	r.height = h
	r.dirty.SetFlag(true, DirtyHeight)
}

// Radius returns the corner radius.
func (r *RoundedRectangle) Radius() float32 { return r.radius }

// SetRadius sets the corner radius. It is clamped to half the shorter
// side when the anchors are derived.
func (r *RoundedRectangle) SetRadius(radius float32) {
	if r.radius == radius {
		return
	}
	r.radius = radius
	r.dirty.SetFlag(true, DirtyRadius)
}

// Update rederives the anchors when the size or corner radius
// changed, then runs the path update.
func (r *RoundedRectangle) Update(bubble bool) {
	if r.dirty.HasFlag(DirtyWidth) || r.dirty.HasFlag(DirtyHeight) ||
		r.dirty.HasFlag(DirtyRadius) {
		r.plotRounded()
		r.dirty.SetFlag(false, DirtyWidth, DirtyHeight, DirtyRadius)
	}
	r.Path.Update(bubble)
}

func (r *RoundedRectangle) plotRounded() {
	hw, hh := r.width/2, r.height/2
	cr := math32.Clamp(r.radius, 0, math32.Min(hw, hh))
	items := r.vertices.items

	// Edges run clockwise from the top-left corner; every curve
	// anchor rounds the corner behind it, with its left handle on
	// the corner point.
	set := func(i int, x, y, lx, ly float32) {
		items[i].origin.Set(x, y)
		items[i].left.Set(lx, ly)
		items[i].right.Set(0, 0)
	}
	set(0, -hw+cr, -hh, 0, 0)
	set(1, hw-cr, -hh, 0, 0)
	set(2, hw, -hh+cr, 0, -cr)
	set(3, hw, hh-cr, 0, 0)
	set(4, hw-cr, hh, cr, 0)
	set(5, -hw+cr, hh, 0, 0)
	set(6, -hw, hh-cr, 0, cr)
	set(7, -hw, -hh+cr, 0, 0)
	set(8, -hw+cr, -hh, -cr, 0)
}

// Clone returns an independent copy of the rounded rectangle.
func (r *RoundedRectangle) Clone() Shape {
	o := NewRoundedRectangle(r.scene, 0, 0, r.width, r.height, r.radius)
	o.copyStyleFrom(&r.ShapeBase)
	return o
}
