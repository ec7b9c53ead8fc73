// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Rectangle is a path whose four corner anchors are derived from a
// width, a height, and an origin offset within the rectangle.
type Rectangle struct {
	Path

	width  float32
	height float32

	// origin offsets the corners so the shape's position lands
	// somewhere other than the center.
	origin *Vector
}

// NewRectangle returns a width by height rectangle positioned at
// (x, y), centered on its position.
func NewRectangle(sc *Scene, x, y, width, height float32) *Rectangle {
	r := &Rectangle{width: width, height: height}
	anchors := make([]*Anchor, 4)
	for i := range anchors {
		anchors[i] = NewAnchor(0, 0)
		if i > 0 {
			anchors[i].command = LineTo
		}
	}
	initPath(&r.Path, sc, anchors...)
	r.origin = NewVector(0, 0)
	r.origin.bind(func() {
		r.dirty.SetFlag(true, DirtyWidth)
	})
	r.closed = true
	r.automatic = false
	r.position.Set(x, y)
	r.Update(false)
	return r
}

// Width returns the rectangle's width.
func (r *Rectangle) Width() float32 { return r.width }

// SetWidth sets the rectangle's width.
func (r *Rectangle) SetWidth(w float32) {
	if r.width == w {
		return
	}
	r.width = w
	r.dirty.SetFlag(true, DirtyWidth)
}

// Height returns the rectangle's height.
func (r *Rectangle) Height() float32 { return r.height }

// SetHeight sets the rectangle's height.
func (r *Rectangle) SetHeight(h float32) {
	if r.height == h {
		return
	}
	r.height = h
	r.dirty.SetFlag(true, DirtyHeight)
}

// Origin is the reactive offset of the rectangle's corners from its
// position. Zero keeps the rectangle centered.
func (r *Rectangle) Origin() *Vector { return r.origin }

// Update rederives the corner anchors when the size or origin
// changed, then runs the path update.
func (r *Rectangle) Update(bubble bool) {
	if r.dirty.HasFlag(DirtyWidth) || r.dirty.HasFlag(DirtyHeight) {
		r.plotRectangle()
		r.dirty.SetFlag(false, DirtyWidth, DirtyHeight)
	}
	r.Path.Update(bubble)
}

func (r *Rectangle) plotRectangle() {
	hw, hh := r.width/2, r.height/2
	ox, oy := r.origin.x, r.origin.y
	corners := [4][2]float32{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}
	for i, a := range r.vertices.items {
		a.origin.Set(corners[i][0]-ox, corners[i][1]-oy)
	}
}

// Clone returns an independent copy of the rectangle.
func (r *Rectangle) Clone() Shape {
	o := NewRectangle(r.scene, 0, 0, r.width, r.height)
	o.origin.Set(r.origin.x, r.origin.y)
	o.copyStyleFrom(&r.ShapeBase)
	return o
}
