// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// Ellipse is a path whose four anchors and handles are derived from a
// pair of radii.
type Ellipse struct {
	Path

	rx float32
	ry float32
}

// NewEllipse returns an ellipse with the given x and y radii
// positioned at (x, y).
func NewEllipse(sc *Scene, x, y, rx, ry float32) *Ellipse {
	e := &Ellipse{rx: rx, ry: ry}
	initPath(&e.Path, sc, quadrantAnchors(4)...)
	e.closed = true
	e.automatic = false
	e.position.Set(x, y)
	e.Update(false)
	return e
}

// RadiusX returns the radius along the x axis.
func (e *Ellipse) RadiusX() float32 { return e.rx }

// SetRadiusX sets the radius along the x axis.
func (e *Ellipse) SetRadiusX(rx float32) {
	if e.rx == rx {
		return
	}
	e.rx = rx
	e.dirty.SetFlag(true, DirtyWidth)
}

// RadiusY returns the radius along the y axis.
func (e *Ellipse) RadiusY() float32 { return e.ry }

// SetRadiusY sets the radius along the y axis.
func (e *Ellipse) SetRadiusY(ry float32) {
	if e.ry == ry {
		return
	}
	e.ry = ry
	e.dirty.SetFlag(true, DirtyHeight)
}

// SetRadii sets both radii.
func (e *Ellipse) SetRadii(rx, ry float32) {
	e.SetRadiusX(rx)
	e.SetRadiusY(ry)
}

// Update rederives the anchors from the radii when either changed,
// then runs the path update.
func (e *Ellipse) Update(bubble bool) {
	if e.dirty.HasFlag(DirtyWidth) || e.dirty.HasFlag(DirtyHeight) {
		e.plotEllipse()
		e.dirty.SetFlag(false, DirtyWidth, DirtyHeight)
	}
	e.Path.Update(bubble)
}

func (e *Ellipse) plotEllipse() {
	kx := quarterHandle * e.rx
	ky := quarterHandle * e.ry
	for i, a := range e.vertices.items {
		sin, cos := math32.Sincos(float32(i) * math32.Pi / 2)
		a.origin.Set(e.rx*cos, e.ry*sin)
		a.left.Set(kx*sin, -ky*cos)
		a.right.Set(-kx*sin, ky*cos)
	}
}

// Clone returns an independent copy of the ellipse.
func (e *Ellipse) Clone() Shape {
	o := NewEllipse(e.scene, 0, 0, e.rx, e.ry)
	o.copyStyleFrom(&e.ShapeBase)
	return o
}
