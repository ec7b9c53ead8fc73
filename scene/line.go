// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Line is a path with exactly two anchors.
type Line struct {
	Path
}

// NewLine returns a line from (x1, y1) to (x2, y2).
func NewLine(sc *Scene, x1, y1, x2, y2 float32) *Line {
	l := &Line{}
	initPath(&l.Path, sc)
	l.vertices.Add(NewAnchor(x1, y1), NewAnchor(x2, y2))
	l.Update(false)
	return l
}

// Left returns the first endpoint.
func (l *Line) Left() *Anchor { return l.vertices.At(0) }

// Right returns the second endpoint.
func (l *Line) Right() *Anchor { return l.vertices.At(1) }

// Clone returns an independent copy of the line.
func (l *Line) Clone() Shape {
	lp := l.Left().Origin()
	rp := l.Right().Origin()
	o := NewLine(l.scene, lp.X(), lp.Y(), rp.X(), rp.Y())
	o.copyStyleFrom(&l.ShapeBase)
	return o
}
