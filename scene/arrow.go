// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// NewArrow returns a path drawing a line from (x1, y1) to (x2, y2)
// with a two-stroke head of the given size at the tip. The head
// strokes meet the shaft at a 30 degree angle on either side.
func NewArrow(sc *Scene, x1, y1, x2, y2, size float32) *Path {
	tail := math32.Vec2(x1, y1)
	tip := math32.Vec2(x2, y2)
	dir := tip.Sub(tail).Normal()

	left := tip.Sub(dir.Rotate(math32.Pi / 6).MulScalar(size))
	right := tip.Sub(dir.Rotate(-math32.Pi / 6).MulScalar(size))

	p := NewPath(sc)
	p.automatic = false
	p.vertices.Add(
		NewAnchor(tail.X, tail.Y),
		lineAnchor(tip.X, tip.Y),
		NewAnchor(left.X, left.Y),
		lineAnchor(tip.X, tip.Y),
		lineAnchor(right.X, right.Y),
	)
	p.Update(false)
	return p
}

func lineAnchor(x, y float32) *Anchor {
	a := NewAnchor(x, y)
	a.command = LineTo
	return a
}
