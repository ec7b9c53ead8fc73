// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// Star is a path alternating between an outer and an inner radius,
// derived from the two radii and a point count.
type Star struct {
	Path

	inner float32
	outer float32
	sides int
}

// NewStar returns a star with the given inner and outer radii and
// point count, positioned at (x, y). Point counts below 3 are raised
// to 3.
func NewStar(sc *Scene, x, y, inner, outer float32, sides int) *Star {
	s := &Star{inner: inner, outer: outer, sides: max(sides, 3)}
	initPath(&s.Path, sc)
	s.closed = true
	s.automatic = false
	s.position.Set(x, y)
	s.Update(false)
	return s
}

// InnerRadius returns the radius of the notches between points.
func (s *Star) InnerRadius() float32 { return s.inner }

// SetInnerRadius sets the radius of the notches between points.
func (s *Star) SetInnerRadius(r float32) {
	if s.inner == r {
		return
	}
	s.inner = r
	s.dirty.SetFlag(true, DirtyRadius)
}

// OuterRadius returns the radius of the points.
func (s *Star) OuterRadius() float32 { return s.outer }

// SetOuterRadius sets the radius of the points.
func (s *Star) SetOuterRadius(r float32) {
	if s.outer == r {
		return
	}
	s.outer = r
	s.dirty.SetFlag(true, DirtyRadius)
}

// Sides returns the number of points.
func (s *Star) Sides() int { return s.sides }

// SetSides sets the number of points, raising counts below 3 to 3.
func (s *Star) SetSides(sides int) {
	sides = max(sides, 3)
	if s.sides == sides {
		return
	}
	s.sides = sides
	s.dirty.SetFlag(true, DirtySides)
}

// Update rederives the anchors when the radii or point count
// changed, then runs the path update.
func (s *Star) Update(bubble bool) {
	if s.dirty.HasFlag(DirtyRadius) || s.dirty.HasFlag(DirtySides) {
		s.plotStar()
		s.dirty.SetFlag(false, DirtyRadius, DirtySides)
	}
	s.Path.Update(bubble)
}

func (s *Star) plotStar() {
	n := 2 * s.sides
	resizeAnchors(s.vertices, n)
	for i, a := range s.vertices.items {
		r := s.outer
		if i%2 == 1 {
			r = s.inner
		}
		theta := math32.Pi*float32(i)/float32(s.sides) - math32.Pi/2
		sin, cos := math32.Sincos(theta)
		a.origin.Set(r*cos, r*sin)
		if i == 0 {
			a.command = MoveTo
		} else {
			a.command = LineTo
		}
	}
}

// Clone returns an independent copy of the star.
func (s *Star) Clone() Shape {
	o := NewStar(s.scene, 0, 0, s.inner, s.outer, s.sides)
	o.copyStyleFrom(&s.ShapeBase)
	return o
}
