// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// Polygon is a path whose anchors form a regular polygon derived from
// a radius and a side count.
type Polygon struct {
	Path

	radius float32
	sides  int
}

// NewPolygon returns a regular polygon of the given radius and side
// count positioned at (x, y). Side counts below 3 are raised to 3.
func NewPolygon(sc *Scene, x, y, radius float32, sides int) *Polygon {
	p := &Polygon{radius: radius, sides: max(sides, 3)}
	initPath(&p.Path, sc)
	p.closed = true
	p.automatic = false
	p.position.Set(x, y)
	p.Update(false)
	return p
}

// Radius returns the distance from the center to each vertex.
func (p *Polygon) Radius() float32 { return p.radius }

// SetRadius sets the distance from the center to each vertex.
func (p *Polygon) SetRadius(r float32) {
	if p.radius == r {
		return
	}
	p.radius = r
	p.dirty.SetFlag(true, DirtyRadius)
}

// Sides returns the number of sides.
func (p *Polygon) Sides() int { return p.sides }

// SetSides sets the number of sides, raising counts below 3 to 3.
// The anchor collection grows or shrinks to match on the next update.
func (p *Polygon) SetSides(sides int) {
	sides = max(sides, 3)
	if p.sides == sides {
		return
	}
	p.sides = sides
	p.dirty.SetFlag(true, DirtySides)
}

// Update rederives the anchors when the radius or side count
// changed, then runs the path update.
func (p *Polygon) Update(bubble bool) {
	if p.dirty.HasFlag(DirtyRadius) || p.dirty.HasFlag(DirtySides) {
		p.plotPolygon()
		p.dirty.SetFlag(false, DirtyRadius, DirtySides)
	}
	p.Path.Update(bubble)
}

func (p *Polygon) plotPolygon() {
	resizeAnchors(p.vertices, p.sides)
	for i, a := range p.vertices.items {
		theta := 2*math32.Pi*float32(i)/float32(p.sides) - math32.Pi/2
		sin, cos := math32.Sincos(theta)
		a.origin.Set(p.radius*cos, p.radius*sin)
		if i == 0 {
			a.command = MoveTo
		} else {
			a.command = LineTo
		}
	}
}

// resizeAnchors grows or shrinks the collection to hold exactly n
// anchors.
func resizeAnchors(c *Collection[*Anchor], n int) {
	for c.Len() < n {
		c.Add(NewAnchor(0, 0))
	}
	for c.Len() > n {
		c.RemoveAt(c.Len() - 1)
	}
}

// Clone returns an independent copy of the polygon.
func (p *Polygon) Clone() Shape {
	o := NewPolygon(p.scene, 0, 0, p.radius, p.sides)
	o.copyStyleFrom(&p.ShapeBase)
	return o
}
