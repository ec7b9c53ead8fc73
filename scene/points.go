// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/easel2d/easel/math32"
)

// Points is a cloud of positions rendered as dots of a uniform size.
// It carries the full style surface but no curve machinery; trimming
// with beginning and ending selects a contiguous index range instead
// of an arc-length window.
type Points struct {
	ShapeBase

	vertices *Collection[*Vector]

	// size is the dot diameter. When attenuation is set the diameter
	// lives in local units and scales with the transform; otherwise it
	// is a screen-space constant.
	size        float32
	attenuation bool

	rendered []math32.Vector2
}

// NewPoints returns an empty point cloud.
func NewPoints(sc *Scene) *Points {
	p := &Points{}
	initShape(&p.ShapeBase, sc)
	p.size = 1
	p.vertices = NewCollection[*Vector]()
	p.vertices.OnInsert = func(items []*Vector) {
		for _, v := range items {
			v.bind(p.markVertices)
		}
		p.markVertices()
	}
	p.vertices.OnRemove = func(items []*Vector) {
		for _, v := range items {
			v.bind(nil)
		}
		p.markVertices()
	}
	p.vertices.OnOrder = p.markVertices
	return p
}

func (p *Points) markVertices() {
	p.dirty.SetFlag(true, DirtyVertices)
}

// Kind reports KindPoints.
func (p *Points) Kind() Kind { return KindPoints }

// Vertices returns the position collection.
func (p *Points) Vertices() *Collection[*Vector] { return p.vertices }

// Size returns the dot diameter.
func (p *Points) Size() float32 { return p.size }

// SetSize sets the dot diameter.
func (p *Points) SetSize(size float32) {
	if p.size == size {
		return
	}
	p.size = size
	p.dirty.SetFlag(true, DirtySize)
}

// SizeAttenuation reports whether the dot diameter scales with the
// transform.
func (p *Points) SizeAttenuation() bool { return p.attenuation }

// SetSizeAttenuation sets whether the dot diameter scales with the
// transform.
func (p *Points) SetSizeAttenuation(on bool) {
	if p.attenuation == on {
		return
	}
	p.attenuation = on
	p.dirty.SetFlag(true, DirtySizeAttenuation)
}

// Update recomputes the matrix and the rendered positions.
func (p *Points) Update(bubble bool) {
	p.updateMatrix(false)
	if p.dirty.HasFlag(DirtyVertices) {
		p.updateRendered()
	}
	p.bubbleUpdate(bubble)
}

// updateRendered selects the index window [ceil((n-1)*beginning),
// floor((n-1)*ending)] and copies those positions.
func (p *Points) updateRendered() {
	n := p.vertices.Len()
	p.rendered = p.rendered[:0]
	if n == 0 {
		return
	}
	beg := math32.Min(p.beginning, p.ending)
	end := math32.Max(p.beginning, p.ending)
	low := int(math32.Ceil(float32(n-1) * beg))
	high := int(math32.Floor(float32(n-1) * end))
	for i := low; i <= high; i++ {
		p.rendered = append(p.rendered, p.vertices.At(i).V2())
	}
}

// RenderedVertices returns the trimmed positions computed by the last
// Update. The slice is owned by the shape.
func (p *Points) RenderedVertices() []math32.Vector2 {
	return p.rendered
}

// LocalBoundingBox returns the bounds of the rendered positions under
// the local matrix, expanded by the dot radius.
func (p *Points) LocalBoundingBox() math32.Box2 {
	p.Update(false)
	return p.boundingBox(p.matrix.n)
}

// BoundingBox returns the bounds of the rendered positions under the
// world matrix, expanded by the dot radius.
func (p *Points) BoundingBox() math32.Box2 {
	p.Update(false)
	return p.boundingBox(p.WorldMatrix())
}

func (p *Points) boundingBox(m math32.Matrix3) math32.Box2 {
	bb := math32.B2Empty()
	if len(p.rendered) == 0 {
		return bb
	}
	for _, v := range p.rendered {
		bb.ExpandByPoint(m.MulVector2AsPoint(v))
	}
	border := p.size / 2
	if p.attenuation {
		border *= p.borderScale()
	}
	bb.ExpandByScalar(border)
	return bb
}

// Clone returns an independent copy of the point cloud.
func (p *Points) Clone() Shape {
	o := NewPoints(p.scene)
	for i := 0; i < p.vertices.Len(); i++ {
		o.vertices.Add(p.vertices.At(i).Clone())
	}
	o.size = p.size
	o.attenuation = p.attenuation
	o.copyStyleFrom(&p.ShapeBase)
	return o
}

// Dispose releases the vertex bindings.
func (p *Points) Dispose() {
	for i := 0; i < p.vertices.Len(); i++ {
		p.vertices.At(i).bind(nil)
	}
	p.vertices.OnInsert = nil
	p.vertices.OnRemove = nil
	p.vertices.OnOrder = nil
	p.ShapeBase.Dispose()
}
