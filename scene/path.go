// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/easel2d/easel/base/slicesx"
	"github.com/easel2d/easel/math32"
)

// defaultSubdivideLimit is the recursion depth [Path.Subdivide] uses
// when called with a non-positive limit.
const defaultSubdivideLimit = 6

// Path is a shape drawn through an ordered collection of anchors. It
// maintains three pieces of derived state, each guarded by a dirty
// flag: the plotted commands and handles (when automatic), the
// arc-length table, and the rendered vertex buffer with the
// beginning/ending trim applied.
type Path struct {
	ShapeBase

	vertices *Collection[*Anchor]

	// lengths[i] is the arc length from the path start through the
	// segment ending at vertex i; closed paths carry one extra
	// entry for the closing segment.
	lengths []float32

	// rendered is the trimmed vertex buffer renderers draw from.
	rendered []Anchor
}

// NewPath returns a path through the given anchors. The path is open,
// straight, and automatic; use the setters to change that.
func NewPath(sc *Scene, anchors ...*Anchor) *Path {
	p := &Path{}
	initPath(p, sc, anchors...)
	return p
}

func initPath(p *Path, sc *Scene, anchors ...*Anchor) {
	initShape(&p.ShapeBase, sc)
	p.vertices = NewCollection[*Anchor]()
	p.vertices.OnInsert = func(items []*Anchor) {
		for _, a := range items {
			a.bind(p.markVertices)
		}
		p.markVertices()
	}
	p.vertices.OnRemove = func(items []*Anchor) {
		for _, a := range items {
			a.bind(nil)
		}
		p.markVertices()
	}
	p.vertices.OnOrder = p.markVertices
	p.vertices.Add(anchors...)
}

func (p *Path) markVertices() {
	p.dirty.SetFlag(true, DirtyVertices, DirtyLength)
}

// Kind returns [KindPath].
func (p *Path) Kind() Kind { return KindPath }

// Vertices is the path's anchor collection. Mutating it, or any
// anchor in it, marks the vertices and length dirty.
func (p *Path) Vertices() *Collection[*Anchor] { return p.vertices }

// Update recomposes the local matrix, replots commands and handles
// when the path is automatic, refreshes the arc-length table, and
// rebuilds the rendered vertex buffer, each only when its flag is
// dirty.
func (p *Path) Update(bubble bool) {
	p.updateMatrix(false)
	if p.dirty.HasFlag(DirtyVertices) {
		if p.automatic {
			p.plot()
		}
		if p.dirty.HasFlag(DirtyLength) {
			p.updateLength(0)
		}
		p.updateRendered()
	} else if p.dirty.HasFlag(DirtyLength) {
		p.updateLength(0)
	}
	p.bubbleUpdate(bubble)
}

// Length returns the path's total arc length, refreshing the
// arc-length table if it is stale.
func (p *Path) Length() float32 {
	if p.dirty.HasFlag(DirtyLength) {
		if p.automatic && p.dirty.HasFlag(DirtyVertices) {
			p.plot()
		}
		p.updateLength(0)
	}
	return p.length
}

// plot assigns commands, and for curved paths control handles, to the
// anchors. Straight paths get a Move followed by Lines; curved paths
// get handles fitted through every anchor.
func (p *Path) plot() {
	if p.curved {
		fitCurve(p.vertices.items, p.closed)
		return
	}
	for i, a := range p.vertices.items {
		if i == 0 {
			a.SetCommand(MoveTo)
		} else {
			a.SetCommand(LineTo)
		}
	}
}

// segmentLength returns the arc length of the segment arriving at b
// from a. Move segments are pen jumps and contribute nothing; curve
// segments are measured by recursive subdivision; arcs are
// approximated by their chord.
func segmentLength(a, b *Anchor, limit int) float32 {
	switch b.command {
	case MoveTo:
		return 0
	case CurveTo:
		return math32.CubicBezierLength(
			a.origin.V2(), a.rightPoint(), b.leftPoint(), b.origin.V2(), limit)
	default:
		return a.origin.V2().DistanceTo(b.origin.V2())
	}
}

// updateLength rebuilds the cumulative arc-length table and the total
// length, clearing the length flag. A limit > 0 caps the per-segment
// subdivision depth.
func (p *Path) updateLength(limit int) {
	p.lengths = slicesx.SetLength(p.lengths, 0)
	total := float32(0)
	if n := p.vertices.Len(); n > 0 {
		p.lengths = append(p.lengths, 0)
		prev := p.vertices.items[0]
		for i := 1; i < n; i++ {
			curr := p.vertices.items[i]
			total += segmentLength(prev, curr, limit)
			p.lengths = append(p.lengths, total)
			prev = curr
		}
		if p.closed && n > 1 {
			// The closing segment arrives at the first vertex, whose
			// command is Move; measure it from the handles instead,
			// which collapse to the chord for straight paths.
			first := p.vertices.items[0]
			total += math32.CubicBezierLength(
				prev.origin.V2(), prev.rightPoint(), first.leftPoint(), first.origin.V2(), limit)
			p.lengths = append(p.lengths, total)
		}
	}
	p.length = total
	p.dirty.SetFlag(false, DirtyLength)
}

// Lengths returns the cumulative arc-length table, one entry per
// vertex plus one for the closing segment of a closed path. The slice
// is owned by the path; treat it as read-only.
func (p *Path) Lengths() []float32 { return p.lengths }

// indexAtLength maps an arc length to a fractional vertex index:
// the integer part is the last vertex at or before the target, the
// fractional part the position within the following segment.
func (p *Path) indexAtLength(target float32) float32 {
	last := len(p.lengths) - 1
	if last <= 0 || target <= 0 {
		return 0
	}
	if target >= p.length {
		return float32(last)
	}
	for i := 1; i <= last; i++ {
		if p.lengths[i] < target {
			continue
		}
		seg := p.lengths[i] - p.lengths[i-1]
		if seg <= 0 {
			return float32(i)
		}
		return float32(i-1) + (target-p.lengths[i-1])/seg
	}
	return float32(last)
}

// segmentAnchors returns the anchors bounding segment i, wrapping to
// the first vertex for the closing segment.
func (p *Path) segmentAnchors(i int) (a, b *Anchor) {
	n := p.vertices.Len()
	j := i + 1
	if j >= n {
		j = 0
	}
	return p.vertices.items[i], p.vertices.items[j]
}

// splitSegment evaluates segment i at local parameter u and fills out
// with the synthesized anchor: origin on the curve and tangent-
// consistent absolute handles from the De Casteljau construction.
func (p *Path) splitSegment(i int, u float32, out *Anchor) {
	a, b := p.segmentAnchors(i)
	p0, p1 := a.origin.V2(), b.origin.V2()
	c0, c1 := p0, p1
	command := LineTo
	if b.command == CurveTo || i == p.vertices.Len()-1 {
		c0, c1 = a.rightPoint(), b.leftPoint()
		command = CurveTo
	}
	left, right := math32.CubicBezierSplit(p0, c0, c1, p1, u)
	out.relative = false
	out.command = command
	out.origin.Set(left[3].X, left[3].Y)
	out.left.Set(left[2].X, left[2].Y)
	out.right.Set(right[1].X, right[1].Y)
}

// PointAt returns the point at arc-length fraction t along the path,
// with position, command, and control handles synthesized from the
// containing segment. The result is written into out when non-nil,
// and t is recorded on it. Beginning and ending play no part here;
// t ranges over the full path.
func (p *Path) PointAt(t float32, out *Anchor) *Anchor {
	if out == nil {
		out = NewAnchor(0, 0)
	}
	n := p.vertices.Len()
	if n == 0 {
		return out
	}
	t = math32.Clamp(t, 0, 1)
	id := p.indexAtLength(t * p.Length())
	i := int(math32.Floor(id))
	u := id - float32(i)
	if last := len(p.lengths) - 1; i >= last {
		i, u = last, 0
	}
	if u <= 0 {
		vi := i
		if vi >= n {
			vi -= n
		}
		out.CopyFrom(p.vertices.items[vi])
	} else {
		p.splitSegment(i, u, out)
	}
	out.t = t
	return out
}

// updateRendered rebuilds the rendered vertex buffer from the source
// anchors and the beginning/ending range. Vertices inside the range
// are copied verbatim; a boundary landing exactly on a vertex
// collapses that copy's cut-side handle; a boundary inside a segment
// synthesizes a new vertex by splitting the segment, adjusting the
// neighboring copy's handle to match the sub-curve. Source anchors
// are never modified.
func (p *Path) updateRendered() {
	p.rendered = p.rendered[:0]
	n := p.vertices.Len()
	if n == 0 {
		return
	}
	beg := math32.Min(p.beginning, p.ending)
	end := math32.Max(p.beginning, p.ending)
	if beg <= 0 && end >= 1 || p.length <= 0 {
		for _, a := range p.vertices.items {
			p.rendered = append(p.rendered, a.snapshot())
		}
		return
	}
	if end-beg <= 0 {
		return
	}

	bid := p.indexAtLength(beg * p.length)
	eid := p.indexAtLength(end * p.length)
	low := int(math32.Ceil(bid))
	high := int(math32.Floor(eid))

	if low > high {
		// Both boundaries inside the same segment: take the left
		// piece up to the end cut, then the right piece of that.
		p.renderSpanInSegment(high, bid-float32(high), eid-float32(high), beg, end)
		return
	}

	if ub := bid - float32(low-1); low > 0 && ub > 0 && ub < 1 {
		var v Anchor
		p.splitSegment(low-1, ub, &v)
		v.command = MoveTo
		v.collapseLeft()
		v.t = beg
		p.rendered = append(p.rendered, v)
	}
	synthesizedBegin := len(p.rendered) > 0

	for i := low; i <= high; i++ {
		vi := i
		if vi >= n {
			vi -= n
		}
		v := p.vertices.items[vi].snapshot()
		if i == n {
			// This copy arrives through the closing segment; draw it
			// as the curve between the boundary anchors' handles.
			v.command = CurveTo
		}
		if i == low {
			if synthesizedBegin {
				// The copy now terminates the sub-curve left over
				// from the begin split.
				if v.command == CurveTo {
					_, right := p.splitCurve(low-1, bid-float32(low-1))
					v.setLeftPoint(right[2])
				}
			} else {
				v.command = MoveTo
				if beg > 0 {
					v.collapseLeft()
				}
			}
		}
		if i == high && float32(high) == eid && end < 1 {
			v.collapseRight()
		}
		p.rendered = append(p.rendered, v)
	}

	if ue := eid - float32(high); ue > 0 && ue < 1 {
		if k := len(p.rendered); k > 0 {
			_, b := p.segmentAnchors(high)
			if b.command == CurveTo || high == p.vertices.Len()-1 {
				left, _ := p.splitCurve(high, ue)
				p.rendered[k-1].setRightPoint(left[1])
			}
		}
		var v Anchor
		p.splitSegment(high, ue, &v)
		v.collapseRight()
		v.t = end
		p.rendered = append(p.rendered, v)
	}
}

// splitCurve splits segment i at local parameter u and returns the
// control polygons of the two pieces. The closing segment of a closed
// path always takes the boundary anchors' handles.
func (p *Path) splitCurve(i int, u float32) (left, right [4]math32.Vector2) {
	a, b := p.segmentAnchors(i)
	p0, p1 := a.origin.V2(), b.origin.V2()
	c0, c1 := p0, p1
	if b.command == CurveTo || i == p.vertices.Len()-1 {
		c0, c1 = a.rightPoint(), b.leftPoint()
	}
	return math32.CubicBezierSplit(p0, c0, c1, p1, u)
}

// renderSpanInSegment renders the visible span when both trim
// boundaries fall inside segment i, at local parameters ub < ue.
func (p *Path) renderSpanInSegment(i int, ub, ue float32, beg, end float32) {
	left, _ := p.splitCurve(i, ue)
	// Restricting to [0, ue] maps the begin parameter to ub/ue.
	_, span := math32.CubicBezierSplit(left[0], left[1], left[2], left[3], ub/ue)

	_, b := p.segmentAnchors(i)
	command := LineTo
	if b.command == CurveTo || i == p.vertices.Len()-1 {
		command = CurveTo
	}

	var head Anchor
	head.relative = false
	head.command = MoveTo
	head.origin.Set(span[0].X, span[0].Y)
	head.left.Set(span[0].X, span[0].Y)
	head.right.Set(span[1].X, span[1].Y)
	head.t = beg

	var tail Anchor
	tail.relative = false
	tail.command = command
	tail.origin.Set(span[3].X, span[3].Y)
	tail.left.Set(span[2].X, span[2].Y)
	tail.right.Set(span[3].X, span[3].Y)
	tail.t = end

	p.rendered = append(p.rendered, head, tail)
}

// RenderedVertices returns the trimmed vertex buffer built by the last
// [Path.Update]. The slice is owned by the path; renderers must treat
// it as read-only.
func (p *Path) RenderedVertices() []Anchor { return p.rendered }

// RenderedClosed reports whether renderers should close the drawn
// outline: the path is closed and no trim is in effect.
func (p *Path) RenderedClosed() bool {
	beg := math32.Min(p.beginning, p.ending)
	end := math32.Max(p.beginning, p.ending)
	return p.closed && beg <= 0 && end >= 1
}

// Subdivide replaces every segment with a denser run of straight-line
// vertices, recursively splitting curves at their midpoints up to
// limit levels deep. A limit of zero or less uses a default depth.
// The path comes out with automatic and curved off, so the densified
// geometry is not replotted away on the next update.
func (p *Path) Subdivide(limit int) error {
	if limit <= 0 {
		limit = defaultSubdivideLimit
	}
	n := p.vertices.Len()
	if n < 2 {
		return nil
	}
	p.Update(false)
	items := p.vertices.Values()
	pts := []math32.Vector2{items[0].origin.V2()}
	segs := n - 1
	if p.closed {
		segs = n
	}
	for s := 0; s < segs; s++ {
		a := items[s]
		b := items[(s+1)%n]
		closing := p.closed && s == n-1
		p0, p1 := a.origin.V2(), b.origin.V2()
		c0, c1 := p0, p1
		if b.command == CurveTo || closing {
			c0, c1 = a.rightPoint(), b.leftPoint()
		}
		if b.command == MoveTo && !closing {
			pts = append(pts, p1)
			continue
		}
		pts = append(pts, subdivideSegment(p0, c0, c1, p1, limit)...)
	}
	if p.closed {
		// The wrap-around segment ends where the path starts.
		pts = pts[:len(pts)-1]
	}
	anchors := make([]*Anchor, len(pts))
	for i, pt := range pts {
		a := NewAnchor(pt.X, pt.Y)
		if i == 0 {
			a.command = MoveTo
		} else {
			a.command = LineTo
		}
		anchors[i] = a
	}
	p.vertices.Clear()
	p.vertices.Add(anchors...)
	p.automatic = false
	p.curved = false
	return nil
}

// subdivideSegment returns the points after p0 up to and including
// p1. Flat segments stop at one midpoint; curved ones recurse until
// flat or depth runs out.
func subdivideSegment(p0, c0, c1, p1 math32.Vector2, depth int) []math32.Vector2 {
	if depth <= 0 {
		return []math32.Vector2{p1}
	}
	left, right := math32.CubicBezierSplit(p0, c0, c1, p1, 0.5)
	net := p0.DistanceTo(c0) + c0.DistanceTo(c1) + c1.DistanceTo(p1)
	chord := p0.DistanceTo(p1)
	if net-chord <= math32.Epsilon {
		return []math32.Vector2{left[3], p1}
	}
	pts := subdivideSegment(left[0], left[1], left[2], left[3], depth-1)
	return append(pts, subdivideSegment(right[0], right[1], right[2], right[3], depth-1)...)
}

// LocalBoundingBox returns the bounding box of the rendered vertices
// with the path's own matrix applied, expanded by the stroke border.
func (p *Path) LocalBoundingBox() math32.Box2 {
	p.Update(false)
	return p.boundingBox(p.matrix.n)
}

// BoundingBox returns the bounding box of the rendered vertices in
// world coordinates, expanded by the stroke border.
func (p *Path) BoundingBox() math32.Box2 {
	p.Update(false)
	return p.boundingBox(p.WorldMatrix())
}

func (p *Path) boundingBox(m math32.Matrix3) math32.Box2 {
	box := math32.B2Empty()
	verts := p.rendered
	n := len(verts)
	if n == 0 {
		return box
	}
	box.ExpandByPoint(m.MulVector2AsPoint(verts[0].origin.V2()))
	for i := 1; i < n; i++ {
		a, b := &verts[i-1], &verts[i]
		pb := m.MulVector2AsPoint(b.origin.V2())
		if b.command == CurveTo {
			pa := m.MulVector2AsPoint(a.origin.V2())
			c0 := m.MulVector2AsPoint(a.rightPoint())
			c1 := m.MulVector2AsPoint(b.leftPoint())
			box.ExpandByBox(math32.CubicBezierBounds(pa, c0, c1, pb))
		} else {
			box.ExpandByPoint(pb)
		}
	}
	if border := p.border(); border > 0 {
		box.ExpandByScalar(border)
	}
	return box
}

// Clone returns an independent copy of the path with cloned anchors,
// a fresh id, and no parent.
func (p *Path) Clone() Shape {
	c := &Path{}
	initPath(c, p.scene)
	anchors := make([]*Anchor, 0, p.vertices.Len())
	for _, a := range p.vertices.items {
		anchors = append(anchors, a.Clone())
	}
	c.vertices.Add(anchors...)
	c.copyStyleFrom(&p.ShapeBase)
	return c
}

// Dispose unbinds the per-anchor listeners and the vertex collection
// callbacks along with the base listeners.
func (p *Path) Dispose() {
	for _, a := range p.vertices.items {
		a.bind(nil)
	}
	p.vertices.OnInsert = nil
	p.vertices.OnRemove = nil
	p.vertices.OnOrder = nil
	p.ShapeBase.Dispose()
}
