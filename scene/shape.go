// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"image"
	"image/color"

	"github.com/easel2d/easel/colors"
	"github.com/easel2d/easel/math32"
	"github.com/google/uuid"
)

var (
	// ErrNonUniformScale is returned by [ShapeBase.UniformScale]
	// when the x and y scale components differ.
	ErrNonUniformScale = errors.New("scene: scale is non-uniform")

	// ErrNotImplemented is returned by operations a shape kind does
	// not support, such as subdividing text.
	ErrNotImplemented = errors.New("scene: not implemented")
)

// Kind is the explicit type tag of a [Shape], for dispatching without
// reflection and for serialization.
type Kind int32 //enums:enum -trim-prefix Kind -transform lower

const (
	// KindPath is a [Path] or any of the derived shapes built on
	// one (circles, rectangles, polygons, lines).
	KindPath Kind = iota

	// KindGroup is a [Group].
	KindGroup

	// KindText is a [Text].
	KindText

	// KindPoints is a [Points] cloud.
	KindPoints
)

// Shape is the contract shared by every renderable node in a scene.
// [ShapeBase] supplies the transform, style, and dirty-flag state;
// [Path], [Group], [Text], and [Points] complete it with their own
// geometry.
//
// The render protocol is two-phase: call [Shape.Update] before reading
// any derived state (matrices, rendered vertices, lengths, bounding
// boxes), consume whatever dirty flags and data the renderer needs,
// then call [Shape.ClearDirty]. See the package documentation.
type Shape interface {
	// AsShapeBase returns the embedded [ShapeBase], giving access
	// to the transform, style, and flag state shared by all kinds.
	AsShapeBase() *ShapeBase

	// Kind returns the shape's type tag.
	Kind() Kind

	// Update recomputes whatever derived state the dirty flags mark
	// stale. If bubble is true, parents are updated afterwards as
	// well.
	Update(bubble bool)

	// ClearDirty clears all dirty flags and one-shot queues, after
	// a renderer has consumed them.
	ClearDirty()

	// Dispose unbinds the shape's internal change listeners. The
	// shape keeps its data but no longer reacts to mutation of its
	// transform components, vertices, or children.
	Dispose()

	// Length returns the shape's total arc length, recomputing it
	// if it is stale.
	Length() float32

	// BoundingBox returns the axis-aligned bounding box in world
	// coordinates, including the stroke border.
	BoundingBox() math32.Box2

	// LocalBoundingBox is like BoundingBox but applies only the
	// shape's own matrix, ignoring ancestors.
	LocalBoundingBox() math32.Box2

	// Subdivide densifies the shape's geometry in place up to the
	// given recursion depth, or returns [ErrNotImplemented] for
	// kinds without subdividable geometry. A limit of zero or less
	// selects a default depth.
	Subdivide(limit int) error

	// Clone returns an independent copy of the shape with a fresh
	// id and no parent.
	Clone() Shape

	SetFill(fill image.Image)
	SetStroke(stroke image.Image)
	SetLinewidth(w float32)
	SetCap(c Cap)
	SetJoin(j Join)
	SetMiter(m float32)
	SetClosed(closed bool)
	SetCurved(curved bool)
	SetAutomatic(automatic bool)
	SetVisible(visible bool)
	SetBeginning(v float32)
	SetEnding(v float32)
}

// ShapeBase holds the state common to every shape kind: the reactive
// transform components and the local matrix composed from them, the
// style attributes, the trim range, and the dirty flags. Concrete
// shapes embed it.
type ShapeBase struct {
	id        string
	className string

	parent *Group
	scene  *Scene

	position *Vector
	attitude *Vector
	scale    *Vector

	skewX float32
	skewY float32

	matrix *Matrix

	dirty Dirty

	fill       image.Image
	stroke     image.Image
	linewidth  float32
	opacity    float32
	visible    bool
	cap        Cap
	join       Join
	miter      float32
	dashes     []float32
	dashOffset float32

	mask Shape
	clip bool

	closed    bool
	curved    bool
	automatic bool

	beginning float32
	ending    float32

	length float32
}

// initShape initializes sb with identity transform components bound to
// it, default styles, and every dirty flag set so the first render is
// a full one.
func initShape(sb *ShapeBase, sc *Scene) {
	sb.id = uuid.NewString()
	sb.scene = sc
	sb.position = NewVector(0, 0)
	sb.attitude = NewRotor(1, 0)
	sb.scale = NewVector(1, 1)
	sb.matrix = NewMatrix()
	sb.position.bind(sb.markMatrix)
	sb.attitude.bind(sb.markMatrix)
	sb.scale.bind(sb.markMatrix)
	sb.matrix.bind(sb.markMatrix)
	sb.fill = colors.Uniform(color.White)
	sb.stroke = colors.Uniform(color.Black)
	sb.linewidth = 1
	sb.opacity = 1
	sb.visible = true
	sb.cap = CapButt
	sb.join = JoinMiter
	sb.miter = 4
	sb.automatic = true
	sb.beginning = 0
	sb.ending = 1
	sb.dirty = allDirty
}

// AsShapeBase returns sb.
func (sb *ShapeBase) AsShapeBase() *ShapeBase { return sb }

func (sb *ShapeBase) markMatrix() {
	sb.dirty.SetFlag(true, DirtyMatrix)
}

// ID returns the shape's identifier, a fresh UUID unless set.
func (sb *ShapeBase) ID() string { return sb.id }

// SetID sets the shape's identifier.
func (sb *ShapeBase) SetID(id string) {
	if sb.id == id {
		return
	}
	sb.id = id
	sb.dirty.SetFlag(true, DirtyID)
}

// ClassName returns the shape's class list, a space-separated string
// renderers may attach to their output.
func (sb *ShapeBase) ClassName() string { return sb.className }

// SetClassName sets the shape's class list.
func (sb *ShapeBase) SetClassName(name string) {
	if sb.className == name {
		return
	}
	sb.className = name
	sb.dirty.SetFlag(true, DirtyClassName)
}

// Parent returns the group the shape currently belongs to, or nil.
func (sb *ShapeBase) Parent() *Group { return sb.parent }

// Scene returns the scene the shape belongs to, or nil for a detached
// shape.
func (sb *ShapeBase) Scene() *Scene { return sb.scene }

// Dirty returns the current dirty flags.
func (sb *ShapeBase) Dirty() Dirty { return sb.dirty }

// MarkDirty sets the given dirty flags. External geometry or style
// providers use this to re-raise their own change notifications on the
// shape.
func (sb *ShapeBase) MarkDirty(flags ...Dirty) {
	for _, f := range flags {
		sb.dirty.SetFlag(true, f)
	}
}

// ClearDirty clears all dirty flags. Renderers call this after
// consuming the flags and data of a frame; clearing before reading
// loses the changes until the next mutation.
func (sb *ShapeBase) ClearDirty() {
	sb.dirty = 0
}

// Position is the shape's reactive translation.
func (sb *ShapeBase) Position() *Vector { return sb.position }

// UsePosition replaces the shape's position vector with v, taking over
// v's change notifications. The previous position vector stops
// affecting the shape.
func (sb *ShapeBase) UsePosition(v *Vector) {
	if v == nil {
		return
	}
	sb.position.bind(nil)
	sb.position = v
	v.bind(sb.markMatrix)
	sb.markMatrix()
}

// Attitude is the shape's reactive orientation rotor.
func (sb *ShapeBase) Attitude() *Vector { return sb.attitude }

// UseAttitude replaces the shape's attitude rotor with v, taking over
// v's change notifications.
func (sb *ShapeBase) UseAttitude(v *Vector) {
	if v == nil {
		return
	}
	sb.attitude.bind(nil)
	sb.attitude = v
	v.bind(sb.markMatrix)
	sb.markMatrix()
}

// Rotation returns the rotation angle in radians encoded by the
// attitude rotor.
func (sb *ShapeBase) Rotation() float32 {
	return sb.attitude.RotorAngle()
}

// SetRotation sets the attitude rotor to a rotation of theta radians.
func (sb *ShapeBase) SetRotation(theta float32) {
	sb.attitude.SetRotorFromAngle(theta)
}

// Scale is the shape's reactive scale vector.
func (sb *ShapeBase) Scale() *Vector { return sb.scale }

// UseScale replaces the shape's scale vector with v, taking over v's
// change notifications.
func (sb *ShapeBase) UseScale(v *Vector) {
	if v == nil {
		return
	}
	sb.scale.bind(nil)
	sb.scale = v
	v.bind(sb.markMatrix)
	sb.markMatrix()
}

// SetScale sets a uniform scale on both axes.
func (sb *ShapeBase) SetScale(s float32) {
	sb.scale.Set(s, s)
}

// UniformScale returns the scale as a single scalar. It returns
// [ErrNonUniformScale] when the x and y components differ, since a
// non-uniform scale has no single-number representation.
func (sb *ShapeBase) UniformScale() (float32, error) {
	if sb.scale.x != sb.scale.y {
		return 0, ErrNonUniformScale
	}
	return sb.scale.x, nil
}

// SkewX returns the skew angle about the x axis in radians.
func (sb *ShapeBase) SkewX() float32 { return sb.skewX }

// SetSkewX sets the skew angle about the x axis.
func (sb *ShapeBase) SetSkewX(theta float32) {
	if sb.skewX == theta {
		return
	}
	sb.skewX = theta
	sb.markMatrix()
}

// SkewY returns the skew angle about the y axis in radians.
func (sb *ShapeBase) SkewY() float32 { return sb.skewY }

// SetSkewY sets the skew angle about the y axis.
func (sb *ShapeBase) SetSkewY(theta float32) {
	if sb.skewY == theta {
		return
	}
	sb.skewY = theta
	sb.markMatrix()
}

// Matrix is the shape's local transform. It is recomposed from the
// transform components on [Shape.Update] unless marked manual.
func (sb *ShapeBase) Matrix() *Matrix { return sb.matrix }

// WorldMatrix composes the shape's local matrix with every ancestor's,
// root to leaf. It walks the parent chain on every call; update the
// scene first so the local matrices are current.
func (sb *ShapeBase) WorldMatrix() math32.Matrix3 {
	m := sb.matrix.n
	for p := sb.parent; p != nil; p = p.parent {
		m = p.matrix.n.Mul(m)
	}
	return m
}

// updateMatrix recomposes the local matrix from position, skew,
// attitude, and scale, in that order, when the matrix flag is dirty
// and the matrix is not manual. The rotation block comes from the
// rotor by double-angle identities instead of trigonometric calls.
//
// Under the standard (non-goofy) orientation convention the x/y roles
// of position, scale, and skew are swapped to compensate for the 90
// degree frame rotation; text additionally composes a quarter-turn
// correction into its rotor. Shapes not attached to a scene compose
// as authored.
func (sb *ShapeBase) updateMatrix(text bool) {
	if sb.matrix.manual || !sb.dirty.HasFlag(DirtyMatrix) {
		return
	}
	x, y := sb.position.x, sb.position.y
	a, b := sb.attitude.a, sb.attitude.b
	sx, sy := sb.scale.x, sb.scale.y
	kx, ky := sb.skewX, sb.skewY
	if sb.scene != nil && !sb.scene.Goofy {
		x, y = y, x
		sx, sy = sy, sx
		kx, ky = ky, kx
		if text {
			a, b = (a-b)/math32.Sqrt2, (a+b)/math32.Sqrt2
		}
	}
	cos := a*a - b*b
	sin := 2 * a * b
	sb.matrix.n = math32.Translate(x, y).
		Mul(math32.Skew(kx, ky)).
		Mul(math32.RotateCosSin(cos, sin)).
		Mul(math32.Scale(sx, sy))
}

// bubbleUpdate propagates an update up the parent chain when asked.
func (sb *ShapeBase) bubbleUpdate(bubble bool) {
	if bubble && sb.parent != nil {
		sb.parent.Update(true)
	}
}

// Fill returns the fill source, or nil for no fill.
func (sb *ShapeBase) Fill() image.Image { return sb.fill }

// SetFill sets the fill source. If the source is a [Texture], its
// change notifications are re-raised as the fill dirty flag.
func (sb *ShapeBase) SetFill(fill image.Image) {
	bindTexture(sb.fill, fill, func() {
		sb.dirty.SetFlag(true, DirtyFill)
	})
	sb.fill = fill
	sb.dirty.SetFlag(true, DirtyFill)
}

// Stroke returns the stroke source, or nil for no stroke.
func (sb *ShapeBase) Stroke() image.Image { return sb.stroke }

// SetStroke sets the stroke source. If the source is a [Texture], its
// change notifications are re-raised as the stroke dirty flag.
func (sb *ShapeBase) SetStroke(stroke image.Image) {
	bindTexture(sb.stroke, stroke, func() {
		sb.dirty.SetFlag(true, DirtyStroke)
	})
	sb.stroke = stroke
	sb.dirty.SetFlag(true, DirtyStroke)
}

// Linewidth returns the stroke width.
func (sb *ShapeBase) Linewidth() float32 { return sb.linewidth }

// SetLinewidth sets the stroke width.
func (sb *ShapeBase) SetLinewidth(w float32) {
	if sb.linewidth == w {
		return
	}
	sb.linewidth = w
	sb.dirty.SetFlag(true, DirtyLinewidth)
}

// Opacity returns the shape's opacity in [0, 1].
func (sb *ShapeBase) Opacity() float32 { return sb.opacity }

// SetOpacity sets the shape's opacity, clamped to [0, 1].
func (sb *ShapeBase) SetOpacity(opacity float32) {
	opacity = math32.Clamp(opacity, 0, 1)
	if sb.opacity == opacity {
		return
	}
	sb.opacity = opacity
	sb.dirty.SetFlag(true, DirtyOpacity)
}

// Visible reports whether the shape is rendered.
func (sb *ShapeBase) Visible() bool { return sb.visible }

// SetVisible sets whether the shape is rendered.
func (sb *ShapeBase) SetVisible(visible bool) {
	if sb.visible == visible {
		return
	}
	sb.visible = visible
	sb.dirty.SetFlag(true, DirtyVisible)
}

// Cap returns the stroke ending style.
func (sb *ShapeBase) Cap() Cap { return sb.cap }

// SetCap sets the stroke ending style.
func (sb *ShapeBase) SetCap(c Cap) {
	if sb.cap == c {
		return
	}
	sb.cap = c
	sb.dirty.SetFlag(true, DirtyCap)
}

// Join returns the stroke corner style.
func (sb *ShapeBase) Join() Join { return sb.join }

// SetJoin sets the stroke corner style.
func (sb *ShapeBase) SetJoin(j Join) {
	if sb.join == j {
		return
	}
	sb.join = j
	sb.dirty.SetFlag(true, DirtyJoin)
}

// Miter returns the miter limit.
func (sb *ShapeBase) Miter() float32 { return sb.miter }

// SetMiter sets the miter limit.
func (sb *ShapeBase) SetMiter(m float32) {
	if sb.miter == m {
		return
	}
	sb.miter = m
	sb.dirty.SetFlag(true, DirtyMiter)
}

// Dashes returns the stroke dash pattern.
func (sb *ShapeBase) Dashes() []float32 { return sb.dashes }

// SetDashes sets the stroke dash pattern.
func (sb *ShapeBase) SetDashes(dashes ...float32) {
	sb.dashes = dashes
	sb.dirty.SetFlag(true, DirtyDashes)
}

// DashOffset returns the offset into the dash pattern.
func (sb *ShapeBase) DashOffset() float32 { return sb.dashOffset }

// SetDashOffset sets the offset into the dash pattern.
func (sb *ShapeBase) SetDashOffset(offset float32) {
	if sb.dashOffset == offset {
		return
	}
	sb.dashOffset = offset
	sb.dirty.SetFlag(true, DirtyDashes)
}

// Mask returns the shape used to mask this one, or nil.
func (sb *ShapeBase) Mask() Shape { return sb.mask }

// SetMask sets the shape used to mask this one.
func (sb *ShapeBase) SetMask(mask Shape) {
	if sb.mask == mask {
		return
	}
	sb.mask = mask
	sb.dirty.SetFlag(true, DirtyMask)
}

// Clip reports whether the shape is used only to clip its parent
// rather than being painted.
func (sb *ShapeBase) Clip() bool { return sb.clip }

// SetClip sets whether the shape is used only to clip its parent.
func (sb *ShapeBase) SetClip(clip bool) {
	if sb.clip == clip {
		return
	}
	sb.clip = clip
	sb.dirty.SetFlag(true, DirtyClip)
}

// Closed reports whether the geometry wraps back to its start.
func (sb *ShapeBase) Closed() bool { return sb.closed }

// SetClosed sets whether the geometry wraps back to its start.
func (sb *ShapeBase) SetClosed(closed bool) {
	if sb.closed == closed {
		return
	}
	sb.closed = closed
	sb.dirty.SetFlag(true, DirtyVertices, DirtyLength)
}

// Curved reports whether automatic plotting fits smooth curves
// through the vertices rather than straight lines.
func (sb *ShapeBase) Curved() bool { return sb.curved }

// SetCurved sets whether automatic plotting fits smooth curves.
func (sb *ShapeBase) SetCurved(curved bool) {
	if sb.curved == curved {
		return
	}
	sb.curved = curved
	sb.dirty.SetFlag(true, DirtyVertices, DirtyLength)
}

// Automatic reports whether the shape replots its vertex commands and
// handles on update. Turn it off to author handles directly.
func (sb *ShapeBase) Automatic() bool { return sb.automatic }

// SetAutomatic sets whether the shape replots its vertices on update.
func (sb *ShapeBase) SetAutomatic(automatic bool) {
	if sb.automatic == automatic {
		return
	}
	sb.automatic = automatic
	sb.dirty.SetFlag(true, DirtyVertices)
}

// Beginning returns the normalized start of the visible range.
func (sb *ShapeBase) Beginning() float32 { return sb.beginning }

// SetBeginning sets the normalized start of the visible range,
// clamped to [0, 1].
func (sb *ShapeBase) SetBeginning(v float32) {
	v = math32.Clamp(v, 0, 1)
	if sb.beginning == v {
		return
	}
	sb.beginning = v
	sb.dirty.SetFlag(true, DirtyVertices)
}

// Ending returns the normalized end of the visible range.
func (sb *ShapeBase) Ending() float32 { return sb.ending }

// SetEnding sets the normalized end of the visible range, clamped to
// [0, 1].
func (sb *ShapeBase) SetEnding(v float32) {
	v = math32.Clamp(v, 0, 1)
	if sb.ending == v {
		return
	}
	sb.ending = v
	sb.dirty.SetFlag(true, DirtyVertices)
}

// Length returns the cached arc length. Kinds with geometry override
// this to recompute when stale.
func (sb *ShapeBase) Length() float32 { return sb.length }

// Subdivide returns [ErrNotImplemented]; kinds with subdividable
// geometry override it.
func (sb *ShapeBase) Subdivide(limit int) error {
	return ErrNotImplemented
}

// Dispose unbinds the transform component listeners and any texture
// callbacks. The shape keeps its data but stops reacting to change.
func (sb *ShapeBase) Dispose() {
	sb.position.bind(nil)
	sb.attitude.bind(nil)
	sb.scale.bind(nil)
	sb.matrix.bind(nil)
	if tx, ok := sb.fill.(Texture); ok {
		tx.OnChange(nil)
	}
	if tx, ok := sb.stroke.(Texture); ok {
		tx.OnChange(nil)
	}
}

// borderScale returns the factor stroke widths are scaled by when
// expanding bounding boxes: the maximum axis scale, decomposed from
// the matrix when it is manual and taken from the scale vector
// otherwise.
func (sb *ShapeBase) borderScale() float32 {
	if sb.matrix.manual {
		sx, sy := sb.matrix.n.ExtractScale()
		return math32.Max(sx, sy)
	}
	return math32.Max(math32.Abs(sb.scale.x), math32.Abs(sb.scale.y))
}

// border returns the half-width of the stroke in transformed
// coordinates, for expanding bounding boxes. It is zero without a
// stroke.
func (sb *ShapeBase) border() float32 {
	if sb.stroke == nil || sb.linewidth <= 0 {
		return 0
	}
	return sb.linewidth / 2 * sb.borderScale()
}

// copyStyleFrom copies the transform components, styles, and trim
// range from o, for cloning. Identity, parent, and scene are left
// alone.
func (sb *ShapeBase) copyStyleFrom(o *ShapeBase) {
	sb.className = o.className
	sb.position.Set(o.position.x, o.position.y)
	sb.attitude.SetRotor(o.attitude.a, o.attitude.b)
	sb.scale.Set(o.scale.x, o.scale.y)
	sb.skewX = o.skewX
	sb.skewY = o.skewY
	sb.matrix.n = o.matrix.n
	sb.matrix.manual = o.matrix.manual
	sb.fill = o.fill
	sb.stroke = o.stroke
	sb.linewidth = o.linewidth
	sb.opacity = o.opacity
	sb.visible = o.visible
	sb.cap = o.cap
	sb.join = o.join
	sb.miter = o.miter
	sb.dashes = append([]float32(nil), o.dashes...)
	sb.dashOffset = o.dashOffset
	sb.clip = o.clip
	sb.closed = o.closed
	sb.curved = o.curved
	sb.automatic = o.automatic
	sb.beginning = o.beginning
	sb.ending = o.ending
	sb.dirty = allDirty
}
