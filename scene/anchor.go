// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/easel2d/easel/math32"
)

// Command is the path drawing command carried by an [Anchor],
// describing how the segment arriving at the anchor is drawn.
type Command int32 //enums:enum -transform lower

const (
	// MoveTo lifts the pen and starts a new subpath at the anchor.
	MoveTo Command = iota

	// LineTo draws a straight segment to the anchor.
	LineTo

	// CurveTo draws a cubic segment to the anchor, using the
	// previous anchor's right control handle and this anchor's left
	// control handle.
	CurveTo

	// ArcTo draws an elliptical arc to the anchor, described by the
	// anchor's arc parameters.
	ArcTo

	// Close closes the current subpath back to its starting anchor.
	Close
)

// Anchor is one vertex of a [Path]: an origin point, a pair of cubic
// control handles, the drawing command for the segment arriving here,
// and the parameters for arc segments. Anchors are reactive the same
// way shapes' transform components are: mutating the origin, either
// handle, or any parameter notifies the owning path, which marks its
// vertices and length dirty.
type Anchor struct {
	origin Vector
	left   Vector
	right  Vector

	command  Command
	relative bool

	rx, ry        float32
	xAxisRotation float32
	largeArc      bool
	sweep         bool

	t float32

	mark func()
}

// NewAnchor returns an anchor at (x, y) with zeroed control handles,
// relative handle interpretation, and the [MoveTo] command.
func NewAnchor(x, y float32) *Anchor {
	a := &Anchor{relative: true}
	a.origin.Set(x, y)
	a.bindVectors()
	return a
}

// NewCurveAnchor returns an anchor at origin with the given absolute
// control handle positions and the [CurveTo] command.
func NewCurveAnchor(origin, left, right math32.Vector2) *Anchor {
	a := &Anchor{command: CurveTo}
	a.origin.SetV2(origin)
	a.left.SetV2(left)
	a.right.SetV2(right)
	a.bindVectors()
	return a
}

func (a *Anchor) bindVectors() {
	a.origin.bind(a.touch)
	a.left.bind(a.touch)
	a.right.bind(a.touch)
}

func (a *Anchor) bind(mark func()) {
	a.mark = mark
}

func (a *Anchor) touch() {
	if a.mark != nil {
		a.mark()
	}
}

// Origin is the anchor's position.
func (a *Anchor) Origin() *Vector { return &a.origin }

// Left is the control handle for the segment arriving at the anchor.
func (a *Anchor) Left() *Vector { return &a.left }

// Right is the control handle for the segment leaving the anchor.
func (a *Anchor) Right() *Vector { return &a.right }

// Command returns the drawing command for the segment arriving at the
// anchor.
func (a *Anchor) Command() Command { return a.command }

// SetCommand sets the drawing command.
func (a *Anchor) SetCommand(c Command) *Anchor {
	if a.command == c {
		return a
	}
	a.command = c
	a.touch()
	return a
}

// Relative reports whether the control handles are offsets from the
// origin rather than absolute positions.
func (a *Anchor) Relative() bool { return a.relative }

// SetRelative sets how the control handles are interpreted. The stored
// handle components are not converted.
func (a *Anchor) SetRelative(relative bool) *Anchor {
	if a.relative == relative {
		return a
	}
	a.relative = relative
	a.touch()
	return a
}

// Rx returns the x radius for [ArcTo] segments.
func (a *Anchor) Rx() float32 { return a.rx }

// SetRx sets the x radius for [ArcTo] segments.
func (a *Anchor) SetRx(rx float32) *Anchor {
	a.rx = rx
	a.touch()
	return a
}

// Ry returns the y radius for [ArcTo] segments.
func (a *Anchor) Ry() float32 { return a.ry }

// SetRy sets the y radius for [ArcTo] segments.
func (a *Anchor) SetRy(ry float32) *Anchor {
	a.ry = ry
	a.touch()
	return a
}

// XAxisRotation returns the ellipse rotation in radians for [ArcTo]
// segments.
func (a *Anchor) XAxisRotation() float32 { return a.xAxisRotation }

// SetXAxisRotation sets the ellipse rotation for [ArcTo] segments.
func (a *Anchor) SetXAxisRotation(theta float32) *Anchor {
	a.xAxisRotation = theta
	a.touch()
	return a
}

// LargeArc reports whether [ArcTo] segments take the longer sweep
// around the ellipse.
func (a *Anchor) LargeArc() bool { return a.largeArc }

// SetLargeArc sets the large arc flag for [ArcTo] segments.
func (a *Anchor) SetLargeArc(largeArc bool) *Anchor {
	if a.largeArc == largeArc {
		return a
	}
	a.largeArc = largeArc
	a.touch()
	return a
}

// Sweep reports whether [ArcTo] segments sweep in the positive angular
// direction.
func (a *Anchor) Sweep() bool { return a.sweep }

// SetSweep sets the sweep flag for [ArcTo] segments.
func (a *Anchor) SetSweep(sweep bool) *Anchor {
	if a.sweep == sweep {
		return a
	}
	a.sweep = sweep
	a.touch()
	return a
}

// T returns the arc-length fraction recorded on anchors synthesized
// by [Path.PointAt] and by trimming.
func (a *Anchor) T() float32 { return a.t }

// SetT sets the recorded curve parameter.
func (a *Anchor) SetT(t float32) *Anchor {
	a.t = t
	return a
}

// leftPoint returns the effective absolute position of the left
// control handle.
func (a *Anchor) leftPoint() math32.Vector2 {
	if a.relative {
		return a.origin.V2().Add(a.left.V2())
	}
	return a.left.V2()
}

// rightPoint returns the effective absolute position of the right
// control handle.
func (a *Anchor) rightPoint() math32.Vector2 {
	if a.relative {
		return a.origin.V2().Add(a.right.V2())
	}
	return a.right.V2()
}

// setLeftPoint sets the left control handle to the absolute position
// pt, respecting the anchor's handle interpretation.
func (a *Anchor) setLeftPoint(pt math32.Vector2) {
	if a.relative {
		a.left.Set(pt.X-a.origin.x, pt.Y-a.origin.y)
		return
	}
	a.left.SetV2(pt)
}

// setRightPoint sets the right control handle to the absolute
// position pt, respecting the anchor's handle interpretation.
func (a *Anchor) setRightPoint(pt math32.Vector2) {
	if a.relative {
		a.right.Set(pt.X-a.origin.x, pt.Y-a.origin.y)
		return
	}
	a.right.SetV2(pt)
}

// collapseLeft collapses the left control handle to the origin, for
// anchors sitting on a trim boundary.
func (a *Anchor) collapseLeft() {
	if a.relative {
		a.left.SetZero()
		return
	}
	a.left.CopyFrom(&a.origin)
}

// collapseRight collapses the right control handle to the origin.
func (a *Anchor) collapseRight() {
	if a.relative {
		a.right.SetZero()
		return
	}
	a.right.CopyFrom(&a.origin)
}

// snapshot returns an unbound value copy of the anchor, safe to hand
// to renderers without exposing the owner binding.
func (a *Anchor) snapshot() Anchor {
	c := *a
	c.mark = nil
	c.origin.mark = nil
	c.left.mark = nil
	c.right.mark = nil
	return c
}

// Clone returns an unbound copy of the anchor.
func (a *Anchor) Clone() *Anchor {
	c := a.snapshot()
	c.bindVectors()
	return &c
}

// CopyFrom copies the geometry, command, and parameters from o with a
// single notification.
func (a *Anchor) CopyFrom(o *Anchor) *Anchor {
	a.origin.x, a.origin.y = o.origin.x, o.origin.y
	a.left.x, a.left.y = o.left.x, o.left.y
	a.right.x, a.right.y = o.right.x, o.right.y
	a.command = o.command
	a.relative = o.relative
	a.rx, a.ry = o.rx, o.ry
	a.xAxisRotation = o.xAxisRotation
	a.largeArc = o.largeArc
	a.sweep = o.sweep
	a.t = o.t
	a.touch()
	return a
}

func (a *Anchor) String() string {
	return fmt.Sprintf("%v %v", a.command, a.origin.String())
}
