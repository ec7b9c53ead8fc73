// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/easel2d/easel/math32"
)

// Vector is a reactive multivector with a vector part (X, Y) and a
// rotor part (A, B), where A and B are the cosine and sine of half the
// rotation angle. Shapes use plain vectors for position and scale and
// rotors for attitude. Every mutation notifies the single owner the
// vector is bound to, which is how shapes learn that their transform
// components changed without polling.
//
// A Vector belongs to at most one owner at a time. Passing a vector to
// [ShapeBase.UsePosition] or a sibling method transfers that ownership.
type Vector struct {
	x, y float32
	a, b float32

	mark func()
}

// NewVector returns a vector with the given vector part and a zero
// rotor part.
func NewVector(x, y float32) *Vector {
	return &Vector{x: x, y: y}
}

// NewRotor returns a vector with the given rotor part and a zero
// vector part. NewRotor(1, 0) is the identity rotor.
func NewRotor(a, b float32) *Vector {
	return &Vector{a: a, b: b}
}

// bind sets the owner callback invoked after every mutation.
// Any previous owner stops receiving notifications.
func (v *Vector) bind(mark func()) {
	v.mark = mark
}

func (v *Vector) touch() {
	if v.mark != nil {
		v.mark()
	}
}

// X returns the x component of the vector part.
func (v *Vector) X() float32 { return v.x }

// Y returns the y component of the vector part.
func (v *Vector) Y() float32 { return v.y }

// A returns the scalar (cosine) component of the rotor part.
func (v *Vector) A() float32 { return v.a }

// B returns the bivector (sine) component of the rotor part.
func (v *Vector) B() float32 { return v.b }

// SetX sets the x component and notifies the owner.
func (v *Vector) SetX(x float32) {
	v.x = x
	v.touch()
}

// SetY sets the y component and notifies the owner.
func (v *Vector) SetY(y float32) {
	v.y = y
	v.touch()
}

// SetA sets the rotor cosine component and notifies the owner.
func (v *Vector) SetA(a float32) {
	v.a = a
	v.touch()
}

// SetB sets the rotor sine component and notifies the owner.
func (v *Vector) SetB(b float32) {
	v.b = b
	v.touch()
}

// Set sets both components of the vector part with a single
// notification.
func (v *Vector) Set(x, y float32) *Vector {
	v.x = x
	v.y = y
	v.touch()
	return v
}

// SetRotor sets both components of the rotor part with a single
// notification.
func (v *Vector) SetRotor(a, b float32) *Vector {
	v.a = a
	v.b = b
	v.touch()
	return v
}

// SetZero sets all four components to zero.
func (v *Vector) SetZero() *Vector {
	v.x, v.y, v.a, v.b = 0, 0, 0, 0
	v.touch()
	return v
}

// CopyFrom copies all four components from o with a single
// notification. The owner binding is not copied.
func (v *Vector) CopyFrom(o *Vector) *Vector {
	v.x, v.y, v.a, v.b = o.x, o.y, o.a, o.b
	v.touch()
	return v
}

// Clone returns an unbound copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{x: v.x, y: v.y, a: v.a, b: v.b}
}

// V2 returns the vector part as a plain [math32.Vector2].
func (v *Vector) V2() math32.Vector2 {
	return math32.Vec2(v.x, v.y)
}

// SetV2 sets the vector part from a plain [math32.Vector2].
func (v *Vector) SetV2(p math32.Vector2) *Vector {
	return v.Set(p.X, p.Y)
}

// SetRotorFromAngle sets the rotor part to represent a rotation by
// theta radians.
func (v *Vector) SetRotorFromAngle(theta float32) *Vector {
	half := theta / 2
	sin, cos := math32.Sincos(half)
	return v.SetRotor(cos, sin)
}

// RotorAngle returns the rotation angle in radians represented by the
// rotor part.
func (v *Vector) RotorAngle() float32 {
	return 2 * math32.Atan2(v.b, v.a)
}

// SetRotorBetween sets the rotor part to the rotation taking the
// direction of from to the direction of to. If the two directions are
// anti-parallel the rotation is ambiguous and the rotor is left
// unmodified.
func (v *Vector) SetRotorBetween(from, to math32.Vector2) *Vector {
	f := from.Normal()
	t := to.Normal()
	dot := f.Dot(t)
	if 1+dot <= math32.Epsilon {
		return v
	}
	denom := math32.Sqrt(2 * (1 + dot))
	return v.SetRotor(denom/2, f.Cross(t)/denom)
}

// AlmostEqual reports whether all four components of v and o are
// within tol of each other.
func (v *Vector) AlmostEqual(o *Vector, tol float32) bool {
	return math32.Abs(v.x-o.x) <= tol && math32.Abs(v.y-o.y) <= tol &&
		math32.Abs(v.a-o.a) <= tol && math32.Abs(v.b-o.b) <= tol
}

func (v *Vector) String() string {
	if v.a == 0 && v.b == 0 {
		return fmt.Sprintf("(%g, %g)", v.x, v.y)
	}
	return fmt.Sprintf("(%g, %g; %g, %g)", v.x, v.y, v.a, v.b)
}
