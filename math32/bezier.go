// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cubic root finding is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package math32

// Epsilon is the smallest number below which we assume the value to be zero.
// This is to avoid numerical floating point issues.
var Epsilon = float32(1e-6)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if a and b are equal within an absolute
// tolerance of Epsilon on both components.
func EqualPoint(a, b Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// solveQuadraticFormula solves ax² + bx + c = 0. It is numerically stable,
// and the lowest root is returned first; roots that do not exist are NaN.
// See https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float32) (float32, float32) {
	if Equal(a, 0.0) {
		if Equal(b, 0.0) {
			if Equal(c, 0.0) {
				// all terms disappear, all x satisfy the solution
				return 0.0, NaN()
			}
			// linear term disappears, no solutions
			return NaN(), NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, NaN()
	}

	if Equal(c, 0.0) {
		// no constant term, one solution at zero and one from solving linearly
		if Equal(b, 0.0) {
			return 0.0, NaN()
		}
		return 0.0, -b / a
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return NaN(), NaN()
	} else if Equal(discriminant, 0.0) {
		return -b / (2.0 * a), NaN()
	}

	// Avoid catastrophic cancellation when b and the radical have the same
	// sign: calculate the root where they differ and derive the other from
	// it (the Citardauq formula).
	q := Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// CubicBezierPoint returns the point at parameter t on the cubic Bezier
// curve from p0 to p1 with control points c0 and c1.
func CubicBezierPoint(p0, c0, c1, p1 Vector2, t float32) Vector2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2(
		b0*p0.X+b1*c0.X+b2*c1.X+b3*p1.X,
		b0*p0.Y+b1*c0.Y+b2*c1.Y+b3*p1.Y,
	)
}

// CubicBezierSplit splits the cubic Bezier curve (p0, c0, c1, p1) at
// parameter t by De Casteljau subdivision, returning the control polygons
// of the left and right halves. The split point is left[3] == right[0],
// and left[2] and right[1] are its incoming and outgoing control points.
func CubicBezierSplit(p0, c0, c1, p1 Vector2, t float32) (left, right [4]Vector2) {
	q0 := p0.Lerp(c0, t)
	q1 := c0.Lerp(c1, t)
	q2 := c1.Lerp(p1, t)
	r0 := q0.Lerp(q1, t)
	r1 := q1.Lerp(q2, t)
	s := r0.Lerp(r1, t)
	left = [4]Vector2{p0, q0, r0, s}
	right = [4]Vector2{s, r1, q2, p1}
	return left, right
}

// DefaultLengthLimit is the default recursion limit for [CubicBezierLength].
const DefaultLengthLimit = 8

// CubicBezierLength returns the arc length of the cubic Bezier curve
// (p0, c0, c1, p1), computed by recursive subdivision down to the given
// recursion limit. A limit <= 0 uses [DefaultLengthLimit]. Subdivision
// stops early once a segment's control net converges on its chord.
func CubicBezierLength(p0, c0, c1, p1 Vector2, limit int) float32 {
	if limit <= 0 {
		limit = DefaultLengthLimit
	}
	return cubicLength(p0, c0, c1, p1, limit)
}

func cubicLength(p0, c0, c1, p1 Vector2, depth int) float32 {
	net := p0.DistanceTo(c0) + c0.DistanceTo(c1) + c1.DistanceTo(p1)
	chord := p0.DistanceTo(p1)
	if depth <= 0 || net-chord <= Epsilon {
		return (net + chord) / 2
	}
	l, r := CubicBezierSplit(p0, c0, c1, p1, 0.5)
	return cubicLength(l[0], l[1], l[2], l[3], depth-1) +
		cubicLength(r[0], r[1], r[2], r[3], depth-1)
}

// cubicBounds1D returns the minimum and maximum values of one axis of a
// cubic Bezier curve, from the curve endpoints and the interior roots of
// the derivative.
func cubicBounds1D(p0, c0, c1, p1 float32) (min, max float32) {
	min = Min(p0, p1)
	max = Max(p0, p1)

	// derivative coefficients, divided through by 3
	a := -p0 + 3*c0 - 3*c1 + p1
	b := 2*p0 - 4*c0 + 2*c1
	c := -p0 + c0
	t1, t2 := solveQuadraticFormula(a, b, c)
	if !IsNaN(t1) && 0 < t1 && t1 < 1 {
		u := 1 - t1
		x := u*u*u*p0 + 3*u*u*t1*c0 + 3*u*t1*t1*c1 + t1*t1*t1*p1
		min = Min(min, x)
		max = Max(max, x)
	}
	if !IsNaN(t2) && 0 < t2 && t2 < 1 {
		u := 1 - t2
		x := u*u*u*p0 + 3*u*u*t2*c0 + 3*u*t2*t2*c1 + t2*t2*t2*p1
		min = Min(min, x)
		max = Max(max, x)
	}
	return min, max
}

// CubicBezierBounds returns the exact axis-aligned bounding box of the
// cubic Bezier curve (p0, c0, c1, p1), evaluating the curve at the interior
// extrema of each axis rather than bounding the control polygon.
func CubicBezierBounds(p0, c0, c1, p1 Vector2) Box2 {
	xmin, xmax := cubicBounds1D(p0.X, c0.X, c1.X, p1.X)
	ymin, ymax := cubicBounds1D(p0.Y, c0.Y, c1.Y, p1.Y)
	return B2(xmin, ymin, xmax, ymax)
}
