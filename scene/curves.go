// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// fitCurve derives control handles and commands for anchors so the
// path passes smoothly through all of them, in the manner of a
// Catmull-Rom fit. The first anchor gets [MoveTo] and the rest
// [CurveTo]. On closed paths the neighbor lookup wraps around.
func fitCurve(anchors []*Anchor, closed bool) {
	n := len(anchors)
	if n == 0 {
		return
	}
	for i, b := range anchors {
		var pi, ni int
		if closed {
			pi = (i - 1 + n) % n
			ni = (i + 1) % n
		} else {
			pi = max(i-1, 0)
			ni = min(i+1, n-1)
		}
		setControlPoints(anchors[pi], b, anchors[ni])
		if i == 0 {
			b.SetCommand(MoveTo)
		} else {
			b.SetCommand(CurveTo)
		}
	}
}

// setControlPoints sets b's handles so the curve through a, b, c is
// smooth at b. Handles run perpendicular to the bisector of the two
// neighbor directions, a third of the neighbor distance long.
func setControlPoints(a, b, c *Anchor) {
	bo := b.origin.V2()
	a1 := a.origin.V2().Sub(bo).Angle()
	a2 := c.origin.V2().Sub(bo).Angle()
	d1 := a.origin.V2().DistanceTo(bo)
	d2 := c.origin.V2().DistanceTo(bo)

	if d1 < 0.0001 || d2 < 0.0001 {
		if !b.relative {
			b.left.CopyFrom(&b.origin)
			b.right.CopyFrom(&b.origin)
		}
		return
	}

	d1 *= 0.33
	d2 *= 0.33

	mid := (a1 + a2) / 2
	if a2 < a1 {
		mid += math32.Pi / 2
	} else {
		mid -= math32.Pi / 2
	}

	sin, cos := math32.Sincos(mid)
	b.left.Set(cos*d1, sin*d1)
	mid -= math32.Pi
	sin, cos = math32.Sincos(mid)
	b.right.Set(cos*d2, sin*d2)

	if !b.relative {
		b.left.Set(b.left.x+bo.X, b.left.y+bo.Y)
		b.right.Set(b.right.x+bo.X, b.right.y+bo.Y)
	}
}
