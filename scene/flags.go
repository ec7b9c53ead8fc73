// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Dirty is the set of bit flags recording which pieces of a shape's
// derived or renderer-facing state have changed since the last
// [Shape.ClearDirty]. Mutators set exactly the flags associated with
// what they change; [Shape.Update] recomputes derived state for the
// flags that are set; renderers read whatever flags and data they need
// and then call ClearDirty.
//
// Flags that guard internal derived data only (lengths, derived shape
// parameters, group trim distribution) are cleared by the recompute
// itself; flags that renderers consume stay set until ClearDirty.
type Dirty int64 //enums:bitflag -trim-prefix Dirty

const (
	// DirtyMatrix: the local matrix must be recomposed from
	// position, attitude, scale, and skew (unless manual).
	DirtyMatrix Dirty = iota

	// DirtyVertices: path vertex data changed and the rendered
	// (trimmed) vertex buffer must be rebuilt.
	DirtyVertices

	// DirtyLength: the cached arc length and per-segment length
	// table are stale.
	DirtyLength

	DirtyFill
	DirtyStroke
	DirtyLinewidth
	DirtyOpacity
	DirtyVisible
	DirtyCap
	DirtyJoin
	DirtyMiter
	DirtyDashes
	DirtyID
	DirtyClassName
	DirtyMask
	DirtyClip

	// DirtyAdditions and DirtySubtractions: a group's one-shot
	// membership queues are non-empty.
	DirtyAdditions
	DirtySubtractions

	// DirtyOrder: the order of a collection's items changed.
	DirtyOrder

	DirtyBeginning
	DirtyEnding

	// DirtySize is the point size of a [Points] cloud.
	DirtySize
	DirtySizeAttenuation

	// Text properties.
	DirtyValue
	DirtyFamily
	DirtyLeading
	DirtyAlignment
	DirtyBaseline
	DirtyStyle
	DirtyWeight
	DirtyDecoration

	// Derived shape parameters.
	DirtyRadius
	DirtyWidth
	DirtyHeight
	DirtySides
)

// allDirty is the fully dirty flag state that shapes start out in.
const allDirty = Dirty(1)<<int64(DirtyN) - 1
