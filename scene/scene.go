// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/easel2d/easel/math32"

// Scene is the board shapes live on: a drawing surface with a size,
// an orientation convention, and a root group. Renderers drive a
// frame by calling [Scene.Update], reading whatever dirty flags and
// geometry they need, and finishing with [Scene.ClearDirty].
type Scene struct {
	// Width and Height are the surface size in user units.
	Width  float32
	Height float32

	// Goofy selects the legacy orientation convention. When false,
	// the default, shape transforms compose with their x/y roles
	// swapped to compensate for the 90 degree rotated frame.
	Goofy bool

	// Root is the root group every shape hangs off.
	Root *Group
}

// NewScene returns a scene of the given size with an empty root
// group.
func NewScene(width, height float32) *Scene {
	sc := &Scene{Width: width, Height: height}
	sc.Root = NewGroup(sc)
	return sc
}

// Center returns the center of the surface.
func (sc *Scene) Center() math32.Vector2 {
	return math32.Vec2(sc.Width/2, sc.Height/2)
}

// Add appends shapes to the root group.
func (sc *Scene) Add(shapes ...Shape) {
	sc.Root.Add(shapes...)
}

// Remove detaches shapes from the root group and disposes them.
func (sc *Scene) Remove(shapes ...Shape) {
	sc.Root.Remove(shapes...)
}

// WalkDown visits every shape in the scene depth-first, parents
// before children. Returning false from fn skips the walk below that
// shape.
func (sc *Scene) WalkDown(fn func(sh Shape) bool) {
	walkShape(sc.Root, fn)
}

func walkShape(sh Shape, fn func(sh Shape) bool) {
	if !fn(sh) {
		return
	}
	if g, ok := sh.(*Group); ok {
		for _, child := range g.children.items {
			walkShape(child, fn)
		}
	}
}

// Update brings every shape's derived state current, root to leaf.
// Call it before reading matrices, rendered vertices, lengths, or
// bounding boxes.
func (sc *Scene) Update() {
	sc.WalkDown(func(sh Shape) bool {
		sh.Update(false)
		return true
	})
}

// ClearDirty clears every shape's dirty flags and one-shot queues,
// ending a frame. Flags cleared before a renderer reads them are lost
// until the next mutation.
func (sc *Scene) ClearDirty() {
	sc.WalkDown(func(sh Shape) bool {
		sh.ClearDirty()
		return true
	})
}

// BoundingBox returns the world bounding box of everything in the
// scene.
func (sc *Scene) BoundingBox() math32.Box2 {
	return sc.Root.BoundingBox()
}

// ShapeByID returns the shape with the given id, or nil.
func (sc *Scene) ShapeByID(id string) Shape {
	if sc.Root.id == id {
		return sc.Root
	}
	return sc.Root.ByID(id)
}
