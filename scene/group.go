// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"image"
	"slices"
	"strings"

	"github.com/easel2d/easel/math32"
)

// Group is a shape that contains other shapes. Its transform applies
// to every child, its style setters fan out to every child, and its
// additions and subtractions queues let renderers patch their output
// incrementally instead of rebuilding it.
type Group struct {
	ShapeBase

	children *Collection[Shape]

	// additions and subtractions are one-shot queues of children
	// added or removed since the last ClearDirty, consumed by
	// renderers. A child never sits in both at once.
	additions    []Shape
	subtractions []Shape
}

// NewGroup returns a group containing the given shapes, reparenting
// them out of any previous groups.
func NewGroup(sc *Scene, shapes ...Shape) *Group {
	g := &Group{}
	initGroup(g, sc, shapes...)
	return g
}

func initGroup(g *Group, sc *Scene, shapes ...Shape) {
	initShape(&g.ShapeBase, sc)
	g.children = NewCollection[Shape]()
	g.children.OnInsert = func(items []Shape) {
		for _, sh := range items {
			g.adopt(sh)
		}
	}
	g.children.OnRemove = func(items []Shape) {
		for _, sh := range items {
			g.orphan(sh)
		}
	}
	g.children.OnOrder = func() {
		g.dirty.SetFlag(true, DirtyOrder)
	}
	g.Add(shapes...)
}

// Kind returns [KindGroup].
func (g *Group) Kind() Kind { return KindGroup }

// Children is the group's child collection, in paint order. Prefer
// [Group.Add] and [Group.Remove]; mutating the collection directly
// also runs the reparenting protocol, via its callbacks.
func (g *Group) Children() *Collection[Shape] { return g.children }

// Additions returns the children added since the last ClearDirty.
// The slice is owned by the group; treat it as read-only.
func (g *Group) Additions() []Shape { return g.additions }

// Subtractions returns the children removed since the last
// ClearDirty. The slice is owned by the group; treat it as read-only.
func (g *Group) Subtractions() []Shape { return g.subtractions }

// Add appends shapes as children, removing each from its previous
// group first. Re-adding a current child moves it to the end. Nil
// shapes are ignored.
func (g *Group) Add(shapes ...Shape) {
	for _, sh := range shapes {
		if sh == nil {
			Logger().Warn("scene: ignoring nil shape added to group", "group", g.id)
			continue
		}
		g.children.Add(sh)
	}
}

// Remove detaches the given shapes from the group and disposes them.
// Shapes not belonging to the group are ignored.
func (g *Group) Remove(shapes ...Shape) {
	for _, sh := range shapes {
		if sh == nil {
			Logger().Warn("scene: ignoring nil shape removed from group", "group", g.id)
			continue
		}
		if sh.AsShapeBase().parent != g {
			continue
		}
		g.children.Remove(sh)
		sh.Dispose()
	}
}

// adopt runs the insert half of the reparenting protocol for a child
// just appended to the collection.
func (g *Group) adopt(child Shape) {
	cb := child.AsShapeBase()
	if cb.parent == g {
		// Re-added: drop the older occurrence so the child ends up
		// at the end exactly once.
		g.children.eject(child)
		g.dirty.SetFlag(true, DirtyOrder)
		return
	}
	if prev := cb.parent; prev != nil {
		prev.children.eject(child)
		prev.queueSubtraction(child)
		prev.dirty.SetFlag(true, DirtyLength)
	}
	cb.parent = g
	g.queueAddition(child)
	g.dirty.SetFlag(true, DirtyLength)
	if cb.scene == nil && g.scene != nil {
		setSceneDeep(child, g.scene)
	}
}

// orphan runs the remove half of the reparenting protocol for a child
// just removed from the collection.
func (g *Group) orphan(child Shape) {
	cb := child.AsShapeBase()
	if cb.parent != g {
		return
	}
	cb.parent = nil
	g.queueSubtraction(child)
	g.dirty.SetFlag(true, DirtyLength)
}

// queueAddition records child in the additions queue, first clearing
// any pending entry for it in either queue.
func (g *Group) queueAddition(child Shape) {
	g.subtractions = removeShape(g.subtractions, child)
	g.additions = removeShape(g.additions, child)
	g.additions = append(g.additions, child)
	g.dirty.SetFlag(true, DirtyAdditions)
}

// queueSubtraction records child in the subtractions queue, first
// clearing any pending entry for it in either queue.
func (g *Group) queueSubtraction(child Shape) {
	g.additions = removeShape(g.additions, child)
	g.subtractions = removeShape(g.subtractions, child)
	g.subtractions = append(g.subtractions, child)
	g.dirty.SetFlag(true, DirtySubtractions)
}

func removeShape(s []Shape, sh Shape) []Shape {
	return slices.DeleteFunc(s, func(x Shape) bool { return x == sh })
}

// setSceneDeep attaches sh and everything under it to sc.
func setSceneDeep(sh Shape, sc *Scene) {
	sh.AsShapeBase().scene = sc
	if g, ok := sh.(*Group); ok {
		for _, child := range g.children.items {
			setSceneDeep(child, sc)
		}
	}
}

// Update recomposes the group's matrix, redistributes the trim range
// over the children when it changed, and refreshes the aggregate
// length. Children update themselves; drive the whole tree with
// [Scene.Update].
func (g *Group) Update(bubble bool) {
	g.updateMatrix(false)
	if g.dirty.HasFlag(DirtyBeginning) || g.dirty.HasFlag(DirtyEnding) {
		g.distribute()
		g.dirty.SetFlag(false, DirtyBeginning, DirtyEnding)
	}
	if g.dirty.HasFlag(DirtyLength) {
		g.updateLength()
	}
	g.bubbleUpdate(bubble)
}

// SetBeginning sets the normalized start of the visible range,
// clamped to [0, 1]. The group distributes it across children on the
// next update.
func (g *Group) SetBeginning(v float32) {
	v = math32.Clamp(v, 0, 1)
	if g.beginning == v {
		return
	}
	g.beginning = v
	g.dirty.SetFlag(true, DirtyBeginning)
}

// SetEnding sets the normalized end of the visible range, clamped to
// [0, 1]. The group distributes it across children on the next
// update.
func (g *Group) SetEnding(v float32) {
	v = math32.Clamp(v, 0, 1)
	if g.ending == v {
		return
	}
	g.ending = v
	g.dirty.SetFlag(true, DirtyEnding)
}

// Length returns the summed arc length of the children, recomputing
// when stale or non-positive.
func (g *Group) Length() float32 {
	if g.dirty.HasFlag(DirtyLength) || g.length <= 0 {
		g.updateLength()
	}
	return g.length
}

func (g *Group) updateLength() {
	total := float32(0)
	for _, child := range g.children.items {
		total += child.Length()
	}
	g.length = total
	g.dirty.SetFlag(false, DirtyLength)
}

// distribute maps the group's beginning/ending range onto per-child
// trim ranges in proportion to cumulative arc length. Children before
// the visible window are fully hidden with beginning=ending=1, after
// it with beginning=ending=0, and children straddling a boundary get
// the matching fractional value.
func (g *Group) distribute() {
	total := g.Length()
	if total <= 0 {
		return
	}
	beg := math32.Min(g.beginning, g.ending) * total
	end := math32.Max(g.beginning, g.ending) * total
	sum := float32(0)
	for _, child := range g.children.items {
		cl := child.Length()
		switch {
		case sum+cl <= beg:
			child.SetBeginning(1)
			child.SetEnding(1)
		case sum >= end:
			child.SetBeginning(0)
			child.SetEnding(0)
		case cl <= 0:
			child.SetBeginning(0)
			child.SetEnding(1)
		default:
			child.SetBeginning(math32.Clamp((beg-sum)/cl, 0, 1))
			child.SetEnding(math32.Clamp((end-sum)/cl, 0, 1))
		}
		sum += cl
	}
}

// ClearDirty clears the dirty flags and empties both one-shot queues.
func (g *Group) ClearDirty() {
	clear(g.additions)
	g.additions = g.additions[:0]
	clear(g.subtractions)
	g.subtractions = g.subtractions[:0]
	g.ShapeBase.ClearDirty()
}

// SetFill sets the fill on the group and every child, cascading
// through nested groups.
func (g *Group) SetFill(fill image.Image) {
	g.ShapeBase.SetFill(fill)
	for _, child := range g.children.items {
		child.SetFill(fill)
	}
}

// SetStroke sets the stroke on the group and every child.
func (g *Group) SetStroke(stroke image.Image) {
	g.ShapeBase.SetStroke(stroke)
	for _, child := range g.children.items {
		child.SetStroke(stroke)
	}
}

// SetLinewidth sets the stroke width on the group and every child.
func (g *Group) SetLinewidth(w float32) {
	g.ShapeBase.SetLinewidth(w)
	for _, child := range g.children.items {
		child.SetLinewidth(w)
	}
}

// SetCap sets the stroke ending style on the group and every child.
func (g *Group) SetCap(c Cap) {
	g.ShapeBase.SetCap(c)
	for _, child := range g.children.items {
		child.SetCap(c)
	}
}

// SetJoin sets the stroke corner style on the group and every child.
func (g *Group) SetJoin(j Join) {
	g.ShapeBase.SetJoin(j)
	for _, child := range g.children.items {
		child.SetJoin(j)
	}
}

// SetMiter sets the miter limit on the group and every child.
func (g *Group) SetMiter(m float32) {
	g.ShapeBase.SetMiter(m)
	for _, child := range g.children.items {
		child.SetMiter(m)
	}
}

// SetClosed sets the closed flag on the group and every child.
func (g *Group) SetClosed(closed bool) {
	g.ShapeBase.SetClosed(closed)
	for _, child := range g.children.items {
		child.SetClosed(closed)
	}
}

// SetCurved sets the curved flag on the group and every child.
func (g *Group) SetCurved(curved bool) {
	g.ShapeBase.SetCurved(curved)
	for _, child := range g.children.items {
		child.SetCurved(curved)
	}
}

// SetAutomatic sets the automatic flag on the group and every child.
func (g *Group) SetAutomatic(automatic bool) {
	g.ShapeBase.SetAutomatic(automatic)
	for _, child := range g.children.items {
		child.SetAutomatic(automatic)
	}
}

// SetVisible sets visibility on the group and every child.
func (g *Group) SetVisible(visible bool) {
	g.ShapeBase.SetVisible(visible)
	for _, child := range g.children.items {
		child.SetVisible(visible)
	}
}

// BoundingBox returns the union of the children's world bounding
// boxes.
func (g *Group) BoundingBox() math32.Box2 {
	g.Update(false)
	box := math32.B2Empty()
	for _, child := range g.children.items {
		cb := child.BoundingBox()
		if !cb.IsEmpty() {
			box.ExpandByBox(cb)
		}
	}
	return box
}

// LocalBoundingBox returns the union of the children's local bounding
// boxes with the group's own matrix applied.
func (g *Group) LocalBoundingBox() math32.Box2 {
	g.Update(false)
	box := math32.B2Empty()
	for _, child := range g.children.items {
		cb := child.LocalBoundingBox()
		if !cb.IsEmpty() {
			box.ExpandByBox(cb)
		}
	}
	if box.IsEmpty() {
		return box
	}
	return box.MulMatrix3(g.matrix.n)
}

// Subdivide densifies every child that supports it, skipping kinds
// that do not, and joins any remaining errors.
func (g *Group) Subdivide(limit int) error {
	var errs []error
	for _, child := range g.children.items {
		if err := child.Subdivide(limit); err != nil && !errors.Is(err, ErrNotImplemented) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ByID returns the shape with the given id anywhere under the group,
// or nil.
func (g *Group) ByID(id string) Shape {
	for _, child := range g.children.items {
		if child.AsShapeBase().id == id {
			return child
		}
		if sub, ok := child.(*Group); ok {
			if found := sub.ByID(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// ByClassName returns every shape under the group whose class list
// contains name.
func (g *Group) ByClassName(name string) []Shape {
	var out []Shape
	for _, child := range g.children.items {
		if slices.Contains(strings.Fields(child.AsShapeBase().className), name) {
			out = append(out, child)
		}
		if sub, ok := child.(*Group); ok {
			out = append(out, sub.ByClassName(name)...)
		}
	}
	return out
}

// ByKind returns every shape under the group with the given type tag.
func (g *Group) ByKind(k Kind) []Shape {
	var out []Shape
	for _, child := range g.children.items {
		if child.Kind() == k {
			out = append(out, child)
		}
		if sub, ok := child.(*Group); ok {
			out = append(out, sub.ByKind(k)...)
		}
	}
	return out
}

// Clone returns a deep copy of the group with cloned children, a
// fresh id, and no parent.
func (g *Group) Clone() Shape {
	c := &Group{}
	initGroup(c, g.scene)
	for _, child := range g.children.items {
		c.Add(child.Clone())
	}
	c.copyStyleFrom(&g.ShapeBase)
	return c
}

// Dispose unbinds the child collection callbacks along with the base
// listeners. The children themselves are not disposed.
func (g *Group) Dispose() {
	g.children.OnInsert = nil
	g.children.OnRemove = nil
	g.children.OnOrder = nil
	g.ShapeBase.Dispose()
}
