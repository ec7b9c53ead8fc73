// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"github.com/easel2d/easel/base/slicesx"
)

// Collection is an ordered container that reports its mutations to a
// single subscriber through the OnInsert, OnRemove, and OnOrder
// callbacks. Paths use one for their anchors and groups for their
// children; the owner wires the callbacks when it creates the
// collection. Callbacks fire after the mutation has been applied.
type Collection[T comparable] struct {
	items   []T
	present map[T]struct{}

	// OnInsert is called with the items just added.
	OnInsert func(items []T)

	// OnRemove is called with the items just removed.
	OnRemove func(items []T)

	// OnOrder is called after items are reordered in place.
	OnOrder func()
}

// NewCollection returns a collection holding the given items. The
// callbacks are nil and do not fire for the initial contents.
func NewCollection[T comparable](items ...T) *Collection[T] {
	c := &Collection[T]{present: make(map[T]struct{}, len(items))}
	c.items = append(c.items, items...)
	for _, it := range items {
		c.present[it] = struct{}{}
	}
	return c
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the item at index i.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Values returns a copy of the items in order.
func (c *Collection[T]) Values() []T {
	return slices.Clone(c.items)
}

// Index returns the index of the first occurrence of item, or -1 if
// the collection does not contain it.
func (c *Collection[T]) Index(item T) int {
	return slices.Index(c.items, item)
}

// Contains reports whether the collection holds item.
func (c *Collection[T]) Contains(item T) bool {
	_, ok := c.present[item]
	return ok
}

// Add appends items and fires OnInsert once for the batch.
func (c *Collection[T]) Add(items ...T) {
	if len(items) == 0 {
		return
	}
	c.items = append(c.items, items...)
	for _, it := range items {
		c.present[it] = struct{}{}
	}
	if c.OnInsert != nil {
		c.OnInsert(items)
	}
}

// Insert inserts items at index i and fires OnInsert once for the
// batch.
func (c *Collection[T]) Insert(i int, items ...T) {
	if len(items) == 0 {
		return
	}
	c.items = slices.Insert(c.items, i, items...)
	for _, it := range items {
		c.present[it] = struct{}{}
	}
	if c.OnInsert != nil {
		c.OnInsert(items)
	}
}

// Remove removes the first occurrence of each given item and fires
// OnRemove once with the items actually removed. Items not present are
// ignored.
func (c *Collection[T]) Remove(items ...T) {
	removed := make([]T, 0, len(items))
	for _, it := range items {
		if c.eject(it) {
			removed = append(removed, it)
		}
	}
	if len(removed) > 0 && c.OnRemove != nil {
		c.OnRemove(removed)
	}
}

// RemoveAt removes and returns the item at index i.
func (c *Collection[T]) RemoveAt(i int) T {
	it := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	c.forget(it)
	if c.OnRemove != nil {
		c.OnRemove([]T{it})
	}
	return it
}

// Set replaces the item at index i, firing OnRemove for the old item
// and OnInsert for the new one.
func (c *Collection[T]) Set(i int, item T) {
	old := c.items[i]
	if old == item {
		return
	}
	c.items[i] = item
	c.forget(old)
	c.present[item] = struct{}{}
	if c.OnRemove != nil {
		c.OnRemove([]T{old})
	}
	if c.OnInsert != nil {
		c.OnInsert([]T{item})
	}
}

// Clear removes all items, firing OnRemove once with everything
// removed.
func (c *Collection[T]) Clear() {
	if len(c.items) == 0 {
		return
	}
	removed := c.items
	c.items = nil
	clear(c.present)
	if c.OnRemove != nil {
		c.OnRemove(removed)
	}
}

// Move moves the item at index from to index to and fires OnOrder.
func (c *Collection[T]) Move(from, to int) {
	slicesx.Move(c.items, from, to)
	if c.OnOrder != nil {
		c.OnOrder()
	}
}

// Swap swaps the items at indexes i and j and fires OnOrder.
func (c *Collection[T]) Swap(i, j int) {
	slicesx.Swap(c.items, i, j)
	if c.OnOrder != nil {
		c.OnOrder()
	}
}

// eject removes the first occurrence of item without firing any
// callback, reporting whether it was present. Reparenting uses this to
// detach a child from its old collection without triggering a second
// round of membership bookkeeping.
func (c *Collection[T]) eject(item T) bool {
	i := slices.Index(c.items, item)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.forget(item)
	return true
}

// forget drops item from the membership set unless another occurrence
// remains.
func (c *Collection[T]) forget(item T) {
	if slices.Index(c.items, item) < 0 {
		delete(c.present, item)
	}
}
