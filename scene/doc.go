// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements a reactive 2D vector-graphics scenegraph:
// a tree of paths, groups, text runs, and point clouds with geometric
// and styling attributes, from which the package computes derived
// geometry (transform matrices, rendered vertices, arc lengths,
// bounding boxes) for a renderer to consume.
//
// # Render protocol
//
// Mutation and rendering are decoupled by per-shape dirty flags.
// Mutating a shape only records which aspects changed; nothing is
// recomputed until [Shape.Update] runs. A renderer drives the
// two-phase protocol once per frame:
//
//	sc.Update()     // recompute everything the flags mark stale
//	...             // read flags, rendered vertices, matrices
//	sc.ClearDirty() // acknowledge, so the next frame diffs cleanly
//
// Between Update and ClearDirty the flags tell the renderer exactly
// which attributes to re-emit. Flags covering internal derived state,
// such as the arc-length table, are cleared by Update itself; flags a
// renderer acts on survive until ClearDirty.
//
// Derived reads such as [Path.Length], [Shape.BoundingBox], and
// [Path.PointAt] update whatever state they need on their own, so
// they are valid at any time.
//
// # Trimming
//
// Every shape carries a beginning and ending fraction in [0, 1].
// Paths interpret the pair as an arc-length window and re-derive the
// rendered vertex run each update, splitting curves exactly at the
// cut points; a renderer must therefore draw [Path.RenderedVertices],
// not the authored vertices, and close the outline only when
// [Path.RenderedClosed] reports true. Points interpret the pair as an
// index window, and groups distribute their own window onto children
// in proportion to child arc lengths.
//
// # Concurrency
//
// The scenegraph is single-threaded: a scene and all shapes in it
// must be confined to one goroutine, with cross-thread work
// communicated by channels if needed. Only [SetLogger], [Logger], and
// the lazily parsed [DefaultFace] are safe for concurrent use.
package scene
