// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image"

// Cap is the style of stroke endings.
type Cap int32 //enums:enum -trim-prefix Cap -transform lower

const (
	// CapButt ends strokes flat at the endpoint.
	CapButt Cap = iota

	// CapRound ends strokes with a semicircle.
	CapRound

	// CapSquare ends strokes with a half square.
	CapSquare
)

// Join is the style of stroke corners.
type Join int32 //enums:enum -trim-prefix Join -transform lower

const (
	// JoinMiter extends the stroke edges to a sharp corner.
	JoinMiter Join = iota

	// JoinRound rounds the corner.
	JoinRound

	// JoinBevel cuts the corner flat.
	JoinBevel
)

// Texture is a fill or stroke source that can change after it is
// assigned, such as a gradient being animated or a video frame being
// streamed in. Assigning a Texture to a shape's fill or stroke
// registers a callback on it; when the texture reports a change the
// shape re-raises it as the corresponding dirty flag so renderers know
// to re-sample.
//
// Static sources need no notification support and can be any
// [image.Image], for example [github.com/easel2d/easel/colors.Uniform].
type Texture interface {
	image.Image

	// OnChange sets the single callback invoked when the texture's
	// content changes. Passing nil unregisters the previous
	// callback. Assigning the texture elsewhere replaces the
	// callback, so a texture notifies only its current owner.
	OnChange(fn func())
}

// bindTexture moves the change callback of a fill or stroke source
// from old to next. Either image may be a plain static image, in which
// case there is nothing to move on that side.
func bindTexture(old, next image.Image, fn func()) {
	if tx, ok := old.(Texture); ok {
		tx.OnChange(nil)
	}
	if tx, ok := next.(Texture); ok {
		tx.OnChange(fn)
	}
}
