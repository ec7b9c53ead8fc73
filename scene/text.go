// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/easel2d/easel/math32"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Alignment is the horizontal anchoring of a [Text] relative to its
// position.
type Alignment int32 //enums:enum -trim-prefix Align -transform lower

const (
	// AlignStart places the position at the start of the text.
	AlignStart Alignment = iota

	// AlignMiddle centers the text on the position.
	AlignMiddle

	// AlignEnd places the position at the end of the text.
	AlignEnd
)

// Baseline is the vertical anchoring of a [Text] relative to its
// position.
type Baseline int32 //enums:enum -trim-prefix Baseline -transform lower

const (
	// BaselineTop places the position at the top of the line box.
	BaselineTop Baseline = iota

	// BaselineMiddle centers the line box on the position.
	BaselineMiddle

	// BaselineAlphabetic places the position on the alphabetic
	// baseline.
	BaselineAlphabetic

	// BaselineBottom places the position at the bottom of the line
	// box.
	BaselineBottom
)

// TextMetrics is the shaped extent of a [Text] value. Ascent and
// Descent are both positive distances from the alphabetic baseline.
type TextMetrics struct {
	Width   float32
	Ascent  float32
	Descent float32
	LineGap float32
}

// Height returns the line box height, ascent plus descent.
func (m TextMetrics) Height() float32 { return m.Ascent + m.Descent }

var (
	defaultFaceOnce sync.Once
	defaultFace     *font.Face
)

// DefaultFace returns the package default font face, Latin Modern
// Roman, parsed once from the embedded TTF.
func DefaultFace() *font.Face {
	defaultFaceOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(lmroman10regular.TTF))
		if err != nil {
			panic(fmt.Errorf("failed to parse embedded font: %v", err))
		}
		defaultFace = face
	})
	return defaultFace
}

// Text is a single run of styled text. Its geometry is the shaped
// extent of the value, measured lazily with HarfBuzz; the transform
// surface is shared with every other shape.
type Text struct {
	ShapeBase

	value      string
	family     string
	size       float32
	leading    float32
	alignment  Alignment
	baseline   Baseline
	style      string
	weight     float32
	decoration string

	face     *font.Face
	metrics  TextMetrics
	measured bool
}

// NewText returns a text shape with the given value and default
// styling: 13 unit sans-serif, centered on its position, black fill
// and no stroke.
func NewText(sc *Scene, value string) *Text {
	t := &Text{}
	initShape(&t.ShapeBase, sc)
	t.value = value
	t.family = "sans-serif"
	t.size = 13
	t.leading = 17
	t.alignment = AlignMiddle
	t.baseline = BaselineMiddle
	t.style = "normal"
	t.weight = 400
	t.decoration = "none"
	t.stroke = nil
	return t
}

// Kind reports KindText.
func (t *Text) Kind() Kind { return KindText }

// Value returns the displayed string.
func (t *Text) Value() string { return t.value }

// SetValue sets the displayed string.
func (t *Text) SetValue(value string) {
	if t.value == value {
		return
	}
	t.value = value
	t.measured = false
	t.dirty.SetFlag(true, DirtyValue)
}

// Family returns the font family request.
func (t *Text) Family() string { return t.family }

// SetFamily sets the font family request.
func (t *Text) SetFamily(family string) {
	if t.family == family {
		return
	}
	t.family = family
	t.measured = false
	t.dirty.SetFlag(true, DirtyFamily)
}

// Size returns the font size.
func (t *Text) Size() float32 { return t.size }

// SetSize sets the font size.
func (t *Text) SetSize(size float32) {
	if t.size == size {
		return
	}
	t.size = size
	t.measured = false
	t.dirty.SetFlag(true, DirtySize)
}

// Leading returns the line spacing.
func (t *Text) Leading() float32 { return t.leading }

// SetLeading sets the line spacing.
func (t *Text) SetLeading(leading float32) {
	if t.leading == leading {
		return
	}
	t.leading = leading
	t.dirty.SetFlag(true, DirtyLeading)
}

// Alignment returns the horizontal anchoring.
func (t *Text) Alignment() Alignment { return t.alignment }

// SetAlignment sets the horizontal anchoring.
func (t *Text) SetAlignment(a Alignment) {
	if t.alignment == a {
		return
	}
	t.alignment = a
	t.dirty.SetFlag(true, DirtyAlignment)
}

// Baseline returns the vertical anchoring.
func (t *Text) Baseline() Baseline { return t.baseline }

// SetBaseline sets the vertical anchoring.
func (t *Text) SetBaseline(b Baseline) {
	if t.baseline == b {
		return
	}
	t.baseline = b
	t.dirty.SetFlag(true, DirtyBaseline)
}

// Style returns the font style request, normal or italic.
func (t *Text) Style() string { return t.style }

// SetStyle sets the font style request.
func (t *Text) SetStyle(style string) {
	if t.style == style {
		return
	}
	t.style = style
	t.measured = false
	t.dirty.SetFlag(true, DirtyStyle)
}

// Weight returns the font weight request.
func (t *Text) Weight() float32 { return t.weight }

// SetWeight sets the font weight request.
func (t *Text) SetWeight(weight float32) {
	if t.weight == weight {
		return
	}
	t.weight = weight
	t.measured = false
	t.dirty.SetFlag(true, DirtyWeight)
}

// Decoration returns the decoration request, none, underline, or
// strikethrough.
func (t *Text) Decoration() string { return t.decoration }

// SetDecoration sets the decoration request.
func (t *Text) SetDecoration(decoration string) {
	if t.decoration == decoration {
		return
	}
	t.decoration = decoration
	t.dirty.SetFlag(true, DirtyDecoration)
}

// Face returns the font face used for measurement, or nil if the
// package default is in effect.
func (t *Text) Face() *font.Face { return t.face }

// SetFace sets the font face used for measurement. A nil face
// restores the package default.
func (t *Text) SetFace(face *font.Face) {
	if t.face == face {
		return
	}
	t.face = face
	t.measured = false
	t.dirty.SetFlag(true, DirtyFamily)
}

// Update recomputes the matrix, with the quarter-turn rotor
// correction text needs under the standard orientation.
func (t *Text) Update(bubble bool) {
	t.updateMatrix(true)
	t.bubbleUpdate(bubble)
}

// Measure returns the shaped extent of the value, shaping it first if
// the value or font state changed since the last call. An empty value
// measures as zero.
func (t *Text) Measure() TextMetrics {
	if !t.measured {
		t.measure()
	}
	return t.metrics
}

func (t *Text) measure() {
	t.metrics = TextMetrics{}
	t.measured = true
	if t.value == "" {
		return
	}
	face := t.face
	if face == nil {
		face = DefaultFace()
	}
	runes := []rune(t.value)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      math32.ToFixed(t.size),
		Script:    textScript(runes),
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)
	t.metrics = TextMetrics{
		Width:   math32.FromFixed(out.Advance),
		Ascent:  math32.FromFixed(out.LineBounds.Ascent),
		Descent: -math32.FromFixed(out.LineBounds.Descent),
		LineGap: math32.FromFixed(out.LineBounds.Gap),
	}
}

// textScript returns the script of the first non-space rune.
func textScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// LocalBoundingBox returns the measured extent under the local
// matrix, anchored per the alignment and baseline.
func (t *Text) LocalBoundingBox() math32.Box2 {
	t.Update(false)
	return t.boundingBox(t.matrix.n)
}

// BoundingBox returns the measured extent under the world matrix,
// anchored per the alignment and baseline.
func (t *Text) BoundingBox() math32.Box2 {
	t.Update(false)
	return t.boundingBox(t.WorldMatrix())
}

func (t *Text) boundingBox(m math32.Matrix3) math32.Box2 {
	mt := t.Measure()
	var left, right, top, bottom float32
	switch t.alignment {
	case AlignStart:
		right = mt.Width
	case AlignEnd:
		left = -mt.Width
	default:
		left, right = -mt.Width/2, mt.Width/2
	}
	h := mt.Height()
	switch t.baseline {
	case BaselineTop:
		bottom = h
	case BaselineAlphabetic:
		top, bottom = -mt.Ascent, mt.Descent
	case BaselineBottom:
		top = -h
	default:
		top, bottom = -h/2, h/2
	}
	bb := math32.B2Empty()
	bb.ExpandByPoint(m.MulVector2AsPoint(math32.Vec2(left, top)))
	bb.ExpandByPoint(m.MulVector2AsPoint(math32.Vec2(right, top)))
	bb.ExpandByPoint(m.MulVector2AsPoint(math32.Vec2(left, bottom)))
	bb.ExpandByPoint(m.MulVector2AsPoint(math32.Vec2(right, bottom)))
	if t.stroke != nil {
		bb.ExpandByScalar(t.border())
	}
	return bb
}

// Clone returns an independent copy of the text.
func (t *Text) Clone() Shape {
	o := NewText(t.scene, t.value)
	o.family = t.family
	o.size = t.size
	o.leading = t.leading
	o.alignment = t.alignment
	o.baseline = t.baseline
	o.style = t.style
	o.weight = t.weight
	o.decoration = t.decoration
	o.face = t.face
	o.copyStyleFrom(&t.ShapeBase)
	return o
}
