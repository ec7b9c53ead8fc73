// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/json"
	"image"
	"image/color"
	"testing"

	"github.com/easel2d/easel/base/tolassert"
	"github.com/easel2d/easel/colors"
	"github.com/easel2d/easel/math32"
	"github.com/stretchr/testify/assert"
)

func assertAnchorEqual(t *testing.T, want, got *Anchor) {
	t.Helper()
	assert.Equal(t, want.Command(), got.Command())
	assert.Equal(t, want.Relative(), got.Relative())
	assert.Equal(t, want.Origin().X(), got.Origin().X())
	assert.Equal(t, want.Origin().Y(), got.Origin().Y())
	assert.Equal(t, want.Left().X(), got.Left().X())
	assert.Equal(t, want.Left().Y(), got.Left().Y())
	assert.Equal(t, want.Right().X(), got.Right().X())
	assert.Equal(t, want.Right().Y(), got.Right().Y())
}

func TestSceneRoundTrip(t *testing.T) {
	sc := NewScene(800, 600)

	p := NewPath(sc,
		NewAnchor(0, 0),
		NewCurveAnchor(math32.Vec2(4, 0), math32.Vec2(3, -1), math32.Vec2(5, 1)),
		NewAnchor(4, 3),
	)
	p.SetAutomatic(false)
	p.Vertices().At(2).SetCommand(LineTo)
	p.SetClosed(true)
	p.SetID("wing")
	p.SetClassName("hull dark")
	p.Position().Set(12, -7)
	p.SetRotation(0.7)
	p.Scale().Set(2, 0.5)
	p.SetSkewX(0.1)
	p.SetFill(colors.Uniform(color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 0xFF}))
	p.SetStroke(nil)
	p.SetLinewidth(3)
	p.SetOpacity(0.5)
	p.SetCap(CapRound)
	p.SetJoin(JoinBevel)
	p.SetMiter(2)
	p.SetDashes(4, 2)
	p.SetDashOffset(1)
	p.SetBeginning(0.25)

	tx := NewText(sc, "harbor")
	tx.SetFamily("serif")
	tx.SetSize(19)
	tx.SetLeading(24)
	tx.SetAlignment(AlignEnd)
	tx.SetBaseline(BaselineTop)
	tx.SetStyle("italic")
	tx.SetWeight(700)
	tx.SetDecoration("underline")

	pts := NewPoints(sc)
	pts.Vertices().Add(NewVector(0, 0), NewVector(1, 2), NewVector(3, -1))
	pts.SetSize(3)
	pts.SetSizeAttenuation(true)

	sub := NewGroup(sc, tx, pts)
	sub.SetID("labels")
	sc.Root.Add(p, sub)

	data, err := MarshalScene(sc)
	assert.NoError(t, err)

	dec, err := UnmarshalScene(data)
	assert.NoError(t, err)
	assert.Equal(t, float32(800), dec.Width)
	assert.Equal(t, float32(600), dec.Height)
	assert.False(t, dec.Goofy)
	assert.Same(t, dec, dec.Root.Scene())

	kids := dec.Root.Children().Values()
	assert.Len(t, kids, 2)

	dp, ok := kids[0].(*Path)
	assert.True(t, ok)
	assert.Equal(t, "wing", dp.ID())
	assert.Equal(t, "hull dark", dp.ClassName())
	assert.Same(t, dec, dp.Scene())
	assert.Equal(t, allDirty, dp.Dirty())

	assert.Equal(t, p.Position().X(), dp.Position().X())
	assert.Equal(t, p.Position().Y(), dp.Position().Y())
	assert.Equal(t, p.Attitude().A(), dp.Attitude().A())
	assert.Equal(t, p.Attitude().B(), dp.Attitude().B())
	assert.Equal(t, p.Scale().X(), dp.Scale().X())
	assert.Equal(t, p.Scale().Y(), dp.Scale().Y())
	assert.Equal(t, p.SkewX(), dp.SkewX())
	assert.Equal(t, float32(0), dp.SkewY())

	assert.Equal(t, color.RGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 0xFF}, dp.Fill().(*image.Uniform).C)
	assert.Nil(t, dp.Stroke())
	assert.Equal(t, float32(3), dp.Linewidth())
	assert.Equal(t, float32(0.5), dp.Opacity())
	assert.Equal(t, CapRound, dp.Cap())
	assert.Equal(t, JoinBevel, dp.Join())
	assert.Equal(t, float32(2), dp.Miter())
	assert.Equal(t, []float32{4, 2}, dp.Dashes())
	assert.Equal(t, float32(1), dp.DashOffset())

	assert.True(t, dp.Closed())
	assert.False(t, dp.Automatic())
	assert.Equal(t, float32(0.25), dp.Beginning())
	assert.Equal(t, float32(1), dp.Ending())

	assert.Equal(t, 3, dp.Vertices().Len())
	for i := 0; i < 3; i++ {
		assertAnchorEqual(t, p.Vertices().At(i), dp.Vertices().At(i))
	}

	sg, ok := kids[1].(*Group)
	assert.True(t, ok)
	assert.Equal(t, "labels", sg.ID())
	assert.Same(t, sg, dec.Root.ByID("labels"))
	assert.Equal(t, 2, sg.Children().Len())

	dt, ok := sg.Children().At(0).(*Text)
	assert.True(t, ok)
	assert.Equal(t, "harbor", dt.Value())
	assert.Equal(t, "serif", dt.Family())
	assert.Equal(t, float32(19), dt.Size())
	assert.Equal(t, float32(24), dt.Leading())
	assert.Equal(t, AlignEnd, dt.Alignment())
	assert.Equal(t, BaselineTop, dt.Baseline())
	assert.Equal(t, "italic", dt.Style())
	assert.Equal(t, float32(700), dt.Weight())
	assert.Equal(t, "underline", dt.Decoration())

	dpts, ok := sg.Children().At(1).(*Points)
	assert.True(t, ok)
	assert.Equal(t, 3, dpts.Vertices().Len())
	assert.Equal(t, float32(1), dpts.Vertices().At(1).X())
	assert.Equal(t, float32(2), dpts.Vertices().At(1).Y())
	assert.Equal(t, float32(3), dpts.Size())
	assert.True(t, dpts.SizeAttenuation())

	again, err := MarshalScene(dec)
	assert.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestShapeRoundTripManualMatrix(t *testing.T) {
	p := NewPath(nil, NewAnchor(0, 0), NewAnchor(6, 0))
	p.Matrix().Set(2, 0, 0, 0, 2, 0, 5, 5, 1).SetManual(true)

	data, err := MarshalShape(p)
	assert.NoError(t, err)

	sh, err := UnmarshalShape(nil, data)
	assert.NoError(t, err)
	d, ok := sh.(*Path)
	assert.True(t, ok)
	assert.Nil(t, d.Scene())
	assert.True(t, d.Matrix().Manual())
	assert.Equal(t, p.Matrix().Elements(), d.Matrix().Elements())
	assert.Equal(t, allDirty, d.Dirty())
}

func TestMarshalFlattensDerivedShapes(t *testing.T) {
	c := NewCircle(nil, 0, 0, 2)

	data, err := MarshalShape(c)
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "path", raw["kind"])
	assert.Len(t, raw["vertices"], 4)

	sh, err := UnmarshalShape(nil, data)
	assert.NoError(t, err)
	d, ok := sh.(*Path)
	assert.True(t, ok)
	assert.True(t, d.Closed())
	assert.False(t, d.Automatic())
	assert.Equal(t, 4, d.Vertices().Len())

	d.Update(false)
	tolassert.EqualTol(t, 4*math32.Pi, d.Length(), 1.0e-2)
}

func TestTextureRoundTrip(t *testing.T) {
	p := NewPath(nil, NewAnchor(0, 0), NewAnchor(1, 0))
	p.SetFill(colors.Uniform(color.NRGBA{R: 255, G: 0, B: 255, A: 128}))
	p.SetStroke(nil)

	data, err := MarshalShape(p)
	assert.NoError(t, err)

	var raw struct {
		Fill   string `json:"fill"`
		Stroke string `json:"stroke"`
	}
	assert.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "#FF00FF80", raw.Fill)
	assert.Equal(t, "none", raw.Stroke)

	sh, err := UnmarshalShape(nil, data)
	assert.NoError(t, err)
	d := sh.(*Path)
	assert.Nil(t, d.Stroke())
	assert.Equal(t, color.RGBA{R: 128, G: 0, B: 128, A: 128}, d.Fill().(*image.Uniform).C)
	assert.Equal(t, "#FF00FF80", colors.AsHex(d.Fill().(*image.Uniform).C))

	// Pattern fills have no text form: the field is dropped and
	// decoding falls back to the constructor default.
	p2 := NewPath(nil, NewAnchor(0, 0), NewAnchor(1, 0))
	p2.SetFill(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	data, err = MarshalShape(p2)
	assert.NoError(t, err)
	sh, err = UnmarshalShape(nil, data)
	assert.NoError(t, err)
	d2 := sh.(*Path)
	assert.NotNil(t, d2.Fill())
	assert.Equal(t, "#FFFFFF", colors.AsHex(d2.Fill().(*image.Uniform).C))
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := UnmarshalScene([]byte(`{`))
	assert.Error(t, err)

	_, err = UnmarshalScene([]byte(`{"width":1,"height":1,"root":{"kind":"path"}}`))
	assert.ErrorContains(t, err, "root must be a group")

	_, err = UnmarshalShape(nil, []byte(`{"kind":"blob"}`))
	assert.ErrorContains(t, err, "not a valid value for type Kind")

	_, err = UnmarshalShape(nil, []byte(`{"kind":"path","fill":"#12"}`))
	assert.ErrorContains(t, err, "decode fill")

	_, err = objectToShape(nil, &shapeObject{Kind: KindN})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestUnmarshalSceneDefaults(t *testing.T) {
	sc, err := UnmarshalScene([]byte(`{"width":10,"height":20}`))
	assert.NoError(t, err)
	assert.Equal(t, float32(10), sc.Width)
	assert.Equal(t, float32(20), sc.Height)
	assert.NotNil(t, sc.Root)
	assert.Equal(t, 0, sc.Root.Children().Len())

	g := NewScene(4, 4)
	g.Goofy = true
	data, err := MarshalScene(g)
	assert.NoError(t, err)
	dec, err := UnmarshalScene(data)
	assert.NoError(t, err)
	assert.True(t, dec.Goofy)
}
