// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/easel2d/easel/colors"
)

// ErrUnknownKind is returned when decoding a shape object whose kind
// tag names no known shape kind.
var ErrUnknownKind = errors.New("scene: unknown shape kind")

// shapeObject is the JSON form of a shape. The kind tag selects which
// of the optional sections apply: vertices for paths, children for
// groups, text and points for those kinds. Derived path shapes
// flatten to kind path with their plotted vertices. Masks and
// non-uniform fill or stroke images do not round-trip.
type shapeObject struct {
	Kind      Kind        `json:"kind"`
	ID        string      `json:"id"`
	ClassName string      `json:"className,omitempty"`
	Position  [2]float32  `json:"position"`
	Attitude  [2]float32  `json:"attitude"`
	Scale     [2]float32  `json:"scale"`
	Skew      [2]float32  `json:"skew"`
	Matrix    *[9]float32 `json:"matrix,omitempty"`

	Fill       string    `json:"fill,omitempty"`
	Stroke     string    `json:"stroke,omitempty"`
	Linewidth  float32   `json:"linewidth"`
	Opacity    float32   `json:"opacity"`
	Visible    bool      `json:"visible"`
	Cap        Cap       `json:"cap"`
	Join       Join      `json:"join"`
	Miter      float32   `json:"miter"`
	Dashes     []float32 `json:"dashes,omitempty"`
	DashOffset float32   `json:"dashOffset,omitempty"`

	Closed    bool    `json:"closed,omitempty"`
	Curved    bool    `json:"curved,omitempty"`
	Automatic bool    `json:"automatic,omitempty"`
	Beginning float32 `json:"beginning"`
	Ending    float32 `json:"ending"`

	Vertices []anchorObject `json:"vertices,omitempty"`
	Children []*shapeObject `json:"children,omitempty"`
	Text     *textObject    `json:"text,omitempty"`
	Points   *pointsObject  `json:"points,omitempty"`
}

type anchorObject struct {
	X        float32    `json:"x"`
	Y        float32    `json:"y"`
	Command  Command    `json:"command"`
	Relative bool       `json:"relative,omitempty"`
	Left     [2]float32 `json:"left"`
	Right    [2]float32 `json:"right"`

	RadiusX       float32 `json:"rx,omitempty"`
	RadiusY       float32 `json:"ry,omitempty"`
	XAxisRotation float32 `json:"xAxisRotation,omitempty"`
	LargeArc      bool    `json:"largeArc,omitempty"`
	Sweep         bool    `json:"sweep,omitempty"`
}

type textObject struct {
	Value      string    `json:"value"`
	Family     string    `json:"family"`
	Size       float32   `json:"size"`
	Leading    float32   `json:"leading"`
	Alignment  Alignment `json:"alignment"`
	Baseline   Baseline  `json:"baseline"`
	Style      string    `json:"style"`
	Weight     float32   `json:"weight"`
	Decoration string    `json:"decoration"`
}

type pointsObject struct {
	Vertices        [][2]float32 `json:"vertices"`
	Size            float32      `json:"size"`
	SizeAttenuation bool         `json:"sizeAttenuation,omitempty"`
}

type sceneObject struct {
	Width  float32      `json:"width"`
	Height float32      `json:"height"`
	Goofy  bool         `json:"goofy,omitempty"`
	Root   *shapeObject `json:"root"`
}

// MarshalScene encodes the scene and its full shape tree as JSON.
func MarshalScene(sc *Scene) ([]byte, error) {
	o := &sceneObject{
		Width:  sc.Width,
		Height: sc.Height,
		Goofy:  sc.Goofy,
		Root:   shapeToObject(sc.Root),
	}
	return json.Marshal(o)
}

// UnmarshalScene decodes a scene encoded by [MarshalScene]. Every
// shape in the result carries fully set dirty flags, so a renderer's
// next pass draws the whole tree.
func UnmarshalScene(data []byte) (*Scene, error) {
	var o sceneObject
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	sc := NewScene(o.Width, o.Height)
	sc.Goofy = o.Goofy
	if o.Root == nil {
		return sc, nil
	}
	root, err := objectToShape(sc, o.Root)
	if err != nil {
		return nil, err
	}
	g, ok := root.(*Group)
	if !ok {
		return nil, fmt.Errorf("scene: root must be a group, got %v", o.Root.Kind)
	}
	sc.Root = g
	return sc, nil
}

// MarshalShape encodes a single shape (and, for groups, its subtree)
// as JSON.
func MarshalShape(sh Shape) ([]byte, error) {
	return json.Marshal(shapeToObject(sh))
}

// UnmarshalShape decodes a shape encoded by [MarshalShape] into the
// given scene's coordinate convention. The shape is not attached to
// the scene tree; sc may be nil.
func UnmarshalShape(sc *Scene, data []byte) (Shape, error) {
	var o shapeObject
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return objectToShape(sc, &o)
}

func shapeToObject(sh Shape) *shapeObject {
	sh.Update(false)
	sb := sh.AsShapeBase()
	o := &shapeObject{
		Kind:      sh.Kind(),
		ID:        sb.id,
		ClassName: sb.className,
		Position:  [2]float32{sb.position.X(), sb.position.Y()},
		Attitude:  [2]float32{sb.attitude.A(), sb.attitude.B()},
		Scale:     [2]float32{sb.scale.X(), sb.scale.Y()},
		Skew:      [2]float32{sb.skewX, sb.skewY},

		Fill:       encodeTexture(sb.fill),
		Stroke:     encodeTexture(sb.stroke),
		Linewidth:  sb.linewidth,
		Opacity:    sb.opacity,
		Visible:    sb.visible,
		Cap:        sb.cap,
		Join:       sb.join,
		Miter:      sb.miter,
		Dashes:     sb.dashes,
		DashOffset: sb.dashOffset,

		Closed:    sb.closed,
		Curved:    sb.curved,
		Automatic: sb.automatic,
		Beginning: sb.beginning,
		Ending:    sb.ending,
	}
	if sb.matrix.Manual() {
		e := sb.matrix.Elements()
		o.Matrix = &e
	}
	switch s := sh.(type) {
	case *Group:
		for _, child := range s.children.items {
			o.Children = append(o.Children, shapeToObject(child))
		}
	case *Text:
		o.Text = &textObject{
			Value:      s.value,
			Family:     s.family,
			Size:       s.size,
			Leading:    s.leading,
			Alignment:  s.alignment,
			Baseline:   s.baseline,
			Style:      s.style,
			Weight:     s.weight,
			Decoration: s.decoration,
		}
	case *Points:
		o.Points = &pointsObject{
			Size:            s.size,
			SizeAttenuation: s.attenuation,
		}
		for _, v := range s.vertices.items {
			o.Points.Vertices = append(o.Points.Vertices, [2]float32{v.X(), v.Y()})
		}
	default:
		if p, ok := sh.(interface{ Vertices() *Collection[*Anchor] }); ok {
			for _, a := range p.Vertices().items {
				o.Vertices = append(o.Vertices, anchorToObject(a))
			}
		}
	}
	return o
}

func anchorToObject(a *Anchor) anchorObject {
	return anchorObject{
		X:        a.origin.X(),
		Y:        a.origin.Y(),
		Command:  a.command,
		Relative: a.relative,
		Left:     [2]float32{a.left.X(), a.left.Y()},
		Right:    [2]float32{a.right.X(), a.right.Y()},

		RadiusX:       a.rx,
		RadiusY:       a.ry,
		XAxisRotation: a.xAxisRotation,
		LargeArc:      a.largeArc,
		Sweep:         a.sweep,
	}
}

func objectToShape(sc *Scene, o *shapeObject) (Shape, error) {
	var sh Shape
	switch o.Kind {
	case KindPath:
		p := NewPath(sc)
		p.automatic = o.Automatic
		for _, ao := range o.Vertices {
			p.vertices.Add(objectToAnchor(ao))
		}
		sh = p
	case KindGroup:
		g := NewGroup(sc)
		for _, co := range o.Children {
			child, err := objectToShape(sc, co)
			if err != nil {
				return nil, err
			}
			g.Add(child)
		}
		sh = g
	case KindText:
		t := NewText(sc, "")
		if o.Text != nil {
			t.value = o.Text.Value
			t.family = o.Text.Family
			t.size = o.Text.Size
			t.leading = o.Text.Leading
			t.alignment = o.Text.Alignment
			t.baseline = o.Text.Baseline
			t.style = o.Text.Style
			t.weight = o.Text.Weight
			t.decoration = o.Text.Decoration
		}
		sh = t
	case KindPoints:
		p := NewPoints(sc)
		if o.Points != nil {
			p.size = o.Points.Size
			p.attenuation = o.Points.SizeAttenuation
			for _, v := range o.Points.Vertices {
				p.vertices.Add(NewVector(v[0], v[1]))
			}
		}
		sh = p
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, o.Kind)
	}

	sb := sh.AsShapeBase()
	if o.ID != "" {
		sb.id = o.ID
	}
	sb.className = o.ClassName
	sb.position.Set(o.Position[0], o.Position[1])
	sb.attitude.SetRotor(o.Attitude[0], o.Attitude[1])
	sb.scale.Set(o.Scale[0], o.Scale[1])
	sb.skewX = o.Skew[0]
	sb.skewY = o.Skew[1]
	if o.Matrix != nil {
		e := *o.Matrix
		sb.matrix.Set(e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8])
		sb.matrix.SetManual(true)
	}

	fill, err := decodeTexture(o.Fill)
	if err != nil {
		return nil, fmt.Errorf("scene: decode fill: %w", err)
	}
	if o.Fill != "" {
		sb.fill = fill
	}
	stroke, err := decodeTexture(o.Stroke)
	if err != nil {
		return nil, fmt.Errorf("scene: decode stroke: %w", err)
	}
	if o.Stroke != "" {
		sb.stroke = stroke
	}

	sb.linewidth = o.Linewidth
	sb.opacity = o.Opacity
	sb.visible = o.Visible
	sb.cap = o.Cap
	sb.join = o.Join
	sb.miter = o.Miter
	sb.dashes = o.Dashes
	sb.dashOffset = o.DashOffset

	sb.closed = o.Closed
	sb.curved = o.Curved
	sb.automatic = o.Automatic
	sh.SetBeginning(o.Beginning)
	sh.SetEnding(o.Ending)
	return sh, nil
}

func objectToAnchor(o anchorObject) *Anchor {
	a := NewAnchor(o.X, o.Y)
	a.command = o.Command
	a.relative = o.Relative
	a.left.Set(o.Left[0], o.Left[1])
	a.right.Set(o.Right[0], o.Right[1])
	a.rx = o.RadiusX
	a.ry = o.RadiusY
	a.xAxisRotation = o.XAxisRotation
	a.largeArc = o.LargeArc
	a.sweep = o.Sweep
	return a
}

// encodeTexture renders a fill or stroke as a color string. Only
// uniform colors have a text form; nil encodes as none and anything
// else is dropped.
func encodeTexture(img image.Image) string {
	switch u := img.(type) {
	case nil:
		return "none"
	case *image.Uniform:
		return colors.AsHex(u.C)
	}
	return ""
}

func decodeTexture(s string) (image.Image, error) {
	switch s {
	case "", "none":
		return nil, nil
	}
	c, err := colors.FromString(s)
	if err != nil {
		return nil, err
	}
	return colors.Uniform(c), nil
}
