// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and representation utilities
// for fill and stroke sources.
package colors

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Uniform returns a new [image.Uniform] filled with the given color,
// for use as a flat fill or stroke source.
func Uniform(c color.Color) *image.Uniform {
	return image.NewUniform(c)
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as a non-alpha-premultiplied NRGBA color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromRGB makes a new opaque RGBA color from the given
// RGB uint8 values.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromNRGBA makes a new RGBA color from the given
// non-alpha-premultiplied RGBA uint8 values.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// FromName returns the color value specified by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// FromHex parses the given hex color string and returns the resulting color.
// Supported formats are #RGB, #RRGGBB, and #RRGGBBAA, with the leading #
// being optional.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	switch len(hex) {
	case 3:
		format := "%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	case 8:
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// AsHex returns the color as a hex string in the format #RRGGBB
// for opaque colors and #RRGGBBAA otherwise. The hex digits are
// non-alpha-premultiplied, matching [FromHex].
func AsHex(c color.Color) string {
	if c == nil {
		return "none"
	}
	r := AsNRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromString parses the given color string and returns the resulting color.
// It supports hex values (#RGB, #RRGGBB, #RRGGBBAA), CSS standard color
// names, rgb(r, g, b) and rgba(r, g, b, a) forms, and "none" or "" for the
// zero (fully transparent) color.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	switch {
	case str == "" || str == "none" || str == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(str, "#"):
		return FromHex(str)
	case strings.HasPrefix(str, "rgba("):
		vals, err := valueList(str, "rgba", 4)
		if err != nil {
			return color.RGBA{}, err
		}
		return FromNRGBA(uint8(vals[0]), uint8(vals[1]), uint8(vals[2]), uint8(vals[3])), nil
	case strings.HasPrefix(str, "rgb("):
		vals, err := valueList(str, "rgb", 3)
		if err != nil {
			return color.RGBA{}, err
		}
		return FromRGB(uint8(vals[0]), uint8(vals[1]), uint8(vals[2])), nil
	default:
		return FromName(str)
	}
}

// valueList parses "fun(a, b, c)" style numeric argument lists.
func valueList(str, fun string, n int) ([]int, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(str, fun+"("), ")")
	fields := strings.Split(inner, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("colors.FromString: expected %d values in %q", n, str)
	}
	vals := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("colors.FromString: bad value in %q: %w", str, err)
		}
		vals[i] = v
	}
	return vals, nil
}
