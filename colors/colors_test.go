// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#FF0000")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromHex("00ff00")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c)

	c, err = FromHex("#abc")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 255}, c)

	// 8 digit hex values are non-premultiplied.
	c, err = FromHex("#FF000080")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c)

	_, err = FromHex("#12345")
	assert.Error(t, err)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF0000", AsHex(FromRGB(255, 0, 0)))
	// Premultiplied {128, 0, 0, 128} is half-transparent pure red.
	assert.Equal(t, "#FF000080", AsHex(color.RGBA{128, 0, 0, 128}))
	assert.Equal(t, "none", AsHex(nil))
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FF8000", "#FF000080"} {
		c, err := FromHex(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, AsHex(c))
	}
}

func TestFromName(t *testing.T) {
	c, err := FromName("red")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromName("Rebeccapurple")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{102, 51, 153, 255}, c)

	_, err = FromName("notacolor")
	assert.Error(t, err)
}

func TestFromString(t *testing.T) {
	for _, str := range []string{"", "none", "transparent"} {
		c, err := FromString(str)
		assert.NoError(t, err)
		assert.Equal(t, color.RGBA{}, c)
	}

	c, err := FromString("#00FF00")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c)

	c, err = FromString("rgb(255, 128, 0)")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)

	c, err = FromString("rgba(255, 0, 0, 128)")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c)

	c, err = FromString("blue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c)

	for _, bad := range []string{"rgb(1, 2)", "rgb(a, b, c)", "notacolor"} {
		_, err = FromString(bad)
		assert.Error(t, err, "input: %s", bad)
	}
}

func TestUniform(t *testing.T) {
	u := Uniform(FromRGB(1, 2, 3))
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, u.C)
}

func TestAsRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, AsRGBA(color.White))
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, AsRGBA(color.RGBA{1, 2, 3, 255}))
}

func TestAsNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{}, AsNRGBA(nil))
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, AsNRGBA(color.RGBA{128, 0, 0, 128}))
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, AsRGBA(FromNRGBA(255, 0, 0, 128)))
}
